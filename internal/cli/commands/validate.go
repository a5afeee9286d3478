package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/onair/pkg/clock"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate [broadcast-log]",
		Short: "Validate a broadcast log",
		Long: `Validate a broadcast log without running the queries.

Checks:
  - Record count line
  - Station, minutes and seconds fields
  - Station ids within the configured station count
  - Author:title separator on every record`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, configPath string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(ctx, configPath, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Validating %s...\n", cfg.Input)

	sched, err := schedule.ParseFile(ctx, cfg.Input, schedule.WithStationCount(cfg.StationCount))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nBroadcast log valid!\n")
	fmt.Fprintf(out, "  Broadcasts: %d\n", len(sched.Broadcasts))
	fmt.Fprintf(out, "  Stations:   %d\n", sched.StationCount)

	fmt.Fprintf(out, "\nStations:\n")
	for station := 1; station <= sched.StationCount; station++ {
		broadcasts := sched.OnStation(station)
		airtime := clock.Zero
		if n := len(broadcasts); n > 0 {
			airtime = broadcasts[n-1].End()
		}
		fmt.Fprintf(out, "  %d. %d broadcast(s), %s airtime\n", station, len(broadcasts), airtime)
	}

	return nil
}
