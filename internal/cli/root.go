// Package cli provides the command-line interface for onair.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/onair/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command. Without a subcommand it
// behaves like "onair analyze".
func NewRootCommand() *cobra.Command {
	analyzeCmd := commands.NewAnalyzeCommand()

	rootCmd := &cobra.Command{
		Use:   "onair [broadcast-log]",
		Short: "Analyze radio broadcast logs",
		Long: `onair reads a radio broadcast log, reconstructs when every broadcast
started on its station and reports per-station counts, an artist's airtime
span, what was on air around a given title, fuzzy search hits and a padded
schedule total.

Running onair without a subcommand is the same as "onair analyze".`,
		Args:          analyzeCmd.Args,
		RunE:          analyzeCmd.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Analyze flags are shared so the bare command accepts them too.
	rootCmd.Flags().AddFlagSet(analyzeCmd.Flags())

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
