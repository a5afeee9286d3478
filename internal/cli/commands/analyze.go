package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/onair/internal/logging"
	"github.com/ccollicutt/onair/pkg/analyzer"
	"github.com/ccollicutt/onair/pkg/config"
	"github.com/ccollicutt/onair/pkg/output"
	"github.com/ccollicutt/onair/pkg/schedule"
)

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config   string
	HitsFile string
	Term     string
	Output   string
	Queries  []string
	LogLevel string
	Verbose  bool
	Quiet    bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [broadcast-log]",
		Short: "Analyze a broadcast log",
		Long: `Reconstruct the start time of every broadcast and report:

  2. broadcasts per station
  3. airtime span of the configured artist on its station
  4. what the other stations aired when the configured title came up
  5. search hits for a term read from stdin (or --term), saved to the hits file
  6. the padded schedule total of the configured station

The broadcast log defaults to musor.txt and the hits file to keres.txt.

Exit codes:
  0 - Analysis completed
  2 - Configuration, parse or I/O error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	addAnalyzeFlags(cmd, opts)

	return cmd
}

func addAnalyzeFlags(cmd *cobra.Command, opts *AnalyzeOptions) {
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&opts.HitsFile, "hits", "", "File receiving search hits (default from config)")
	cmd.Flags().StringVarP(&opts.Term, "term", "t", "", "Search term (read from stdin when not set)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringSliceVar(&opts.Queries, "query", nil, "Run specific query(s) only: counts, span, neighbors, search, adjusted")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Diagnostic log level (debug|info|warn|error)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show matched broadcasts, not just results")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config, args)
	if err != nil {
		return err
	}
	if opts.HitsFile != "" {
		cfg.HitsFile = opts.HitsFile
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	queries, err := analyzer.ParseQueryTypes(opts.Queries)
	if err != nil {
		return err
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	sched, err := schedule.ParseFile(ctx, cfg.Input,
		schedule.WithStationCount(cfg.StationCount),
		schedule.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	a, err := analyzer.NewAnalyzer(cfg,
		termSource(cmd, opts, logger),
		output.NewHitsFile(cfg.HitsFile),
		analyzer.WithQueryFilter(queries),
		analyzer.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	out := cmd.OutOrStdout()
	result, err := a.Analyze(ctx, sched, func(r *analyzer.Result) error {
		return formatter.Result(ctx, r, out)
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := output.NewReport(result, opts.Config)
	if err := formatter.Format(ctx, report, out); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// loadConfig loads the configuration and applies the positional log path.
func loadConfig(ctx context.Context, path string, args []string) (*config.Config, error) {
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if len(args) > 0 && args[0] != "" {
		cfg.Input = args[0]
	}
	return cfg, nil
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// termSource uses --term when given, otherwise one line of the command's
// standard input, read only once the search query runs.
func termSource(cmd *cobra.Command, opts *AnalyzeOptions, logger *zap.Logger) analyzer.TermSource {
	if cmd.Flags().Changed("term") {
		return analyzer.StaticTerm(opts.Term)
	}

	return analyzer.TermFunc(func(ctx context.Context) (string, error) {
		logger.Debug("waiting for search term on stdin")
		return readLine(cmd.InOrStdin())
	})
}

// readLine returns the first line of r. A missing trailing newline or an
// empty stream is not an error.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return line, nil
}
