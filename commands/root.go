package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/penwyp/go-sleep-monitor/internal/analyzer"
	"github.com/penwyp/go-sleep-monitor/internal/config"
	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/util"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	// Logging related
	debug      bool
	configPath string

	// Input
	source string
	days   int

	// Output related
	output     string
	timezone   string
	minVisible float64
	limit      int
	width      int
	color      bool
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "go-sleep-monitor [flags]",
		Short: "macOS sleep history viewer",
		Long: `go-sleep-monitor reads the macOS power management log and reports when the machine slept.

Sleep events are grouped by calendar day, newest first, with each day's total sleep time
and a 24-hour timeline of the sleep periods.

Examples:
  go-sleep-monitor                          # Last 7 days from pmset -g log
  go-sleep-monitor --days 1                 # Today and the last 24 hours
  go-sleep-monitor -d 30 --output summary   # Monthly summary
  go-sleep-monitor --output timeline        # 24-hour bars per day
  go-sleep-monitor --file saved-pmset.log   # Read a saved log instead of running pmset
  pmset -g log | go-sleep-monitor -f -      # Read the log from stdin`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Config file path (default "+config.DefaultConfigPath+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug mode")

	cmd.PersistentFlags().StringVarP(&opts.source, "file", "f", "",
		"Read a saved power log instead of running pmset (- for stdin)")
	cmd.PersistentFlags().IntVarP(&opts.days, "days", "d", config.DefaultDays,
		"Number of days to look back (presets: "+presetList()+")")
	cmd.PersistentFlags().StringVar(&opts.timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.OutputTable,
		"Output format (table, json, csv, summary, timeline)")
	cmd.Flags().StringVar(&opts.output, "format", "",
		"Alias for --output")
	cmd.Flags().Float64Var(&opts.minVisible, "min-visible", 0,
		"Minimum timeline width of a sleep period as a fraction of the day")
	cmd.Flags().IntVar(&opts.limit, "limit", 0,
		"Limit the number of days shown (0 = unlimited)")
	cmd.Flags().IntVar(&opts.width, "width", 0,
		"Timeline width in columns (0 = terminal width)")
	cmd.Flags().BoolVar(&opts.color, "color", false,
		"Colorize timeline day headers")

	cmd.AddCommand(newRecordsCommand(opts))
	return cmd
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

func runReport(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if err := setup(cfg, opts.debug); err != nil {
		return err
	}

	a := analyzer.New(&analyzer.Config{
		Source:             cfg.Source,
		Days:               cfg.Days,
		Timezone:           cfg.Timezone,
		OutputFormat:       cfg.Output,
		MinVisibleFraction: cfg.MinVisibleFraction,
		Limit:              cfg.Limit,
		Width:              opts.width,
		Color:              opts.color,
		Out:                cmd.OutOrStdout(),
		TimeProvider:       util.GetTimeProvider(),
	})
	return a.Run(cmd.Context())
}

// loadConfig reads the config file and applies the flags the user actually set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Days = opts.days
	}
	if flags.Changed("file") {
		cfg.Source = opts.source
	}
	if flags.Changed("timezone") {
		cfg.Timezone = opts.timezone
	}
	if flags.Changed("output") || flags.Changed("format") {
		cfg.Output = opts.output
	}
	if flags.Changed("min-visible") {
		cfg.MinVisibleFraction = opts.minVisible
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.limit
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setup(cfg config.Config, debug bool) error {
	logFile := config.ExpandPath(cfg.LogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLoggerWithFormat(cfg.LogLevel, logFile, debug, util.LogFormat(cfg.LogFormat)); err != nil {
		return err
	}
	return util.InitializeTimeProvider(cfg.Timezone)
}

func presetList() string {
	presets := make([]string, 0, len(model.WindowPresets))
	for _, days := range model.WindowPresets {
		presets = append(presets, strconv.Itoa(days))
	}
	return strings.Join(presets, ", ")
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
