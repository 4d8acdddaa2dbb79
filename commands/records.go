package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/penwyp/go-sleep-monitor/internal/acquire"
	"github.com/penwyp/go-sleep-monitor/internal/analyzer"
	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-sleep-monitor/internal/util"
	"github.com/spf13/cobra"
)

const recordsWidth = 72

func newRecordsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:    "records",
		Short:  "Debug command to list parsed sleep records",
		Long:   `Parses the power log and prints every kept sleep record, newest first, followed by parser diagnostics.`,
		Hidden: true, // Hidden from help
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(cmd, opts)
		},
	}
}

func runRecords(cmd *cobra.Command, opts *rootOptions) error {
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
		MinVisibleFraction: cfg.MinVisibleFraction,
		Out:                cmd.OutOrStdout(),
		TimeProvider:       util.GetTimeProvider(),
	})
	records, report := a.Records(cmd.Context())

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, util.FormatSectionSeparator(recordsWidth))
	fmt.Fprintln(w, util.FormatHeaderTitle("=== Sleep Record Detection ==="))
	fmt.Fprintf(w, "Timestamp: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Source: %s\n", sourceName(cfg.Source))
	fmt.Fprintf(w, "Window: last %d days (since %s)\n", report.WindowDays, report.Cutoff.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, util.FormatSectionSeparator(recordsWidth))

	printRecords(w, records, report)
	fmt.Fprintln(w, util.FormatSectionSeparator(recordsWidth))
	printDiagnostics(w, report)
	return nil
}

func sourceName(source string) string {
	switch source {
	case "", acquire.DefaultCommand:
		return acquire.DefaultCommand + " " + strings.Join(acquire.DefaultArgs, " ")
	case acquire.StdinSource:
		return "stdin"
	default:
		return source
	}
}

func printRecords(w io.Writer, records []model.SleepRecord, report formatter.Report) {
	fmt.Fprintln(w, util.FormatDataTitle(fmt.Sprintf("Records (%d)", len(records))))
	if len(records) == 0 {
		fmt.Fprintf(w, "  %s\n", report.EmptyMessage())
		return
	}
	for i, r := range records {
		fmt.Fprintf(w, "  %3d. %s  %-8s  %s\n",
			i+1,
			report.Local(r.StartTime).Format("2006-01-02 15:04:05"),
			util.FormatDuration(r.Duration),
			r.Reason)
		fmt.Fprintf(w, "       ends %s  id %s\n", report.Local(r.EndTime()).Format("2006-01-02 15:04:05"), r.ID)
	}
}

func printDiagnostics(w io.Writer, report formatter.Report) {
	stats := report.Stats
	fmt.Fprintln(w, util.FormatDiagnosticTitle("Parser Diagnostics"))
	if report.SourceError != "" {
		fmt.Fprintf(w, "  Source error:   %s\n", report.SourceError)
	}
	fmt.Fprintf(w, "  Lines:          %s\n", util.FormatNumber(stats.TotalLines))
	fmt.Fprintf(w, "  Sleep lines:    %s\n", util.FormatNumber(stats.MatchedLines))
	fmt.Fprintf(w, "  Parsed:         %s\n", util.FormatNumber(stats.ParsedLines))
	fmt.Fprintf(w, "  Outside window: %s\n", util.FormatNumber(stats.Filtered))
	fmt.Fprintf(w, "  Kept:           %s\n", util.FormatNumber(stats.Kept))
	fmt.Fprintf(w, "  Skipped:        %s\n", util.FormatNumber(stats.Skipped()))

	reasons := make([]string, 0, len(stats.SkipReasons))
	for reason := range stats.SkipReasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "    %s: %d\n", reason, stats.SkipReasons[reason])
	}
}
