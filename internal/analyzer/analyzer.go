package analyzer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/acquire"
	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/core/timeline"
	"github.com/penwyp/go-sleep-monitor/internal/data/aggregator"
	"github.com/penwyp/go-sleep-monitor/internal/data/parser"
	"github.com/penwyp/go-sleep-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

type Config struct {
	Source             string // "pmset", a file path, or "-" for stdin
	Days               int
	Timezone           string
	OutputFormat       string
	MinVisibleFraction float64
	Limit              int // max days rendered, 0 = unlimited
	Width              int // timeline width, 0 = terminal width
	Color              bool

	// Optional collaborators, mostly for tests.
	Out          io.Writer
	Acquirer     acquire.Acquirer
	TimeProvider *util.TimeProvider
	IDGenerator  func() string
}

type Analyzer struct {
	config     *Config
	acquirer   acquire.Acquirer
	clock      *util.TimeProvider
	parser     *parser.Parser
	aggregator *aggregator.Aggregator
	builder    *timeline.TimelineBuilder
}

func New(config *Config) *Analyzer {
	if config.Days < 1 {
		config.Days = 1
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}

	acq := config.Acquirer
	if acq == nil {
		acq = acquire.New(config.Source)
	}

	clock := config.TimeProvider
	if clock == nil {
		tp, err := util.NewTimeProvider(config.Timezone)
		if err != nil {
			util.LogWarn(fmt.Sprintf("Falling back to the default timezone: %v", err))
			tp = util.GetTimeProvider()
		}
		clock = tp
	}

	var opts []parser.Option
	if config.IDGenerator != nil {
		opts = append(opts, parser.WithIDGenerator(config.IDGenerator))
	}

	return &Analyzer{
		config:     config,
		acquirer:   acq,
		clock:      clock,
		parser:     parser.NewParser(opts...),
		aggregator: aggregator.NewAggregator(clock.Location()),
		builder:    timeline.NewTimelineBuilder(config.MinVisibleFraction),
	}
}

// BuildReport acquires the power log and turns it into a per-day report.
// Acquisition failures are logged and produce an empty report, never an error.
func (a *Analyzer) BuildReport(ctx context.Context) formatter.Report {
	stats := NewRunStats()
	now := a.clock.Now()
	report := formatter.Report{
		GeneratedAt: now,
		WindowDays:  a.config.Days,
		Cutoff:      parser.Cutoff(now, a.config.Days),
		Location:    a.aggregator.Location(),
	}

	// Phase 1: Acquire log text
	acquireStart := time.Now()
	raw, err := a.acquirer.Acquire(ctx)
	stats.Record(PhaseAcquire, time.Since(acquireStart))
	if err != nil {
		util.LogWarnf("Failed to read power log from %s: %v", a.acquirer.Name(), err)
		report.SourceError = err.Error()
		stats.PrintFinalStats(report.Stats)
		return report
	}

	// Phase 2: Parse and filter by window
	parseStart := time.Now()
	records := a.parser.ParseOutput(raw, a.config.Days, now)
	report.Stats = a.parser.Stats()
	stats.Record(PhaseParse, time.Since(parseStart))

	// Phase 3: Group by day
	groupStart := time.Now()
	groups := a.aggregator.GroupAndSort(records)
	stats.Record(PhaseGroup, time.Since(groupStart))

	if a.config.Limit > 0 && len(groups) > a.config.Limit {
		util.LogDebug(fmt.Sprintf("Applying day limit: %d -> %d", len(groups), a.config.Limit))
		groups = groups[:a.config.Limit]
	}

	// Phase 4: Timeline layout
	layoutStart := time.Now()
	for _, day := range a.builder.Build(groups) {
		report.Days = append(report.Days, formatter.DayReport{
			Day:        day.Group.Day,
			Total:      day.Group.TotalDuration(),
			Records:    day.Group.Records,
			Placements: day.Placements,
		})
	}
	stats.Record(PhaseLayout, time.Since(layoutStart))

	stats.PrintFinalStats(report.Stats)
	return report
}

func (a *Analyzer) Run(ctx context.Context) error {
	startTime := time.Now()
	util.LogInfof("Starting sleep analysis for the last %d days...", a.config.Days)

	report := a.BuildReport(ctx)

	outputStart := time.Now()
	err := a.formatter().Format(report)
	if err != nil {
		util.LogError("Failed to write report: " + err.Error())
	}
	util.LogDebug(fmt.Sprintf("Formatting and output duration: %v", time.Since(outputStart)))
	util.LogDebug(fmt.Sprintf("Total duration: %v", time.Since(startTime)))
	return err
}

// Records returns the kept records newest first, across all days.
func (a *Analyzer) Records(ctx context.Context) ([]model.SleepRecord, formatter.Report) {
	report := a.BuildReport(ctx)
	records := make([]model.SleepRecord, 0, report.RecordCount())
	for _, day := range report.Days {
		records = append(records, day.Records...)
	}
	return records, report
}

func (a *Analyzer) formatter() formatter.Formatter {
	f := formatter.New(a.config.OutputFormat, a.config.Out, a.config.Width)
	if tf, ok := f.(*formatter.TimelineFormatter); ok {
		tf.WithColor(a.config.Color)
	}
	return f
}
