package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
)

// Report is everything a formatter needs to render one parse run.
type Report struct {
	GeneratedAt time.Time
	WindowDays  int
	Cutoff      time.Time
	Days        []DayReport // newest first
	Stats       model.ParseStats
	SourceError string // set when the log could not be acquired

	// Location is the display zone for clock times; nil keeps each record's own offset.
	Location *time.Location
}

// DayReport is one calendar day with its records and timeline geometry.
type DayReport struct {
	Day        time.Time
	Total      time.Duration
	Records    []model.SleepRecord
	Placements []model.Placement
}

// Date returns the day as YYYY-MM-DD.
func (d DayReport) Date() string {
	return d.Day.Format("2006-01-02")
}

// Local converts t into the display zone.
func (r Report) Local(t time.Time) time.Time {
	if r.Location == nil {
		return t
	}
	return t.In(r.Location)
}

// RecordCount returns the number of sleep records across all days.
func (r Report) RecordCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Records)
	}
	return n
}

// TotalDuration sums every day's total.
func (r Report) TotalDuration() time.Duration {
	var total time.Duration
	for _, d := range r.Days {
		total += d.Total
	}
	return total
}

// IsEmpty reports the "no records in window" state.
func (r Report) IsEmpty() bool {
	return r.RecordCount() == 0
}

// EmptyMessage is shown when no records fall inside the window.
func (r Report) EmptyMessage() string {
	return fmt.Sprintf("No sleep records in the last %d days", r.WindowDays)
}

// Formatter renders a report.
type Formatter interface {
	Format(report Report) error
}

// New returns the formatter for an output name, writing to w.
// Unknown names fall back to the table.
func New(output string, w io.Writer, width int) Formatter {
	switch output {
	case "json":
		return NewJSONFormatter(w)
	case "csv":
		return NewCSVFormatter(w)
	case "summary":
		return NewSummaryFormatter(w)
	case "timeline":
		return NewTimelineFormatter(w, width)
	default:
		return NewTableFormatter(w)
	}
}
