package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-sleep-monitor/internal/presentation/layout"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// TimelineFormatter draws each day as a 24-hour bar followed by its records.
type TimelineFormatter struct {
	w     io.Writer
	width int
	color bool
	sizer *layout.Sizer
}

// NewTimelineFormatter creates a timeline formatter; width <= 0 uses the terminal width.
func NewTimelineFormatter(w io.Writer, width int) *TimelineFormatter {
	sizer := layout.Shared()
	if width <= 0 {
		width = sizer.GetMaxWidth()
	}
	return &TimelineFormatter{w: w, width: width, sizer: sizer}
}

// WithColor enables ANSI titles.
func (f *TimelineFormatter) WithColor(enabled bool) *TimelineFormatter {
	f.color = enabled
	return f
}

func (f *TimelineFormatter) title(s string) string {
	if f.color {
		return util.FormatDataTitle(s)
	}
	return s
}

func (f *TimelineFormatter) Format(report Report) error {
	if report.IsEmpty() {
		_, err := fmt.Fprintln(f.w, report.EmptyMessage())
		return err
	}

	// Two frame characters around the bar.
	cells := f.width - 2
	if cells < 24 {
		cells = 24
	}
	reasonWidth := f.width - 32
	if reasonWidth < 10 {
		reasonWidth = 10
	}

	for i, day := range report.Days {
		if i > 0 {
			fmt.Fprintln(f.w)
		}

		header := util.FormatDayHeader(day.Day)
		total := "Total sleep: " + util.FormatTotal(day.Total)
		gap := f.width - f.sizer.DisplayWidth(header) - f.sizer.DisplayWidth(total)
		if gap < 2 {
			gap = 2
		}
		fmt.Fprintln(f.w, f.title(header)+strings.Repeat(" ", gap)+total)

		fmt.Fprintln(f.w, " "+layout.RenderHourScale(cells, 3))
		fmt.Fprintln(f.w, "|"+layout.RenderBar(day.Placements, cells)+"|")

		for _, r := range day.Records {
			fmt.Fprintf(f.w, "  %s - %s  %s  %s\n",
				util.FormatClock(report.Local(r.StartTime)),
				util.FormatClock(report.Local(r.EndTime())),
				f.sizer.PadString(util.FormatDuration(r.Duration), 8, false),
				util.TruncateToWidth(r.Reason, reasonWidth))
		}
	}
	return nil
}
