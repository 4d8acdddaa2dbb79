package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/presentation/layout"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// SummaryFormatter prints aggregate statistics for the whole window.
type SummaryFormatter struct {
	w     io.Writer
	sizer *layout.Sizer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w, sizer: layout.Shared()}
}

const reasonColumnWidth = 34

type reasonStat struct {
	Reason string
	Count  int
	Total  time.Duration
}

// Format writes the summary report.
func (f *SummaryFormatter) Format(report Report) error {
	w := f.w
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Sleep Summary Report")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Window: last %d days (since %s)\n", report.WindowDays, report.Cutoff.Format("2006-01-02 15:04"))

	if report.IsEmpty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, report.EmptyMessage())
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("=", 60))
		return nil
	}

	newest := report.Days[0].Date()
	oldest := report.Days[len(report.Days)-1].Date()
	if newest == oldest {
		fmt.Fprintf(w, "Date Range: %s\n", newest)
	} else {
		fmt.Fprintf(w, "Date Range: %s to %s\n", oldest, newest)
	}
	fmt.Fprintln(w)

	var longest model.SleepRecord
	reasons := make(map[string]*reasonStat)
	for _, day := range report.Days {
		for _, r := range day.Records {
			if r.Duration > longest.Duration || longest.ID == "" {
				longest = r
			}
			stat, ok := reasons[r.Reason]
			if !ok {
				stat = &reasonStat{Reason: r.Reason}
				reasons[r.Reason] = stat
			}
			stat.Count++
			stat.Total += r.Duration
		}
	}

	total := report.TotalDuration()
	fmt.Fprintln(w, "Totals:")
	fmt.Fprintf(w, "  Sleep Events:        %s\n", util.FormatNumber(report.RecordCount()))
	fmt.Fprintf(w, "  Days With Sleep:     %d\n", len(report.Days))
	fmt.Fprintf(w, "  Total Sleep:         %s\n", util.FormatTotal(total))
	fmt.Fprintf(w, "  Average Per Day:     %s\n", util.FormatTotal(total/time.Duration(len(report.Days))))
	fmt.Fprintf(w, "  Longest Sleep:       %s at %s (%s)\n",
		util.FormatDuration(longest.Duration), report.Local(longest.StartTime).Format("2006-01-02 15:04:05"), longest.Reason)
	fmt.Fprintln(w)

	stats := make([]*reasonStat, 0, len(reasons))
	for _, s := range reasons {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Reason < stats[j].Reason
	})

	fmt.Fprintln(w, "Reasons:")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, s := range stats {
		fmt.Fprintf(w, "  %s %5d  %s\n", f.sizer.PadString(s.Reason, reasonColumnWidth, true), s.Count, util.FormatTotal(s.Total))
	}

	if skipped := report.Stats.Skipped(); skipped > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Skipped %d malformed sleep lines\n", skipped)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
