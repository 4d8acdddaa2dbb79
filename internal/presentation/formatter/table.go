package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-sleep-monitor/internal/presentation/layout"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

type TableFormatter struct {
	w       io.Writer
	sizer   *layout.Sizer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		sizer:   layout.Shared(),
		headers: []string{"Date", "Start", "End", "Duration", "Reason"},
	}
}

func (f *TableFormatter) Format(report Report) error {
	if report.IsEmpty() {
		_, err := fmt.Fprintln(f.w, report.EmptyMessage())
		return err
	}

	rows := f.buildRows(report)
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	for _, row := range rows {
		if row == nil {
			f.printBorder(widths, "middle")
			continue
		}
		f.printRow(row, widths)
	}

	f.printBorder(widths, "bottom")
	return nil
}

// buildRows flattens the report; a nil row marks a separator.
func (f *TableFormatter) buildRows(report Report) [][]string {
	var rows [][]string
	for _, day := range report.Days {
		for i, r := range day.Records {
			date := ""
			if i == 0 {
				date = day.Date()
			}
			rows = append(rows, []string{
				date,
				util.FormatClock(report.Local(r.StartTime)),
				util.FormatClock(report.Local(r.EndTime())),
				util.FormatDuration(r.Duration),
				r.Reason,
			})
		}
		rows = append(rows, []string{
			"", "", "Day total", util.FormatTotal(day.Total), pluralize(len(day.Records), "sleep"),
		})
		rows = append(rows, nil)
	}

	rows = append(rows, []string{
		"Total", "", "", util.FormatTotal(report.TotalDuration()), pluralize(report.RecordCount(), "sleep"),
	})
	return rows
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = f.sizer.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := f.sizer.DisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	default:
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(f.w, b.String())
}

// printRow prints a row; the duration column is right-aligned
func (f *TableFormatter) printRow(values []string, widths []int) {
	var b strings.Builder
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" ")
		b.WriteString(f.sizer.PadString(value, widths[i], i != 3))
		b.WriteString(" │")
	}
	fmt.Fprintln(f.w, b.String())
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
