package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-sleep-monitor/internal/util"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(report Report) error {
	w := csv.NewWriter(f.w)

	headers := []string{
		"Date", "Start", "End", "Duration (s)", "Duration", "Reason", "ID",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range report.Days {
		for _, r := range day.Records {
			record := []string{
				day.Date(),
				r.StartTime.Format("2006-01-02 15:04:05 -0700"),
				r.EndTime().Format("2006-01-02 15:04:05 -0700"),
				strconv.FormatFloat(r.DurationSeconds(), 'f', -1, 64),
				util.FormatDuration(r.Duration),
				r.Reason,
				r.ID,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
