package formatter

import (
	"io"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

type jsonRecord struct {
	ID              string  `json:"id"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationSeconds float64 `json:"durationSeconds"`
	Reason          string  `json:"reason"`
	OffsetFraction  float64 `json:"offsetFraction"`
	WidthFraction   float64 `json:"widthFraction"`
}

type jsonDay struct {
	Date         string       `json:"date"`
	TotalSeconds float64      `json:"totalSeconds"`
	Records      []jsonRecord `json:"records"`
}

type jsonReport struct {
	GeneratedAt string           `json:"generatedAt"`
	WindowDays  int              `json:"windowDays"`
	Cutoff      string           `json:"cutoff"`
	Days        []jsonDay        `json:"days"`
	Diagnostics model.ParseStats `json:"diagnostics"`
	SourceError string           `json:"sourceError,omitempty"`
}

func (f *JSONFormatter) Format(report Report) error {
	out := jsonReport{
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		WindowDays:  report.WindowDays,
		Cutoff:      report.Cutoff.Format(time.RFC3339),
		Days:        make([]jsonDay, 0, len(report.Days)),
		Diagnostics: report.Stats,
		SourceError: report.SourceError,
	}

	for _, day := range report.Days {
		jd := jsonDay{
			Date:         day.Date(),
			TotalSeconds: day.Total.Seconds(),
			Records:      make([]jsonRecord, 0, len(day.Placements)),
		}
		for _, p := range day.Placements {
			jd.Records = append(jd.Records, jsonRecord{
				ID:              p.Record.ID,
				StartTime:       p.Record.StartTime.Format(time.RFC3339),
				EndTime:         p.Record.EndTime().Format(time.RFC3339),
				DurationSeconds: p.Record.DurationSeconds(),
				Reason:          p.Record.Reason,
				OffsetFraction:  p.OffsetFraction,
				WidthFraction:   p.WidthFraction,
			})
		}
		out.Days = append(out.Days, jd)
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.w.Write(data)
	return err
}
