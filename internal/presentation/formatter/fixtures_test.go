package formatter

import (
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/core/timeline"
)

var plus8 = time.FixedZone("", 8*3600)

func record(id string, day, hour, min, sec int, d time.Duration, reason string) model.SleepRecord {
	return model.SleepRecord{
		ID:        id,
		StartTime: time.Date(2025, 10, day, hour, min, sec, 0, plus8),
		Duration:  d,
		Reason:    reason,
	}
}

func dayReport(day int, records ...model.SleepRecord) DayReport {
	group := &model.DayGroup{Day: time.Date(2025, 10, day, 0, 0, 0, 0, plus8), Records: records}
	return DayReport{
		Day:        group.Day,
		Total:      group.TotalDuration(),
		Records:    records,
		Placements: timeline.Layout(records, group.Day, timeline.DefaultMinVisibleFraction),
	}
}

func sampleReport() Report {
	return Report{
		GeneratedAt: time.Date(2025, 10, 31, 9, 0, 0, 0, plus8),
		WindowDays:  7,
		Cutoff:      time.Date(2025, 10, 24, 9, 0, 0, 0, plus8),
		Days: []DayReport{
			dayReport(30,
				record("r1", 30, 23, 0, 0, 2*time.Hour, "Idle Sleep"),
				record("r2", 30, 1, 30, 0, 45*time.Minute, "Clamshell Sleep"),
			),
			dayReport(29,
				record("r3", 29, 12, 20, 56, 19*time.Second, "Software Sleep pid=157"),
			),
		},
		Stats: model.ParseStats{TotalLines: 10, MatchedLines: 4, ParsedLines: 3, Kept: 3, SkipReasons: map[string]int{"invalid date": 1}},
	}
}

func emptyReport() Report {
	return Report{
		GeneratedAt: time.Date(2025, 10, 31, 9, 0, 0, 0, plus8),
		WindowDays:  3,
		Cutoff:      time.Date(2025, 10, 28, 9, 0, 0, 0, plus8),
	}
}
