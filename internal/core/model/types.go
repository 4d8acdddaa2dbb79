package model

import "time"

// SleepRecord is a single "Entering Sleep state" event parsed from the power log.
// Records are immutable once created.
type SleepRecord struct {
	ID        string
	StartTime time.Time     // carries the fixed UTC offset from the log line
	Duration  time.Duration // never negative
	Reason    string
}

// EndTime returns StartTime + Duration.
func (r SleepRecord) EndTime() time.Time {
	return r.StartTime.Add(r.Duration)
}

// DurationSeconds returns the duration as fractional seconds.
func (r SleepRecord) DurationSeconds() float64 {
	return r.Duration.Seconds()
}

// DayGroup holds the records whose StartTime falls on the same local calendar day.
type DayGroup struct {
	Day     time.Time // local midnight
	Records []SleepRecord
}

// Key returns the calendar date of the group as YYYY-MM-DD.
func (g *DayGroup) Key() string {
	return g.Day.Format("2006-01-02")
}

// TotalDuration sums the durations of all records in the group.
func (g *DayGroup) TotalDuration() time.Duration {
	var total time.Duration
	for _, r := range g.Records {
		total += r.Duration
	}
	return total
}

// Placement is the position of a record on a normalized 24-hour axis.
type Placement struct {
	Record         SleepRecord
	OffsetFraction float64 // [0, 1)
	WidthFraction  float64 // >= minimum visible fraction
}

// ParseStats carries the diagnostics of one parse run.
type ParseStats struct {
	TotalLines   int            `json:"totalLines"`
	MatchedLines int            `json:"matchedLines"`
	ParsedLines  int            `json:"parsedLines"`
	Filtered     int            `json:"filtered"` // parsed but older than the cutoff
	Kept         int            `json:"kept"`
	SkipReasons  map[string]int `json:"skipReasons,omitempty"`
}

// Skipped returns the number of matched lines that failed to parse.
func (s ParseStats) Skipped() int {
	return s.MatchedLines - s.ParsedLines
}
