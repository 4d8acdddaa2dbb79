package timeline

import (
	"math"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
)

// largestOffset is the biggest float64 below 1.
var largestOffset = math.Nextafter(1, 0)

// Layout places records on a normalized 24-hour axis starting at dayStart.
// Offsets are clamped to [0, 1); widths never drop below minVisibleFraction.
// Overlapping records are laid out independently.
func Layout(records []model.SleepRecord, dayStart time.Time, minVisibleFraction float64) []model.Placement {
	placements := make([]model.Placement, 0, len(records))
	for _, r := range records {
		offset := r.StartTime.Sub(dayStart).Seconds() / model.SecondsPerDay
		if offset < 0 || math.IsNaN(offset) {
			offset = 0
		} else if offset >= 1 {
			offset = largestOffset
		}

		width := r.Duration.Seconds() / model.SecondsPerDay
		if width < minVisibleFraction {
			width = minVisibleFraction
		}

		placements = append(placements, model.Placement{
			Record:         r,
			OffsetFraction: offset,
			WidthFraction:  width,
		})
	}
	return placements
}

// TimelineBuilder lays out day groups with a fixed minimum visible width.
type TimelineBuilder struct {
	minVisible float64
}

// NewTimelineBuilder creates a new timeline builder. Non-positive fractions use the default.
func NewTimelineBuilder(minVisibleFraction float64) *TimelineBuilder {
	if minVisibleFraction <= 0 || minVisibleFraction >= 1 {
		minVisibleFraction = DefaultMinVisibleFraction
	}
	return &TimelineBuilder{minVisible: minVisibleFraction}
}

// MinVisibleFraction returns the configured minimum width.
func (tb *TimelineBuilder) MinVisibleFraction() float64 {
	return tb.minVisible
}

// BuildDay lays out every record of group against the group's midnight.
func (tb *TimelineBuilder) BuildDay(group *model.DayGroup) DayTimeline {
	return DayTimeline{
		Group:      group,
		Placements: Layout(group.Records, group.Day, tb.minVisible),
	}
}

// Build lays out all groups, preserving their order.
func (tb *TimelineBuilder) Build(groups []*model.DayGroup) []DayTimeline {
	result := make([]DayTimeline, 0, len(groups))
	for _, g := range groups {
		result = append(result, tb.BuildDay(g))
	}
	return result
}
