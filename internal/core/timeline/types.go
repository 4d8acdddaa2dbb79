package timeline

import (
	"github.com/penwyp/go-sleep-monitor/internal/core/model"
)

// DayTimeline is the laid out 24-hour axis of one day group.
type DayTimeline struct {
	Group      *model.DayGroup
	Placements []model.Placement
}

// DefaultMinVisibleFraction keeps near-zero sleeps visible, about 2 px on a 1000 px axis.
const DefaultMinVisibleFraction = 0.002
