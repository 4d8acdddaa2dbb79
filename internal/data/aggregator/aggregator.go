package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// Aggregator groups sleep records by calendar day in a configured timezone.
type Aggregator struct {
	location *time.Location
}

// NewAggregator creates an Aggregator for loc.
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{location: loc}
}

// Location returns the timezone used for day boundaries.
func (a *Aggregator) Location() *time.Location {
	return a.location
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// GroupByDay groups records by the local calendar day of their start time.
// Keys are YYYY-MM-DD; records keep their source order within a day.
func (a *Aggregator) GroupByDay(records []model.SleepRecord) map[string]*model.DayGroup {
	groups := make(map[string]*model.DayGroup)
	for _, r := range records {
		day := StartOfDay(r.StartTime, a.location)
		key := day.Format("2006-01-02")
		group, ok := groups[key]
		if !ok {
			group = &model.DayGroup{Day: day}
			groups[key] = group
		}
		group.Records = append(group.Records, r)
	}

	util.LogDebug(fmt.Sprintf("Grouped %d records into %d days", len(records), len(groups)))
	return groups
}

// SortedDays returns the groups ordered by day, newest first.
func SortedDays(groups map[string]*model.DayGroup) []*model.DayGroup {
	result := make([]*model.DayGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.After(result[j].Day)
	})
	return result
}

// GroupAndSort is GroupByDay followed by SortedDays.
func (a *Aggregator) GroupAndSort(records []model.SleepRecord) []*model.DayGroup {
	return SortedDays(a.GroupByDay(records))
}
