package timeline

import (
	"testing"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dayStart = time.Date(2025, 10, 29, 0, 0, 0, 0, time.FixedZone("", 8*3600))

func at(h, m, s int, d time.Duration) model.SleepRecord {
	return model.SleepRecord{
		ID:        "r",
		StartTime: dayStart.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second),
		Duration:  d,
	}
}

func TestLayoutFractions(t *testing.T) {
	tests := []struct {
		name           string
		record         model.SleepRecord
		expectedOffset float64
		expectedWidth  float64
	}{
		{
			name:           "midnight start",
			record:         at(0, 0, 0, 12*time.Hour),
			expectedOffset: 0,
			expectedWidth:  0.5,
		},
		{
			name:           "noon start",
			record:         at(12, 0, 0, 6*time.Hour),
			expectedOffset: 0.5,
			expectedWidth:  0.25,
		},
		{
			name:           "tiny sleep gets minimum width",
			record:         at(18, 0, 0, 19*time.Second),
			expectedOffset: 0.75,
			expectedWidth:  DefaultMinVisibleFraction,
		},
		{
			name:           "zero duration",
			record:         at(6, 0, 0, 0),
			expectedOffset: 0.25,
			expectedWidth:  DefaultMinVisibleFraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements := Layout([]model.SleepRecord{tt.record}, dayStart, DefaultMinVisibleFraction)
			require.Len(t, placements, 1)
			assert.InDelta(t, tt.expectedOffset, placements[0].OffsetFraction, 1e-9)
			assert.InDelta(t, tt.expectedWidth, placements[0].WidthFraction, 1e-9)
			assert.Equal(t, tt.record, placements[0].Record)
		})
	}
}

func TestLayoutClampsOffsets(t *testing.T) {
	before := model.SleepRecord{StartTime: dayStart.Add(-time.Hour), Duration: time.Hour}
	after := model.SleepRecord{StartTime: dayStart.Add(30 * time.Hour), Duration: time.Hour}
	lastSecond := at(23, 59, 59, 0)

	placements := Layout([]model.SleepRecord{before, after, lastSecond}, dayStart, DefaultMinVisibleFraction)
	require.Len(t, placements, 3)

	for _, p := range placements {
		assert.GreaterOrEqual(t, p.OffsetFraction, 0.0)
		assert.Less(t, p.OffsetFraction, 1.0)
		assert.GreaterOrEqual(t, p.WidthFraction, DefaultMinVisibleFraction)
	}
	assert.Equal(t, 0.0, placements[0].OffsetFraction)
	assert.InDelta(t, 86399.0/86400.0, placements[2].OffsetFraction, 1e-12)
}

func TestLayoutOverlapsAreIndependent(t *testing.T) {
	a := at(1, 0, 0, 2*time.Hour)
	b := at(2, 0, 0, 2*time.Hour)

	placements := Layout([]model.SleepRecord{a, b}, dayStart, DefaultMinVisibleFraction)
	require.Len(t, placements, 2)
	assert.InDelta(t, 1.0/24, placements[0].OffsetFraction, 1e-12)
	assert.InDelta(t, 2.0/24, placements[1].OffsetFraction, 1e-12)
	assert.InDelta(t, 2.0/24, placements[0].WidthFraction, 1e-12)
	assert.InDelta(t, 2.0/24, placements[1].WidthFraction, 1e-12)
}

func TestLayoutEmpty(t *testing.T) {
	placements := Layout(nil, dayStart, DefaultMinVisibleFraction)
	assert.NotNil(t, placements)
	assert.Empty(t, placements)
}

func TestNewTimelineBuilder(t *testing.T) {
	assert.Equal(t, 0.01, NewTimelineBuilder(0.01).MinVisibleFraction())
	assert.Equal(t, DefaultMinVisibleFraction, NewTimelineBuilder(0).MinVisibleFraction())
	assert.Equal(t, DefaultMinVisibleFraction, NewTimelineBuilder(-1).MinVisibleFraction())
	assert.Equal(t, DefaultMinVisibleFraction, NewTimelineBuilder(1).MinVisibleFraction())
}

func TestBuilderBuild(t *testing.T) {
	groups := []*model.DayGroup{
		{Day: dayStart.AddDate(0, 0, 1), Records: []model.SleepRecord{
			{StartTime: dayStart.AddDate(0, 0, 1).Add(6 * time.Hour), Duration: time.Hour},
		}},
		{Day: dayStart, Records: []model.SleepRecord{at(12, 0, 0, 0), at(18, 0, 0, 0)}},
	}

	timelines := NewTimelineBuilder(0.05).Build(groups)

	require.Len(t, timelines, 2)
	assert.Same(t, groups[0], timelines[0].Group)
	require.Len(t, timelines[0].Placements, 1)
	assert.InDelta(t, 0.25, timelines[0].Placements[0].OffsetFraction, 1e-12)
	assert.InDelta(t, 0.05, timelines[0].Placements[0].WidthFraction, 1e-12)
	require.Len(t, timelines[1].Placements, 2)
	assert.InDelta(t, 0.75, timelines[1].Placements[1].OffsetFraction, 1e-12)
}
