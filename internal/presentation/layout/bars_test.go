package layout

import (
	"strings"
	"testing"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestBarSpan(t *testing.T) {
	tests := []struct {
		name          string
		offset, width float64
		cells         int
		start, end    int
	}{
		{name: "first half", offset: 0, width: 0.5, cells: 48, start: 0, end: 24},
		{name: "tiny bar still one cell", offset: 0.75, width: 0.0001, cells: 48, start: 36, end: 37},
		{name: "runs past midnight", offset: 0.9, width: 0.5, cells: 48, start: 43, end: 48},
		{name: "last cell", offset: 0.9999, width: 0.0001, cells: 24, start: 23, end: 24},
		{name: "no cells", offset: 0.5, width: 0.1, cells: 0, start: 0, end: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := BarSpan(model.Placement{OffsetFraction: tt.offset, WidthFraction: tt.width}, tt.cells)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestRenderBar(t *testing.T) {
	placements := []model.Placement{
		{OffsetFraction: 0, WidthFraction: 0.25},
		{OffsetFraction: 0.125, WidthFraction: 0.25}, // overlaps the first
		{OffsetFraction: 0.75, WidthFraction: 0.001},
	}

	bar := RenderBar(placements, 8)
	assert.Equal(t, "███···█·", bar)
	assert.Equal(t, 8, len([]rune(bar)))
	assert.Equal(t, strings.Repeat("·", 4), RenderBar(nil, 4))
	assert.Equal(t, "", RenderBar(placements, 0))
}

func TestRenderHourScale(t *testing.T) {
	assert.Equal(t, "0     6     12    18", RenderHourScale(24, 6))

	scale := RenderHourScale(48, 3)
	assert.True(t, strings.HasPrefix(scale, "0     3     6     9"))
	assert.Contains(t, scale, "21")
	assert.LessOrEqual(t, len(scale), 48)
	assert.Equal(t, "", RenderHourScale(0, 3))
}
