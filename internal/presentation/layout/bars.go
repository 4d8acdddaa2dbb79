package layout

import (
	"math"
	"strings"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
)

const (
	BarFill  = '█'
	BarEmpty = '·'
)

// BarSpan maps a placement onto [start, end) of a row of cells.
// Every placement covers at least one cell.
func BarSpan(p model.Placement, cells int) (int, int) {
	if cells <= 0 {
		return 0, 0
	}
	start := int(math.Floor(p.OffsetFraction * float64(cells)))
	if start >= cells {
		start = cells - 1
	}
	if start < 0 {
		start = 0
	}
	end := int(math.Ceil((p.OffsetFraction + p.WidthFraction) * float64(cells)))
	if end > cells {
		end = cells
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

// RenderBar draws all placements on one row of cells; overlaps simply merge.
func RenderBar(placements []model.Placement, cells int) string {
	if cells <= 0 {
		return ""
	}
	row := []rune(strings.Repeat(string(BarEmpty), cells))
	for _, p := range placements {
		start, end := BarSpan(p, cells)
		for c := start; c < end; c++ {
			row[c] = BarFill
		}
	}
	return string(row)
}

// RenderHourScale labels every step-th hour at its position on a row of cells.
func RenderHourScale(cells, step int) string {
	if cells <= 0 {
		return ""
	}
	if step <= 0 {
		step = 3
	}
	row := []rune(strings.Repeat(" ", cells))
	for h := 0; h < 24; h += step {
		label := []rune(itoa(h))
		pos := h * cells / 24
		if pos+len(label) > cells {
			break
		}
		if pos > 0 && row[pos-1] != ' ' {
			continue
		}
		copy(row[pos:], label)
	}
	return strings.TrimRight(string(row), " ")
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
