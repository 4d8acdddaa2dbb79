package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// Width bounds for terminal rendering
const (
	DefaultWidth = 74
	MinWidth     = 40
	MaxWidth     = 120
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

// Sizer measures and pads strings by display width.
type Sizer struct{}

// Shared returns the package-level Sizer.
func Shared() *Sizer {
	return sharedSizer
}

// DisplayWidth returns the number of terminal cells s occupies.
func (i Sizer) DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width, handling wide runes correctly
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.DisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// GetMaxWidth returns the usable output width of the stdout terminal, with a fallback
// when stdout is not a terminal.
func (i Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	width := ClampWidth(termWidth, err == nil)
	util.LogDebugf("GetMaxWidth %d", width)
	return width
}

// ClampWidth converts a raw terminal width into a render width.
func ClampWidth(termWidth int, ok bool) int {
	if !ok || termWidth <= 0 {
		return DefaultWidth
	}
	width := termWidth - 4
	if width < MinWidth {
		width = MinWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}
	return width
}
