package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal color sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorMagenta = "\033[35m"
	ColorBold    = "\033[1m"
)

// GetDisplayWidth calculates the display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text to at most width display cells, adding an ellipsis.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorMagenta, title, ColorReset)
}

// FormatDiagnosticTitle formats diagnostic titles (Yellow + Bold)
func FormatDiagnosticTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorYellow, title, ColorReset)
}

// FormatDataTitle formats data section titles (Green + Bold)
func FormatDataTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorGreen, title, ColorReset)
}

// FormatSectionSeparator creates a visual separator line of width cells
func FormatSectionSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, strings.Repeat("─", width), ColorReset)
}
