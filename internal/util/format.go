package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a sleep duration as "Xh Ym", "Xm Ys" or "Xs".
// Fractional seconds are truncated.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatTotal renders a day's total sleep time as "Xh Ym".
func FormatTotal(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
}

// FormatDayHeader renders a day in long form, e.g. "Wednesday, October 29, 2025".
func FormatDayHeader(day time.Time) string {
	return day.Format("Monday, January 2, 2006")
}

// FormatClock renders the time of day as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatNumber adds thousands separators to n.
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}
	if neg {
		return "-" + string(result)
	}
	return string(result)
}
