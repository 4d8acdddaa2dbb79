package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{name: "zero", input: 0, expected: "0s"},
		{name: "negative clamps", input: -time.Minute, expected: "0s"},
		{name: "seconds", input: 19 * time.Second, expected: "19s"},
		{name: "fraction truncated", input: 1900 * time.Millisecond, expected: "1s"},
		{name: "minutes and seconds", input: 2*time.Minute + 5*time.Second, expected: "2m 5s"},
		{name: "exact minute", input: time.Minute, expected: "1m 0s"},
		{name: "hours and minutes", input: 7*time.Hour + 42*time.Minute + 10*time.Second, expected: "7h 42m"},
		{name: "more than a day", input: 26 * time.Hour, expected: "26h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{0, "0h 0m"},
		{59 * time.Second, "0h 0m"},
		{90 * time.Minute, "1h 30m"},
		{10*time.Hour + 5*time.Minute, "10h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTotal(tt.input))
		})
	}
}

func TestFormatDayHeader(t *testing.T) {
	day := time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Wednesday, October 29, 2025", FormatDayHeader(day))
	assert.Equal(t, "12:20:56", FormatClock(time.Date(2025, 10, 29, 12, 20, 56, 0, time.UTC)))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}
