package parser

import (
	"testing"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "2025-10-29 12:20:56 +0800 Sleep  Entering Sleep state due to 'Software Sleep pid=157':TCPKeepAlive=active Using AC (Charge:0%) 19 secs"

func TestParseLineSample(t *testing.T) {
	record, err := ParseLine(sampleLine)
	require.NoError(t, err)

	expectedStart := time.Date(2025, 10, 29, 12, 20, 56, 0, time.FixedZone("", 8*3600))
	assert.True(t, expectedStart.Equal(record.StartTime))
	_, offset := record.StartTime.Zone()
	assert.Equal(t, 8*3600, offset)

	assert.Equal(t, 19*time.Second, record.Duration)
	assert.Equal(t, "Software Sleep pid=157", record.Reason)
	assert.True(t, time.Date(2025, 10, 29, 12, 21, 15, 0, time.FixedZone("", 8*3600)).Equal(record.EndTime()))
	assert.Empty(t, record.ID, "ParseLine does not assign identifiers")
}

func TestParseLineFailures(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{
			name:    "empty line",
			line:    "",
			wantErr: ErrTooFewTokens,
		},
		{
			name:    "two tokens",
			line:    "2025-10-29   12:20:56",
			wantErr: ErrTooFewTokens,
		},
		{
			name:    "garbage date",
			line:    "yesterday at noon Entering Sleep state",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing offset",
			line:    "2025-10-29 12:20:56 Sleep Entering Sleep state 19 secs",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "colon offset",
			line:    "2025-10-29 12:20:56 +08:00 Sleep Entering Sleep state",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "out of range month",
			line:    "2025-13-29 12:20:56 +0800 Sleep Entering Sleep state",
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseLineExactlyThreeTokens(t *testing.T) {
	record, err := ParseLine("2025-10-29 12:20:56 -0500")
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), record.Duration)
	assert.Equal(t, model.UnknownReason, record.Reason)
	_, offset := record.StartTime.Zone()
	assert.Equal(t, -5*3600, offset)
}

func TestParseLineDuration(t *testing.T) {
	prefix := "2025-10-29 12:20:56 +0800 Sleep Entering Sleep state due to 'Idle Sleep':"
	tests := []struct {
		name     string
		suffix   string
		expected time.Duration
	}{
		{
			name:     "integer seconds",
			suffix:   " 3600 secs",
			expected: time.Hour,
		},
		{
			name:     "fractional seconds",
			suffix:   " 1.5 secs",
			expected: 1500 * time.Millisecond,
		},
		{
			name:     "no secs token",
			suffix:   " Using Batt (Charge:80%)",
			expected: 0,
		},
		{
			name:     "secs without number",
			suffix:   " many secs",
			expected: 0,
		},
		{
			name:     "negative number",
			suffix:   " -4 secs",
			expected: 0,
		},
		{
			name:     "nan",
			suffix:   " NaN secs",
			expected: 0,
		},
		{
			name:     "infinity",
			suffix:   " +Inf secs",
			expected: 0,
		},
		{
			name:     "beyond duration range",
			suffix:   " 1e10 secs",
			expected: 0,
		},
		{
			name:     "huge exponent",
			suffix:   " 1e300 secs",
			expected: 0,
		},
		{
			name:     "just past max duration",
			suffix:   " 9223372037 secs",
			expected: 0,
		},
		{
			name:     "large value in range",
			suffix:   " 1000000000 secs",
			expected: 1000000000 * time.Second,
		},
		{
			name:     "last secs token wins",
			suffix:   " 5 secs later 42 secs",
			expected: 42 * time.Second,
		},
		{
			name:     "last secs token unparsable",
			suffix:   " 5 secs and more secs",
			expected: 0,
		},
		{
			name:     "secs glued to number is not a token",
			suffix:   " 19secs",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseLine(prefix + tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.Duration)
		})
	}
}

func TestParseLineSecsAsFirstToken(t *testing.T) {
	// "secs" at index 0 has no preceding token; the date fails first anyway.
	_, err := ParseLine("secs 12:20:56 +0800")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseLineReason(t *testing.T) {
	prefix := "2025-10-29 12:20:56 +0800 Sleep Entering Sleep state "
	tests := []struct {
		name     string
		rest     string
		expected string
	}{
		{
			name:     "quoted reason",
			rest:     "due to 'Clamshell Sleep':Using AC 12 secs",
			expected: "Clamshell Sleep",
		},
		{
			name:     "no reason segment",
			rest:     "Using AC 12 secs",
			expected: model.UnknownReason,
		},
		{
			name:     "unterminated quote",
			rest:     "due to 'Maintenance Sleep 12 secs",
			expected: model.UnknownReason,
		},
		{
			name:     "first closing quote counts",
			rest:     "due to 'Idle Sleep':flags='x' 12 secs",
			expected: "Idle Sleep",
		},
		{
			name:     "empty reason",
			rest:     "due to '':Using AC",
			expected: "",
		},
		{
			name:     "reason keeps inner spacing",
			rest:     "due to 'Software  Sleep pid=1':",
			expected: "Software  Sleep pid=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseLine(prefix + tt.rest)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.Reason)
		})
	}
}

func TestParseLineTabsAndExtraSpaces(t *testing.T) {
	record, err := ParseLine("  2025-10-29\t12:20:56   +0800\tSleep\tEntering Sleep state 7 secs")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, record.Duration)
	assert.Equal(t, 2025, record.StartTime.Year())
}
