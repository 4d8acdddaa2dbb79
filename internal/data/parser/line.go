package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
)

// dateLayout matches "2025-10-29 12:20:56 +0800".
const dateLayout = "2006-01-02 15:04:05 -0700"

var (
	ErrTooFewTokens = errors.New("too few tokens for a date")
	ErrInvalidDate  = errors.New("invalid date")
)

// ParseLine converts one pmset log line into a SleepRecord.
// The line is expected to already contain model.SleepMarker; ParseLine does not check it.
// The returned record has no ID assigned.
func ParseLine(line string) (model.SleepRecord, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return model.SleepRecord{}, ErrTooFewTokens
	}

	dateStr := tokens[0] + " " + tokens[1] + " " + tokens[2]
	start, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return model.SleepRecord{}, ErrInvalidDate
	}

	return model.SleepRecord{
		StartTime: start,
		Duration:  extractDuration(tokens),
		Reason:    extractReason(line),
	}, nil
}

// extractDuration reads "<N> secs" using the last "secs" token on the line.
func extractDuration(tokens []string) time.Duration {
	idx := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i] == model.DurationToken {
			idx = i
			break
		}
	}
	if idx < 1 {
		return 0
	}

	secs, err := strconv.ParseFloat(tokens[idx-1], 64)
	if err != nil || secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0
	}
	// Values past the time.Duration range are treated as unparsable.
	nanos := math.Round(secs * float64(time.Second))
	if nanos >= float64(math.MaxInt64) {
		return 0
	}
	return time.Duration(nanos)
}

// extractReason returns the text between "due to '" and the next quote.
func extractReason(line string) string {
	start := strings.Index(line, model.ReasonMarker)
	if start < 0 {
		return model.UnknownReason
	}
	rest := line[start+len(model.ReasonMarker):]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return model.UnknownReason
	}
	return rest[:end]
}
