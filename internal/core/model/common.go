package model

import "time"

// Log markers consumed from pmset output
const (
	SleepMarker   = "Entering Sleep state"
	ReasonMarker  = "due to '"
	DurationToken = "secs"
)

// UnknownReason is used when a sleep line carries no "due to '...'" segment.
const UnknownReason = "unknown"

// Day geometry
const (
	SecondsPerDay = 86400
	Day           = 24 * time.Hour
)

// Recognized window presets; any positive day count is accepted.
var WindowPresets = []int{1, 3, 7, 30}
