package util

import (
	"fmt"
	"sync"
	"time"
)

// TimeProvider resolves "now" and day boundaries in the configured timezone.
// The clock can be replaced so report generation stays deterministic in tests.
type TimeProvider struct {
	location *time.Location
	clock    func() time.Time
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// NewTimeProvider creates a provider for timezone using the system clock.
func NewTimeProvider(timezone string) (*TimeProvider, error) {
	provider := &TimeProvider{clock: time.Now}
	if err := provider.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return provider, nil
}

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	provider, err := NewTimeProvider(timezone)
	if err != nil {
		return err
	}

	mu.Lock()
	globalTimeProvider = provider
	mu.Unlock()
	return nil
}

// GetTimeProvider returns the global time provider instance.
// If not initialized, it defaults to Local timezone.
func GetTimeProvider() *TimeProvider {
	mu.Lock()
	defer mu.Unlock()
	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.Local, clock: time.Now}
	}
	return globalTimeProvider
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return err
	}
	tp.mu.Lock()
	tp.location = loc
	tp.mu.Unlock()
	return nil
}

// LoadLocation resolves a timezone name, treating "" and "Local" as the system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
	}
	return loc, nil
}

// SetClock replaces the clock used by Now. A nil clock restores time.Now.
func (tp *TimeProvider) SetClock(clock func() time.Time) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if clock == nil {
		clock = time.Now
	}
	tp.clock = clock
}

// Location returns the configured timezone.
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	clock := tp.clock
	if clock == nil {
		clock = time.Now
	}
	return clock().In(tp.location)
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location)
}

