// Package mock provides test doubles for the integration suite.
package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. It stays frozen until moved with Set or Advance.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

// NewTime returns a clock frozen at start.
func NewTime(start time.Time) *Time {
	return &Time{current: start}
}

// SetCurrentTime moves the clock to currentTime.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
}

// Advance moves the clock forward by d.
func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = t.current.Add(d)
}

// Now returns the current mocked time.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
