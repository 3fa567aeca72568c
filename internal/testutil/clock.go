package testutil

import (
	"sync"
	"time"
)

// DefaultNow is the instant a FixedClock starts at when none is given.
var DefaultNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// FixedClock is a settable wall clock for tests.
//
// Pass its Now method wherever a func() time.Time is accepted
// (validate.Rules.Now, auth.WithNow) so date checks and session
// timestamps are reproducible.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at t. A zero t means DefaultNow.
func NewFixedClock(t time.Time) *FixedClock {
	if t.IsZero() {
		t = DefaultNow
	}
	return &FixedClock{now: t}
}

// Now returns the frozen instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
