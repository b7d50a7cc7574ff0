package animation

import "time"

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock with its monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used for deterministic stepping.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock stopped at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Set jumps to t
func (c *ManualClock) Set(t time.Time) { c.now = t }

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
