package domain

import "time"

// WallClock provides real-world time for stamping records and journal entries.
// Game time never comes from here.
type WallClock interface {
	Now() time.Time
}

// SystemClock implements WallClock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock is a WallClock for tests. It moves only when told to, or by a
// fixed step after each reading once StepEach is set.
type FrozenClock struct {
	current time.Time
	step    time.Duration
}

// NewFrozenClock creates a FrozenClock set to t.
func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{current: t}
}

// Now returns the frozen time, then applies the step if one is set.
func (c *FrozenClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// StepEach makes every later Now call advance the clock by d, so records
// and journal entries stamped in sequence get distinct times. Zero stops it.
func (c *FrozenClock) StepEach(d time.Duration) {
	c.step = d
}

// Advance moves the frozen time forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Set replaces the frozen time.
func (c *FrozenClock) Set(t time.Time) {
	c.current = t
}
