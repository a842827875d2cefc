package gametime

import "time"

// GameClock is a clock that moves forward as time is spent.
type GameClock struct {
	gate
	current time.Time
}

// Option configures a GameClock.
type Option func(*GameClock)

// WithStart sets the clock's starting timestamp.
func WithStart(start time.Time) Option {
	return func(c *GameClock) { c.current = start }
}

// NewGameClock creates an active clock starting at GameStart unless
// WithStart says otherwise.
func NewGameClock(opts ...Option) *GameClock {
	c := &GameClock{
		gate:    gate{active: true},
		current: GameStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentTime returns the clock's timestamp.
func (c *GameClock) CurrentTime() time.Time {
	return c.current
}

// Forward moves the clock ahead by d, whether or not it is paused.
func (c *GameClock) Forward(d time.Duration) error {
	c.current = c.current.Add(d)
	return nil
}

// Backward moves the clock back by d, whether or not it is paused.
func (c *GameClock) Backward(d time.Duration) error {
	c.current = c.current.Add(-d)
	return nil
}

var _ Clock = (*GameClock)(nil)
