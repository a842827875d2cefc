// Package gametime tracks in-game time.
//
// A GameClock counts up from a starting timestamp and a Timer counts down to a
// fixed zero point. Both advance when TimeSpent notifications are published to
// a topic they are attached to, unless paused.
package gametime

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// GameStart is the default starting point of a GameClock.
	GameStart = time.Date(1234, time.March, 12, 4, 53, 0, 0, time.UTC)

	// TimerBase is the zero point every Timer counts down to.
	TimerBase = time.Date(5000, time.January, 1, 0, 0, 0, 0, time.UTC)
)

var (
	// ErrTimerComplete indicates an active timer was moved forward after it
	// completed. Completed timers must be paused.
	ErrTimerComplete = errors.New("completed timers should be deactivated")

	// ErrInvalidDuration indicates a negative duration given to a timer, or
	// calendar parts too large to represent.
	ErrInvalidDuration = errors.New("invalid duration")
)

// Clock is the contract shared by count-up clocks and count-down timers.
type Clock interface {
	// Forward applies time spent.
	Forward(d time.Duration) error
	// Backward undoes time spent.
	Backward(d time.Duration) error
	// Pause stops the clock from reacting to TimeSpent notifications.
	Pause()
	// Resume re-enables reaction to TimeSpent notifications.
	Resume()
	// Active reports whether TimeSpent notifications are applied.
	Active() bool
	// CurrentTime returns the clock's timestamp.
	CurrentTime() time.Time
}

// Span builds a duration from its calendar parts. Parts may be negative.
// It fails with ErrInvalidDuration when the total does not fit in a
// time.Duration (roughly 292 years).
func Span(days, hours, minutes, seconds int) (time.Duration, error) {
	parts := []struct {
		n    int
		unit time.Duration
	}{
		{days, 24 * time.Hour},
		{hours, time.Hour},
		{minutes, time.Minute},
		{seconds, time.Second},
	}

	var total time.Duration
	for _, p := range parts {
		v, ok := mulDuration(p.n, p.unit)
		if ok {
			total, ok = addDuration(total, v)
		}
		if !ok {
			return 0, fmt.Errorf("span %dd %dh %dm %ds out of range: %w", days, hours, minutes, seconds, ErrInvalidDuration)
		}
	}
	return total, nil
}

func mulDuration(n int, unit time.Duration) (time.Duration, bool) {
	limit := int64(math.MaxInt64 / unit)
	if int64(n) > limit || int64(n) < -limit {
		return 0, false
	}
	return time.Duration(n) * unit, true
}

func addDuration(a, b time.Duration) (time.Duration, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// gate holds the pause state shared by every Clock implementation.
type gate struct {
	active bool
}

// Pause stops bus-driven advancement.
func (g *gate) Pause() { g.active = false }

// Resume restarts bus-driven advancement.
func (g *gate) Resume() { g.active = true }

// Active reports whether bus-driven advancement is applied.
func (g *gate) Active() bool { return g.active }
