package gametime

import (
	"fmt"
	"time"
)

// Timer counts down to TimerBase as time is spent.
//
// Forward consumes remaining time. When the remaining time reaches zero the
// timer pauses itself and publishes a single TimerComplete before Forward
// returns.
type Timer struct {
	gate
	current     time.Time
	duration    time.Duration
	completions CompletionPublisher
}

// NewTimer creates an active timer with d remaining.
// completions may be nil if nobody needs to hear about completion.
//
// A zero timer starts complete but active, so its first Forward returns
// ErrTimerComplete.
func NewTimer(d time.Duration, completions CompletionPublisher) (*Timer, error) {
	if d < 0 {
		return nil, fmt.Errorf("timer duration %s: %w", d, ErrInvalidDuration)
	}
	return &Timer{
		gate:        gate{active: true},
		current:     TimerBase.Add(d),
		duration:    d,
		completions: completions,
	}, nil
}

// CurrentTime returns the timer's position relative to TimerBase.
func (t *Timer) CurrentTime() time.Time {
	return t.current
}

// Duration returns the duration the timer was created with.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Complete reports whether the timer has reached its zero point.
func (t *Timer) Complete() bool {
	return !TimerBase.Before(t.current)
}

// Remaining returns the time left. It is negative once the timer overran.
func (t *Timer) Remaining() time.Duration {
	return t.current.Sub(TimerBase)
}

// Forward consumes d of the remaining time.
//
// Only the move that crosses the zero point pauses the timer and publishes.
// It fails without changing the timer when d is negative, or when the timer
// is complete but still active.
func (t *Timer) Forward(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("forward %s: %w", d, ErrInvalidDuration)
	}
	wasComplete := t.Complete()
	if t.active && wasComplete {
		return ErrTimerComplete
	}

	t.current = t.current.Add(-d)

	if wasComplete || !t.Complete() {
		return nil
	}

	t.Pause()
	if t.completions == nil {
		return nil
	}
	if err := t.completions.Publish(TimerComplete{Timer: t}); err != nil {
		return fmt.Errorf("publish timer complete: %w", err)
	}
	return nil
}

// Backward gives d back to the timer. It neither resumes the timer nor
// publishes anything.
func (t *Timer) Backward(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("backward %s: %w", d, ErrInvalidDuration)
	}
	t.current = t.current.Add(d)
	return nil
}

var _ Clock = (*Timer)(nil)
