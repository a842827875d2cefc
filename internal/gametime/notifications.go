package gametime

import (
	"log/slog"
	"time"

	"hero-quest/internal/bus"
)

// TimeSpent reports that an amount of in-game time has passed.
type TimeSpent struct {
	Duration time.Duration
}

// NewTimeSpent builds a TimeSpent notification from calendar parts.
func NewTimeSpent(days, hours, minutes, seconds int) (TimeSpent, error) {
	d, err := Span(days, hours, minutes, seconds)
	if err != nil {
		return TimeSpent{}, err
	}
	return TimeSpent{Duration: d}, nil
}

// TimerComplete is published once when a Timer reaches its zero point.
type TimerComplete struct {
	Timer *Timer
}

// CompletionPublisher receives TimerComplete notifications from timers.
type CompletionPublisher interface {
	Publish(notification TimerComplete) error
}

// Attach subscribes c to topic. Active clocks move forward by each
// notification's duration; paused clocks ignore it.
// The returned function detaches the clock.
func Attach(topic *bus.Topic[TimeSpent], c Clock, logger *slog.Logger) (detach func()) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return topic.Subscribe(func(n TimeSpent) error {
		if !c.Active() {
			logger.Debug("skipping paused clock", "current_time", c.CurrentTime(), "duration", n.Duration)
			return nil
		}
		return c.Forward(n.Duration)
	})
}
