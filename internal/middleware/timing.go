package middleware

import (
	"log/slog"
	"time"

	"hero-quest/internal/bus"
)

// Timing wraps a bus handler and logs how long each delivery took, in
// microseconds, at debug level. Errors from next are returned unchanged.
func Timing[T any](name string, next bus.Handler[T], logger *slog.Logger) bus.Handler[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(notification T) error {
		start := time.Now()
		err := next(notification)

		micros := time.Since(start).Microseconds()
		if err != nil {
			logger.Debug("handler failed", "handler", name, "micros", micros, "error", err)
			return err
		}
		logger.Debug("handler finished", "handler", name, "micros", micros)
		return nil
	}
}
