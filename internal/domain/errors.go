package domain

import "errors"

var (
	// ErrNotFound indicates no clock is tracked under the name.
	ErrNotFound = errors.New("clock not found")

	// ErrNameExists indicates the name is already tracking a clock.
	ErrNameExists = errors.New("clock name already in use")

	// ErrNotTimer indicates a timer-only operation on a count-up clock.
	ErrNotTimer = errors.New("clock is not a timer")

	// ErrDefaultClock indicates an operation the default clock does not allow.
	ErrDefaultClock = errors.New("default clock cannot be removed")
)
