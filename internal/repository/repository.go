package repository

import (
	"context"
	"time"

	"hero-quest/internal/domain"
	"hero-quest/internal/gametime"
)

// Repository defines the contract for tracking named clocks.
// All implementations must be safe for concurrent access.
type Repository interface {
	// SaveIfNotExists saves the record only if its name is free.
	// Returns domain.ErrNameExists if taken.
	SaveIfNotExists(ctx context.Context, record *domain.Tracked) error

	// FindByName retrieves a record by name.
	// Returns domain.ErrNotFound if no clock has the name.
	FindByName(ctx context.Context, name string) (*domain.Tracked, error)

	// FindByClock retrieves the record holding clock.
	// Returns domain.ErrNotFound if the clock is not tracked.
	FindByClock(ctx context.Context, clock gametime.Clock) (*domain.Tracked, error)

	// MarkCompleted stamps the record's completion time.
	// Returns domain.ErrNotFound if no clock has the name.
	MarkCompleted(ctx context.Context, name string, at time.Time) error

	// Delete removes the record and returns it.
	// Returns domain.ErrNotFound if no clock has the name.
	Delete(ctx context.Context, name string) (*domain.Tracked, error)

	// List returns every record ordered by creation time, then name.
	List(ctx context.Context) ([]*domain.Tracked, error)
}
