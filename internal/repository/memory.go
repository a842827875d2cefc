package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"hero-quest/internal/domain"
	"hero-quest/internal/gametime"
)

// MemoryRepository keeps tracked clocks in memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]*domain.Tracked
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[string]*domain.Tracked),
	}
}

// SaveIfNotExists saves the record only if its name is free.
func (r *MemoryRepository) SaveIfNotExists(ctx context.Context, record *domain.Tracked) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[record.Name]; exists {
		return domain.ErrNameExists
	}

	r.data[record.Name] = record.Clone()
	return nil
}

// FindByName retrieves a record by name.
func (r *MemoryRepository) FindByName(ctx context.Context, name string) (*domain.Tracked, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.data[name]
	if !exists {
		return nil, domain.ErrNotFound
	}

	return record.Clone(), nil
}

// FindByClock retrieves the record holding clock.
func (r *MemoryRepository) FindByClock(ctx context.Context, clock gametime.Clock) (*domain.Tracked, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.data {
		if record.Clock == clock {
			return record.Clone(), nil
		}
	}

	return nil, domain.ErrNotFound
}

// MarkCompleted stamps the record's completion time.
func (r *MemoryRepository) MarkCompleted(ctx context.Context, name string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.data[name]
	if !exists {
		return domain.ErrNotFound
	}

	record.CompletedAt = at
	return nil
}

// Delete removes the record and returns it.
func (r *MemoryRepository) Delete(ctx context.Context, name string) (*domain.Tracked, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.data[name]
	if !exists {
		return nil, domain.ErrNotFound
	}

	delete(r.data, name)
	return record, nil
}

// List returns every record ordered by creation time, then name.
func (r *MemoryRepository) List(ctx context.Context) ([]*domain.Tracked, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*domain.Tracked, 0, len(r.data))
	for _, record := range r.data {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].Name < records[j].Name
	})

	return records, nil
}

var _ Repository = (*MemoryRepository)(nil)
