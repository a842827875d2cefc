package domain_test

import (
	"testing"
	"time"

	"hero-quest/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_ReturnsCurrentTime(t *testing.T) {
	clock := domain.SystemClock{}

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestFrozenClock_DoesNotMoveOnItsOwn(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	clock := domain.NewFrozenClock(fixed)

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now())
}

func TestFrozenClock_AdvanceAndSet(t *testing.T) {
	clock := domain.NewFrozenClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	clock.Advance(time.Hour)
	assert.Equal(t, time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC), clock.Now())

	later := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestFrozenClock_StepEach(t *testing.T) {
	start := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	clock := domain.NewFrozenClock(start)

	clock.StepEach(time.Second)
	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(time.Second), clock.Now())

	clock.StepEach(0)
	assert.Equal(t, start.Add(2*time.Second), clock.Now())
	assert.Equal(t, start.Add(2*time.Second), clock.Now())
}
