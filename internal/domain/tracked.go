package domain

import (
	"time"

	"hero-quest/internal/gametime"
)

// Kind distinguishes count-up clocks from count-down timers.
type Kind string

const (
	KindClock Kind = "clock"
	KindTimer Kind = "timer"
)

// Tracked is a clock registered under a name.
type Tracked struct {
	ID          string
	Name        string
	Kind        Kind
	Clock       gametime.Clock
	CreatedAt   time.Time
	CompletedAt time.Time

	// Detach removes the clock's TimeSpent subscription. May be nil.
	Detach func()
}

// Timer returns the underlying timer, or ErrNotTimer.
func (t *Tracked) Timer() (*gametime.Timer, error) {
	timer, ok := t.Clock.(*gametime.Timer)
	if !ok {
		return nil, ErrNotTimer
	}
	return timer, nil
}

// Snapshot captures the current state of the tracked clock.
func (t *Tracked) Snapshot() Snapshot {
	s := Snapshot{
		ID:          t.ID,
		Name:        t.Name,
		Kind:        t.Kind,
		CurrentTime: t.Clock.CurrentTime(),
		Active:      t.Clock.Active(),
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
	if timer, err := t.Timer(); err == nil {
		s.Complete = timer.Complete()
		s.Remaining = timer.Remaining()
	}
	return s
}

// Clone returns a copy of the record sharing the same clock.
func (t *Tracked) Clone() *Tracked {
	c := *t
	return &c
}

// Snapshot is a read-only view of a tracked clock.
// Complete and Remaining are only set for timers.
type Snapshot struct {
	ID          string
	Name        string
	Kind        Kind
	CurrentTime time.Time
	Active      bool
	Complete    bool
	Remaining   time.Duration
	CreatedAt   time.Time
	CompletedAt time.Time
}

// State summarises the snapshot as complete, running or paused.
func (s Snapshot) State() string {
	switch {
	case s.Complete:
		return "complete"
	case s.Active:
		return "running"
	default:
		return "paused"
	}
}

// ShortID returns the first eight characters of the ID.
func (s Snapshot) ShortID() string {
	if len(s.ID) <= 8 {
		return s.ID
	}
	return s.ID[:8]
}

// EntryKind labels journal entries.
type EntryKind string

const (
	EntrySpent     EntryKind = "spent"
	EntryCompleted EntryKind = "completed"
	EntryPaused    EntryKind = "paused"
	EntryResumed   EntryKind = "resumed"
	EntryForward   EntryKind = "forward"
	EntryBackward  EntryKind = "backward"
)

// JournalEntry records something that happened to game time.
// Name is empty for TimeSpent entries, which apply to every clock.
type JournalEntry struct {
	At       time.Time
	Kind     EntryKind
	Name     string
	Duration time.Duration
}
