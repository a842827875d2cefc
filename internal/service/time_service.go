package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hero-quest/internal/bus"
	"hero-quest/internal/domain"
	"hero-quest/internal/gametime"
	"hero-quest/internal/middleware"
	"hero-quest/internal/repository"
)

const (
	maxRetries         = 5
	defaultClockName   = "world"
	timeSpentTopic     = "time_spent"
	timerCompleteTopic = "timer_complete"
)

// NameGenerator produces names for clocks created without one.
type NameGenerator interface {
	Generate(kind domain.Kind) (string, error)
}

// Options configures a TimeService.
type Options struct {
	// DefaultName is the name of the default clock. Empty means "world".
	DefaultName string
	// Start is the default clock's starting time. Zero means gametime.GameStart.
	Start time.Time
}

// TimeService owns the notification topics, the default clock and every
// clock created through it.
//
// TimeService is not safe for concurrent use.
type TimeService struct {
	repo   repository.Repository
	names  NameGenerator
	wall   domain.WallClock
	logger *slog.Logger

	spent       *bus.Topic[gametime.TimeSpent]
	completions *bus.Topic[gametime.TimerComplete]

	defaultName  string
	defaultClock *gametime.GameClock

	journal []domain.JournalEntry
}

// NewTimeService creates the service and registers its default clock.
func NewTimeService(
	ctx context.Context,
	repo repository.Repository,
	names NameGenerator,
	wall domain.WallClock,
	logger *slog.Logger,
	opts Options,
) (*TimeService, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.DefaultName == "" {
		opts.DefaultName = defaultClockName
	}
	if opts.Start.IsZero() {
		opts.Start = gametime.GameStart
	}

	s := &TimeService{
		repo:        repo,
		names:       names,
		wall:        wall,
		logger:      logger,
		spent:       bus.NewTopic[gametime.TimeSpent](timeSpentTopic, logger),
		completions: bus.NewTopic[gametime.TimerComplete](timerCompleteTopic, logger),
		defaultName: opts.DefaultName,
	}
	s.completions.Subscribe(middleware.Timing("record completion", s.recordCompletion, logger))

	s.defaultClock = gametime.NewGameClock(gametime.WithStart(opts.Start))
	if _, err := s.track(ctx, opts.DefaultName, domain.KindClock, s.defaultClock); err != nil {
		return nil, fmt.Errorf("registering default clock: %w", err)
	}

	return s, nil
}

// Default returns the process-wide default clock.
func (s *TimeService) Default() *gametime.GameClock {
	return s.defaultClock
}

// DefaultName returns the name the default clock is tracked under.
func (s *TimeService) DefaultName() string {
	return s.defaultName
}

// CreateClock starts tracking a new count-up clock.
// An empty name is generated; a zero start means gametime.GameStart.
func (s *TimeService) CreateClock(ctx context.Context, name string, start time.Time) (domain.Snapshot, error) {
	if start.IsZero() {
		start = gametime.GameStart
	}
	record, err := s.track(ctx, name, domain.KindClock, gametime.NewGameClock(gametime.WithStart(start)))
	if err != nil {
		return domain.Snapshot{}, err
	}
	return record.Snapshot(), nil
}

// CreateTimer starts tracking a new timer with d remaining.
func (s *TimeService) CreateTimer(ctx context.Context, name string, d time.Duration) (domain.Snapshot, error) {
	timer, err := gametime.NewTimer(d, s.completions)
	if err != nil {
		return domain.Snapshot{}, err
	}
	record, err := s.track(ctx, name, domain.KindTimer, timer)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return record.Snapshot(), nil
}

// track attaches clock to the TimeSpent topic and saves it.
// Generated names are retried on collision; explicit names are not.
func (s *TimeService) track(ctx context.Context, name string, kind domain.Kind, clock gametime.Clock) (*domain.Tracked, error) {
	generated := name == ""
	attempts := 1
	if generated {
		attempts = maxRetries
	}

	record := &domain.Tracked{
		ID:        uuid.New().String(),
		Kind:      kind,
		Clock:     clock,
		CreatedAt: s.wall.Now(),
	}
	record.Detach = gametime.Attach(s.spent, clock, s.logger.With("kind", kind))

	for attempt := 0; attempt < attempts; attempt++ {
		record.Name = name
		if generated {
			generatedName, err := s.names.Generate(kind)
			if err != nil {
				record.Detach()
				return nil, fmt.Errorf("naming %s: %w", kind, err)
			}
			record.Name = generatedName
		}

		err := s.repo.SaveIfNotExists(ctx, record)
		if err == nil {
			s.logger.Debug("tracking clock", "name", record.Name, "kind", kind)
			return record, nil
		}
		if !errors.Is(err, domain.ErrNameExists) {
			record.Detach()
			return nil, fmt.Errorf("saving %s %q: %w", kind, record.Name, err)
		}
	}

	record.Detach()
	if generated {
		return nil, errors.New("max retries exceeded: unable to generate unique name")
	}
	return nil, fmt.Errorf("%s %q: %w", kind, name, domain.ErrNameExists)
}

// SpendTime publishes a TimeSpent notification to every tracked clock.
// Errors from individual clocks are joined; the rest still receive the time.
func (s *TimeService) SpendTime(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.record(domain.EntrySpent, "", d)
	if err := s.spent.Publish(gametime.TimeSpent{Duration: d}); err != nil {
		return fmt.Errorf("spending %s: %w", d, err)
	}
	return nil
}

// Pause stops the named clock from following spent time.
func (s *TimeService) Pause(ctx context.Context, name string) error {
	record, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("pause %q: %w", name, err)
	}
	record.Clock.Pause()
	s.record(domain.EntryPaused, name, 0)
	return nil
}

// Resume makes the named clock follow spent time again.
func (s *TimeService) Resume(ctx context.Context, name string) error {
	record, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("resume %q: %w", name, err)
	}
	record.Clock.Resume()
	s.record(domain.EntryResumed, name, 0)
	return nil
}

// Forward moves only the named clock forward, ignoring its pause state.
// Like SpendTime, the move is journaled before it is applied, so a
// completion it causes is journaled after it.
func (s *TimeService) Forward(ctx context.Context, name string, d time.Duration) error {
	record, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("forward %q: %w", name, err)
	}
	s.record(domain.EntryForward, name, d)
	if err := record.Clock.Forward(d); err != nil {
		return fmt.Errorf("forward %q: %w", name, err)
	}
	return nil
}

// Backward moves only the named clock backward, ignoring its pause state.
func (s *TimeService) Backward(ctx context.Context, name string, d time.Duration) error {
	record, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("backward %q: %w", name, err)
	}
	s.record(domain.EntryBackward, name, d)
	if err := record.Clock.Backward(d); err != nil {
		return fmt.Errorf("backward %q: %w", name, err)
	}
	return nil
}

// Status returns a snapshot of the named clock.
func (s *TimeService) Status(ctx context.Context, name string) (domain.Snapshot, error) {
	record, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("status %q: %w", name, err)
	}
	return record.Snapshot(), nil
}

// List returns snapshots of every tracked clock, oldest first.
func (s *TimeService) List(ctx context.Context) ([]domain.Snapshot, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshots := make([]domain.Snapshot, 0, len(records))
	for _, r := range records {
		snapshots = append(snapshots, r.Snapshot())
	}
	return snapshots, nil
}

// Remove stops tracking the named clock and detaches it from spent time.
// The default clock cannot be removed.
func (s *TimeService) Remove(ctx context.Context, name string) error {
	if name == s.defaultName {
		return domain.ErrDefaultClock
	}
	record, err := s.repo.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("remove %q: %w", name, err)
	}
	if record.Detach != nil {
		record.Detach()
	}
	s.logger.Debug("stopped tracking clock", "name", name)
	return nil
}

// OnTimerComplete subscribes handler to timer completions.
// Handlers run synchronously inside the call that completed the timer.
func (s *TimeService) OnTimerComplete(handler bus.Handler[gametime.TimerComplete]) (unsubscribe func()) {
	return s.completions.Subscribe(handler)
}

// Journal returns a copy of everything recorded so far.
func (s *TimeService) Journal() []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(s.journal))
	copy(out, s.journal)
	return out
}

func (s *TimeService) record(kind domain.EntryKind, name string, d time.Duration) {
	s.journal = append(s.journal, domain.JournalEntry{
		At:       s.wall.Now(),
		Kind:     kind,
		Name:     name,
		Duration: d,
	})
}

func (s *TimeService) recordCompletion(n gametime.TimerComplete) error {
	// Completion handlers have no caller context.
	ctx := context.Background()

	record, err := s.repo.FindByClock(ctx, n.Timer)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Timer built outside the service, or removed.
			return nil
		}
		return err
	}

	now := s.wall.Now()
	if err := s.repo.MarkCompleted(ctx, record.Name, now); err != nil {
		return err
	}
	s.record(domain.EntryCompleted, record.Name, n.Timer.Duration())
	s.logger.Info("timer complete", "name", record.Name, "duration", n.Timer.Duration(), "overrun", -n.Timer.Remaining())
	return nil
}
