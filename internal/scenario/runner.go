package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"hero-quest/internal/domain"
)

// ErrUnexpected reports a step whose outcome did not match expect_error.
var ErrUnexpected = errors.New("unexpected step outcome")

// Service is the part of the time service a scenario drives.
type Service interface {
	CreateClock(ctx context.Context, name string, start time.Time) (domain.Snapshot, error)
	CreateTimer(ctx context.Context, name string, d time.Duration) (domain.Snapshot, error)
	SpendTime(ctx context.Context, d time.Duration) error
	Pause(ctx context.Context, name string) error
	Resume(ctx context.Context, name string) error
	Forward(ctx context.Context, name string, d time.Duration) error
	Backward(ctx context.Context, name string, d time.Duration) error
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.Snapshot, error)
}

// Runner executes scenarios and reports each step to out.
type Runner struct {
	svc    Service
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards log output.
func NewRunner(svc Service, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{svc: svc, out: out, logger: logger}
}

// Run executes every step in order and prints a final status table.
// It stops at the first step whose outcome differs from its expect_error.
func (r *Runner) Run(ctx context.Context, sc Scenario) error {
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		detail, err := r.apply(ctx, step)
		n := i + 1
		switch {
		case err != nil && step.ExpectError:
			r.logger.Debug("step failed as expected", "step", n, "action", step.Action, "error", err)
			fmt.Fprintf(r.out, "%3d  %-8s %s: expected error: %v\n", n, step.Action, step.Name, err)
		case err != nil:
			return fmt.Errorf("step %d (%s): %w", n, step.Action, err)
		case step.ExpectError:
			return fmt.Errorf("step %d (%s): %w: error expected", n, step.Action, ErrUnexpected)
		default:
			fmt.Fprintf(r.out, "%3d  %-8s %s\n", n, step.Action, detail)
		}
	}

	return r.PrintStatus(ctx)
}

func (r *Runner) apply(ctx context.Context, step Step) (string, error) {
	d, err := step.Duration()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}

	switch step.Action {
	case ActionClock:
		start, err := step.StartTime()
		if err != nil {
			return "", err
		}
		snap, err := r.svc.CreateClock(ctx, step.Name, start)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s at %s", snap.Name, snap.CurrentTime.Format(time.DateTime)), nil
	case ActionTimer:
		snap, err := r.svc.CreateTimer(ctx, step.Name, d)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s for %s", snap.Name, snap.Remaining), nil
	case ActionSpend:
		return d.String(), r.svc.SpendTime(ctx, d)
	case ActionPause:
		return step.Name, r.svc.Pause(ctx, step.Name)
	case ActionResume:
		return step.Name, r.svc.Resume(ctx, step.Name)
	case ActionForward:
		return fmt.Sprintf("%s by %s", step.Name, d), r.svc.Forward(ctx, step.Name, d)
	case ActionBackward:
		return fmt.Sprintf("%s by %s", step.Name, d), r.svc.Backward(ctx, step.Name, d)
	case ActionRemove:
		return step.Name, r.svc.Remove(ctx, step.Name)
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrInvalidStep, step.Action)
}

// PrintStatus writes a table of every tracked clock.
func (r *Runner) PrintStatus(ctx context.Context) error {
	snapshots, err := r.svc.List(ctx)
	if err != nil {
		return err
	}
	return WriteTable(r.out, snapshots)
}

// WriteTable writes snapshots as an aligned table.
func WriteTable(w io.Writer, snapshots []domain.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKIND\tTIME\tSTATE\tREMAINING")
	for _, s := range snapshots {
		remaining := "-"
		if s.Kind == domain.KindTimer {
			remaining = s.Remaining.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ShortID(), s.Name, s.Kind, timeColumn(s), s.State(), remaining)
	}
	return tw.Flush()
}

func timeColumn(s domain.Snapshot) string {
	if s.Kind == domain.KindTimer {
		return "-"
	}
	return s.CurrentTime.Format(time.DateTime)
}
