package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"hero-quest/internal/gametime"
	"hero-quest/internal/service"
)

func init() {
	countdownCmd.Flags().IntVar(&flagMinutes, "minutes", 0, "timer minutes")
	countdownCmd.Flags().IntVar(&flagSeconds, "seconds", 0, "timer seconds")
	countdownCmd.Flags().DurationVar(&flagStep, "step", time.Second, "game time spent per tick")
	countdownCmd.Flags().StringVar(&flagName, "name", "", "timer name (generated when empty)")
	rootCmd.AddCommand(countdownCmd)
}

var (
	flagMinutes int
	flagSeconds int
	flagStep    time.Duration
	flagName    string
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Spend game time in steps until a timer completes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}
		d, err := gametime.Span(0, 0, flagMinutes, flagSeconds)
		if err != nil {
			return err
		}
		return countdown(ctx, svc, cmd.OutOrStdout(), flagName, d, flagStep)
	},
}

// countdown creates a timer and spends step at a time until it completes.
// A zero-length timer is complete before the first step, so there is
// nothing to count down.
func countdown(ctx context.Context, svc *service.TimeService, out io.Writer, name string, d, step time.Duration) error {
	if step <= 0 {
		return fmt.Errorf("step %s: %w", step, gametime.ErrInvalidDuration)
	}
	if d <= 0 {
		return fmt.Errorf("countdown %s: %w", d, gametime.ErrInvalidDuration)
	}

	snap, err := svc.CreateTimer(ctx, name, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "countdown %s %s\n", snap.Name, d)

	done := false
	unsubscribe := svc.OnTimerComplete(func(n gametime.TimerComplete) error {
		done = true
		fmt.Fprintf(out, "%s complete after %s\n", snap.Name, n.Timer.Duration())
		return nil
	})
	defer unsubscribe()

	for !done {
		if err := svc.SpendTime(ctx, step); err != nil {
			return err
		}
		if done {
			break
		}
		status, err := svc.Status(ctx, snap.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s remaining\n", status.Remaining)
	}

	fmt.Fprintf(out, "%s at %s\n", svc.DefaultName(), svc.Default().CurrentTime().Format(time.DateTime))
	return nil
}
