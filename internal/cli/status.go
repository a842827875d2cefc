package cli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/cobra"

	"hero-quest/internal/domain"
	"hero-quest/internal/scenario"
)

func init() { rootCmd.AddCommand(statusCmd) }

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured default clock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}
		snapshots, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), snapshots)
		}
		return scenario.WriteTable(cmd.OutOrStdout(), snapshots)
	},
}

type clockStatus struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Time      string `json:"time,omitempty"`
	State     string `json:"state"`
	Remaining string `json:"remaining,omitempty"`
}

// writeJSON encodes one object per snapshot, one per line.
func writeJSON(w io.Writer, snapshots []domain.Snapshot) error {
	enc := json.NewEncoder(w)
	for _, s := range snapshots {
		status := clockStatus{
			ID:    s.ID,
			Name:  s.Name,
			Kind:  string(s.Kind),
			State: s.State(),
		}
		if s.Kind == domain.KindTimer {
			status.Remaining = s.Remaining.String()
		} else {
			status.Time = s.CurrentTime.Format(time.RFC3339)
		}
		if err := enc.Encode(status); err != nil {
			return err
		}
	}
	return nil
}
