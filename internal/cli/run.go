package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"hero-quest/internal/scenario"
)

func init() { rootCmd.AddCommand(runCmd) }

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Replay a scenario file against a fresh set of clocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sc, err := scenario.Load(appFs, args[0])
		if err != nil {
			return err
		}
		svc, err := newService(ctx)
		if err != nil {
			return err
		}
		slog.Debug("running scenario", "file", args[0], "steps", len(sc.Steps))
		return scenario.NewRunner(svc, cmd.OutOrStdout(), slog.Default()).Run(ctx, sc)
	},
}
