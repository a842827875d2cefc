package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"hero-quest/internal/config"
	"hero-quest/internal/domain"
	"hero-quest/internal/naming"
	"hero-quest/internal/repository"
	"hero-quest/internal/service"
)

var (
	rootCmd = &cobra.Command{
		Use:   "heroquest",
		Short: "Game clocks and countdown timers for hero quests",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flagJSON    bool
	flagVerbose bool
	flagConfig  string

	appFs afero.Fs = afero.NewOsFs()
	cfg            = config.Default()
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "enable JSON log output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "heroquest.yaml", "path to the YAML config file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func setup() error {
	loaded, err := config.Load(appFs, flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	slog.SetDefault(slog.New(newHandler(cfg, flagJSON, flagVerbose)))
	slog.Debug("logging initialized", "config", flagConfig)
	return nil
}

func newHandler(c config.Config, json, verbose bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: chooseLevel(c.LogLevel, verbose)}
	if json || c.LogFormat == config.FormatJSON {
		return slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.NewTextHandler(os.Stderr, opts)
}

func chooseLevel(configured slog.Level, verbose bool) slog.Leveler {
	if verbose {
		return slog.LevelDebug
	}
	return configured
}

func newService(ctx context.Context) (*service.TimeService, error) {
	return service.NewTimeService(
		ctx,
		repository.NewMemoryRepository(),
		naming.NewGenerator(),
		domain.SystemClock{},
		slog.Default(),
		service.Options{DefaultName: cfg.DefaultClock, Start: cfg.Start},
	)
}
