package cli

import (
	"log/slog"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/config"

	"github.com/spf13/cobra"
)

// newLogger logs at level, or at debug with --verbose
func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openApp wires the services from the environment configuration
func openApp(cmd *cobra.Command, level slog.Level) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, newLogger(cmd, level))
}

// withApp runs fn against a fully loaded application and closes it afterwards
func withApp(fn func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, slog.LevelWarn)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := a.Close(); closeErr != nil {
				a.Logger.Warn("failed to close application", "error", closeErr)
			}
		}()

		if err := a.Load(cmd.Context()); err != nil {
			return err
		}
		return fn(cmd, args, a)
	}
}
