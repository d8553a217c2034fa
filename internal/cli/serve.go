package cli

import (
	"log/slog"

	"pyxpay-admin/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard JSON API",
	Long: `Serve the dashboard API under /api/v1 on SERVER_HOST:SERVER_PORT.

The persisted session is restored in the background; authenticated routes wait for it briefly.
The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, slog.LevelInfo)
	if err != nil {
		return err
	}
	defer a.Close()

	return server.New(a).Run(cmd.Context())
}
