package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	outputFormat string
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "pyxpay",
		Short: "Pyx Pay operator dashboard",
		Long: `pyxpay administers a Pyx Pay account: wallet balance, transactions, cashouts and quotes.

Run "pyxpay serve" for the dashboard JSON API, or use the commands below directly.
The session, saved keys, filters and column preferences are shared by both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				log.SetOutput(io.Discard)
			}
			return validateOutputFormat(outputFormat)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatTable, "Output format: table, json or yaml")
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute(version string) error {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(cashoutCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
