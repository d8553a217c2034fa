package cli

import (
	"fmt"

	"pyxpay-admin/internal/config"
	"pyxpay-admin/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect the local database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations from db/migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			if err := runner.WaitForDatabase(); err != nil {
				return err
			}
			if err := runner.RunMigrations(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current migration version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// withMigrationRunner opens the database without the automatic migration on startup
func withMigrationRunner(fn func(runner *database.MigrationRunner) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	return fn(database.NewMigrationRunner(sqlDB, cfg.Database.Driver))
}
