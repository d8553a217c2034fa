package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pyxpay-admin/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations for one database driver
type MigrationRunner struct {
	db             *sql.DB
	driver         string
	migrationsPath string
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, driver string) *MigrationRunner {
	if driver == "" {
		driver = config.DatabaseDriverSQLite
	}
	return &MigrationRunner{
		db:             db,
		driver:         driver,
		migrationsPath: migrationsPath,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) databaseDriver() (database.Driver, string, error) {
	switch mr.driver {
	case config.DatabaseDriverPostgres:
		driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create postgres driver: %w", err)
		}
		return driver, "postgres", nil
	case config.DatabaseDriverSQLite:
		driver, err := sqlite3.WithInstance(mr.db, &sqlite3.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create sqlite3 driver: %w", err)
		}
		return driver, "sqlite3", nil
	default:
		return nil, "", fmt.Errorf("unsupported migration driver %q", mr.driver)
	}
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, name, err := mr.databaseDriver()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), name, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Warning: database is in dirty state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("No new migrations to apply (version %d)", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	log.Printf("Successfully applied migrations. New version: %d", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled runs migrations unless AUTO_MIGRATE is false
func RunMigrationsIfEnabled(db *sql.DB, driver string) error {
	if !config.AutoMigrateEnabled() {
		log.Println("Auto-migration disabled (AUTO_MIGRATE=false)")
		return nil
	}

	runner := NewMigrationRunner(db, driver)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	return nil
}
