package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pyxpay-admin/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 50 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, config.DatabaseDriverPostgres)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, config.DatabaseDriverPostgres, runner.driver)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
}

func TestNewMigrationRunner_DefaultsToSQLite(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, "")

	assert.Equal(t, config.DatabaseDriverSQLite, runner.driver)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, config.DatabaseDriverPostgres).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	shortRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, config.DatabaseDriverPostgres).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	shortRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = NewMigrationRunner(db, config.DatabaseDriverPostgres).WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DatabaseDriverPostgres,
		migrationsPath: "/nonexistent/path/to/migrations",
	}

	assert.NoError(t, runner.RunMigrations())
}

func TestRunMigrations_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	runner := &MigrationRunner{
		db:             db,
		driver:         "oracle",
		migrationsPath: tempDir,
	}

	err = runner.RunMigrations()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration driver")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(db, config.DatabaseDriverPostgres))
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "true")
	shortRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(db, config.DatabaseDriverPostgres)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DatabaseDriverSQLite,
		migrationsPath: "/nonexistent/migrations",
	}

	_, _, err = runner.GetMigrationStatus()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestSetupTestDB_CreatesTables(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable("local_state"))
	assert.True(t, db.Migrator().HasTable("saved_api_keys"))
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestNew_RejectsUnknownDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNew_OpensSQLiteFile(t *testing.T) {
	path := t.TempDir() + string(os.PathSeparator) + "pyxpay.db"

	db, err := New(&config.DatabaseConfig{
		Driver:         config.DatabaseDriverSQLite,
		Path:           path,
		MaxConnections: 1,
		MaxIdleConns:   1,
	})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	assert.True(t, db.Migrator().HasTable("saved_api_keys"))
}

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(&config.StoreConfig{RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	assert.True(t, mr.Exists("k"))
}

func TestConnectRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := ConnectRedis(&config.StoreConfig{RedisAddr: addr})

	assert.Error(t, err)
}
