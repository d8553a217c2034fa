package database

import (
	"testing"

	"pyxpay-admin/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DatabaseDriverSQLite,
			Path:           ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"local_state", "saved_api_keys"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
