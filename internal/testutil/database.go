// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"finplanner/internal/database"
)

// NewTestManager opens a private in-memory store migrated to the latest version.
func NewTestManager(t *testing.T) *database.Manager {
	t.Helper()

	manager, err := database.NewManager(database.NewMemoryConfig(fmt.Sprintf("testdb%d", nextID())))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return manager
}

// SetupTestDB creates an in-memory SQLite database with every migration applied.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewTestManager(t).DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
