// Package sqlite_test contains integration tests for SQLite repositories.
//
// Every test database is created through db.Open so tests run against the
// same goose migrations as production.
package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/example/jobtrack/internal/adapters/sqlite"
	"github.com/example/jobtrack/internal/db"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// setupTestDB creates a migrated database in a per-test temp directory.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedApplication inserts an application through the repository and returns its ID.
func seedApplication(t *testing.T, repo *sqlite.ApplicationRepository, company, status, dateApplied string) int64 {
	t.Helper()
	if status == "" {
		status = "Applied"
	}
	if dateApplied == "" {
		dateApplied = "2024-01-15"
	}
	id, err := repo.Create(context.Background(), &secondary.ApplicationRecord{
		Company:     company,
		Position:    "Engineer",
		DateApplied: dateApplied,
		Status:      status,
		Location:    "Berlin",
	})
	if err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return id
}
