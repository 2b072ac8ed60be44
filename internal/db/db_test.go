package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "jobtrack.db")

	database, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	version, err := Version(ctx, database)
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected schema version 2, got %d", version)
	}

	for _, table := range []string{"applications", "application_history"} {
		var count int
		err := database.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&count)
		if err != nil {
			t.Fatalf("query sqlite_master: %v", err)
		}
		if count != 1 {
			t.Errorf("table %s missing", table)
		}
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jobtrack.db")

	first, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	first.Close()

	second, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	second.Close()
}

func TestSchema_RejectsInvalidStatus(t *testing.T) {
	ctx := context.Background()
	database, err := Open(ctx, filepath.Join(t.TempDir(), "jobtrack.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	_, err = database.ExecContext(ctx,
		"INSERT INTO applications (company, position, date_applied, status) VALUES ('Acme', 'Dev', '2024-01-01', 'Hired')",
	)
	if err == nil {
		t.Fatal("expected CHECK constraint failure for unknown status")
	}

	_, err = database.ExecContext(ctx,
		"INSERT INTO applications (company, position, date_applied, status, salary_offered) VALUES ('Acme', 'Dev', '2024-01-01', 'Applied', -5)",
	)
	if err == nil {
		t.Fatal("expected CHECK constraint failure for negative salary")
	}
}
