package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/jobtrack/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create appends a history entry.
func (r *HistoryRepository) Create(ctx context.Context, entry *secondary.HistoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO application_history (id, application_id, actor, action, field_name, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.ApplicationID,
		nullString(entry.Actor),
		entry.Action,
		nullString(entry.FieldName),
		nullString(entry.OldValue),
		nullString(entry.NewValue),
	)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}
	return nil
}

// ListByApplication returns the entries of one application, oldest first.
// Entries written within the same second keep insertion order via rowid.
func (r *HistoryRepository) ListByApplication(ctx context.Context, applicationID int64) ([]*secondary.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, application_id, actor, action, field_name, old_value, new_value, created_at
		FROM application_history WHERE application_id = ? ORDER BY created_at ASC, rowid ASC`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.HistoryRecord
	for rows.Next() {
		var (
			actor, fieldName, oldValue, newValue sql.NullString
			createdAt                            time.Time
		)
		entry := &secondary.HistoryRecord{}
		if err := rows.Scan(&entry.ID, &entry.ApplicationID, &actor, &entry.Action,
			&fieldName, &oldValue, &newValue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Actor = actor.String
		entry.FieldName = fieldName.String
		entry.OldValue = oldValue.String
		entry.NewValue = newValue.String
		entry.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return entries, nil
}

// Ensure HistoryRepository implements the interface
var _ secondary.HistoryRepository = (*HistoryRepository)(nil)
