// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI and the HTTP API drive the core.
package primary

import (
	"context"
	"time"

	"github.com/example/jobtrack/internal/core/application"
)

// ApplicationService defines the primary port for the record store.
type ApplicationService interface {
	// CreateApplication validates and stores a new application, returning it with its ID.
	CreateApplication(ctx context.Context, app *application.Application) (*application.Application, error)

	// GetApplication retrieves an application by ID.
	GetApplication(ctx context.Context, id int64) (*application.Application, error)

	// ListApplications lists applications in insertion order.
	ListApplications(ctx context.Context, filters ApplicationFilters) ([]*application.Application, error)

	// SortApplications returns every application ordered by field.
	SortApplications(ctx context.Context, field application.SortField, ascending bool) ([]*application.Application, error)

	// ReplaceApplication overwrites every field of an existing application.
	ReplaceApplication(ctx context.Context, id int64, app *application.Application) (*application.Application, error)

	// UpdateApplication applies a partial update to an existing application.
	UpdateApplication(ctx context.Context, id int64, patch application.Patch) (*application.Application, error)

	// DeleteApplication removes an application.
	DeleteApplication(ctx context.Context, id int64) error

	// ListDueReminders returns applications whose reminder date is on or before asOf.
	ListDueReminders(ctx context.Context, asOf time.Time) ([]*application.Application, error)

	// GetHistory returns the audit trail of an application, oldest first.
	GetHistory(ctx context.Context, id int64) ([]*HistoryEntry, error)
}

// ApplicationFilters contains filter options for listing applications.
type ApplicationFilters struct {
	Status  application.Status
	Company string
}

// HistoryEntry is one audited change.
type HistoryEntry struct {
	ID        string `json:"id"`
	Actor     string `json:"actor,omitempty"`
	Action    string `json:"action"`
	FieldName string `json:"field,omitempty"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value,omitempty"`
	CreatedAt string `json:"created_at"`
}
