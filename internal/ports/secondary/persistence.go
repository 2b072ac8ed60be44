// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ApplicationRepository defines the secondary port for application persistence.
type ApplicationRepository interface {
	// Create persists a new application and returns the assigned ID.
	Create(ctx context.Context, app *ApplicationRecord) (int64, error)

	// GetByID retrieves an application by its ID.
	GetByID(ctx context.Context, id int64) (*ApplicationRecord, error)

	// List retrieves applications matching the given filters in insertion order.
	List(ctx context.Context, filters ApplicationFilters) ([]*ApplicationRecord, error)

	// Update replaces every mutable column of an existing application.
	Update(ctx context.Context, app *ApplicationRecord) error

	// Delete removes an application from persistence.
	Delete(ctx context.Context, id int64) error
}

// ApplicationRecord represents an application as stored in persistence.
// Empty strings mean NULL for every optional column.
type ApplicationRecord struct {
	ID                   int64
	Company              string
	Position             string
	DateApplied          string
	Status               string
	Notes                string
	Location             string
	ReminderDate         string
	SalaryOffered        *float64
	JobDescription       string
	CompanyCulture       string
	InterviewerNames     string
	ApplicationSubmitted string
	ResumeScreened       string
	PhoneInterview       string
	TechnicalInterview   string
	OnsiteInterview      string
	OfferReceived        string
	OfferAccepted        string
	OfferRejected        string
	CreatedAt            string
	UpdatedAt            string
}

// ApplicationFilters contains filter options for querying applications.
type ApplicationFilters struct {
	Status        string
	Company       string // case-insensitive substring match
	ReminderDueBy string // YYYY-MM-DD; only rows with reminder_date <= this
}

// HistoryRepository defines the secondary port for the application audit trail.
type HistoryRepository interface {
	// Create appends a history entry.
	Create(ctx context.Context, entry *HistoryRecord) error

	// ListByApplication returns the entries of one application, oldest first.
	ListByApplication(ctx context.Context, applicationID int64) ([]*HistoryRecord, error)
}

// HistoryRecord is one audit entry.
type HistoryRecord struct {
	ID            string
	ApplicationID int64
	Actor         string
	Action        string // create, update, delete
	FieldName     string
	OldValue      string
	NewValue      string
	CreatedAt     string
}
