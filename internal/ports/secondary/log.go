package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogCreate logs the creation of an application.
	LogCreate(ctx context.Context, applicationID int64) error

	// LogUpdate logs a change to one field of an application.
	LogUpdate(ctx context.Context, applicationID int64, fieldName, oldValue, newValue string) error

	// LogDelete logs the deletion of an application.
	LogDelete(ctx context.Context, applicationID int64) error
}
