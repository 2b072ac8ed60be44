package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/jobtrack/internal/ctxutil"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// Audit actions recorded in application_history.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// LogWriterAdapter implements secondary.LogWriter on top of HistoryRepository.
type LogWriterAdapter struct {
	historyRepo secondary.HistoryRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(historyRepo secondary.HistoryRepository) *LogWriterAdapter {
	return &LogWriterAdapter{historyRepo: historyRepo}
}

// LogCreate logs the creation of an application.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, applicationID int64) error {
	return w.writeLog(ctx, applicationID, ActionCreate, "", "", "")
}

// LogUpdate logs a change to one field of an application.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, applicationID int64, fieldName, oldValue, newValue string) error {
	return w.writeLog(ctx, applicationID, ActionUpdate, fieldName, oldValue, newValue)
}

// LogDelete logs the deletion of an application.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, applicationID int64) error {
	return w.writeLog(ctx, applicationID, ActionDelete, "", "", "")
}

func (w *LogWriterAdapter) writeLog(ctx context.Context, applicationID int64, action, fieldName, oldValue, newValue string) error {
	return w.historyRepo.Create(ctx, &secondary.HistoryRecord{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		Actor:         ctxutil.ActorFromContext(ctx),
		Action:        action,
		FieldName:     fieldName,
		OldValue:      oldValue,
		NewValue:      newValue,
	})
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
