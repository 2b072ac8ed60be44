package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/logging"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// ApplicationServiceImpl implements the ApplicationService interface.
//
// Writes are serialized by mu, so a mutation never interleaves with another
// and its audit entries.
type ApplicationServiceImpl struct {
	mu          sync.Mutex
	appRepo     secondary.ApplicationRepository
	historyRepo secondary.HistoryRepository
	logWriter   secondary.LogWriter
	logger      *logging.Logger
}

// NewApplicationService creates a new ApplicationService with injected dependencies.
func NewApplicationService(
	appRepo secondary.ApplicationRepository,
	historyRepo secondary.HistoryRepository,
	logWriter secondary.LogWriter,
	logger *logging.Logger,
) *ApplicationServiceImpl {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ApplicationServiceImpl{
		appRepo:     appRepo,
		historyRepo: historyRepo,
		logWriter:   logWriter,
		logger:      logger,
	}
}

// CreateApplication validates and stores a new application exactly as given,
// apart from trimming surrounding whitespace.
func (s *ApplicationServiceImpl) CreateApplication(ctx context.Context, app *application.Application) (*application.Application, error) {
	if app == nil {
		return nil, &application.ValidationError{Field: "application", Reason: "is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := normalize(app)
	candidate.ID = 0
	if err := application.Validate(candidate); err != nil {
		return nil, err
	}

	id, err := s.appRepo.Create(ctx, applicationToRecord(candidate))
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if err := s.logWriter.LogCreate(ctx, id); err != nil {
		s.logger.Warn("failed to write audit entry", "application_id", id, "action", "create", "error", err)
	}

	created, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created application: %w", err)
	}

	s.logger.Debug("application created", "application_id", id, "company", created.Company)
	return recordToApplication(created), nil
}

// GetApplication retrieves an application by ID.
func (s *ApplicationServiceImpl) GetApplication(ctx context.Context, id int64) (*application.Application, error) {
	record, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToApplication(record), nil
}

// ListApplications lists applications in insertion order.
func (s *ApplicationServiceImpl) ListApplications(ctx context.Context, filters primary.ApplicationFilters) ([]*application.Application, error) {
	records, err := s.appRepo.List(ctx, secondary.ApplicationFilters{
		Status:  string(filters.Status),
		Company: strings.TrimSpace(filters.Company),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return recordsToApplications(records), nil
}

// SortApplications returns every application ordered by field. Ties keep
// insertion order in both directions.
func (s *ApplicationServiceImpl) SortApplications(ctx context.Context, field application.SortField, ascending bool) ([]*application.Application, error) {
	apps, err := s.ListApplications(ctx, primary.ApplicationFilters{})
	if err != nil {
		return nil, err
	}
	return application.Sort(apps, field, ascending), nil
}

// ReplaceApplication overwrites every mutable field of an existing application.
func (s *ApplicationServiceImpl) ReplaceApplication(ctx context.Context, id int64, app *application.Application) (*application.Application, error) {
	if app == nil {
		return nil, &application.ValidationError{Field: "application", Reason: "is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate := normalize(app)
	candidate.ID = id
	return s.save(ctx, recordToApplication(existing), candidate)
}

// UpdateApplication applies a partial update. An empty patch returns the
// application unchanged.
func (s *ApplicationServiceImpl) UpdateApplication(ctx context.Context, id int64, patch application.Patch) (*application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current := recordToApplication(existing)
	if patch.IsEmpty() {
		return current, nil
	}

	return s.save(ctx, current, normalize(patch.Apply(current)))
}

// DeleteApplication removes an application. Its history is kept.
func (s *ApplicationServiceImpl) DeleteApplication(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.appRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.logWriter.LogDelete(ctx, id); err != nil {
		s.logger.Warn("failed to write audit entry", "application_id", id, "action", "delete", "error", err)
	}

	s.logger.Debug("application deleted", "application_id", id)
	return nil
}

// ListDueReminders returns open applications whose reminder date is on or
// before asOf. Rejected and withdrawn applications never need a follow-up.
func (s *ApplicationServiceImpl) ListDueReminders(ctx context.Context, asOf time.Time) ([]*application.Application, error) {
	records, err := s.appRepo.List(ctx, secondary.ApplicationFilters{
		ReminderDueBy: application.FormatDate(asOf),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	var due []*application.Application
	for _, app := range recordsToApplications(records) {
		if app.Status == application.StatusRejected || app.Status == application.StatusWithdrawn {
			continue
		}
		due = append(due, app)
	}
	return application.Sort(due, application.SortByReminderDate, true), nil
}

// GetHistory returns the audit trail of an application, oldest first.
func (s *ApplicationServiceImpl) GetHistory(ctx context.Context, id int64) ([]*primary.HistoryEntry, error) {
	records, err := s.historyRepo.ListByApplication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.HistoryEntry{
			ID:        r.ID,
			Actor:     r.Actor,
			Action:    r.Action,
			FieldName: r.FieldName,
			OldValue:  r.OldValue,
			NewValue:  r.NewValue,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

// save validates next, persists it over current and audits each changed field.
// Callers hold mu.
func (s *ApplicationServiceImpl) save(ctx context.Context, current, next *application.Application) (*application.Application, error) {
	if err := application.Validate(next); err != nil {
		return nil, err
	}

	if err := s.appRepo.Update(ctx, applicationToRecord(next)); err != nil {
		return nil, err
	}

	changes := diff(current, next)
	for _, c := range changes {
		if err := s.logWriter.LogUpdate(ctx, next.ID, c.field, c.oldValue, c.newValue); err != nil {
			s.logger.Warn("failed to write audit entry", "application_id", next.ID, "field", c.field, "error", err)
		}
	}

	updated, err := s.appRepo.GetByID(ctx, next.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated application: %w", err)
	}

	s.logger.Debug("application updated", "application_id", next.ID, "changed_fields", len(changes))
	return recordToApplication(updated), nil
}

// normalize returns a copy with surrounding whitespace trimmed from every
// text and date field.
func normalize(app *application.Application) *application.Application {
	out := app.Clone()
	for _, p := range []*string{
		&out.Company, &out.Position, &out.DateApplied, &out.Notes, &out.Location,
		&out.ReminderDate, &out.JobDescription, &out.CompanyCulture, &out.InterviewerNames,
	} {
		*p = strings.TrimSpace(*p)
	}
	out.Status = application.Status(strings.TrimSpace(string(out.Status)))
	for _, stage := range application.Stages() {
		out.Roadmap.Set(stage, strings.TrimSpace(out.Roadmap.Get(stage)))
	}
	return out
}

type fieldChange struct {
	field    string
	oldValue string
	newValue string
}

// diff lists the fields that differ between two versions, in column order.
func diff(before, after *application.Application) []fieldChange {
	candidates := []fieldChange{
		{"company", before.Company, after.Company},
		{"position", before.Position, after.Position},
		{"date_applied", before.DateApplied, after.DateApplied},
		{"status", string(before.Status), string(after.Status)},
		{"notes", before.Notes, after.Notes},
		{"location", before.Location, after.Location},
		{"reminder_date", before.ReminderDate, after.ReminderDate},
		{"salary_offered", formatSalary(before.SalaryOffered), formatSalary(after.SalaryOffered)},
		{"job_description", before.JobDescription, after.JobDescription},
		{"company_culture", before.CompanyCulture, after.CompanyCulture},
		{"interviewer_names", before.InterviewerNames, after.InterviewerNames},
	}
	for _, stage := range application.Stages() {
		candidates = append(candidates, fieldChange{string(stage), before.Roadmap.Get(stage), after.Roadmap.Get(stage)})
	}

	var changes []fieldChange
	for _, c := range candidates {
		if c.oldValue != c.newValue {
			changes = append(changes, c)
		}
	}
	return changes
}

func formatSalary(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func applicationToRecord(app *application.Application) *secondary.ApplicationRecord {
	return &secondary.ApplicationRecord{
		ID:                   app.ID,
		Company:              app.Company,
		Position:             app.Position,
		DateApplied:          app.DateApplied,
		Status:               string(app.Status),
		Notes:                app.Notes,
		Location:             app.Location,
		ReminderDate:         app.ReminderDate,
		SalaryOffered:        copySalary(app.SalaryOffered),
		JobDescription:       app.JobDescription,
		CompanyCulture:       app.CompanyCulture,
		InterviewerNames:     app.InterviewerNames,
		ApplicationSubmitted: app.Roadmap.ApplicationSubmitted,
		ResumeScreened:       app.Roadmap.ResumeScreened,
		PhoneInterview:       app.Roadmap.PhoneInterview,
		TechnicalInterview:   app.Roadmap.TechnicalInterview,
		OnsiteInterview:      app.Roadmap.OnsiteInterview,
		OfferReceived:        app.Roadmap.OfferReceived,
		OfferAccepted:        app.Roadmap.OfferAccepted,
		OfferRejected:        app.Roadmap.OfferRejected,
	}
}

func recordToApplication(r *secondary.ApplicationRecord) *application.Application {
	app := &application.Application{
		ID:               r.ID,
		Company:          r.Company,
		Position:         r.Position,
		DateApplied:      r.DateApplied,
		Status:           application.Status(r.Status),
		Notes:            r.Notes,
		Location:         r.Location,
		ReminderDate:     r.ReminderDate,
		JobDescription:   r.JobDescription,
		CompanyCulture:   r.CompanyCulture,
		InterviewerNames: r.InterviewerNames,
		Roadmap: application.Roadmap{
			ApplicationSubmitted: r.ApplicationSubmitted,
			ResumeScreened:       r.ResumeScreened,
			PhoneInterview:       r.PhoneInterview,
			TechnicalInterview:   r.TechnicalInterview,
			OnsiteInterview:      r.OnsiteInterview,
			OfferReceived:        r.OfferReceived,
			OfferAccepted:        r.OfferAccepted,
			OfferRejected:        r.OfferRejected,
		},
	}
	app.SalaryOffered = copySalary(r.SalaryOffered)
	return app
}

func copySalary(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func recordsToApplications(records []*secondary.ApplicationRecord) []*application.Application {
	apps := make([]*application.Application, len(records))
	for i, r := range records {
		apps[i] = recordToApplication(r)
	}
	return apps
}

// Ensure ApplicationServiceImpl implements the interface
var _ primary.ApplicationService = (*ApplicationServiceImpl)(nil)
