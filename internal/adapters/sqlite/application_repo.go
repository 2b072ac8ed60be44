// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/secondary"
)

const applicationColumns = "id, company, position, date_applied, status, notes, location, reminder_date, salary_offered, " +
	"job_description, company_culture, interviewer_names, application_submitted, resume_screened, phone_interview, " +
	"technical_interview, onsite_interview, offer_received, offer_accepted, offer_rejected, created_at, updated_at"

// ApplicationRepository implements secondary.ApplicationRepository with SQLite.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new SQLite application repository.
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create persists a new application and returns its auto-assigned ID.
func (r *ApplicationRepository) Create(ctx context.Context, app *secondary.ApplicationRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO applications (company, position, date_applied, status, notes, location, reminder_date, salary_offered,
			job_description, company_culture, interviewer_names, application_submitted, resume_screened, phone_interview,
			technical_interview, onsite_interview, offer_received, offer_accepted, offer_rejected)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mutableArgs(app)...,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read application id: %w", err)
	}
	return id, nil
}

// GetByID retrieves an application by its ID.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*secondary.ApplicationRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+applicationColumns+" FROM applications WHERE id = ?", id)

	record, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &application.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return record, nil
}

// List retrieves applications matching the given filters, in insertion order.
func (r *ApplicationRepository) List(ctx context.Context, filters secondary.ApplicationFilters) ([]*secondary.ApplicationRecord, error) {
	query := "SELECT " + applicationColumns + " FROM applications WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	if filters.Company != "" {
		query += " AND LOWER(company) LIKE ?"
		args = append(args, "%"+strings.ToLower(filters.Company)+"%")
	}

	if filters.ReminderDueBy != "" {
		query += " AND reminder_date IS NOT NULL AND reminder_date <= ?"
		args = append(args, filters.ReminderDueBy)
	}

	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []*secondary.ApplicationRecord
	for rows.Next() {
		record, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// Update replaces every mutable column of an existing application.
func (r *ApplicationRepository) Update(ctx context.Context, app *secondary.ApplicationRecord) error {
	args := append(mutableArgs(app), app.ID)
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET company = ?, position = ?, date_applied = ?, status = ?, notes = ?, location = ?,
			reminder_date = ?, salary_offered = ?, job_description = ?, company_culture = ?, interviewer_names = ?,
			application_submitted = ?, resume_screened = ?, phone_interview = ?, technical_interview = ?,
			onsite_interview = ?, offer_received = ?, offer_accepted = ?, offer_rejected = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return &application.NotFoundError{ID: app.ID}
	}

	return nil
}

// Delete removes an application from persistence.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM applications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return &application.NotFoundError{ID: id}
	}

	return nil
}

// mutableArgs returns the column values shared by INSERT and UPDATE, in
// statement order.
func mutableArgs(app *secondary.ApplicationRecord) []any {
	var salary sql.NullFloat64
	if app.SalaryOffered != nil {
		salary = sql.NullFloat64{Float64: *app.SalaryOffered, Valid: true}
	}
	return []any{
		app.Company,
		app.Position,
		app.DateApplied,
		app.Status,
		nullString(app.Notes),
		nullString(app.Location),
		nullString(app.ReminderDate),
		salary,
		nullString(app.JobDescription),
		nullString(app.CompanyCulture),
		nullString(app.InterviewerNames),
		nullString(app.ApplicationSubmitted),
		nullString(app.ResumeScreened),
		nullString(app.PhoneInterview),
		nullString(app.TechnicalInterview),
		nullString(app.OnsiteInterview),
		nullString(app.OfferReceived),
		nullString(app.OfferAccepted),
		nullString(app.OfferRejected),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*secondary.ApplicationRecord, error) {
	var (
		notes, location, reminderDate                 sql.NullString
		salary                                        sql.NullFloat64
		jobDescription, companyCulture, interviewers  sql.NullString
		submitted, screened, phone, technical, onsite sql.NullString
		offerReceived, offerAccepted, offerRejected   sql.NullString
		createdAt, updatedAt                          time.Time
	)

	record := &secondary.ApplicationRecord{}
	err := row.Scan(&record.ID, &record.Company, &record.Position, &record.DateApplied, &record.Status,
		&notes, &location, &reminderDate, &salary, &jobDescription, &companyCulture, &interviewers,
		&submitted, &screened, &phone, &technical, &onsite, &offerReceived, &offerAccepted, &offerRejected,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Notes = notes.String
	record.Location = location.String
	record.ReminderDate = reminderDate.String
	if salary.Valid {
		v := salary.Float64
		record.SalaryOffered = &v
	}
	record.JobDescription = jobDescription.String
	record.CompanyCulture = companyCulture.String
	record.InterviewerNames = interviewers.String
	record.ApplicationSubmitted = submitted.String
	record.ResumeScreened = screened.String
	record.PhoneInterview = phone.String
	record.TechnicalInterview = technical.String
	record.OnsiteInterview = onsite.String
	record.OfferReceived = offerReceived.String
	record.OfferAccepted = offerAccepted.String
	record.OfferRejected = offerRejected.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure ApplicationRepository implements the interface
var _ secondary.ApplicationRepository = (*ApplicationRepository)(nil)
