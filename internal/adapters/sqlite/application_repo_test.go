package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/example/jobtrack/internal/adapters/sqlite"
	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/secondary"
)

func TestApplicationRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)
	ctx := context.Background()

	salary := 85000.0
	record := &secondary.ApplicationRecord{
		Company:              "Acme",
		Position:             "Backend Engineer",
		DateApplied:          "2024-03-01",
		Status:               "Interview Scheduled",
		Notes:                "Referred by Sam",
		Location:             "Remote",
		ReminderDate:         "2024-03-08",
		SalaryOffered:        &salary,
		InterviewerNames:     "Ada, Grace",
		ApplicationSubmitted: "2024-03-01",
		PhoneInterview:       "2024-03-05",
	}

	id, err := repo.Create(ctx, record)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Company != "Acme" {
		t.Errorf("expected company 'Acme', got '%s'", got.Company)
	}
	if got.Status != "Interview Scheduled" {
		t.Errorf("expected status 'Interview Scheduled', got '%s'", got.Status)
	}
	if got.SalaryOffered == nil || *got.SalaryOffered != 85000 {
		t.Errorf("expected salary 85000, got %v", got.SalaryOffered)
	}
	if got.PhoneInterview != "2024-03-05" {
		t.Errorf("expected phone interview date, got '%s'", got.PhoneInterview)
	}
	if got.OfferReceived != "" {
		t.Errorf("expected empty offer_received, got '%s'", got.OfferReceived)
	}
	if got.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestApplicationRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)

	first := seedApplication(t, repo, "Acme", "", "")
	second := seedApplication(t, repo, "Globex", "", "")
	if second <= first {
		t.Errorf("expected increasing ids, got %d then %d", first, second)
	}

	// IDs are never reused after delete
	if err := repo.Delete(context.Background(), second); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	third := seedApplication(t, repo, "Initech", "", "")
	if third <= second {
		t.Errorf("expected id greater than %d, got %d", second, third)
	}
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)
	ctx := context.Background()

	seedApplication(t, repo, "Acme Corp", "Applied", "2024-01-10")
	seedApplication(t, repo, "Globex", "Rejected", "2024-01-11")
	seedApplication(t, repo, "acme labs", "Applied", "2024-01-12")

	tests := []struct {
		name      string
		filters   secondary.ApplicationFilters
		wantCount int
		wantFirst string
	}{
		{name: "no filters keeps insertion order", wantCount: 3, wantFirst: "Acme Corp"},
		{name: "status filter", filters: secondary.ApplicationFilters{Status: "Rejected"}, wantCount: 1, wantFirst: "Globex"},
		{name: "company substring ignores case", filters: secondary.ApplicationFilters{Company: "ACME"}, wantCount: 2, wantFirst: "Acme Corp"},
		{name: "combined filters", filters: secondary.ApplicationFilters{Status: "Applied", Company: "labs"}, wantCount: 1, wantFirst: "acme labs"},
		{name: "no match", filters: secondary.ApplicationFilters{Company: "Umbrella"}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps, err := repo.List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(apps) != tt.wantCount {
				t.Fatalf("expected %d applications, got %d", tt.wantCount, len(apps))
			}
			if tt.wantCount > 0 && apps[0].Company != tt.wantFirst {
				t.Errorf("expected first company '%s', got '%s'", tt.wantFirst, apps[0].Company)
			}
		})
	}
}

func TestApplicationRepository_List_ReminderDueBy(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)
	ctx := context.Background()

	for _, reminder := range []string{"2024-02-01", "2024-02-10", ""} {
		_, err := repo.Create(ctx, &secondary.ApplicationRecord{
			Company: "Acme", Position: "Dev", DateApplied: "2024-01-01", Status: "Applied",
			Location: "Oslo", ReminderDate: reminder,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	apps, err := repo.List(ctx, secondary.ApplicationFilters{ReminderDueBy: "2024-02-05"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 due reminder, got %d", len(apps))
	}
	if apps[0].ReminderDate != "2024-02-01" {
		t.Errorf("expected reminder 2024-02-01, got '%s'", apps[0].ReminderDate)
	}
}

func TestApplicationRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)
	ctx := context.Background()

	salary := 90000.0
	id := seedApplication(t, repo, "Acme", "Applied", "2024-01-10")
	record, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	record.Status = "Offer Received"
	record.SalaryOffered = &salary
	record.OfferReceived = "2024-02-01"
	record.Notes = "Negotiating"
	if err := repo.Update(ctx, record); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != "Offer Received" {
		t.Errorf("expected status 'Offer Received', got '%s'", got.Status)
	}
	if got.SalaryOffered == nil || *got.SalaryOffered != 90000 {
		t.Errorf("expected salary 90000, got %v", got.SalaryOffered)
	}
	if got.OfferReceived != "2024-02-01" {
		t.Errorf("expected offer_received '2024-02-01', got '%s'", got.OfferReceived)
	}

	// Clearing the salary writes NULL
	got.SalaryOffered = nil
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	cleared, _ := repo.GetByID(ctx, id)
	if cleared.SalaryOffered != nil {
		t.Errorf("expected salary cleared, got %v", *cleared.SalaryOffered)
	}
}

func TestApplicationRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)

	err := repo.Update(context.Background(), &secondary.ApplicationRecord{
		ID: 99, Company: "Ghost", Position: "Dev", DateApplied: "2024-01-01", Status: "Applied",
	})
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewApplicationRepository(db)
	ctx := context.Background()

	id := seedApplication(t, repo, "Acme", "", "")
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := repo.GetByID(ctx, id)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	err = repo.Delete(ctx, id)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestApplicationRepository_Create_DriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(errors.New("disk I/O error"))

	repo := sqlite.NewApplicationRepository(db)
	_, err = repo.Create(context.Background(), &secondary.ApplicationRecord{
		Company: "Acme", Position: "Dev", DateApplied: "2024-01-01", Status: "Applied",
	})
	if err == nil {
		t.Fatal("expected error from driver")
	}
	if errors.Is(err, application.ErrNotFound) {
		t.Errorf("driver failure must not look like not-found: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestApplicationRepository_List_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM applications").
		WithArgs("Applied").
		WillReturnError(errors.New("database is locked"))

	repo := sqlite.NewApplicationRepository(db)
	if _, err := repo.List(context.Background(), secondary.ApplicationFilters{Status: "Applied"}); err == nil {
		t.Fatal("expected error from query")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
