package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/primary"
)

// mockApplicationService implements primary.ApplicationService for testing
type mockApplicationService struct {
	apps        []*application.Application
	history     []*primary.HistoryEntry
	err         error
	lastPatch   application.Patch
	lastFilters primary.ApplicationFilters
	deleted     []int64
}

func (m *mockApplicationService) CreateApplication(ctx context.Context, app *application.Application) (*application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	created := app.Clone()
	created.ID = int64(len(m.apps) + 1)
	m.apps = append(m.apps, created)
	return created, nil
}

func (m *mockApplicationService) GetApplication(ctx context.Context, id int64) (*application.Application, error) {
	for _, a := range m.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &application.NotFoundError{ID: id}
}

func (m *mockApplicationService) ListApplications(ctx context.Context, filters primary.ApplicationFilters) ([]*application.Application, error) {
	m.lastFilters = filters
	if m.err != nil {
		return nil, m.err
	}
	return m.apps, nil
}

func (m *mockApplicationService) SortApplications(ctx context.Context, field application.SortField, ascending bool) ([]*application.Application, error) {
	return application.Sort(m.apps, field, ascending), nil
}

func (m *mockApplicationService) ReplaceApplication(ctx context.Context, id int64, app *application.Application) (*application.Application, error) {
	return app, m.err
}

func (m *mockApplicationService) UpdateApplication(ctx context.Context, id int64, patch application.Patch) (*application.Application, error) {
	m.lastPatch = patch
	current, err := m.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	return patch.Apply(current), nil
}

func (m *mockApplicationService) DeleteApplication(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func (m *mockApplicationService) ListDueReminders(ctx context.Context, asOf time.Time) ([]*application.Application, error) {
	return m.apps, m.err
}

func (m *mockApplicationService) GetHistory(ctx context.Context, id int64) ([]*primary.HistoryEntry, error) {
	return m.history, m.err
}

func sampleApps() []*application.Application {
	return []*application.Application{
		{ID: 1, Company: "Zeta", Position: "Dev", DateApplied: "2024-01-02", Status: application.StatusApplied, Location: "Oslo"},
		{ID: 2, Company: "Acme", Position: "QA", DateApplied: "2024-01-01", Status: application.StatusRejected, Location: "Rome",
			Roadmap: application.Roadmap{PhoneInterview: "2024-01-10"}},
	}
}

func TestApplicationAdapter_Create(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{}, &out)

	err := adapter.Create(context.Background(), &application.Application{Company: "Acme", Position: "Dev", ReminderDate: "2024-02-01"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Created application 1: Acme - Dev") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if !strings.Contains(out.String(), "Reminder set for 2024-02-01") {
		t.Errorf("expected reminder line, got: %s", out.String())
	}
}

func TestApplicationAdapter_List(t *testing.T) {
	tests := []struct {
		name      string
		opts      ListOptions
		wantFirst string
	}{
		{name: "insertion order", wantFirst: "Zeta"},
		{name: "sorted by company", opts: ListOptions{SortField: application.SortByCompany}, wantFirst: "Acme"},
		{name: "sorted descending by date", opts: ListOptions{SortField: application.SortByDateApplied, Descending: true}, wantFirst: "Zeta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			adapter := NewApplicationAdapter(&mockApplicationService{apps: sampleApps()}, &out)

			if err := adapter.List(context.Background(), tt.opts); err != nil {
				t.Fatalf("List failed: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			if len(lines) != 4 {
				t.Fatalf("expected header, rule and 2 rows, got %d lines:\n%s", len(lines), out.String())
			}
			if !strings.Contains(lines[2], tt.wantFirst) {
				t.Errorf("expected first row %s, got %q", tt.wantFirst, lines[2])
			}
		})
	}
}

func TestApplicationAdapter_List_Empty(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{}, &out)

	if err := adapter.List(context.Background(), ListOptions{Filters: primary.ApplicationFilters{Company: "x"}}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(out.String(), "No applications found") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestApplicationAdapter_Roadmap(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{apps: sampleApps()}, &out)

	if err := adapter.Roadmap(context.Background(), 2); err != nil {
		t.Fatalf("Roadmap failed: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Phone Interview") || !strings.Contains(output, "2024-01-10") {
		t.Errorf("expected phone interview date, got:\n%s", output)
	}
	if strings.Count(output, "Not yet") != 7 {
		t.Errorf("expected 7 unset stages, got:\n%s", output)
	}
}

func TestApplicationAdapter_Show_NotFound(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{}, &out)

	err := adapter.Show(context.Background(), 9)
	if err == nil || !strings.Contains(err.Error(), "application 9 not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestApplicationAdapter_Update_RequiresFields(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{apps: sampleApps()}, &out)

	if err := adapter.Update(context.Background(), 1, application.Patch{}); err == nil {
		t.Fatal("expected error for empty patch")
	}

	status := application.StatusWithdrawn
	if err := adapter.Update(context.Background(), 1, application.Patch{Status: &status}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Application 1 updated (Withdrawn)") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestApplicationAdapter_Delete(t *testing.T) {
	var out bytes.Buffer
	service := &mockApplicationService{apps: sampleApps()}
	adapter := NewApplicationAdapter(service, &out)

	if err := adapter.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(service.deleted) != 1 || service.deleted[0] != 2 {
		t.Errorf("expected delete of 2, got %v", service.deleted)
	}
	if !strings.Contains(out.String(), "✓ Deleted application 2: Acme - QA") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestApplicationAdapter_Reminders_None(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{}, &out)

	if err := adapter.Reminders(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Reminders failed: %v", err)
	}
	if !strings.Contains(out.String(), "No reminders due by 2024-03-01") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestApplicationAdapter_History(t *testing.T) {
	var out bytes.Buffer
	adapter := NewApplicationAdapter(&mockApplicationService{history: []*primary.HistoryEntry{
		{ID: "a", Actor: "cli", Action: "create", CreatedAt: "2024-01-01T10:00:00Z"},
		{ID: "b", Actor: "api", Action: "update", FieldName: "status", OldValue: "Applied", NewValue: "Rejected", CreatedAt: "2024-01-02T10:00:00Z"},
	}}, &out)

	if err := adapter.History(context.Background(), 1); err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if !strings.Contains(out.String(), `status: "Applied" → "Rejected"`) {
		t.Errorf("expected field change line, got:\n%s", out.String())
	}
}

func TestStatusLabel(t *testing.T) {
	got := StatusLabel(application.StatusApplied, 10)
	if !strings.Contains(got, "Applied   ") {
		t.Errorf("expected padded label, got %q", got)
	}
}
