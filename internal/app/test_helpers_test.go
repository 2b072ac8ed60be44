package app

import (
	"context"
	"errors"
	"strings"

	"github.com/example/jobtrack/internal/config"
	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockApplicationRepository implements secondary.ApplicationRepository for testing.
type mockApplicationRepository struct {
	apps      map[int64]*secondary.ApplicationRecord
	order     []int64
	nextID    int64
	createErr error
	updateErr error
	listErr   error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{
		apps:   make(map[int64]*secondary.ApplicationRecord),
		nextID: 1,
	}
}

func (m *mockApplicationRepository) Create(ctx context.Context, app *secondary.ApplicationRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	stored := *app
	stored.ID = m.nextID
	stored.CreatedAt = "2024-01-01T00:00:00Z"
	m.nextID++
	m.apps[stored.ID] = &stored
	m.order = append(m.order, stored.ID)
	return stored.ID, nil
}

func (m *mockApplicationRepository) GetByID(ctx context.Context, id int64) (*secondary.ApplicationRecord, error) {
	if app, ok := m.apps[id]; ok {
		copied := *app
		return &copied, nil
	}
	return nil, &application.NotFoundError{ID: id}
}

func (m *mockApplicationRepository) List(ctx context.Context, filters secondary.ApplicationFilters) ([]*secondary.ApplicationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ApplicationRecord
	for _, id := range m.order {
		app, ok := m.apps[id]
		if !ok {
			continue
		}
		if filters.Status != "" && app.Status != filters.Status {
			continue
		}
		if filters.Company != "" && !strings.Contains(strings.ToLower(app.Company), strings.ToLower(filters.Company)) {
			continue
		}
		if filters.ReminderDueBy != "" && (app.ReminderDate == "" || app.ReminderDate > filters.ReminderDueBy) {
			continue
		}
		copied := *app
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockApplicationRepository) Update(ctx context.Context, app *secondary.ApplicationRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.apps[app.ID]; !ok {
		return &application.NotFoundError{ID: app.ID}
	}
	stored := *app
	m.apps[app.ID] = &stored
	return nil
}

func (m *mockApplicationRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.apps[id]; !ok {
		return &application.NotFoundError{ID: id}
	}
	delete(m.apps, id)
	return nil
}

// seed stores an application directly, bypassing validation.
func (m *mockApplicationRepository) seed(app *application.Application) int64 {
	id, _ := m.Create(context.Background(), applicationToRecord(app))
	return id
}

// mockHistoryRepository implements secondary.HistoryRepository for testing.
type mockHistoryRepository struct {
	entries []*secondary.HistoryRecord
	listErr error
}

func (m *mockHistoryRepository) Create(ctx context.Context, entry *secondary.HistoryRecord) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistoryRepository) ListByApplication(ctx context.Context, applicationID int64) ([]*secondary.HistoryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.HistoryRecord
	for _, e := range m.entries {
		if e.ApplicationID == applicationID {
			result = append(result, e)
		}
	}
	return result, nil
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	entries []loggedChange
	err     error
}

type loggedChange struct {
	applicationID int64
	action        string
	field         string
	oldValue      string
	newValue      string
}

func (m *mockLogWriter) LogCreate(ctx context.Context, applicationID int64) error {
	m.entries = append(m.entries, loggedChange{applicationID: applicationID, action: "create"})
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, applicationID int64, fieldName, oldValue, newValue string) error {
	m.entries = append(m.entries, loggedChange{applicationID: applicationID, action: "update", field: fieldName, oldValue: oldValue, newValue: newValue})
	return m.err
}

func (m *mockLogWriter) LogDelete(ctx context.Context, applicationID int64) error {
	m.entries = append(m.entries, loggedChange{applicationID: applicationID, action: "delete"})
	return m.err
}

func (m *mockLogWriter) actions() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.action
	}
	return out
}

// mockSettingsStore implements secondary.SettingsStore for testing.
type mockSettingsStore struct {
	settings *config.Settings
	loadErr  error
	saveErr  error
	saves    int
}

func newMockSettingsStore() *mockSettingsStore {
	return &mockSettingsStore{settings: config.DefaultSettings()}
}

func (m *mockSettingsStore) Load(ctx context.Context) (*config.Settings, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	copied := *m.settings
	return &copied, nil
}

func (m *mockSettingsStore) Save(ctx context.Context, settings *config.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *settings
	m.settings = &copied
	m.saves++
	return nil
}

func (m *mockSettingsStore) Path() string {
	return "/tmp/jobtrack/settings.json"
}

// mockGeocoder implements secondary.Geocoder for testing.
type mockGeocoder struct {
	known   map[string]secondary.Coordinates
	failFor map[string]error
	calls   []string
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string) (*secondary.Coordinates, error) {
	m.calls = append(m.calls, query)
	if err, ok := m.failFor[query]; ok {
		return nil, err
	}
	if c, ok := m.known[query]; ok {
		return &c, nil
	}
	return nil, secondary.ErrLocationNotFound
}

// mockSheetWriter implements secondary.SheetWriter for testing.
type mockSheetWriter struct {
	cleared  []string
	written  map[string][][]interface{}
	clearErr error
}

func newMockSheetWriter() *mockSheetWriter {
	return &mockSheetWriter{written: make(map[string][][]interface{})}
}

func (m *mockSheetWriter) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = append(m.cleared, rng)
	return nil
}

func (m *mockSheetWriter) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	m.written[rng] = values
	return nil
}

var errBoom = errors.New("boom")

// Ensure mocks implement their interfaces
var (
	_ secondary.ApplicationRepository = (*mockApplicationRepository)(nil)
	_ secondary.HistoryRepository     = (*mockHistoryRepository)(nil)
	_ secondary.LogWriter             = (*mockLogWriter)(nil)
	_ secondary.SettingsStore         = (*mockSettingsStore)(nil)
	_ secondary.Geocoder              = (*mockGeocoder)(nil)
	_ secondary.SheetWriter           = (*mockSheetWriter)(nil)
)
