package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/core/stats"
	"github.com/example/jobtrack/internal/logging"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// Spreadsheet tabs written by an export.
const (
	ApplicationsTab = "Applications"
	StatisticsTab   = "Statistics"
)

// ErrSheetsNotConfigured is returned when no spreadsheet writer is available.
var ErrSheetsNotConfigured = errors.New("sheets export not configured (set JOBTRACK_SHEETS_CREDENTIALS)")

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	appRepo secondary.ApplicationRepository
	writer  secondary.SheetWriter
	logger  *logging.Logger
}

// NewExportService creates a new ExportService. writer may be nil when no
// credentials are configured; ExportToSheets then reports ErrSheetsNotConfigured.
func NewExportService(appRepo secondary.ApplicationRepository, writer secondary.SheetWriter, logger *logging.Logger) *ExportServiceImpl {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ExportServiceImpl{
		appRepo: appRepo,
		writer:  writer,
		logger:  logger,
	}
}

// ExportToSheets clears and rewrites both tabs from one snapshot.
func (s *ExportServiceImpl) ExportToSheets(ctx context.Context, spreadsheetID string) (*primary.ExportResult, error) {
	if s.writer == nil {
		return nil, ErrSheetsNotConfigured
	}
	if spreadsheetID == "" {
		return nil, &application.ValidationError{Field: "spreadsheet_id", Reason: "is required"}
	}

	records, err := s.appRepo.List(ctx, secondary.ApplicationFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	apps := recordsToApplications(records)

	if err := s.writeTab(ctx, spreadsheetID, ApplicationsTab, applicationRows(apps)); err != nil {
		return nil, err
	}
	if err := s.writeTab(ctx, spreadsheetID, StatisticsTab, statisticsRows(stats.Compute(apps))); err != nil {
		return nil, err
	}

	s.logger.Info("exported to sheets", "spreadsheet_id", spreadsheetID, "rows", len(apps))
	return &primary.ExportResult{SpreadsheetID: spreadsheetID, Rows: len(apps)}, nil
}

func (s *ExportServiceImpl) writeTab(ctx context.Context, spreadsheetID, tab string, values [][]interface{}) error {
	if err := s.writer.ClearValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1:Z", tab)); err != nil {
		return fmt.Errorf("failed to clear %s tab: %w", tab, err)
	}
	if err := s.writer.UpdateValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1", tab), values); err != nil {
		return fmt.Errorf("failed to write %s tab: %w", tab, err)
	}
	return nil
}

func applicationRows(apps []*application.Application) [][]interface{} {
	header := []interface{}{"ID", "Company", "Position", "Date Applied", "Status", "Location", "Reminder Date", "Salary Offered", "Notes"}
	for _, stage := range application.Stages() {
		header = append(header, stage.Label())
	}

	values := [][]interface{}{header}
	for _, app := range apps {
		row := []interface{}{
			app.ID,
			app.Company,
			app.Position,
			app.DateApplied,
			string(app.Status),
			app.Location,
			app.ReminderDate,
			formatSalary(app.SalaryOffered),
			app.Notes,
		}
		for _, stage := range application.Stages() {
			row = append(row, app.Roadmap.Get(stage))
		}
		values = append(values, row)
	}
	return values
}

func statisticsRows(st stats.Statistics) [][]interface{} {
	values := [][]interface{}{
		{"Metric", "Value"},
		{"Total Applications", st.TotalApplications},
		{"Most Applied Company", st.MostAppliedCompany},
		{"Most Common Position", st.MostCommonPosition},
		{"Avg Applications per Month", fmt.Sprintf("%.2f", st.AvgApplicationsPerMonth)},
		{"Success Rate (%)", fmt.Sprintf("%.2f", st.SuccessRate)},
		{"Avg Response Time (days)", fmt.Sprintf("%.2f", st.AvgResponseTime)},
		{},
		{"Status", "Count"},
	}
	for _, c := range st.PerStatus {
		values = append(values, []interface{}{c.Key, c.Count})
	}
	values = append(values, []interface{}{}, []interface{}{"Month", "Count"})
	for _, c := range st.PerMonth {
		values = append(values, []interface{}{c.Key, c.Count})
	}
	return values
}

// Ensure ExportServiceImpl implements the interface
var _ primary.ExportService = (*ExportServiceImpl)(nil)
