package primary

import "context"

// ExportService defines the primary port for spreadsheet export.
type ExportService interface {
	// ExportToSheets rewrites the Applications and Statistics tabs of a spreadsheet.
	ExportToSheets(ctx context.Context, spreadsheetID string) (*ExportResult, error)
}

// ExportResult summarizes a completed export.
type ExportResult struct {
	SpreadsheetID string
	Rows          int
}
