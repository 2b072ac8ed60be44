package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/jobtrack/internal/ports/primary"
)

// ExportAdapter translates export commands to ExportService calls.
type ExportAdapter struct {
	service primary.ExportService
	out     io.Writer
}

// NewExportAdapter creates a new ExportAdapter with the given service.
func NewExportAdapter(service primary.ExportService, out io.Writer) *ExportAdapter {
	return &ExportAdapter{
		service: service,
		out:     out,
	}
}

// Sheets rewrites the Applications and Statistics tabs of spreadsheetID.
func (a *ExportAdapter) Sheets(ctx context.Context, spreadsheetID string) error {
	result, err := a.service.ExportToSheets(ctx, spreadsheetID)
	if err != nil {
		return fmt.Errorf("failed to export to sheets: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Exported %d applications to spreadsheet %s\n", result.Rows, result.SpreadsheetID)
	return nil
}
