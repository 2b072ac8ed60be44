package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/jobtrack/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export applications to external services",
}

var exportSheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Export applications and statistics to Google Sheets",
	Long: `Rewrite the Applications and Statistics tabs of a Google spreadsheet.

Requires JOBTRACK_SHEETS_CREDENTIALS to point at a service account key file.
The spreadsheet defaults to JOBTRACK_SHEETS_SPREADSHEET_ID.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spreadsheetID, _ := cmd.Flags().GetString("spreadsheet")
		if spreadsheetID == "" {
			spreadsheetID = wire.Config().Sheets.SpreadsheetID
		}
		return wire.ExportAdapter().Sheets(cliContext(), spreadsheetID)
	},
}

func init() {
	exportSheetsCmd.Flags().String("spreadsheet", "", "Spreadsheet ID (default from JOBTRACK_SHEETS_SPREADSHEET_ID)")
	exportCmd.AddCommand(exportSheetsCmd)
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return exportCmd
}
