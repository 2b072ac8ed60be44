package secondary

import (
	"context"

	"github.com/example/jobtrack/internal/config"
)

// SettingsStore defines the secondary port for user settings persistence.
type SettingsStore interface {
	// Load returns the stored settings, or the defaults when nothing is stored yet.
	Load(ctx context.Context) (*config.Settings, error)

	// Save replaces the stored settings.
	Save(ctx context.Context, settings *config.Settings) error

	// Path returns where the settings live, for display.
	Path() string
}

// SheetWriter defines the secondary port for writing spreadsheet ranges.
type SheetWriter interface {
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error
}
