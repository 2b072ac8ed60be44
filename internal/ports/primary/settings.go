package primary

import (
	"context"

	"github.com/example/jobtrack/internal/config"
)

// SettingsService defines the primary port for user settings.
type SettingsService interface {
	// GetSettings returns the stored settings, or the defaults.
	GetSettings(ctx context.Context) (*config.Settings, error)

	// UpdateSettings applies a partial update after validation.
	UpdateSettings(ctx context.Context, patch SettingsPatch) (*config.Settings, error)

	// SettingsPath returns where settings are stored.
	SettingsPath() string
}

// SettingsPatch contains the settings fields to change. Nil fields are kept.
type SettingsPatch struct {
	Theme          *string
	DefaultStatus  *string
	Email          *string
	MailingEnabled *bool
	ReminderDays   *int
}
