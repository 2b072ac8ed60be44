package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/jobtrack/internal/config"
	"github.com/example/jobtrack/internal/ports/primary"
)

// SettingsAdapter shows and edits user settings.
type SettingsAdapter struct {
	service primary.SettingsService
	out     io.Writer
}

// NewSettingsAdapter creates a new SettingsAdapter with the given service.
func NewSettingsAdapter(service primary.SettingsService, out io.Writer) *SettingsAdapter {
	return &SettingsAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the current settings.
func (a *SettingsAdapter) Show(ctx context.Context) error {
	settings, err := a.service.GetSettings(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Settings (%s)\n", a.service.SettingsPath())
	a.print(settings)
	return nil
}

// Set applies a settings patch.
func (a *SettingsAdapter) Set(ctx context.Context, patch primary.SettingsPatch) error {
	settings, err := a.service.UpdateSettings(ctx, patch)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "✓ Settings saved")
	a.print(settings)
	return nil
}

func (a *SettingsAdapter) print(s *config.Settings) {
	mailing := "disabled"
	if s.MailingEnabled {
		mailing = "enabled"
	}
	fmt.Fprintf(a.out, "  Theme:          %s\n", s.Theme)
	fmt.Fprintf(a.out, "  Default status: %s\n", s.DefaultStatus)
	fmt.Fprintf(a.out, "  Email:          %s\n", orDash(s.Email))
	fmt.Fprintf(a.out, "  Mailing:        %s\n", mailing)
	fmt.Fprintf(a.out, "  Reminder days:  %d\n", s.ReminderDays)
}
