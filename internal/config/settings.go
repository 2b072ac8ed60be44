package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/jobtrack/internal/core/application"
)

// Themes lists the accepted theme names.
var Themes = []string{"solar", "darkly", "superhero", "cosmo", "flatly", "litera"}

// Settings are user preferences consumed by the presentation layer.
type Settings struct {
	Theme          string `json:"theme"`
	DefaultStatus  string `json:"default_status"`
	Email          string `json:"email"`
	MailingEnabled bool   `json:"mailing_enabled"`
	ReminderDays   int    `json:"reminder_days"` // default reminder offset for new applications; 0 disables
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:         "solar",
		DefaultStatus: string(application.StatusApplied),
		ReminderDays:  7,
	}
}

// Validate checks that theme and default status are known values.
func (s *Settings) Validate() error {
	if !slices.Contains(Themes, s.Theme) {
		return &application.ValidationError{
			Field:  "theme",
			Reason: fmt.Sprintf("unknown theme %q (valid: %s)", s.Theme, strings.Join(Themes, ", ")),
		}
	}
	if !application.Status(s.DefaultStatus).Valid() {
		return &application.ValidationError{
			Field:  "default_status",
			Reason: fmt.Sprintf("invalid status %q", s.DefaultStatus),
		}
	}
	if s.ReminderDays < 0 {
		return &application.ValidationError{Field: "reminder_days", Reason: "must not be negative"}
	}
	return nil
}
