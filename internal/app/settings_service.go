package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/jobtrack/internal/config"
	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// SettingsServiceImpl implements the SettingsService interface.
type SettingsServiceImpl struct {
	store secondary.SettingsStore
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store secondary.SettingsStore) *SettingsServiceImpl {
	return &SettingsServiceImpl{store: store}
}

// GetSettings returns the stored settings, or the defaults.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (*config.Settings, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies the patch, validates the result and saves it.
// Nothing is written when validation fails.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, patch primary.SettingsPatch) (*config.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Theme != nil {
		settings.Theme = strings.ToLower(strings.TrimSpace(*patch.Theme))
	}
	if patch.DefaultStatus != nil {
		status, err := application.ParseStatus(*patch.DefaultStatus)
		if err != nil {
			return nil, err
		}
		settings.DefaultStatus = string(status)
	}
	if patch.Email != nil {
		settings.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.MailingEnabled != nil {
		settings.MailingEnabled = *patch.MailingEnabled
	}
	if patch.ReminderDays != nil {
		settings.ReminderDays = *patch.ReminderDays
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

// SettingsPath returns where settings are stored.
func (s *SettingsServiceImpl) SettingsPath() string {
	return s.store.Path()
}

// Ensure SettingsServiceImpl implements the interface
var _ primary.SettingsService = (*SettingsServiceImpl)(nil)
