// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/jobtrack/internal/config"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// SettingsStore implements secondary.SettingsStore as a JSON file.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a settings store backed by the file at path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads the settings file. A missing file yields the defaults; keys
// absent from the file keep their default values.
func (s *SettingsStore) Load(ctx context.Context) (*config.Settings, error) {
	settings := config.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	return settings, nil
}

// Save writes the settings atomically via a temp file and rename.
func (s *SettingsStore) Save(ctx context.Context, settings *config.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// Path returns the settings file location.
func (s *SettingsStore) Path() string {
	return s.path
}

// Ensure SettingsStore implements the interface
var _ secondary.SettingsStore = (*SettingsStore)(nil)
