package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	Home     string // data directory, holds the database and settings.json
	DBPath   string
	LogLevel string
	HTTPAddr string

	Geocoder struct {
		URL         string
		UserAgent   string
		Timeout     time.Duration
		MinInterval time.Duration
	}

	Sheets struct {
		CredentialsPath string
		SpreadsheetID   string
	}
}

// DefaultGeocoderURL is the public Nominatim search endpoint.
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org/search"

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: getEnv("JOBTRACK_LOG_LEVEL", "warn"),
		HTTPAddr: getEnv("JOBTRACK_HTTP_ADDR", "127.0.0.1:8080"),
	}

	home := os.Getenv("JOBTRACK_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("failed to get home directory: %w", err)
		}
		home = filepath.Join(userHome, ".jobtrack")
	}
	cfg.Home = home
	cfg.DBPath = getEnv("JOBTRACK_DB", filepath.Join(home, "jobtrack.db"))

	cfg.Geocoder.URL = getEnv("JOBTRACK_GEOCODER_URL", DefaultGeocoderURL)
	cfg.Geocoder.UserAgent = getEnv("JOBTRACK_GEOCODER_USER_AGENT", "job_application_tracker")

	var err error
	if cfg.Geocoder.Timeout, err = getDuration("JOBTRACK_GEOCODER_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}
	if cfg.Geocoder.MinInterval, err = getDuration("JOBTRACK_GEOCODER_INTERVAL", time.Second); err != nil {
		return cfg, err
	}

	cfg.Sheets.CredentialsPath = os.Getenv("JOBTRACK_SHEETS_CREDENTIALS")
	cfg.Sheets.SpreadsheetID = os.Getenv("JOBTRACK_SHEETS_SPREADSHEET_ID")

	return cfg, nil
}

// SettingsPath returns the location of settings.json.
func (c Config) SettingsPath() string {
	return filepath.Join(c.Home, "settings.json")
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
