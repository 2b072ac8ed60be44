// Package wire provides dependency injection for jobtrack.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/jobtrack/internal/adapters/cli"
	"github.com/example/jobtrack/internal/adapters/filesystem"
	"github.com/example/jobtrack/internal/adapters/geocoding"
	"github.com/example/jobtrack/internal/adapters/sheets"
	"github.com/example/jobtrack/internal/adapters/sqlite"
	"github.com/example/jobtrack/internal/app"
	"github.com/example/jobtrack/internal/config"
	"github.com/example/jobtrack/internal/db"
	"github.com/example/jobtrack/internal/logging"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/ports/secondary"
)

var (
	cfg      config.Config
	logger   *logging.Logger
	database *sql.DB

	applicationService primary.ApplicationService
	statsService       primary.StatsService
	mapService         primary.MapService
	exportService      primary.ExportService
	settingsService    primary.SettingsService
	once               sync.Once
)

// Config returns the loaded runtime configuration.
func Config() config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the process-wide structured logger.
func Logger() *logging.Logger {
	once.Do(initServices)
	return logger
}

// ApplicationService returns the singleton ApplicationService instance.
func ApplicationService() primary.ApplicationService {
	once.Do(initServices)
	return applicationService
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

// MapService returns the singleton MapService instance.
func MapService() primary.MapService {
	once.Do(initServices)
	return mapService
}

// ExportService returns the singleton ExportService instance.
func ExportService() primary.ExportService {
	once.Do(initServices)
	return exportService
}

// SettingsService returns the singleton SettingsService instance.
func SettingsService() primary.SettingsService {
	once.Do(initServices)
	return settingsService
}

// Shutdown flushes the logger and closes the database if services were
// initialized.
func Shutdown() {
	if logger != nil {
		_ = logger.Sync()
	}
	if database != nil {
		_ = database.Close()
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger = logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err = db.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary adapters
	appRepo := sqlite.NewApplicationRepository(database)
	historyRepo := sqlite.NewHistoryRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(historyRepo)
	settingsStore := filesystem.NewSettingsStore(cfg.SettingsPath())

	geocoder, err := geocoding.NewClient(geocoding.Config{
		BaseURL:     cfg.Geocoder.URL,
		UserAgent:   cfg.Geocoder.UserAgent,
		Timeout:     cfg.Geocoder.Timeout,
		MinInterval: cfg.Geocoder.MinInterval,
	})
	if err != nil {
		logger.Fatalf("failed to configure geocoder: %v", err)
	}

	// Sheets export stays disabled until credentials are configured.
	var sheetWriter secondary.SheetWriter
	if cfg.Sheets.CredentialsPath != "" {
		client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
		if err != nil {
			logger.Warn("sheets export unavailable", "error", err)
		} else {
			sheetWriter = client
		}
	}

	// Services (primary ports)
	applicationService = app.NewApplicationService(appRepo, historyRepo, logWriter, logger)
	statsService = app.NewStatsService(appRepo)
	mapService = app.NewMapService(appRepo, geocoder, logger)
	exportService = app.NewExportService(appRepo, sheetWriter, logger)
	settingsService = app.NewSettingsService(settingsStore)
}

// ApplicationAdapter returns a new ApplicationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ApplicationAdapter() *cliadapter.ApplicationAdapter {
	return ApplicationAdapterWithOutput(os.Stdout)
}

// ApplicationAdapterWithOutput returns a new ApplicationAdapter writing to the given output.
func ApplicationAdapterWithOutput(out io.Writer) *cliadapter.ApplicationAdapter {
	once.Do(initServices)
	return cliadapter.NewApplicationAdapter(applicationService, out)
}

// StatsAdapter returns a new StatsAdapter writing to stdout.
func StatsAdapter() *cliadapter.StatsAdapter {
	return StatsAdapterWithOutput(os.Stdout)
}

// StatsAdapterWithOutput returns a new StatsAdapter writing to the given output.
func StatsAdapterWithOutput(out io.Writer) *cliadapter.StatsAdapter {
	once.Do(initServices)
	return cliadapter.NewStatsAdapter(statsService, out)
}

// MapAdapter returns a new MapAdapter writing to stdout.
func MapAdapter() *cliadapter.MapAdapter {
	return MapAdapterWithOutput(os.Stdout)
}

// MapAdapterWithOutput returns a new MapAdapter writing to the given output.
func MapAdapterWithOutput(out io.Writer) *cliadapter.MapAdapter {
	once.Do(initServices)
	return cliadapter.NewMapAdapter(mapService, out)
}

// SettingsAdapter returns a new SettingsAdapter writing to stdout.
func SettingsAdapter() *cliadapter.SettingsAdapter {
	return SettingsAdapterWithOutput(os.Stdout)
}

// SettingsAdapterWithOutput returns a new SettingsAdapter writing to the given output.
func SettingsAdapterWithOutput(out io.Writer) *cliadapter.SettingsAdapter {
	once.Do(initServices)
	return cliadapter.NewSettingsAdapter(settingsService, out)
}

// ExportAdapter returns a new ExportAdapter writing to stdout.
func ExportAdapter() *cliadapter.ExportAdapter {
	return ExportAdapterWithOutput(os.Stdout)
}

// ExportAdapterWithOutput returns a new ExportAdapter writing to the given output.
func ExportAdapterWithOutput(out io.Writer) *cliadapter.ExportAdapter {
	once.Do(initServices)
	return cliadapter.NewExportAdapter(exportService, out)
}
