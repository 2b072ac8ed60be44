package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/logging"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// MapServiceImpl implements the MapService interface.
type MapServiceImpl struct {
	appRepo  secondary.ApplicationRepository
	geocoder secondary.Geocoder
	logger   *logging.Logger
}

// NewMapService creates a new MapService with injected dependencies.
func NewMapService(appRepo secondary.ApplicationRepository, geocoder secondary.Geocoder, logger *logging.Logger) *MapServiceImpl {
	if logger == nil {
		logger = logging.Nop()
	}
	return &MapServiceImpl{
		appRepo:  appRepo,
		geocoder: geocoder,
		logger:   logger,
	}
}

// BuildMarkers geocodes every application that has a location and is not
// rejected. A failed lookup skips that application; it never fails the build.
// Each distinct location is looked up once.
func (s *MapServiceImpl) BuildMarkers(ctx context.Context) (*primary.MarkerSet, error) {
	records, err := s.appRepo.List(ctx, secondary.ApplicationFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	set := &primary.MarkerSet{}
	resolved := make(map[string]*secondary.Coordinates)

	for _, app := range recordsToApplications(records) {
		if !mappable(app) {
			continue
		}

		key := strings.ToLower(app.Location)
		coords, seen := resolved[key]
		if !seen {
			coords, err = s.geocoder.Geocode(ctx, app.Location)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				if errors.Is(err, secondary.ErrLocationNotFound) {
					s.logger.Warn("location not found", "application_id", app.ID, "location", app.Location)
				} else {
					s.logger.Warn("geocoding failed", "application_id", app.ID, "location", app.Location, "error", err)
				}
				coords = nil
			}
			resolved[key] = coords
		}

		if coords == nil {
			set.Skipped++
			continue
		}

		set.Markers = append(set.Markers, primary.Marker{
			ApplicationID: app.ID,
			Latitude:      coords.Latitude,
			Longitude:     coords.Longitude,
			Popup:         fmt.Sprintf("%s - %s", app.Company, app.Position),
			Tooltip:       app.Location,
		})
	}

	s.logger.Info("map built", "markers", len(set.Markers), "skipped", set.Skipped)
	return set, nil
}

func mappable(app *application.Application) bool {
	return strings.TrimSpace(app.Location) != "" && app.Status != application.StatusRejected
}

// Ensure MapServiceImpl implements the interface
var _ primary.MapService = (*MapServiceImpl)(nil)
