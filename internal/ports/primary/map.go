package primary

import "context"

// MapService defines the primary port for the application map.
type MapService interface {
	// BuildMarkers geocodes every mappable application.
	BuildMarkers(ctx context.Context) (*MarkerSet, error)
}

// Marker is one application placed on the map.
type Marker struct {
	ApplicationID int64
	Latitude      float64
	Longitude     float64
	Popup         string // "Company - Position"
	Tooltip       string // location as entered
}

// MarkerSet is the result of a map build.
type MarkerSet struct {
	Markers []Marker
	Skipped int // applications whose location could not be resolved
}
