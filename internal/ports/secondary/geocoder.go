package secondary

import (
	"context"
	"errors"
)

// ErrLocationNotFound is returned by a Geocoder when the lookup succeeded
// but matched nothing.
var ErrLocationNotFound = errors.New("location not found")

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves free-form addresses to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Coordinates, error)
}
