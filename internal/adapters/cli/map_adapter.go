package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/example/jobtrack/internal/ports/primary"
)

// MapAdapter writes application markers as GeoJSON.
type MapAdapter struct {
	service primary.MapService
	out     io.Writer
}

// NewMapAdapter creates a new MapAdapter with the given service.
func NewMapAdapter(service primary.MapService, out io.Writer) *MapAdapter {
	return &MapAdapter{
		service: service,
		out:     out,
	}
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // longitude, latitude
}

// Export builds the markers and writes them to path, or to the adapter's
// writer when path is "-".
func (a *MapAdapter) Export(ctx context.Context, path string) error {
	set, err := a.service.BuildMarkers(ctx)
	if err != nil {
		return err
	}

	if path == "-" {
		return WriteGeoJSON(a.out, set)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteGeoJSON(f, set); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(a.out, "✓ Wrote %d markers to %s\n", len(set.Markers), path)
	if set.Skipped > 0 {
		fmt.Fprintf(a.out, "  %d application(s) skipped: location could not be resolved\n", set.Skipped)
	}
	return nil
}

// WriteGeoJSON encodes markers as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, set *primary.MarkerSet) error {
	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(set.Markers))}
	for _, m := range set.Markers {
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "Point", Coordinates: [2]float64{m.Longitude, m.Latitude}},
			Properties: map[string]any{
				"application_id": m.ApplicationID,
				"popup":          m.Popup,
				"tooltip":        m.Tooltip,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("failed to encode geojson: %w", err)
	}
	return nil
}
