package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/jobtrack/internal/ports/primary"
)

type mockMapService struct {
	set *primary.MarkerSet
}

func (m *mockMapService) BuildMarkers(ctx context.Context) (*primary.MarkerSet, error) {
	return m.set, nil
}

func TestMapAdapter_ExportFile(t *testing.T) {
	var out bytes.Buffer
	adapter := NewMapAdapter(&mockMapService{set: &primary.MarkerSet{
		Markers: []primary.Marker{{ApplicationID: 3, Latitude: 52.5, Longitude: 13.4, Popup: "Acme - Dev", Tooltip: "Berlin"}},
		Skipped: 1,
	}}, &out)

	path := filepath.Join(t.TempDir(), "apps.geojson")
	if err := adapter.Export(context.Background(), path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatalf("invalid geojson: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 1 {
		t.Fatalf("unexpected collection: %+v", fc)
	}
	coords := fc.Features[0].Geometry.Coordinates
	if coords[0] != 13.4 || coords[1] != 52.5 {
		t.Errorf("expected [lon, lat] order, got %v", coords)
	}
	if fc.Features[0].Properties["popup"] != "Acme - Dev" {
		t.Errorf("unexpected popup: %v", fc.Features[0].Properties["popup"])
	}

	if !strings.Contains(out.String(), "1 application(s) skipped") {
		t.Errorf("expected skipped note, got: %s", out.String())
	}
}

func TestMapAdapter_ExportStdout(t *testing.T) {
	var out bytes.Buffer
	adapter := NewMapAdapter(&mockMapService{set: &primary.MarkerSet{}}, &out)

	if err := adapter.Export(context.Background(), "-"); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(out.String(), `"features": []`) {
		t.Errorf("expected empty feature list, got: %s", out.String())
	}
}
