package zones

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"zonemap/internal/types"
)

// LoadFile reads a GeoJSON FeatureCollection of zone polygons and builds
// a registry from it. Feature order in the file becomes registry priority
// order. Each feature must be a Polygon with a single outer ring (holes
// and MultiPolygons are rejected) carrying "id" and "name" properties;
// "color" is optional.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zones file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse zones file: %w", err)
	}

	zs := make([]Zone, 0, len(fc.Features))
	for i, f := range fc.Features {
		poly, ok := f.Geometry.(orb.Polygon)
		if !ok {
			return nil, fmt.Errorf("feature %d: unsupported geometry %T, want Polygon", i, f.Geometry)
		}
		if len(poly) != 1 {
			return nil, fmt.Errorf("feature %d: polygons with interior rings are not supported", i)
		}

		ring := poly[0]
		boundary := make([]types.Coords, 0, len(ring))
		for _, p := range ring {
			boundary = append(boundary, types.NewCoords(p.Lat(), p.Lon()))
		}
		// GeoJSON rings close explicitly; classification treats rings as
		// cyclic, so the duplicate vertex is dropped here.
		if n := len(boundary); n > 1 && boundary[0] == boundary[n-1] {
			boundary = boundary[:n-1]
		}

		zs = append(zs, Zone{
			ID:       f.Properties.MustString("id", ""),
			Name:     f.Properties.MustString("name", ""),
			Color:    f.Properties.MustString("color", ""),
			Boundary: boundary,
		})
	}

	reg, err := NewRegistry(zs)
	if err != nil {
		return nil, fmt.Errorf("invalid zones file: %w", err)
	}
	return reg, nil
}
