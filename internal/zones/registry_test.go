package zones

import (
	"errors"
	"fmt"
	"testing"

	"zonemap/internal/types"
)

func square(lat, lng, size float64) []types.Coords {
	return []types.Coords{
		{Latitude: lat + size, Longitude: lng},
		{Latitude: lat + size, Longitude: lng + size},
		{Latitude: lat, Longitude: lng + size},
		{Latitude: lat, Longitude: lng},
	}
}

func mustRegistry(t *testing.T, zs ...Zone) *Registry {
	t.Helper()
	r, err := NewRegistry(zs)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

func TestNewRegistry_Validation(t *testing.T) {
	valid := square(47.59, -122.20, 0.02)

	tests := []struct {
		name    string
		zones   []Zone
		wantErr error
	}{
		{
			name:    "empty id",
			zones:   []Zone{{Name: "Nameless", Boundary: valid}},
			wantErr: ErrEmptyID,
		},
		{
			name:    "empty name",
			zones:   []Zone{{ID: "z1", Boundary: valid}},
			wantErr: ErrEmptyName,
		},
		{
			name: "two-vertex boundary",
			zones: []Zone{{ID: "z1", Name: "Sliver", Boundary: []types.Coords{
				{Latitude: 47.60, Longitude: -122.20},
				{Latitude: 47.61, Longitude: -122.19},
			}}},
			wantErr: ErrShortBoundary,
		},
		{
			name: "closed ring with only two distinct vertices",
			zones: []Zone{{ID: "z1", Name: "Sliver", Boundary: []types.Coords{
				{Latitude: 47.60, Longitude: -122.20},
				{Latitude: 47.61, Longitude: -122.19},
				{Latitude: 47.60, Longitude: -122.20},
			}}},
			wantErr: ErrShortBoundary,
		},
		{
			name: "duplicate id",
			zones: []Zone{
				{ID: "z1", Name: "First", Boundary: valid},
				{ID: "z1", Name: "Second", Boundary: square(47.61, -122.18, 0.02)},
			},
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.zones)
			if err == nil {
				t.Fatalf("NewRegistry() expected error, got none")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRegistry_AcceptsClosedRing(t *testing.T) {
	ring := square(47.59, -122.20, 0.02)
	closed := append(append([]types.Coords(nil), ring...), ring[0])
	r := mustRegistry(t, Zone{ID: "z1", Name: "Closed", Boundary: closed})
	if _, ok := r.FindZone(types.NewCoords(47.60, -122.19)); !ok {
		t.Errorf("FindZone() missed interior point of explicitly closed ring")
	}
}

func TestRegistry_FindZone(t *testing.T) {
	west := Zone{ID: "west", Name: "West Square", Color: "#1f77b4", Boundary: square(47.5901, -122.2015, 0.02)}
	east := Zone{ID: "east", Name: "East Square", Color: "#ff7f0e", Boundary: square(47.5901, -122.1815, 0.02)}

	r := mustRegistry(t, west, east)

	tests := []struct {
		name   string
		pt     types.Coords
		wantID string
		wantOK bool
	}{
		{
			name:   "inside west square",
			pt:     types.NewCoords(47.60, -122.19),
			wantID: "west",
			wantOK: true,
		},
		{
			name:   "inside east square",
			pt:     types.NewCoords(47.60, -122.17),
			wantID: "east",
			wantOK: true,
		},
		{
			name:   "far outside every zone",
			pt:     types.NewCoords(47.60, -122.00),
			wantOK: false,
		},
		{
			name:   "wrong hemisphere",
			pt:     types.NewCoords(-33.86, 151.21),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, ok := r.FindZone(tt.pt)
			if ok != tt.wantOK {
				t.Fatalf("FindZone() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && z.ID != tt.wantID {
				t.Errorf("FindZone() = %q, want %q", z.ID, tt.wantID)
			}
		})
	}
}

// When zones overlap, the zone registered earlier wins no matter which is
// geometrically larger. Reversing registration order must flip the answer.
func TestRegistry_FindZone_OverlapPriority(t *testing.T) {
	small := Zone{ID: "core", Name: "Core", Boundary: square(47.595, -122.195, 0.01)}
	big := Zone{ID: "metro", Name: "Metro", Boundary: square(47.58, -122.21, 0.05)}
	pt := types.NewCoords(47.60, -122.19) // inside both

	coreFirst := mustRegistry(t, small, big)
	if z, ok := coreFirst.FindZone(pt); !ok || z.ID != "core" {
		t.Errorf("core-first registry: FindZone() = %v, want core", z)
	}

	metroFirst := mustRegistry(t, big, small)
	if z, ok := metroFirst.FindZone(pt); !ok || z.ID != "metro" {
		t.Errorf("metro-first registry: FindZone() = %v, want metro", z)
	}
}

func TestRegistry_FindZone_Empty(t *testing.T) {
	r := mustRegistry(t)
	points := []types.Coords{
		types.NewCoords(47.60, -122.19),
		types.NewCoords(0, 0),
		types.NewCoords(90, 180),
	}
	for _, pt := range points {
		if z, ok := r.FindZone(pt); ok {
			t.Errorf("empty registry: FindZone(%+v) = %v, want none", pt, z)
		}
	}
}

// Out-of-range coordinates are rejected by the caller, but the registry
// itself must still return a deterministic no-match for them.
func TestRegistry_FindZone_OutOfRangeCoordinate(t *testing.T) {
	r := mustRegistry(t, Zone{ID: "z1", Name: "Zone", Boundary: square(47.59, -122.20, 0.02)})
	if z, ok := r.FindZone(types.NewCoords(400, -500)); ok {
		t.Errorf("FindZone(out-of-range) = %v, want none", z)
	}
}

func TestRegistry_ByID(t *testing.T) {
	r := mustRegistry(t,
		Zone{ID: "west", Name: "West", Boundary: square(47.59, -122.20, 0.02)},
		Zone{ID: "east", Name: "East", Boundary: square(47.59, -122.18, 0.02)},
	)

	z, ok := r.ByID("east")
	if !ok {
		t.Fatal("ByID(east) not found")
	}
	if z.Name != "East" {
		t.Errorf("ByID(east).Name = %q, want East", z.Name)
	}
	if _, ok := r.ByID("missing"); ok {
		t.Error("ByID(missing) unexpectedly found")
	}
}

func TestRegistry_ZonesOrder(t *testing.T) {
	var zs []Zone
	for i := 0; i < 8; i++ {
		zs = append(zs, Zone{
			ID:       fmt.Sprintf("z%d", i),
			Name:     fmt.Sprintf("Zone %d", i),
			Boundary: square(float64(i), float64(i), 0.5),
		})
	}
	r := mustRegistry(t, zs...)
	if r.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", r.Len())
	}
	for i, z := range r.Zones() {
		if z.ID != fmt.Sprintf("z%d", i) {
			t.Errorf("Zones()[%d].ID = %q, want z%d", i, z.ID, i)
		}
	}
}

// The registry copies its input; mutating the caller's boundary slice
// afterwards must not leak into classification.
func TestNewRegistry_CopiesBoundaries(t *testing.T) {
	ring := square(47.59, -122.20, 0.02)
	r := mustRegistry(t, Zone{ID: "z1", Name: "Zone", Boundary: ring})

	ring[0] = types.NewCoords(0, 0)
	ring[1] = types.NewCoords(0, 0)

	if _, ok := r.FindZone(types.NewCoords(47.60, -122.19)); !ok {
		t.Error("FindZone() affected by caller-side boundary mutation")
	}
}
