package zones

import (
	"fmt"
	"sort"

	"github.com/tidwall/rtree"

	"zonemap/internal/types"
)

// Registry is an immutable, ordered collection of zones. Order matters:
// when zones overlap, the earliest zone containing a point wins. A built
// Registry never changes, so any number of goroutines may classify
// against it concurrently; to change the zone set, build a new Registry
// and publish it through a Store.
type Registry struct {
	zones []Zone
	byID  map[string]int
	index rtree.RTreeG[int]
}

// NewRegistry validates the zones and builds the lookup structures. Zones
// and their boundaries are copied, so the caller's slices can be reused
// freely afterwards. Validation failures (empty id or name, too few
// vertices, duplicate id) abort construction; nothing is classified
// against a half-built registry.
func NewRegistry(zs []Zone) (*Registry, error) {
	r := &Registry{
		zones: make([]Zone, len(zs)),
		byID:  make(map[string]int, len(zs)),
	}
	for i, z := range zs {
		if err := z.Validate(); err != nil {
			return nil, fmt.Errorf("zone %d: %w", i, err)
		}
		if _, ok := r.byID[z.ID]; ok {
			return nil, fmt.Errorf("zone %d: %w: %q", i, ErrDuplicateID, z.ID)
		}
		z.Boundary = append([]types.Coords(nil), z.Boundary...)
		r.zones[i] = z
		r.byID[z.ID] = i
		min, max := ringBounds(z.Boundary)
		r.index.Insert(min, max, i)
	}
	return r, nil
}

// FindZone returns the first zone in registry order whose boundary
// contains the point, or (nil, false) when the point is outside every
// zone. The R-tree narrows the scan to zones whose bounding box covers
// the point; candidates are replayed in registry order, so the answer is
// identical to a plain front-to-back scan over all zones.
func (r *Registry) FindZone(pt types.Coords) (*Zone, bool) {
	q := [2]float64{pt.Longitude, pt.Latitude}
	var candidates []int
	r.index.Search(q, q, func(_, _ [2]float64, i int) bool {
		candidates = append(candidates, i)
		return true
	})
	sort.Ints(candidates)
	for _, i := range candidates {
		if pointInRing(pt, r.zones[i].Boundary) {
			return &r.zones[i], true
		}
	}
	return nil, false
}

// ByID returns the zone with the given id.
func (r *Registry) ByID(id string) (*Zone, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.zones[i], true
}

// Zones returns the zones in priority order. The slice is shared with the
// registry and must be treated as read-only.
func (r *Registry) Zones() []Zone {
	return r.zones
}

// Len returns the number of registered zones.
func (r *Registry) Len() int {
	return len(r.zones)
}
