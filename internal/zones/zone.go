package zones

import (
	"errors"
	"fmt"

	"zonemap/internal/types"
)

// Validation errors reported at registry construction time. The classifier
// never re-validates; a registry that exists is a registry that passed.
var (
	ErrEmptyID       = errors.New("zone id must not be empty")
	ErrEmptyName     = errors.New("zone name must not be empty")
	ErrShortBoundary = errors.New("zone boundary needs at least 3 distinct vertices")
	ErrDuplicateID   = errors.New("duplicate zone id")
)

// Zone is a named polygonal region. Color is a display attribute carried
// through for callers; it plays no part in classification.
type Zone struct {
	ID       string
	Name     string
	Color    string
	Boundary []types.Coords
}

// Validate checks the per-zone invariants. A boundary may arrive with the
// first vertex repeated at the end (closed GeoJSON-style ring); the closing
// duplicate does not count toward the vertex minimum.
func (z *Zone) Validate() error {
	if z.ID == "" {
		return ErrEmptyID
	}
	if z.Name == "" {
		return fmt.Errorf("zone %q: %w", z.ID, ErrEmptyName)
	}
	n := len(z.Boundary)
	if n > 0 && z.Boundary[0] == z.Boundary[n-1] {
		n--
	}
	if n < 3 {
		return fmt.Errorf("zone %q: %w", z.ID, ErrShortBoundary)
	}
	return nil
}
