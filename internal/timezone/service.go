package timezone

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone containing a coordinate.
type Service interface {
	Lookup(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
}

// NewService builds a tzf-backed lookup. The finder loads its compressed
// timezone shapes into memory once and is read-only afterwards, so one
// Service should be constructed and shared.
func NewService() (Service, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	return &service{finder: finder}, nil
}

// Lookup returns the IANA timezone name for the coordinate, such as
// "America/Los_Angeles". Coordinates over open ocean have no timezone
// polygon and produce an error.
func (s *service) Lookup(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("no timezone found for lat=%f, lng=%f", latitude, longitude)
	}
	return name, nil
}
