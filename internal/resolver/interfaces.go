package resolver

import (
	"context"

	"zonemap/internal/providers/nominatim"
)

// Service classifies coordinates and free-form address queries against
// the current zone registry snapshot.
type Service interface {
	// Classify assigns a raw coordinate to a zone, or to none.
	Classify(latitude, longitude float64) (*Classification, error)
	// Resolve geocodes an address query and classifies the best match.
	Resolve(ctx context.Context, query string) (*Resolution, error)
}

// GeocodeProvider is the slice of the Nominatim client the resolver
// needs. A (nil, nil) return means the query matched nothing.
type GeocodeProvider interface {
	Search(ctx context.Context, query string) (*nominatim.Match, error)
}

// TimezoneProvider resolves the IANA timezone for a coordinate.
type TimezoneProvider interface {
	Lookup(latitude, longitude float64) (string, error)
}
