package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"zonemap/internal/types"
	"zonemap/internal/zones"
)

// Sentinel errors surfaced to the transport layer. Validation failures are
// the caller's fault; ErrNoMatch is the geocoder finding nothing, which is
// distinct from a coordinate that simply falls outside every zone.
var (
	ErrInvalidLatitude  = errors.New("latitude must be a finite value between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a finite value between -180 and 180")
	ErrEmptyQuery       = errors.New("query must not be empty")
	ErrNoMatch          = errors.New("no location found for query")
)

// Classification is the answer for a raw coordinate. Zone is nil when the
// point falls outside every registered zone; that is a normal outcome,
// not an error.
type Classification struct {
	Coordinates types.Coords
	Zone        *zones.Zone
	Timezone    string
}

// Resolution is the answer for a free-form address query.
type Resolution struct {
	Query       string
	DisplayName string
	Classification
}

type service struct {
	store    *zones.Store
	geocoder GeocodeProvider
	tz       TimezoneProvider
	logger   *slog.Logger
}

// NewService wires the resolver with its collaborators. tz may be nil
// when timezone enrichment is disabled.
func NewService(store *zones.Store, geocoder GeocodeProvider, tz TimezoneProvider, logger *slog.Logger) Service {
	return &service{
		store:    store,
		geocoder: geocoder,
		tz:       tz,
		logger:   logger,
	}
}

// Classify validates the coordinate and classifies it against the current
// registry snapshot.
func (s *service) Classify(latitude, longitude float64) (*Classification, error) {
	if !types.ValidLatitude(latitude) {
		return nil, fmt.Errorf("latitude %v: %w", latitude, ErrInvalidLatitude)
	}
	if !types.ValidLongitude(longitude) {
		return nil, fmt.Errorf("longitude %v: %w", longitude, ErrInvalidLongitude)
	}

	pt := types.NewCoords(latitude, longitude)
	zone, _ := s.store.Current().FindZone(pt)

	c := &Classification{
		Coordinates: pt,
		Zone:        zone,
	}

	// Timezone is an enrichment; the zone answer stands even when the
	// lookup has nothing for the coordinate.
	if s.tz != nil {
		name, err := s.tz.Lookup(latitude, longitude)
		if err != nil {
			s.logger.Warn("timezone lookup failed",
				"latitude", latitude,
				"longitude", longitude,
				"error", err,
			)
		} else {
			c.Timezone = name
		}
	}

	return c, nil
}

// Resolve geocodes the query and classifies the resulting coordinate.
// When the geocoder finds nothing there is no coordinate to classify and
// ErrNoMatch is returned.
func (s *service) Resolve(ctx context.Context, query string) (*Resolution, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	match, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	if match == nil {
		return nil, fmt.Errorf("%q: %w", query, ErrNoMatch)
	}

	classification, err := s.Classify(match.Latitude, match.Longitude)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned unusable coordinate for %q: %w", query, err)
	}

	return &Resolution{
		Query:          query,
		DisplayName:    match.DisplayName,
		Classification: *classification,
	}, nil
}
