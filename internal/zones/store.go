package zones

import "sync/atomic"

// Store holds the registry snapshot the application currently serves.
// A reload builds a full new Registry and swaps the pointer in one
// atomic step; classifications in flight keep whichever snapshot they
// already read, so they never observe a half-reloaded zone set.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore returns a store serving the given registry.
func NewStore(r *Registry) *Store {
	s := &Store{}
	s.current.Store(r)
	return s
}

// Current returns the live snapshot.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Swap publishes a new snapshot and returns the one it replaced.
func (s *Store) Swap(r *Registry) *Registry {
	return s.current.Swap(r)
}
