package zones

import (
	"sync"
	"testing"

	"zonemap/internal/types"
)

func TestStore_Swap(t *testing.T) {
	old := mustRegistry(t, Zone{ID: "old", Name: "Old", Boundary: square(47.59, -122.20, 0.02)})
	s := NewStore(old)

	if s.Current() != old {
		t.Fatal("Current() does not return the initial registry")
	}

	fresh := mustRegistry(t,
		Zone{ID: "old", Name: "Old", Boundary: square(47.59, -122.20, 0.02)},
		Zone{ID: "new", Name: "New", Boundary: square(47.59, -122.18, 0.02)},
	)
	replaced := s.Swap(fresh)
	if replaced != old {
		t.Error("Swap() did not return the previous registry")
	}
	if s.Current() != fresh {
		t.Error("Current() does not return the swapped-in registry")
	}
}

// A snapshot captured before a swap must keep answering from the old zone
// set; readers only see the new set once they re-read the store.
func TestStore_SnapshotIsolation(t *testing.T) {
	pt := types.NewCoords(47.60, -122.19)
	v1 := mustRegistry(t, Zone{ID: "v1", Name: "V1", Boundary: square(47.59, -122.20, 0.02)})
	v2 := mustRegistry(t, Zone{ID: "v2", Name: "V2", Boundary: square(47.59, -122.20, 0.02)})

	s := NewStore(v1)
	snap := s.Current()
	s.Swap(v2)

	if z, ok := snap.FindZone(pt); !ok || z.ID != "v1" {
		t.Errorf("pre-swap snapshot FindZone() = %v, want v1", z)
	}
	if z, ok := s.Current().FindZone(pt); !ok || z.ID != "v2" {
		t.Errorf("post-swap FindZone() = %v, want v2", z)
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	pt := types.NewCoords(47.60, -122.19)
	s := NewStore(mustRegistry(t, Zone{ID: "z", Name: "Zone", Boundary: square(47.59, -122.20, 0.02)}))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if _, ok := s.Current().FindZone(pt); !ok {
					t.Error("FindZone() lost the zone during concurrent reads")
					return
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		s.Swap(mustRegistry(t, Zone{ID: "z", Name: "Zone", Boundary: square(47.59, -122.20, 0.02)}))
	}
	wg.Wait()
}
