package zones

import "zonemap/internal/types"

// pointInRing reports whether the point lies inside the ring using the
// even-odd ray-casting rule: a horizontal ray toward increasing longitude
// toggles an inside flag on every edge it crosses. The ring is treated as
// cyclic, so an explicit closing vertex is harmless (the extra edge is
// degenerate and never crosses the ray). Comparisons are exact IEEE-754;
// a point sitting precisely on an edge or vertex can land on either side
// depending on rounding. That ambiguity is intrinsic to the rule and is
// deliberately not papered over with an epsilon.
func pointInRing(pt types.Coords, ring []types.Coords) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	lng, lat := pt.Longitude, pt.Latitude
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i].Longitude, ring[i].Latitude
		xj, yj := ring[j].Longitude, ring[j].Latitude
		// An edge with yi == yj fails the first test, so the division
		// below never sees a zero denominator.
		if (yi > lat) != (yj > lat) && lng < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// ringBounds returns the min and max corners of the ring's bounding box
// as [longitude, latitude] pairs, in the shape the R-tree index expects.
func ringBounds(ring []types.Coords) (min, max [2]float64) {
	min = [2]float64{180, 90}
	max = [2]float64{-180, -90}
	for _, v := range ring {
		if v.Longitude < min[0] {
			min[0] = v.Longitude
		}
		if v.Latitude < min[1] {
			min[1] = v.Latitude
		}
		if v.Longitude > max[0] {
			max[0] = v.Longitude
		}
		if v.Latitude > max[1] {
			max[1] = v.Latitude
		}
	}
	return min, max
}

// Centroid returns the arithmetic mean of the ring's vertices. It exists
// for label placement, not classification, and is not area-weighted.
// Callers rely on the registry's ≥3-vertex invariant; an empty ring is a
// programming error upstream.
func Centroid(ring []types.Coords) types.Coords {
	var lat, lng float64
	for _, v := range ring {
		lat += v.Latitude
		lng += v.Longitude
	}
	n := float64(len(ring))
	return types.NewCoords(lat/n, lng/n)
}
