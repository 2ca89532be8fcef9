package geo

import "github.com/paulmach/orb"

// Rect is an axis-aligned geographic rectangle, backed by orb.Bound so that
// containment tests reuse a maintained geometry library rather than
// hand-rolled comparisons.
type Rect struct {
	bound orb.Bound
}

// NewRect builds a rectangle from its latitude/longitude bounds.
func NewRect(latMin, latMax, lonMin, lonMax float32) Rect {
	return Rect{
		bound: orb.Bound{
			Min: orb.Point{float64(lonMin), float64(latMin)},
			Max: orb.Point{float64(lonMax), float64(latMax)},
		},
	}
}

// Contains reports whether c lies inside the rectangle, bounds inclusive.
func (r Rect) Contains(c Coord) bool {
	return r.bound.Contains(orb.Point{float64(c.Lon), float64(c.Lat)})
}
