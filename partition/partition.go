// Package partition implements region partitioning of a road graph and the
// arc-flag preprocessing that region structure enables.
package partition

import (
	"github.com/renblom/routeweaver/geo"
	"github.com/renblom/routeweaver/graph"
)

// Provider splits a graph's nodes into disjoint regions whose union is the
// full node set. Regions are returned in a stable order: region index is
// the array index, and that index is what arc flags bit-test against, so
// an empty region must still appear in the output to keep flag positions
// stable.
type Provider interface {
	Regions() [][]int32
}

// RectProvider splits nodes by whether they fall inside a single
// axis-aligned geographic rectangle: region 0 is "inside" (bounds
// inclusive), region 1 is everything else.
type RectProvider struct {
	g    *graph.RoadGraph
	rect geo.Rect
}

// NewRectProvider builds a two-region provider over g using rect as the
// inside/outside boundary.
func NewRectProvider(g *graph.RoadGraph, rect geo.Rect) RectProvider {
	return RectProvider{g: g, rect: rect}
}

// Regions returns exactly two node sets: region 0 (inside rect), region 1
// (outside). Either may be empty, but both are always present.
func (self RectProvider) Regions() [][]int32 {
	inside := make([]int32, 0)
	outside := make([]int32, 0)
	for _, node := range self.g.RoadNodes() {
		if self.rect.Contains(node.Loc) {
			inside = append(inside, node.ID)
		} else {
			outside = append(outside, node.ID)
		}
	}
	return [][]int32{inside, outside}
}
