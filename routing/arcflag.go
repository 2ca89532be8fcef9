package routing

import (
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/partition"
)

// ArcFlagQuery answers shortest-path queries by restricting Dijkstra to
// edges flagged for the destination's region, using arc flags computed by
// partition.Preprocess. Heuristic is zero: the speedup comes entirely from
// pruning edges the filter rejects.
type ArcFlagQuery struct {
	g     *graph.RoadGraph
	flags partition.ArcFlags
}

// NewArcFlagQuery wraps a road graph and its precomputed arc flags.
func NewArcFlagQuery(g *graph.RoadGraph, flags partition.ArcFlags) ArcFlagQuery {
	return ArcFlagQuery{g: g, flags: flags}
}

func (self ArcFlagQuery) filterFor(destination int32) (EdgeFilter, bool) {
	region, ok := self.flags.RegionOf(destination)
	if !ok {
		return nil, false
	}
	return func(edge graph.Edge) bool { return self.flags.Test(edge, region) }, true
}

// Cost returns the shortest-path cost from source to destination.
func (self ArcFlagQuery) Cost(source, destination int32) (float64, bool) {
	filter, ok := self.filterFor(destination)
	if !ok {
		return 0, false
	}
	result := search(forward(self.g), map[int32]float64{source: 0}, zeroMetric{}, filter, destination, true)
	return result.Cost(destination)
}

// Path returns the shortest path from source to destination.
func (self ArcFlagQuery) Path(source, destination int32) (graph.Path, bool) {
	filter, ok := self.filterFor(destination)
	if !ok {
		return graph.Path{}, false
	}
	result := search(forward(self.g), map[int32]float64{source: 0}, zeroMetric{}, filter, destination, true)
	return result.path(destination)
}

// SearchSpace returns the nodes settled while answering a source→destination
// query.
func (self ArcFlagQuery) SearchSpace(source, destination int32) []int32 {
	filter, ok := self.filterFor(destination)
	if !ok {
		return nil
	}
	result := search(forward(self.g), map[int32]float64{source: 0}, zeroMetric{}, filter, destination, true)
	return result.SearchSpace()
}
