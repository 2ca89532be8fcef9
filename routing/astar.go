package routing

import "github.com/renblom/routeweaver/graph"

// AStar is best-first search biased by an admissible, consistent metric
// (normally the ALT landmark lower bound, but anything satisfying Metric
// works). A metric built for a fixed destination t; constructing a new
// AStar for a different t requires a metric retargeted at that t.
type AStar struct {
	g      *graph.RoadGraph
	metric Metric
}

// NewAStar wraps a road graph and a destination-specific metric for A*
// queries.
func NewAStar(g *graph.RoadGraph, metric Metric) AStar {
	return AStar{g: g, metric: metric}
}

// Cost returns the shortest-path cost from source to destination. The
// caller is responsible for having built metric against this destination.
func (self AStar) Cost(source, destination int32) (float64, bool) {
	result := search(forward(self.g), map[int32]float64{source: 0}, self.metric, acceptAll, destination, true)
	return result.Cost(destination)
}

// Path returns the shortest path from source to destination.
func (self AStar) Path(source, destination int32) (graph.Path, bool) {
	result := search(forward(self.g), map[int32]float64{source: 0}, self.metric, acceptAll, destination, true)
	return result.path(destination)
}

// SearchSpace returns the nodes settled while answering a source→destination
// query.
func (self AStar) SearchSpace(source, destination int32) []int32 {
	result := search(forward(self.g), map[int32]float64{source: 0}, self.metric, acceptAll, destination, true)
	return result.SearchSpace()
}
