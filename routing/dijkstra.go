package routing

import "github.com/renblom/routeweaver/graph"

// Dijkstra is plain shortest-path search: the best-first skeleton with a
// zero estimator and no edge filter.
type Dijkstra struct {
	g *graph.RoadGraph
}

// NewDijkstra wraps a road graph for Dijkstra queries.
func NewDijkstra(g *graph.RoadGraph) Dijkstra {
	return Dijkstra{g: g}
}

// Cost returns the shortest-path cost from source to destination.
func (self Dijkstra) Cost(source, destination int32) (float64, bool) {
	result := search(forward(self.g), map[int32]float64{source: 0}, zeroMetric{}, acceptAll, destination, true)
	return result.Cost(destination)
}

// Path returns the shortest path from source to destination.
func (self Dijkstra) Path(source, destination int32) (graph.Path, bool) {
	result := search(forward(self.g), map[int32]float64{source: 0}, zeroMetric{}, acceptAll, destination, true)
	return result.path(destination)
}

// SearchSpace returns the nodes settled while answering a source→destination
// query.
func (self Dijkstra) SearchSpace(source, destination int32) []int32 {
	result := search(forward(self.g), map[int32]float64{source: 0}, zeroMetric{}, acceptAll, destination, true)
	return result.SearchSpace()
}

// OneToAll runs Dijkstra from a single source and returns the cost to every
// reachable node. Used by ALT table construction.
func OneToAll(g *graph.RoadGraph, source int32) map[int32]float64 {
	result := search(forward(g), map[int32]float64{source: 0}, zeroMetric{}, acceptAll, 0, false)
	return result.cost
}

// OneToAllReverse runs Dijkstra over the reverse graph from a single source,
// returning, for every node v that can reach source, the cost of the
// source-bound path. Needed alongside OneToAll because road graphs may
// contain one-way edges: cost(v, L) is not generally cost(L, v).
func OneToAllReverse(g *graph.RoadGraph, source int32) map[int32]float64 {
	result := search(backward(g), map[int32]float64{source: 0}, zeroMetric{}, acceptAll, 0, false)
	return result.cost
}

// MultiSource runs Dijkstra from several sources at once, each with its own
// initial cost, and returns the cost to every reachable node. Used by the
// greedy-farthest landmark provider.
func MultiSource(g *graph.RoadGraph, sources map[int32]float64) map[int32]float64 {
	result := search(forward(g), sources, zeroMetric{}, acceptAll, 0, false)
	return result.cost
}
