package routing

import "github.com/renblom/routeweaver/graph"

// ShortestPath is the capability every query algorithm in this package
// implements: Dijkstra, AStar, and ArcFlagQuery.
type ShortestPath interface {
	Cost(source, destination int32) (float64, bool)
	Path(source, destination int32) (graph.Path, bool)
	SearchSpace(source, destination int32) []int32
}

var (
	_ ShortestPath = Dijkstra{}
	_ ShortestPath = AStar{}
	_ ShortestPath = ArcFlagQuery{}
)
