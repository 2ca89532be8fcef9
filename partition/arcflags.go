package partition

import (
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/util"
)

// MaxRegions is the number of regions this implementation can flag, bounded
// by the uint64 bit vector chosen to store them. Partitions with more
// regions are not supported.
const MaxRegions = 64

// ArcFlags is the result of preprocessing a graph against a set of regions:
// for every edge, a bit vector saying which regions' shortest paths the
// edge may participate in.
type ArcFlags struct {
	flags      map[int32]uint64
	nodeRegion map[int32]int
	regions    int
}

// RegionOf returns the region index node belongs to.
func (self ArcFlags) RegionOf(node int32) (int, bool) {
	region, ok := self.nodeRegion[node]
	return region, ok
}

// Test reports whether edge's region bit is set.
func (self ArcFlags) Test(edge graph.Edge, region int) bool {
	return self.flags[edge.ID]&(1<<uint(region)) != 0
}

// Preprocess computes arc flags for g against the regions produced by
// provider. For every region it identifies the boundary nodes (nodes with
// an incoming edge from outside the region), runs Dijkstra on the reverse
// graph from each one, and sets the region's bit on every edge that lies on
// a resulting shortest-path tree. Every edge with both endpoints in the
// region also gets the bit set, covering intra-region shortcuts.
func Preprocess(g *graph.RoadGraph, provider Provider) ArcFlags {
	regions := provider.Regions()
	if len(regions) > MaxRegions {
		panic("partition: more regions than arc flags can represent")
	}

	result := ArcFlags{
		flags:      make(map[int32]uint64),
		nodeRegion: make(map[int32]int),
		regions:    len(regions),
	}
	for i, region := range regions {
		for _, node := range region {
			result.nodeRegion[node] = i
		}
	}

	for i, region := range regions {
		memberOf := make(map[int32]bool, len(region))
		for _, node := range region {
			memberOf[node] = true
		}

		for _, node := range region {
			for _, edge := range g.Outgoing(node) {
				if memberOf[edge.Destination] {
					result.flags[edge.ID] |= 1 << uint(i)
				}
			}
		}

		for _, boundary := range boundaryNodes(g, memberOf) {
			markShortestPathTree(g, boundary, uint(i), result.flags)
		}
	}
	return result
}

// boundaryNodes returns the nodes of a region that have at least one
// incoming edge originating outside the region.
func boundaryNodes(g *graph.RoadGraph, memberOf map[int32]bool) []int32 {
	var boundary []int32
	for node := range memberOf {
		for _, edge := range g.Incoming(node) {
			if !memberOf[edge.Source] {
				boundary = append(boundary, node)
				break
			}
		}
	}
	return boundary
}

type pqItem struct {
	node int32
	cost float64
}

// treeEpsilon absorbs floating-point rounding when comparing a candidate
// shortest-path-tree edge's cost sum against the settled destination cost.
const treeEpsilon = 1e-9

// markShortestPathTree runs Dijkstra on the reverse graph from source, so
// cost[x] is the cost from x to source, then, for every edge (u -> v) in the
// forward graph, sets bit on it if it lies on the resulting shortest-path
// tree: cost[u] == cost[v] + w(u, v).
func markShortestPathTree(g *graph.RoadGraph, source int32, bit uint, flags map[int32]uint64) {
	cost := map[int32]float64{source: 0}
	queue := util.NewPriorityQueue[pqItem, float64](64)
	queue.Enqueue(pqItem{node: source, cost: 0}, 0)

	settled := make(map[int32]bool)
	for {
		curr, ok := queue.Dequeue()
		if !ok {
			break
		}
		if settled[curr.node] {
			continue
		}
		if best, ok := cost[curr.node]; !ok || curr.cost > best {
			continue
		}
		settled[curr.node] = true

		for _, edge := range g.Incoming(curr.node) {
			newCost := curr.cost + edge.Cost
			if best, ok := cost[edge.Source]; !ok || newCost < best {
				cost[edge.Source] = newCost
				queue.Enqueue(pqItem{node: edge.Source, cost: newCost}, newCost)
			}
		}
	}

	for v, distV := range cost {
		for _, edge := range g.Incoming(v) {
			distU, ok := cost[edge.Source]
			if !ok {
				continue
			}
			if distV+edge.Cost <= distU+treeEpsilon {
				flags[edge.ID] |= 1 << bit
			}
		}
	}
}
