// Package routing implements the shared best-first exploration skeleton and
// the three query algorithms built on it: plain Dijkstra, A* with a
// pluggable admissible metric, and arc-flag-filtered Dijkstra. It also
// implements strongly-connected-component reduction, used to shrink a graph
// to a single connected core before preprocessing.
package routing

import (
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/util"
)

// Metric estimates a lower bound on the remaining cost from v to a fixed
// destination. Zero is always a valid (if uninformative) metric, which is
// what plain Dijkstra uses.
type Metric interface {
	Estimate(v int32) float64
}

// zeroMetric is the estimator used by Dijkstra and arc-flag search: it
// never biases exploration.
type zeroMetric struct{}

func (zeroMetric) Estimate(int32) float64 { return 0 }

// EdgeFilter decides whether an edge may be relaxed during exploration.
// Dijkstra and A* use a filter that accepts everything; arc-flag search
// tests a region bit.
type EdgeFilter func(edge graph.Edge) bool

func acceptAll(graph.Edge) bool { return true }

// pqItem is the payload carried by the skeleton's priority queue.
type pqItem struct {
	node int32
	cost float64
}

// Result is the outcome of one completed best-first exploration: the
// best-known cost to every reached node (final for settled nodes), and
// enough parent-edge information to reconstruct a path to any of them.
type Result struct {
	cost   map[int32]float64
	parent map[int32]graph.Edge
	order  []int32
}

// adjacency returns the edges to relax from node and, for one of those
// edges, the neighbor it leads to. Forward search passes (Outgoing,
// Destination); reverse search (used to build the ALT "cost to landmark"
// table over one-way roads) passes (Incoming, Source).
type adjacency struct {
	edges    func(node int32) []graph.Edge
	neighbor func(edge graph.Edge) int32
}

func forward(g *graph.RoadGraph) adjacency {
	return adjacency{edges: g.Outgoing, neighbor: func(e graph.Edge) int32 { return e.Destination }}
}

func backward(g *graph.RoadGraph) adjacency {
	return adjacency{edges: g.Incoming, neighbor: func(e graph.Edge) int32 { return e.Source }}
}

// search is the generic best-first exploration shared by every algorithm in
// this package. sources gives each starting node its initial tentative
// cost (normally 0). metric biases exploration (zero for Dijkstra and
// arc-flag search, an ALT lower bound for A*). filter decides which edges
// may be relaxed. stop, when hasStop is true, halts exploration the moment
// the given node is settled — used for single-destination queries so the
// search need not exhaust the whole graph.
func search(adj adjacency, sources map[int32]float64, metric Metric, filter EdgeFilter, stop int32, hasStop bool) Result {
	queue := util.NewPriorityQueue[pqItem, float64](64)
	result := Result{
		cost:   make(map[int32]float64, len(sources)),
		parent: make(map[int32]graph.Edge),
	}

	for node, cost := range sources {
		result.cost[node] = cost
		queue.Enqueue(pqItem{node: node, cost: cost}, cost+metric.Estimate(node))
	}

	settled := make(map[int32]bool, len(sources))
	for {
		curr, ok := queue.Dequeue()
		if !ok {
			break
		}
		if settled[curr.node] {
			continue
		}
		if best, ok := result.cost[curr.node]; !ok || curr.cost > best {
			continue
		}
		settled[curr.node] = true
		result.order = append(result.order, curr.node)

		if hasStop && curr.node == stop {
			break
		}

		for _, edge := range adj.edges(curr.node) {
			if !filter(edge) {
				continue
			}
			next := adj.neighbor(edge)
			newCost := curr.cost + edge.Cost
			if best, ok := result.cost[next]; ok && newCost >= best {
				continue
			}
			result.cost[next] = newCost
			result.parent[next] = edge
			queue.Enqueue(pqItem{node: next, cost: newCost}, newCost+metric.Estimate(next))
		}
	}
	return result
}

// Cost returns the best-known cost to node, if it was reached; the cost is
// final once node has been settled.
func (self Result) Cost(node int32) (float64, bool) {
	cost, ok := self.cost[node]
	return cost, ok
}

// path reconstructs the edge sequence from a source to node by walking
// parent pointers backwards. ok is false if node was never reached; a
// single-destination search stops once its destination is settled, so for
// that destination reached and settled coincide.
func (self Result) path(node int32) (graph.Path, bool) {
	if _, ok := self.cost[node]; !ok {
		return graph.Path{}, false
	}
	var edges []graph.Edge
	curr := node
	for {
		edge, hasParent := self.parent[curr]
		if !hasParent {
			break
		}
		edges = append(edges, edge)
		curr = edge.Source
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return graph.NewPath(curr, edges), true
}

// SearchSpace returns every node settled during the exploration, in
// settlement order.
func (self Result) SearchSpace() []int32 {
	return self.order
}
