// Package graph implements the node/edge data model shared by every
// shortest-path algorithm in the module, plus the road-specific overlay
// that derives edge costs from geodesic distance and road type.
package graph

import "errors"

// ErrUnknownNode is returned when an operation references a node id that is
// not present in the graph.
var ErrUnknownNode = errors.New("graph: unknown node")

// ErrInvalidCost is returned when inserting an edge with a negative cost.
var ErrInvalidCost = errors.New("graph: edge cost must be non-negative")

// ErrUnsupportedOperation names direct node/edge insertion on a road graph
// instead of AddRoadNode/AddRoad. RoadGraph has no AddNode/AddEdge methods
// and does not implement Mutator, so nothing in this package returns it.
var ErrUnsupportedOperation = errors.New("graph: operation not supported, use the road-specific mutator")

// Node is a graph vertex identified by an id unique within its graph.
type Node struct {
	ID int32
}

// Edge is a directed weighted edge. Cost is measured in seconds.
type Edge struct {
	ID          int32
	Source      int32
	Destination int32
	Cost        float64
}

// Mutator is the minimal write surface a generic graph exposes. RoadGraph
// deliberately does not implement it: its AddRoadNode/AddRoad take its
// place at the type level, so there is no runtime path that can reach
// ErrUnsupportedOperation through RoadGraph's own method set.
type Mutator interface {
	AddNode(node Node) bool
	AddEdge(source, destination int32, cost float64) (Edge, error)
}

// Graph is a mutable directed weighted graph: a mapping from node id to node
// plus, for every node, the list of outgoing and incoming edges.
type Graph struct {
	nodes     map[int32]Node
	order     []int32
	outgoing  map[int32][]Edge
	incoming  map[int32][]Edge
	edgeCount int
	nextEdge  int32
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[int32]Node),
		outgoing: make(map[int32][]Edge),
		incoming: make(map[int32][]Edge),
	}
}

// AddNode adds node to the graph. Returns false if the id was already
// present, in which case the call is a no-op.
func (self *Graph) AddNode(node Node) bool {
	if _, ok := self.nodes[node.ID]; ok {
		return false
	}
	self.nodes[node.ID] = node
	self.order = append(self.order, node.ID)
	return true
}

// AddEdge inserts a directed edge. Both endpoints must already be present.
// Duplicate edges are permitted; no deduplication is performed.
func (self *Graph) AddEdge(source, destination int32, cost float64) (Edge, error) {
	if _, ok := self.nodes[source]; !ok {
		return Edge{}, ErrUnknownNode
	}
	if _, ok := self.nodes[destination]; !ok {
		return Edge{}, ErrUnknownNode
	}
	if cost < 0 {
		return Edge{}, ErrInvalidCost
	}
	edge := Edge{ID: self.nextEdge, Source: source, Destination: destination, Cost: cost}
	self.nextEdge++
	self.outgoing[source] = append(self.outgoing[source], edge)
	self.incoming[destination] = append(self.incoming[destination], edge)
	self.edgeCount++
	return edge, nil
}

// Node looks up a node by id.
func (self *Graph) Node(id int32) (Node, bool) {
	node, ok := self.nodes[id]
	return node, ok
}

// Nodes returns every node in the graph, in the graph's current iteration
// order. The order is stable within one call but not guaranteed across
// mutations.
func (self *Graph) Nodes() []Node {
	result := make([]Node, 0, len(self.order))
	for _, id := range self.order {
		result = append(result, self.nodes[id])
	}
	return result
}

// Outgoing returns the edges leaving node.
func (self *Graph) Outgoing(node int32) []Edge {
	return self.outgoing[node]
}

// Incoming returns the edges entering node.
func (self *Graph) Incoming(node int32) []Edge {
	return self.incoming[node]
}

// Size returns the number of nodes in the graph.
func (self *Graph) Size() int {
	return len(self.nodes)
}

// EdgeCount returns the number of edges in the graph, in constant time.
func (self *Graph) EdgeCount() int {
	return self.edgeCount
}

// Reduce removes every node failing keep, along with every edge touching
// such a node. Used by SCC reduction to shrink the graph to its largest
// strongly connected component.
func (self *Graph) Reduce(keep func(Node) bool) {
	kept := make(map[int32]bool, len(self.order))
	newOrder := self.order[:0:0]
	for _, id := range self.order {
		node := self.nodes[id]
		if keep(node) {
			kept[id] = true
			newOrder = append(newOrder, id)
		} else {
			delete(self.nodes, id)
		}
	}
	self.order = newOrder

	removed := 0
	for id := range self.outgoing {
		if !kept[id] {
			removed += len(self.outgoing[id])
			delete(self.outgoing, id)
			continue
		}
		self.outgoing[id] = filterEdges(self.outgoing[id], kept, &removed)
	}
	for id := range self.incoming {
		if !kept[id] {
			delete(self.incoming, id)
			continue
		}
		self.incoming[id] = filterEdges(self.incoming[id], kept, nil)
	}
	self.edgeCount -= removed
}

// filterEdges drops edges whose other endpoint was removed, counting how
// many were dropped into removed when non-nil (used once, on the outgoing
// pass, to keep edgeCount accurate without double counting).
func filterEdges(edges []Edge, kept map[int32]bool, removed *int) []Edge {
	result := edges[:0]
	for _, e := range edges {
		if kept[e.Source] && kept[e.Destination] {
			result = append(result, e)
		} else if removed != nil {
			*removed++
		}
	}
	return result
}
