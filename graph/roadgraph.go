package graph

import (
	"fmt"

	"github.com/renblom/routeweaver/attr"
	"github.com/renblom/routeweaver/geo"
	"golang.org/x/exp/slog"
)

// RoadNode is a node augmented with an immutable geographic position.
type RoadNode struct {
	ID  int32
	Loc geo.Coord
}

// Road is an ordered polyline of at least two road-node ids, plus its type
// and one-way flag. Roads are the only way to add edges to a RoadGraph;
// AddRoad expands a road into pairwise edges, and, when not one-way, into
// their reverses too.
type Road struct {
	ID     int32
	Nodes  []int32
	Type   attr.RoadType
	OneWay bool
}

// RoadGraph is a graph whose nodes are all road nodes. It wraps a generic
// Graph but deliberately does not expose AddNode/AddEdge: construction goes
// exclusively through AddRoadNode/AddRoad, which removes the possibility of
// inserting a non-road node or a raw edge at the type level rather than by
// runtime check.
type RoadGraph struct {
	base  *Graph
	nodes map[int32]RoadNode
}

// NewRoadGraph creates an empty road graph.
func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		base:  New(),
		nodes: make(map[int32]RoadNode),
	}
}

// AddRoadNode adds a road node to the network. Returns false if the id was
// already present.
func (self *RoadGraph) AddRoadNode(node RoadNode) bool {
	added := self.base.AddNode(Node{ID: node.ID})
	if !added {
		return false
	}
	self.nodes[node.ID] = node
	return true
}

// RoadNode looks up a road node by id.
func (self *RoadGraph) RoadNode(id int32) (RoadNode, bool) {
	node, ok := self.nodes[id]
	return node, ok
}

// Node looks up the underlying generic node by id.
func (self *RoadGraph) Node(id int32) (Node, bool) {
	return self.base.Node(id)
}

// Nodes returns every node in the graph.
func (self *RoadGraph) Nodes() []Node {
	return self.base.Nodes()
}

// RoadNodes returns every road node in the graph.
func (self *RoadGraph) RoadNodes() []RoadNode {
	result := make([]RoadNode, 0, len(self.nodes))
	for _, id := range self.base.order {
		result = append(result, self.nodes[id])
	}
	return result
}

// Outgoing returns the edges leaving node.
func (self *RoadGraph) Outgoing(node int32) []Edge {
	return self.base.Outgoing(node)
}

// Incoming returns the edges entering node.
func (self *RoadGraph) Incoming(node int32) []Edge {
	return self.base.Incoming(node)
}

// Size returns the number of nodes in the graph.
func (self *RoadGraph) Size() int {
	return self.base.Size()
}

// EdgeCount returns the number of edges in the graph.
func (self *RoadGraph) EdgeCount() int {
	return self.base.EdgeCount()
}

// Reduce removes every node failing keep, delegating to the embedded graph
// and pruning the road-node attribute map to match.
func (self *RoadGraph) Reduce(keep func(Node) bool) {
	self.base.Reduce(keep)
	kept := make(map[int32]bool, len(self.base.order))
	for _, id := range self.base.order {
		kept[id] = true
	}
	for id := range self.nodes {
		if !kept[id] {
			delete(self.nodes, id)
		}
	}
}

// AddRoad expands a road's polyline into forward edges and, when the road
// is not one-way, into reverse edges too. Edge cost is derived from the
// equirectangular distance between consecutive road nodes divided by the
// road type's reference speed. A road with fewer than two nodes is dropped
// with a logged warning. Pairs of nodes at identical coordinates are
// silently skipped (zero distance has no corresponding travel time).
func (self *RoadGraph) AddRoad(road Road) error {
	if len(road.Nodes) < 2 {
		slog.Warn(fmt.Sprintf("dropping road %d: fewer than 2 road nodes", road.ID))
		return nil
	}

	speed, err := attr.AverageSpeedKmh(road.Type)
	if err != nil {
		return err
	}

	if err := self.addDirected(road.Nodes, speed); err != nil {
		return err
	}
	if !road.OneWay {
		reversed := reverseOf(road.Nodes)
		if err := self.addDirected(reversed, speed); err != nil {
			return err
		}
	}
	return nil
}

func (self *RoadGraph) addDirected(nodeIDs []int32, speedKmh float32) error {
	for i := 0; i+1 < len(nodeIDs); i++ {
		from, ok := self.nodes[nodeIDs[i]]
		if !ok {
			return ErrUnknownNode
		}
		to, ok := self.nodes[nodeIDs[i+1]]
		if !ok {
			return ErrUnknownNode
		}
		distance := geo.Distance(from.Loc, to.Loc)
		if distance == 0 {
			continue
		}
		cost := geo.TravelTime(distance, speedKmh)
		if _, err := self.base.AddEdge(from.ID, to.ID, float64(cost)); err != nil {
			return err
		}
	}
	return nil
}

func reverseOf(nodes []int32) []int32 {
	result := make([]int32, len(nodes))
	for i, id := range nodes {
		result[len(nodes)-1-i] = id
	}
	return result
}

// Nearest returns the road node nearest to the given position, using a
// linear scan and equirectangular distance. Ties are broken by
// first-encountered. ok is false when the graph has no nodes.
func (self *RoadGraph) Nearest(lat, lon float32) (node RoadNode, ok bool) {
	target := geo.Coord{Lat: lat, Lon: lon}
	best := float32(-1)
	for _, id := range self.base.order {
		candidate := self.nodes[id]
		d := geo.Distance(target, candidate.Loc)
		if best < 0 || d < best {
			best = d
			node = candidate
			ok = true
		}
	}
	return node, ok
}
