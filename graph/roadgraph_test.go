package graph

import (
	"math"
	"testing"

	"github.com/renblom/routeweaver/attr"
	"github.com/renblom/routeweaver/geo"
)

func TestEquiRectDistanceScenario(t *testing.T) {
	distance := geo.DistanceEquiRect(49.20, 6.95, 49.25, 7.05)
	if math.Abs(float64(distance)-9146) > 50 {
		t.Fatalf("distance = %v; want ~9146m (+-50)", distance)
	}
}

func TestAddRoadMotorwayCostScenario(t *testing.T) {
	rg := NewRoadGraph()
	rg.AddRoadNode(RoadNode{ID: 1, Loc: geo.Coord{Lat: 49.20, Lon: 6.95}})
	rg.AddRoadNode(RoadNode{ID: 2, Loc: geo.Coord{Lat: 49.25, Lon: 7.05}})

	if err := rg.AddRoad(Road{ID: 1, Nodes: []int32{1, 2}, Type: attr.MOTORWAY, OneWay: true}); err != nil {
		t.Fatalf("AddRoad failed: %v", err)
	}

	edges := rg.Outgoing(1)
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %v; want 1", len(edges))
	}
	if math.Abs(edges[0].Cost-299) > 5 {
		t.Fatalf("cost = %v; want ~299s (+-5)", edges[0].Cost)
	}
}

func TestAddRoadOneWayOmitsReverseEdge(t *testing.T) {
	rg := NewRoadGraph()
	rg.AddRoadNode(RoadNode{ID: 1, Loc: geo.Coord{Lat: 49.20, Lon: 6.95}})
	rg.AddRoadNode(RoadNode{ID: 2, Loc: geo.Coord{Lat: 49.25, Lon: 7.05}})
	rg.AddRoad(Road{ID: 1, Nodes: []int32{1, 2}, Type: attr.MOTORWAY, OneWay: true})

	if len(rg.Outgoing(1)) != 1 {
		t.Fatalf("expected forward edge from 1 to 2")
	}
	if len(rg.Outgoing(2)) != 0 {
		t.Fatalf("expected no reverse edge from 2 to 1 on a one-way road")
	}
}

func TestAddRoadTwoWayAddsReverseEdge(t *testing.T) {
	rg := NewRoadGraph()
	rg.AddRoadNode(RoadNode{ID: 1, Loc: geo.Coord{Lat: 49.20, Lon: 6.95}})
	rg.AddRoadNode(RoadNode{ID: 2, Loc: geo.Coord{Lat: 49.25, Lon: 7.05}})
	rg.AddRoad(Road{ID: 1, Nodes: []int32{1, 2}, Type: attr.RESIDENTIAL, OneWay: false})

	if len(rg.Outgoing(1)) != 1 || len(rg.Outgoing(2)) != 1 {
		t.Fatalf("expected an edge in each direction for a two-way road")
	}
}

func TestAddRoadTooFewNodesIsDropped(t *testing.T) {
	rg := NewRoadGraph()
	rg.AddRoadNode(RoadNode{ID: 1, Loc: geo.Coord{Lat: 1, Lon: 1}})
	if err := rg.AddRoad(Road{ID: 1, Nodes: []int32{1}, Type: attr.RESIDENTIAL}); err != nil {
		t.Fatalf("degenerate road should be dropped, not errored: %v", err)
	}
	if rg.EdgeCount() != 0 {
		t.Fatalf("expected no edges to be added for a degenerate road")
	}
}

func TestAddRoadSkipsZeroDistancePairs(t *testing.T) {
	rg := NewRoadGraph()
	same := geo.Coord{Lat: 49.2, Lon: 6.95}
	rg.AddRoadNode(RoadNode{ID: 1, Loc: same})
	rg.AddRoadNode(RoadNode{ID: 2, Loc: same})
	rg.AddRoad(Road{ID: 1, Nodes: []int32{1, 2}, Type: attr.RESIDENTIAL, OneWay: true})
	if rg.EdgeCount() != 0 {
		t.Fatalf("expected zero-distance pair to be skipped")
	}
}

func TestNearestTiesBrokenByFirstEncountered(t *testing.T) {
	rg := NewRoadGraph()
	rg.AddRoadNode(RoadNode{ID: 1, Loc: geo.Coord{Lat: 0, Lon: 0}})
	rg.AddRoadNode(RoadNode{ID: 2, Loc: geo.Coord{Lat: 0, Lon: 0}})

	node, ok := rg.Nearest(0, 0)
	if !ok {
		t.Fatalf("expected a nearest node")
	}
	if node.ID != 1 {
		t.Fatalf("node.ID = %v; want 1 (first encountered)", node.ID)
	}
}

func TestNearestOnEmptyGraph(t *testing.T) {
	rg := NewRoadGraph()
	if _, ok := rg.Nearest(0, 0); ok {
		t.Fatalf("expected ok=false on an empty road graph")
	}
}
