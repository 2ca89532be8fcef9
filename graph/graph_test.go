package graph

import "testing"

func TestAddNodeRejectsDuplicate(t *testing.T) {
	g := New()
	if !g.AddNode(Node{ID: 1}) {
		t.Fatalf("expected first insert to report new node")
	}
	if g.AddNode(Node{ID: 1}) {
		t.Fatalf("expected duplicate insert to report no-op")
	}
	if g.Size() != 1 {
		t.Fatalf("g.Size() = %v; want 1", g.Size())
	}
}

func TestAddEdgeUnknownNode(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1})
	if _, err := g.AddEdge(1, 2, 1); err != ErrUnknownNode {
		t.Fatalf("err = %v; want ErrUnknownNode", err)
	}
}

func TestAddEdgeInvalidCost(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1})
	g.AddNode(Node{ID: 2})
	if _, err := g.AddEdge(1, 2, -1); err != ErrInvalidCost {
		t.Fatalf("err = %v; want ErrInvalidCost", err)
	}
}

func TestOutgoingIncomingConsistency(t *testing.T) {
	g := New()
	for i := int32(0); i < 4; i++ {
		g.AddNode(Node{ID: i})
	}
	edge, err := g.AddEdge(0, 1, 3.5)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	found := false
	for _, e := range g.Outgoing(0) {
		if e.ID == edge.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("outgoing(0) does not contain the inserted edge")
	}

	found = false
	for _, e := range g.Incoming(1) {
		if e.ID == edge.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("incoming(1) does not contain the inserted edge")
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("g.EdgeCount() = %v; want 1", g.EdgeCount())
	}
}

func TestAddEdgeAllowsDuplicates(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 0})
	g.AddNode(Node{ID: 1})
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 1)
	if g.EdgeCount() != 2 {
		t.Fatalf("g.EdgeCount() = %v; want 2 (duplicates are not deduplicated)", g.EdgeCount())
	}
}

func TestReduceDropsFailingNodesAndIncidentEdges(t *testing.T) {
	g := New()
	for i := int32(0); i < 4; i++ {
		g.AddNode(Node{ID: i})
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	g.Reduce(func(n Node) bool { return n.ID < 2 })

	if g.Size() != 2 {
		t.Fatalf("g.Size() = %v; want 2", g.Size())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("g.EdgeCount() = %v; want 1", g.EdgeCount())
	}
	if len(g.Outgoing(1)) != 0 {
		t.Fatalf("outgoing(1) should be empty after node 2 was removed")
	}
}

func TestReduceOnEmptyGraphIsNoOp(t *testing.T) {
	g := New()
	g.Reduce(func(n Node) bool { return true })
	if g.Size() != 0 || g.EdgeCount() != 0 {
		t.Fatalf("expected empty graph to remain empty")
	}
}
