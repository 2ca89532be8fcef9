package tsv

import (
	"strings"
	"testing"

	"github.com/renblom/routeweaver/geo"
	"github.com/renblom/routeweaver/graph"
)

func TestPositionsTSVFormatsOneLinePerNode(t *testing.T) {
	nodes := []graph.RoadNode{
		{ID: 1, Loc: geo.Coord{Lat: 49.2, Lon: 6.95}},
		{ID: 2, Loc: geo.Coord{Lat: 49.25, Lon: 7.05}},
	}
	out := PositionsTSV(nodes)
	lines := strings.Split(out, lineSeparator())
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %v; want 2", len(lines))
	}
	if !strings.Contains(lines[0], "\t") {
		t.Fatalf("expected a tab-separated lat/lon pair, got %q", lines[0])
	}
}

func TestPositionsTSVIsPureFunctionOfOrder(t *testing.T) {
	a := graph.RoadNode{ID: 1, Loc: geo.Coord{Lat: 1, Lon: 2}}
	b := graph.RoadNode{ID: 2, Loc: geo.Coord{Lat: 3, Lon: 4}}

	first := PositionsTSV([]graph.RoadNode{a, b})
	second := PositionsTSV([]graph.RoadNode{b, a})
	if first == second {
		t.Fatalf("expected differently-ordered input to produce different output")
	}
}

func TestPositionsTSVEmpty(t *testing.T) {
	if out := PositionsTSV(nil); out != "" {
		t.Fatalf("PositionsTSV(nil) = %q; want empty string", out)
	}
}
