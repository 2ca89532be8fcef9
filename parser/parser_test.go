package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renblom/routeweaver/graph"
)

const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="49.20" lon="6.95"/>
  <node id="2" lat="49.25" lon="7.05"/>
  <node id="3" lat="49.30" lon="7.10"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="motorway"/>
  </way>
  <way id="11">
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="not_a_real_road_type"/>
  </way>
</osm>`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.osm")
	if err := os.WriteFile(path, []byte(sampleOSM), 0o644); err != nil {
		t.Fatalf("failed to write sample OSM file: %v", err)
	}
	return path
}

func TestParseFileAddsKnownRoadAndDropsUnknownType(t *testing.T) {
	rg := graph.NewRoadGraph()
	path := writeSample(t)

	if err := ParseFile(path, rg); err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	if _, ok := rg.RoadNode(1); !ok {
		t.Fatalf("expected node 1 to be added (referenced by the motorway way)")
	}
	if _, ok := rg.RoadNode(2); !ok {
		t.Fatalf("expected node 2 to be added")
	}
	if _, ok := rg.RoadNode(3); ok {
		t.Fatalf("expected node 3 to be dropped (only referenced by the unknown-type way)")
	}
	if rg.EdgeCount() == 0 {
		t.Fatalf("expected at least one edge from the motorway way")
	}
}
