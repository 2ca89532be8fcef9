package landmark

import (
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/routing"
)

// table holds, for one landmark, the cost from the landmark to every
// reachable node and the cost from every node that can reach it back to
// the landmark. Both are needed because road graphs may contain one-way
// edges, so cost(L, v) and cost(v, L) are not generally equal.
type table struct {
	fromLandmark map[int32]float64
	toLandmark   map[int32]float64
}

// ALTTables holds the per-landmark one-to-all/one-to-all-reverse distance
// tables built once during preprocessing. Retarget it with For to get a
// cheap, query-specific Metric without recomputing any Dijkstra pass.
type ALTTables struct {
	tables []table
}

// BuildALTMetric precomputes forward and reverse one-to-all distance tables
// for every landmark. This runs 2*len(landmarks) full-graph Dijkstra passes
// and is meant to be called once per preprocessing pass, its result shared
// across every subsequent query.
func BuildALTMetric(g *graph.RoadGraph, landmarks []int32) ALTTables {
	tables := make([]table, len(landmarks))
	for i, l := range landmarks {
		tables[i] = table{
			fromLandmark: routing.OneToAll(g, l),
			toLandmark:   routing.OneToAllReverse(g, l),
		}
	}
	return ALTTables{tables: tables}
}

// For retargets the precomputed tables at destination, in O(len(landmarks))
// time, yielding a Metric usable for a single A* query.
func (self ALTTables) For(destination int32) ALTMetric {
	return ALTMetric{tables: self.tables, destination: destination}
}

// ALTMetric is the A*, Landmarks, Triangle-inequality lower-bound
// estimator, fixed to one destination. Build it via ALTTables.For.
type ALTMetric struct {
	tables      []table
	destination int32
}

// Estimate returns the ALT lower bound on the remaining cost from v to the
// metric's fixed destination: the maximum, over landmarks, of the
// triangle-inequality difference. A landmark unreachable from either v or
// the destination contributes 0 rather than a negative bound.
func (self ALTMetric) Estimate(v int32) float64 {
	best := 0.0
	for _, t := range self.tables {
		dv, dvOK := t.toLandmark[v]
		dt, dtOK := t.toLandmark[self.destination]
		if dvOK && dtOK {
			if bound := dv - dt; bound > best {
				best = bound
			}
		}
		lv, lvOK := t.fromLandmark[v]
		lt, ltOK := t.fromLandmark[self.destination]
		if lvOK && ltOK {
			if bound := lt - lv; bound > best {
				best = bound
			}
		}
	}
	return best
}

var _ routing.Metric = ALTMetric{}
