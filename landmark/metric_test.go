package landmark

import (
	"testing"

	"github.com/renblom/routeweaver/attr"
	"github.com/renblom/routeweaver/geo"
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/routing"
	"github.com/stretchr/testify/require"
)

func TestALTMetricLowerBoundNeverExceedsTrueCost(t *testing.T) {
	rg := lineGraph(t)
	dijkstra := routing.NewDijkstra(rg)

	metric := BuildALTMetric(rg, []int32{3}).For(3)
	for v := int32(0); v < 4; v++ {
		cost, ok := dijkstra.Cost(v, 3)
		require.True(t, ok)
		require.LessOrEqual(t, metric.Estimate(v), cost+1e-6)
	}
}

func TestALTMetricMatchesDijkstraCostWhenUsedByAStar(t *testing.T) {
	rg := graph.NewRoadGraph()
	lats := []float32{0, 0, 0.01, 0.01}
	lons := []float32{0, 0.01, 0.01, 0.02}
	for i := range lats {
		require.True(t, rg.AddRoadNode(graph.RoadNode{ID: int32(i), Loc: geo.Coord{Lat: lats[i], Lon: lons[i]}}))
	}
	roads := [][2]int32{{0, 1}, {1, 2}, {2, 3}, {0, 2}}
	for i, r := range roads {
		require.NoError(t, rg.AddRoad(graph.Road{ID: int32(i), Nodes: []int32{r[0], r[1]}, Type: attr.RESIDENTIAL}))
	}

	dijkstra := routing.NewDijkstra(rg)
	metric := BuildALTMetric(rg, []int32{3}).For(3)
	astar := routing.NewAStar(rg, metric)

	dCost, dOK := dijkstra.Cost(0, 3)
	aCost, aOK := astar.Cost(0, 3)
	require.Equal(t, dOK, aOK)
	require.InDelta(t, dCost, aCost, 1e-6)
}
