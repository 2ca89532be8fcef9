package partition_test

import (
	"testing"

	"github.com/renblom/routeweaver/attr"
	"github.com/renblom/routeweaver/geo"
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/partition"
	"github.com/renblom/routeweaver/routing"
	"github.com/stretchr/testify/require"
)

func lineRoadGraph(t *testing.T) *graph.RoadGraph {
	t.Helper()
	rg := graph.NewRoadGraph()
	lons := []float32{0, 0.01, 0.02, 0.03}
	for i, lon := range lons {
		require.True(t, rg.AddRoadNode(graph.RoadNode{ID: int32(i), Loc: geo.Coord{Lat: 0, Lon: lon}}))
	}
	for i := int32(0); i < 3; i++ {
		require.NoError(t, rg.AddRoad(graph.Road{ID: i, Nodes: []int32{i, i + 1}, Type: attr.RESIDENTIAL, OneWay: true}))
	}
	return rg
}

func TestRectProviderAssignsEveryNodeToExactlyOneRegion(t *testing.T) {
	rg := lineRoadGraph(t)
	rect := geo.NewRect(-1, 1, -1, 0.015)
	provider := partition.NewRectProvider(rg, rect)

	regions := provider.Regions()
	require.Len(t, regions, 2)

	seen := make(map[int32]bool)
	for _, region := range regions {
		for _, node := range region {
			require.False(t, seen[node], "node %d assigned to more than one region", node)
			seen[node] = true
		}
	}
	require.Len(t, seen, 4)
	require.Contains(t, regions[0], int32(0))
	require.Contains(t, regions[0], int32(1))
	require.Contains(t, regions[1], int32(2))
	require.Contains(t, regions[1], int32(3))
}

func TestArcFlagQueryMatchesDijkstraOnLineGraph(t *testing.T) {
	rg := lineRoadGraph(t)
	rect := geo.NewRect(-1, 1, -1, 0.015)
	provider := partition.NewRectProvider(rg, rect)
	flags := partition.Preprocess(rg, provider)

	dijkstra := routing.NewDijkstra(rg)
	arcFlag := routing.NewArcFlagQuery(rg, flags)

	dCost, dOK := dijkstra.Cost(0, 3)
	aCost, aOK := arcFlag.Cost(0, 3)
	require.Equal(t, dOK, aOK)
	require.InDelta(t, dCost, aCost, 1e-6)

	dSpace := dijkstra.SearchSpace(0, 3)
	aSpace := arcFlag.SearchSpace(0, 3)
	require.LessOrEqual(t, len(aSpace), len(dSpace)+1)
}
