// Package parser reads an OSM XML extract and feeds it into a
// graph.RoadGraph, mapping the highway tag to a road type and dropping
// anything the road graph can't use.
package parser

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/renblom/routeweaver/attr"
	"github.com/renblom/routeweaver/geo"
	"github.com/renblom/routeweaver/graph"
	"golang.org/x/exp/slog"
)

// ParseFile reads path as OSM XML and populates rg. Ways are read first, so
// that only nodes actually referenced by a highway way are added to the
// graph; a way whose highway tag doesn't map to a known road type is
// silently dropped, matching the road graph's own tolerance for degenerate
// input.
func ParseFile(path string, rg *graph.RoadGraph) error {
	referenced, roads, err := scanWays(path)
	if err != nil {
		return fmt.Errorf("parser: reading ways: %w", err)
	}
	if err := scanNodes(path, referenced, rg); err != nil {
		return fmt.Errorf("parser: reading nodes: %w", err)
	}
	for _, road := range roads {
		if err := rg.AddRoad(road); err != nil {
			return fmt.Errorf("parser: adding road %d: %w", road.ID, err)
		}
	}
	return nil
}

// scanWays makes a first pass over the file, collecting the set of node ids
// referenced by valid highway ways and the roads to add once those nodes
// exist.
func scanWays(path string) (map[int64]bool, []graph.Road, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	referenced := make(map[int64]bool)
	var roads []graph.Road

	scanner := osmxml.New(context.Background(), file)
	defer scanner.Close()
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		roadType, err := attr.FromOSM(way.Tags.Find("highway"))
		if err != nil {
			continue
		}
		nodeIDs := way.Nodes.NodeIDs()
		if len(nodeIDs) < 2 {
			slog.Warn(fmt.Sprintf("dropping way %d: fewer than 2 nodes", way.ID))
			continue
		}
		ids := make([]int32, len(nodeIDs))
		for i, ref := range nodeIDs {
			id := int64(ref)
			referenced[id] = true
			ids[i] = int32(id)
		}
		roads = append(roads, graph.Road{
			ID:     int32(way.ID),
			Nodes:  ids,
			Type:   roadType,
			OneWay: way.Tags.Find("oneway") == "yes",
		})
	}
	return referenced, roads, scanner.Err()
}

// scanNodes makes a second pass, adding every node referenced by a kept way
// to rg with its geographic position.
func scanNodes(path string, referenced map[int64]bool, rg *graph.RoadGraph) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := osmxml.New(context.Background(), file)
	defer scanner.Close()
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		id := int64(node.ID)
		if !referenced[id] {
			continue
		}
		rg.AddRoadNode(graph.RoadNode{
			ID:  int32(id),
			Loc: geo.Coord{Lat: float32(node.Lat), Lon: float32(node.Lon)},
		})
	}
	return scanner.Err()
}
