package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/renblom/routeweaver/geo"
	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/landmark"
	"github.com/renblom/routeweaver/parser"
	"github.com/renblom/routeweaver/partition"
	"github.com/renblom/routeweaver/routing"
	"golang.org/x/exp/slog"
)

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")

	rg := graph.NewRoadGraph()
	if err := parser.ParseFile(config.Source.OSM, rg); err != nil {
		slog.Error("failed to parse OSM source: " + err.Error())
		os.Exit(1)
	}
	slog.Info(fmt.Sprintf("loaded graph with %d nodes, %d edges", rg.Size(), rg.EdgeCount()))

	if config.ReduceToLargestSCC {
		routing.ReduceToLargestSCC(rg)
		slog.Info(fmt.Sprintf("reduced to largest strongly connected component: %d nodes, %d edges", rg.Size(), rg.EdgeCount()))
	}

	dijkstra := routing.NewDijkstra(rg)

	var arcFlag *routing.ArcFlagQuery
	region := config.ArcFlagRegion
	if region.LatMax > region.LatMin && region.LonMax > region.LonMin {
		rect := geo.NewRect(region.LatMin, region.LatMax, region.LonMin, region.LonMax)
		provider := partition.NewRectProvider(rg, rect)
		flags := partition.Preprocess(rg, provider)
		query := routing.NewArcFlagQuery(rg, flags)
		arcFlag = &query
		slog.Info("arc-flag preprocessing complete")
	}

	var provider landmark.Provider
	rng := rand.New(rand.NewSource(1))
	if config.Landmarks.Strategy == "greedy-farthest" {
		provider = landmark.NewGreedyFarthestProvider(rg, rng)
	} else {
		provider = landmark.NewRandomProvider(rg, rng)
	}
	landmarks, err := provider.Landmarks(config.Landmarks.Count)
	var altTables landmark.ALTTables
	haveALT := false
	if err != nil {
		slog.Warn("skipping ALT preprocessing: " + err.Error())
	} else {
		altTables = landmark.BuildALTMetric(rg, landmarks)
		haveALT = true
		slog.Info("ALT preprocessing complete")
	}

	app := http.NewServeMux()
	MapGet(app, "/route", func(req RouteRequest) Result {
		source, ok := rg.Nearest(float32(req.SourceLat), float32(req.SourceLon))
		if !ok {
			return BadRequest(NewErrorResponse("/route", "empty graph"))
		}
		destination, ok := rg.Nearest(float32(req.DestinationLat), float32(req.DestinationLon))
		if !ok {
			return BadRequest(NewErrorResponse("/route", "empty graph"))
		}

		var path graph.Path
		switch {
		case arcFlag != nil:
			p, found := arcFlag.Path(source.ID, destination.ID)
			if !found {
				return BadRequest(NewErrorResponse("/route", "no path found"))
			}
			path = p
		case haveALT:
			metric := altTables.For(destination.ID)
			astar := routing.NewAStar(rg, metric)
			p, found := astar.Path(source.ID, destination.ID)
			if !found {
				return BadRequest(NewErrorResponse("/route", "no path found"))
			}
			path = p
		default:
			p, found := dijkstra.Path(source.ID, destination.ID)
			if !found {
				return BadRequest(NewErrorResponse("/route", "no path found"))
			}
			path = p
		}

		lats := make([]float32, 0, len(path.Nodes()))
		lons := make([]float32, 0, len(path.Nodes()))
		for _, id := range path.Nodes() {
			node, _ := rg.RoadNode(id)
			lats = append(lats, node.Loc.Lat)
			lons = append(lons, node.Loc.Lon)
		}
		return OK(RouteResponse{CostSeconds: path.Cost(), Lats: lats, Lons: lons})
	})

	slog.Info("listening on :5002")
	if err := http.ListenAndServe(":5002", app); err != nil {
		slog.Error("server exited: " + err.Error())
	}
}
