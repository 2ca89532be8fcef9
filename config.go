package main

import (
	"fmt"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Config drives the demo server: where to load OSM data from, whether to
// reduce it to its largest strongly connected component first, and how the
// two accelerated query modes should be preprocessed.
type Config struct {
	Source struct {
		OSM string `yaml:"osm"`
	} `yaml:"source"`
	ReduceToLargestSCC bool `yaml:"reduce-to-largest-scc"`
	Landmarks          struct {
		Count    int    `yaml:"count"`
		Strategy string `yaml:"strategy"` // "random" or "greedy-farthest"
	} `yaml:"landmarks"`
	ArcFlagRegion struct {
		LatMin float32 `yaml:"lat-min"`
		LatMax float32 `yaml:"lat-max"`
		LonMin float32 `yaml:"lon-min"`
		LonMax float32 `yaml:"lon-max"`
	} `yaml:"arc-flag-region"`
}

// ReadConfig loads and parses a YAML config file, panicking on failure the
// way the rest of the demo server treats startup misconfiguration.
func ReadConfig(file string) Config {
	slog.Info("reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		panic(fmt.Errorf("main: reading config: %w", err))
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		panic(fmt.Errorf("main: parsing config: %w", err))
	}
	return config
}
