// Package landmark implements landmark selection (uniform-random and
// greedy-farthest) and the ALT lower-bound metric built from a selected
// landmark set.
package landmark

import (
	"errors"
	"math/rand"

	"github.com/renblom/routeweaver/graph"
	"github.com/renblom/routeweaver/routing"
)

// ErrInvalidCount is returned when the requested landmark count is <= 0.
var ErrInvalidCount = errors.New("landmark: count must be positive")

// ErrTooFew is returned when the requested landmark count exceeds the
// number of nodes in the graph.
var ErrTooFew = errors.New("landmark: graph has fewer nodes than requested landmarks")

// Provider picks a set of landmark nodes from a graph.
type Provider interface {
	Landmarks(k int) ([]int32, error)
}

func checkCount(k, size int) error {
	if k <= 0 {
		return ErrInvalidCount
	}
	if k > size {
		return ErrTooFew
	}
	return nil
}

// RandomProvider samples landmarks uniformly at random, without
// replacement.
type RandomProvider struct {
	g   *graph.RoadGraph
	rng *rand.Rand
}

// NewRandomProvider builds a random landmark provider over g using rng for
// sampling.
func NewRandomProvider(g *graph.RoadGraph, rng *rand.Rand) RandomProvider {
	return RandomProvider{g: g, rng: rng}
}

// Landmarks returns k distinct nodes sampled uniformly without replacement.
func (self RandomProvider) Landmarks(k int) ([]int32, error) {
	nodes := self.g.Nodes()
	if err := checkCount(k, len(nodes)); err != nil {
		return nil, err
	}
	ids := make([]int32, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	self.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids[:k], nil
}

// GreedyFarthestProvider picks the first landmark uniformly at random, then
// repeatedly adds the node farthest (by shortest-path cost) from the
// current landmark set — a standard construction for spreading landmarks
// across a graph's extremities.
type GreedyFarthestProvider struct {
	g   *graph.RoadGraph
	rng *rand.Rand
}

// NewGreedyFarthestProvider builds a greedy-farthest landmark provider over
// g using rng to seed the first pick.
func NewGreedyFarthestProvider(g *graph.RoadGraph, rng *rand.Rand) GreedyFarthestProvider {
	return GreedyFarthestProvider{g: g, rng: rng}
}

// Landmarks picks k landmarks by iterative farthest-point selection. Ties
// for farthest are broken by first-encountered, which is deterministic
// given the graph's node iteration order.
func (self GreedyFarthestProvider) Landmarks(k int) ([]int32, error) {
	nodes := self.g.Nodes()
	if err := checkCount(k, len(nodes)); err != nil {
		return nil, err
	}

	first := nodes[self.rng.Intn(len(nodes))].ID
	landmarks := []int32{first}
	selected := map[int32]bool{first: true}

	for len(landmarks) < k {
		sources := make(map[int32]float64, len(landmarks))
		for _, l := range landmarks {
			sources[l] = 0
		}
		distances := routing.MultiSource(self.g, sources)

		var farthest int32
		best := -1.0
		for _, n := range nodes {
			if selected[n.ID] {
				continue
			}
			d, ok := distances[n.ID]
			if !ok {
				continue
			}
			if d > best {
				best = d
				farthest = n.ID
			}
		}
		if best < 0 {
			// No unselected node is reachable from the current set: an
			// unreachable node counts as farthest, first-encountered wins.
			for _, n := range nodes {
				if !selected[n.ID] {
					farthest = n.ID
					break
				}
			}
		}
		landmarks = append(landmarks, farthest)
		selected[farthest] = true
	}
	return landmarks, nil
}
