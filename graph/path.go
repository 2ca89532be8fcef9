package graph

// Path is an ordered sequence of edges plus the node the path starts from.
// Edges are copied out of the graph at construction time so a Path remains
// valid even if the graph is mutated afterwards.
type Path struct {
	source int32
	edges  []Edge
}

// NewPath builds a path starting at source and following edges in order.
func NewPath(source int32, edges []Edge) Path {
	return Path{source: source, edges: edges}
}

// Source returns the node the path starts from.
func (self Path) Source() int32 {
	return self.source
}

// Edges returns the path's edges in traversal order.
func (self Path) Edges() []Edge {
	return self.edges
}

// Destination returns the endpoint of the path: the destination of its
// last edge, or its source if the path is empty.
func (self Path) Destination() int32 {
	if len(self.edges) == 0 {
		return self.source
	}
	return self.edges[len(self.edges)-1].Destination
}

// Cost returns the sum of the path's edge costs.
func (self Path) Cost() float64 {
	total := 0.0
	for _, edge := range self.edges {
		total += edge.Cost
	}
	return total
}

// Nodes returns the path expanded into its full node sequence, source
// first. Panics if an edge's source does not match the previous
// destination: a violated invariant, not an expected runtime condition.
func (self Path) Nodes() []int32 {
	nodes := make([]int32, 0, len(self.edges)+1)
	nodes = append(nodes, self.source)
	curr := self.source
	for _, edge := range self.edges {
		if edge.Source != curr {
			panic("graph: path edge source does not match previous destination")
		}
		nodes = append(nodes, edge.Destination)
		curr = edge.Destination
	}
	return nodes
}
