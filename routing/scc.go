package routing

import "github.com/renblom/routeweaver/graph"

// tarjanState carries Tarjan's bookkeeping across the recursive-equivalent
// iterative walk below.
type tarjanState struct {
	index   map[int32]int
	lowlink map[int32]int
	onStack map[int32]bool
	stack   []int32
	next    int
	comps   [][]int32
}

// frame is one entry of the explicit call stack used to avoid recursion on
// graphs large enough to blow a goroutine's stack.
type frame struct {
	node    int32
	edges   []graph.Edge
	edgeIdx int
}

// ReduceToLargestSCC computes the strongly connected components of g via
// Tarjan's algorithm and deletes every node outside the largest one (ties
// broken by first-discovered, which is deterministic given g's node
// iteration order). The resulting graph is strongly connected, or empty.
func ReduceToLargestSCC(g *graph.RoadGraph) {
	comps := tarjanSCCs(g)
	if len(comps) == 0 {
		return
	}
	largest := comps[0]
	for _, c := range comps[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}
	keep := make(map[int32]bool, len(largest))
	for _, id := range largest {
		keep[id] = true
	}
	g.Reduce(func(n graph.Node) bool { return keep[n.ID] })
}

// tarjanSCCs returns every strongly connected component of g, in discovery
// order, using an explicit stack so depth is bounded by heap, not goroutine
// stack, size.
func tarjanSCCs(g *graph.RoadGraph) [][]int32 {
	state := &tarjanState{
		index:   make(map[int32]int),
		lowlink: make(map[int32]int),
		onStack: make(map[int32]bool),
	}

	for _, node := range g.Nodes() {
		if _, visited := state.index[node.ID]; !visited {
			strongConnect(g, state, node.ID)
		}
	}
	return state.comps
}

func strongConnect(g *graph.RoadGraph, state *tarjanState, start int32) {
	var call []frame
	push := func(node int32) {
		state.index[node] = state.next
		state.lowlink[node] = state.next
		state.next++
		state.stack = append(state.stack, node)
		state.onStack[node] = true
		call = append(call, frame{node: node, edges: g.Outgoing(node)})
	}
	push(start)

	for len(call) > 0 {
		top := &call[len(call)-1]
		if top.edgeIdx < len(top.edges) {
			edge := top.edges[top.edgeIdx]
			top.edgeIdx++
			other := edge.Destination
			if _, visited := state.index[other]; !visited {
				push(other)
				continue
			}
			if state.onStack[other] {
				if state.index[other] < state.lowlink[top.node] {
					state.lowlink[top.node] = state.index[other]
				}
			}
			continue
		}

		// All of top's edges explored: pop the call frame and propagate
		// lowlink to the caller, or emit the component if top is a root.
		node := top.node
		call = call[:len(call)-1]
		if len(call) > 0 {
			parent := &call[len(call)-1]
			if state.lowlink[node] < state.lowlink[parent.node] {
				state.lowlink[parent.node] = state.lowlink[node]
			}
		}
		if state.lowlink[node] == state.index[node] {
			var comp []int32
			for {
				n := state.stack[len(state.stack)-1]
				state.stack = state.stack[:len(state.stack)-1]
				state.onStack[n] = false
				comp = append(comp, n)
				if n == node {
					break
				}
			}
			state.comps = append(state.comps, comp)
		}
	}
}
