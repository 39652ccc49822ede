package mcm

import "sort"

// StronglyConnectedComponents partitions the nodes of g with an iterative
// Tarjan traversal. Components come out in reverse topological order of the
// condensation; nodes inside a component are sorted by id.
//
// Complexity: O(V + E) time, O(V) extra memory, no recursion.
func StronglyConnectedComponents(g *Graph) [][]NodeID {
	n := len(g.nodes)
	const unvisited = -1

	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
	}

	type frame struct {
		v    NodeID
		next int // position in g.out[v] of the next edge to follow
	}
	var (
		stack   []NodeID
		calls   []frame
		counter int
		comps   [][]NodeID
	)

	for root := 0; root < n; root++ {
		if index[root] != unvisited {
			continue
		}
		calls = append(calls, frame{v: NodeID(root)})
		index[root], low[root] = counter, counter
		counter++
		stack = append(stack, NodeID(root))
		onStack[root] = true

		for len(calls) > 0 {
			top := &calls[len(calls)-1]
			v := top.v

			// 1) Follow the next unexplored edge, descending into new nodes.
			if top.next < len(g.out[v]) {
				w := g.edges[g.out[v][top.next]].To
				top.next++
				switch {
				case index[w] == unvisited:
					index[w], low[w] = counter, counter
					counter++
					stack = append(stack, w)
					onStack[w] = true
					calls = append(calls, frame{v: w})
				case onStack[w] && index[w] < low[v]:
					low[v] = index[w]
				}
				continue
			}

			// 2) All edges done: pop a component if v is its root.
			if low[v] == index[v] {
				var comp []NodeID
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
				comps = append(comps, comp)
			}

			// 3) Return to the caller and propagate the low-link.
			calls = calls[:len(calls)-1]
			if len(calls) > 0 {
				parent := calls[len(calls)-1].v
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}

	return comps
}

// ExtractSCCs returns every cyclic strongly connected component of g as an
// induced subgraph. A single node is cyclic only with a self-loop. Node and
// edge Refs point into g.
func ExtractSCCs(g *Graph) []*Graph {
	var out []*Graph
	for _, comp := range StronglyConnectedComponents(g) {
		if len(comp) == 1 && !g.hasSelfLoop(comp[0]) {
			continue
		}
		out = append(out, g.Induced(comp))
	}

	return out
}

// IsStronglyConnected reports whether g has exactly one component.
func IsStronglyConnected(g *Graph) bool {
	return len(g.nodes) > 0 && len(StronglyConnectedComponents(g)) == 1
}

func (g *Graph) hasSelfLoop(v NodeID) bool {
	for _, e := range g.out[v] {
		if g.edges[e].To == v {
			return true
		}
	}

	return false
}
