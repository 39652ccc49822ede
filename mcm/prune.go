// SPDX-License-Identifier: MIT

package mcm

// PruneEdges returns a copy of g without the parallel edges that cannot lie
// on a critical cycle. When every weight is non-negative, edge e1 is dropped
// when a sibling e2 with the same endpoints has d2 ≤ d1 and w2 ≥ w1. When
// some weight is negative the maximum ratio may be negative, where a larger
// delay raises a ratio, so only siblings with d2 = d1 and w2 ≥ w1 dominate.
// Of two identical edges the one with the lower id survives. Nodes keep their
// ids; kept edges are renumbered in id order and their Ref holds the id in g.
//
// Complexity: O(V + E·p) where p is the largest number of parallel edges
// between one ordered node pair.
func PruneEdges(g *Graph) *Graph {
	out := NewGraph()
	for _, n := range g.nodes {
		id := out.AddNode(n.Label)
		out.nodes[id].Ref = n.ID
	}

	sameDelay := false
	for _, e := range g.edges {
		if e.Weight < 0 {
			sameDelay = true
			break
		}
	}

	for _, e := range g.edges {
		if dominated(g, e, sameDelay) {
			continue
		}
		out.addDerivedEdge(e.From, e.To, e)
	}

	return out
}

// dominated reports whether a parallel sibling of e makes e redundant.
// With sameDelay only siblings of equal delay are compared.
func dominated(g *Graph, e Edge, sameDelay bool) bool {
	for _, id := range g.out[e.From] {
		if id == e.ID {
			continue
		}
		o := g.edges[id]
		if o.To != e.To || o.Delay > e.Delay || o.Weight < e.Weight {
			continue
		}
		if sameDelay && o.Delay != e.Delay {
			continue
		}
		strictlyBetter := o.Delay < e.Delay || o.Weight > e.Weight
		if strictlyBetter || o.ID < e.ID {
			return true
		}
	}

	return false
}
