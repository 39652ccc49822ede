// SPDX-License-Identifier: MIT

package mcm

import (
	"fmt"
	"math"
)

// zeroTransit bounds the transit difference treated as zero when keying
// edges, absorbing rounding in accumulated delays.
const zeroTransit = 1e-12

// ytoTree is the parametric shortest-path tree maintained by
// YoungTarjanOrlin. Costs are negated weights so the maximum ratio becomes a
// minimum one. The synthetic source is implicit: parent == -1.
type ytoTree struct {
	g *Graph

	parent     []NodeID // parent node, -1 for the source
	parentEdge []EdgeID // tree edge entering the node, -1 for the source edge
	firstChild []NodeID
	nextSib    []NodeID
	prevSib    []NodeID

	level   []int
	cost    []float64
	transit []float64

	heap *dheap
}

// YoungTarjanOrlin returns the maximum cycle ratio Σw/Σd of g and a cycle
// attaining it.
//
// Every node hangs off a synthetic source through a zero-cost, zero-transit
// edge. Each non-tree edge (u,v) is keyed by the ratio at which it becomes
// tight,
//
//	key = (C[u] + c − C[v]) / (T[u] + t − T[v])   if the denominator is > 0
//	key = +∞                                       otherwise
//
// and the edge with the smallest key is pivoted into the tree. When its head
// is an ancestor of its tail the closed cycle is critical. Source edges are
// never keyed. A self-loop closes a cycle of length one with key c/t.
//
// Errors: ErrNoCycle when no cycle has positive delay, ErrZeroDelayCycle
// when some cycle has zero total delay.
func YoungTarjanOrlin(g *Graph) (Result, error) {
	if len(g.nodes) == 0 || len(g.edges) == 0 {
		return Result{}, ErrNoCycle
	}

	// 1) Zero-delay edges must form a DAG; their topological order seeds
	//    the initial tree.
	zero := NewGraph()
	for _, n := range g.nodes {
		zero.AddNode(n.Label)
	}
	for _, e := range g.edges {
		if e.Delay == 0 {
			zero.addDerivedEdge(e.From, e.To, e)
		}
	}
	comps := StronglyConnectedComponents(zero)
	for _, c := range comps {
		if len(c) > 1 || zero.hasSelfLoop(c[0]) {
			return Result{}, fmt.Errorf("YoungTarjanOrlin: %w", ErrZeroDelayCycle)
		}
	}

	t := newYTOTree(g)
	t.seed(zero, comps)
	t.initHeap()

	// 2) Pivot until an edge closes a cycle.
	for {
		item, key := t.heap.top()
		if math.IsInf(key, 1) {
			return Result{}, ErrNoCycle
		}
		e := g.edges[item]
		if e.From == e.To || t.isAncestor(e.To, e.From) {
			cycle := t.closeCycle(e)
			return Result{Value: g.CycleRatio(cycle), Cycle: cycle}, nil
		}
		t.pivot(e)
	}
}

// MaximumCycleRatio prunes dominated parallel edges and runs
// YoungTarjanOrlin. Cycle edge ids refer to g.
func MaximumCycleRatio(g *Graph) (Result, error) {
	pruned := PruneEdges(g)
	r, err := YoungTarjanOrlin(pruned)
	if err != nil {
		return Result{}, err
	}
	for i, e := range r.Cycle {
		r.Cycle[i] = pruned.edges[e].Ref
	}

	return r, nil
}

func newYTOTree(g *Graph) *ytoTree {
	n := len(g.nodes)
	t := &ytoTree{
		g:          g,
		parent:     make([]NodeID, n),
		parentEdge: make([]EdgeID, n),
		firstChild: make([]NodeID, n),
		nextSib:    make([]NodeID, n),
		prevSib:    make([]NodeID, n),
		level:      make([]int, n),
		cost:       make([]float64, n),
		transit:    make([]float64, n),
	}
	for v := 0; v < n; v++ {
		t.parent[v] = -1
		t.parentEdge[v] = -1
		t.firstChild[v] = -1
		t.nextSib[v] = -1
		t.prevSib[v] = -1
		t.level[v] = 1
	}

	return t
}

// seed builds the lexicographic (transit, cost) shortest-path tree: all
// transits are zero and costs are minimized over zero-delay paths, processed
// in topological order (comps arrive reverse topological).
func (t *ytoTree) seed(zero *Graph, comps [][]NodeID) {
	for i := len(comps) - 1; i >= 0; i-- {
		v := comps[i][0]
		for _, ze := range zero.in[v] {
			e := t.g.edges[zero.edges[ze].Ref]
			if c := t.cost[e.From] - e.Weight; c < t.cost[v] {
				t.cost[v] = c
				t.parent[v] = e.From
				t.parentEdge[v] = e.ID
			}
		}
		if p := t.parent[v]; p >= 0 {
			t.level[v] = t.level[p] + 1
			t.link(v, p)
		}
	}
}

func (t *ytoTree) initHeap() {
	keys := make([]float64, len(t.g.edges))
	for i, e := range t.g.edges {
		keys[i] = t.key(e)
	}
	t.heap = newDHeap(keys)
}

// key returns the parameter at which e becomes tight, or +∞.
func (t *ytoTree) key(e Edge) float64 {
	if t.parentEdge[e.To] == e.ID {
		return math.Inf(1)
	}
	if e.From == e.To {
		if e.Delay <= 0 {
			return math.Inf(1)
		}
		return -e.Weight / e.Delay
	}
	den := t.transit[e.From] + e.Delay - t.transit[e.To]
	if den <= zeroTransit {
		return math.Inf(1)
	}

	return (t.cost[e.From] - t.cost[e.To] - e.Weight) / den
}

// isAncestor reports whether a lies on the tree path from the source to v.
func (t *ytoTree) isAncestor(a, v NodeID) bool {
	x := v
	for x >= 0 && t.level[x] > t.level[a] {
		x = t.parent[x]
	}

	return x == a
}

// closeCycle returns the tree path from e.To down to e.From followed by e.
func (t *ytoTree) closeCycle(e Edge) []EdgeID {
	var path []EdgeID
	for x := e.From; x != e.To; x = t.parent[x] {
		path = append(path, t.parentEdge[x])
	}
	cycle := make([]EdgeID, 0, len(path)+1)
	for i := len(path) - 1; i >= 0; i-- {
		cycle = append(cycle, path[i])
	}

	return append(cycle, e.ID)
}

// pivot makes e the tree edge into e.To and relabels the moved subtree.
func (t *ytoTree) pivot(e Edge) {
	u, v := e.From, e.To

	if p := t.parent[v]; p >= 0 {
		t.unlink(v, p)
	}
	t.parent[v] = u
	t.parentEdge[v] = e.ID
	t.link(v, u)

	dCost := t.cost[u] - e.Weight - t.cost[v]
	dTransit := t.transit[u] + e.Delay - t.transit[v]
	dLevel := t.level[u] + 1 - t.level[v]

	// Worklist traversal of the subtree rooted at v.
	var moved []NodeID
	work := []NodeID{v}
	for len(work) > 0 {
		x := work[len(work)-1]
		work = work[:len(work)-1]
		t.cost[x] += dCost
		t.transit[x] += dTransit
		t.level[x] += dLevel
		moved = append(moved, x)
		for c := t.firstChild[x]; c >= 0; c = t.nextSib[c] {
			work = append(work, c)
		}
	}

	for _, x := range moved {
		for _, id := range t.g.out[x] {
			t.heap.update(int(id), t.key(t.g.edges[id]))
		}
		for _, id := range t.g.in[x] {
			t.heap.update(int(id), t.key(t.g.edges[id]))
		}
	}
}

func (t *ytoTree) link(child, parent NodeID) {
	head := t.firstChild[parent]
	t.nextSib[child] = head
	t.prevSib[child] = -1
	if head >= 0 {
		t.prevSib[head] = child
	}
	t.firstChild[parent] = child
}

func (t *ytoTree) unlink(child, parent NodeID) {
	if prev := t.prevSib[child]; prev >= 0 {
		t.nextSib[prev] = t.nextSib[child]
	} else {
		t.firstChild[parent] = t.nextSib[child]
	}
	if next := t.nextSib[child]; next >= 0 {
		t.prevSib[next] = t.prevSib[child]
	}
	t.nextSib[child], t.prevSib[child] = -1, -1
}
