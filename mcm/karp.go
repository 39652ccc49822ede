// SPDX-License-Identifier: MIT

package mcm

import (
	"fmt"
	"math"
)

// Result is a maximum cycle mean or ratio together with one cycle that
// attains it. Cycle lists edge ids of the analysed graph in traversal order.
type Result struct {
	Value float64
	Cycle []EdgeID
}

// Karp returns the maximum cycle mean of a strongly connected graph and a
// critical cycle. Edge delays are ignored.
//
// D[k][v] is the heaviest walk of exactly k edges from node 0 to v. Then
//
//	λ = max_v min_{0≤k<n} (D[n][v] − D[k][v]) / (n − k)
//
// and a critical cycle lies on the heaviest n-edge walk to the maximizing v;
// the walk is split into simple cycles and the best one is returned.
//
// Complexity: O(V·E) time, O(V²) memory.
func Karp(g *Graph) (Result, error) {
	n := len(g.nodes)
	if n == 0 || len(g.edges) == 0 {
		return Result{}, ErrNoCycle
	}
	if !IsStronglyConnected(g) {
		return Result{}, fmt.Errorf("Karp: %w", ErrNotStronglyConnected)
	}

	// 1) Heaviest walks of length 0..n from node 0, with predecessor edges.
	negInf := math.Inf(-1)
	d := make([][]float64, n+1)
	pred := make([][]EdgeID, n+1)
	for k := range d {
		d[k] = make([]float64, n)
		pred[k] = make([]EdgeID, n)
		for v := range d[k] {
			d[k][v] = negInf
			pred[k][v] = -1
		}
	}
	d[0][0] = 0
	for k := 1; k <= n; k++ {
		for _, e := range g.edges {
			if math.IsInf(d[k-1][e.From], -1) {
				continue
			}
			if w := d[k-1][e.From] + e.Weight; w > d[k][e.To] {
				d[k][e.To] = w
				pred[k][e.To] = e.ID
			}
		}
	}

	// 2) Karp's formula.
	best, bestV := negInf, NodeID(-1)
	for v := 0; v < n; v++ {
		if math.IsInf(d[n][v], -1) {
			continue
		}
		worst := math.Inf(1)
		for k := 0; k < n; k++ {
			if math.IsInf(d[k][v], -1) {
				continue
			}
			if m := (d[n][v] - d[k][v]) / float64(n-k); m < worst {
				worst = m
			}
		}
		if worst > best {
			best, bestV = worst, NodeID(v)
		}
	}
	if bestV < 0 {
		return Result{}, ErrNoCycle
	}

	// 3) Critical cycle from the n-edge walk ending at bestV.
	walk := make([]EdgeID, n) // walk[k-1] is the edge entering level k
	v := bestV
	for k := n; k >= 1; k-- {
		e := pred[k][v]
		walk[k-1] = e
		v = g.edges[e].From
	}

	return Result{Value: best, Cycle: bestCycleOnWalk(g, walk)}, nil
}

// bestCycleOnWalk splits a walk into simple cycles with a stack and returns
// the one with the largest mean.
func bestCycleOnWalk(g *Graph, walk []EdgeID) []EdgeID {
	type entry struct {
		node NodeID
		edge EdgeID // edge that reached node; -1 for the walk start
	}
	stack := []entry{{node: g.edges[walk[0]].From, edge: -1}}
	pos := map[NodeID]int{stack[0].node: 0}

	var best []EdgeID
	bestMean := math.Inf(-1)
	for _, e := range walk {
		to := g.edges[e].To
		if at, ok := pos[to]; ok {
			cycle := make([]EdgeID, 0, len(stack)-at)
			for _, s := range stack[at+1:] {
				cycle = append(cycle, s.edge)
			}
			cycle = append(cycle, e)
			if m := g.CycleMean(cycle); m > bestMean {
				best, bestMean = cycle, m
			}
			for _, s := range stack[at+1:] {
				delete(pos, s.node)
			}
			stack = stack[:at+1]
			continue
		}
		pos[to] = len(stack)
		stack = append(stack, entry{node: to, edge: e})
	}

	return best
}

// MaximumCycleMean runs Karp on every cyclic strongly connected component
// of g and returns the largest mean. Cycle edge ids refer to g.
func MaximumCycleMean(g *Graph) (Result, error) {
	best := Result{Value: math.Inf(-1)}
	found := false
	for _, sub := range ExtractSCCs(g) {
		r, err := Karp(sub)
		if err != nil {
			return Result{}, fmt.Errorf("MaximumCycleMean: %w", err)
		}
		if !found || r.Value > best.Value {
			best, found = r, true
			for i, e := range best.Cycle {
				best.Cycle[i] = sub.edges[e].Ref
			}
		}
	}
	if !found {
		return Result{}, ErrNoCycle
	}

	return best, nil
}
