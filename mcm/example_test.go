package mcm_test

import (
	"fmt"

	"github.com/katalvlaran/sadf/mcm"
)

// ExampleMaximumCycleRatio finds the critical cycle of a two-node graph.
//
//	a ──(w=2,d=1)──▶ b
//	a ◀──(w=4,d=1)── b      ratio (2+4)/2 = 3
//	b ──(w=5,d=2)──▶ b      ratio 2.5
func ExampleMaximumCycleRatio() {
	g := mcm.NewGraph()
	a := g.AddNode("a")
	b := g.AddNode("b")
	_, _ = g.AddEdge(a, b, 2, 1)
	_, _ = g.AddEdge(b, a, 4, 1)
	_, _ = g.AddEdge(b, b, 5, 2)

	r, err := mcm.MaximumCycleRatio(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("ratio %.1f over %d edges\n", r.Value, len(r.Cycle))
	// Output: ratio 3.0 over 2 edges
}

// ExampleMaximumCycleMean runs Karp per strongly connected component.
func ExampleMaximumCycleMean() {
	g := mcm.NewGraph()
	x := g.AddNode("x")
	y := g.AddNode("y")
	_, _ = g.AddEdge(x, x, 3, 1)
	_, _ = g.AddEdge(x, y, 100, 1)
	_, _ = g.AddEdge(y, y, 1, 1)

	r, _ := mcm.MaximumCycleMean(g)
	fmt.Println(r.Value, g.Node(g.Edge(r.Cycle[0]).From).Label)
	// Output: 3 x
}
