// Package mcm computes maximum cycle means and maximum cycle ratios of
// weighted directed multigraphs.
//
// Every throughput analysis in this module reduces to a Graph whose edges
// carry a weight w (time) and a delay d (iterations, or reward). The cycle
// ratio of a cycle C is Σw / Σd over its edges; the cycle mean is the ratio
// with every d = 1. The maximum over all cycles bounds the long-run period.
//
// Algorithms:
//
//	Karp(g)               – maximum cycle mean of a strongly connected graph.
//	                        Dynamic program over the heaviest walks of length
//	                        k = 0..n from a fixed node; O(V·E) time, O(V²) space.
//	MaximumCycleMean(g)   – Karp on every cyclic strongly connected component.
//	YoungTarjanOrlin(g)   – maximum cycle ratio of any graph. Parametric
//	                        shortest-path tree rooted at a synthetic source,
//	                        pivoting on the non-tree edge with the smallest key
//	                        kept in a 4-ary indexed heap; O(V·E + V²·log V)
//	                        expected in practice.
//	MaximumCycleRatio(g)  – YoungTarjanOrlin on PruneEdges(g).
//
// Supporting operations:
//
//	PruneEdges(g)                  – drop parallel edges dominated by a sibling.
//	StronglyConnectedComponents(g) – iterative Tarjan.
//	ExtractSCCs(g)                 – cyclic components as standalone graphs.
//
// Derived graphs (pruned, extracted, induced) never alias the input: nodes
// and edges are copied and their Ref field holds the id they had in the
// graph they were derived from.
//
// Errors:
//
//	ErrUnknownNode    – edge endpoint out of range.
//	ErrNegativeDelay  – negative edge delay.
//	ErrBadWeight      – NaN or infinite weight or delay.
//	ErrNoCycle        – the graph is acyclic; no cycle mean exists.
//	ErrZeroDelayCycle – a cycle whose delays sum to zero (ratio undefined).
//	ErrNotStronglyConnected – Karp on a graph that is not strongly connected.
package mcm
