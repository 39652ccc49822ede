package mcm

import (
	"fmt"
	"math"
)

// NodeID indexes Graph nodes.
type NodeID int

// EdgeID indexes Graph edges.
type EdgeID int

// Node is a graph vertex. Ref is the id of the node this one was derived
// from, or its own id for nodes created with AddNode.
type Node struct {
	ID    NodeID
	Label string
	Ref   NodeID
}

// Edge is a directed edge with a weight (time) and a delay (denominator).
// Ref is the id of the edge this one was derived from, or its own id.
type Edge struct {
	ID     EdgeID
	From   NodeID
	To     NodeID
	Weight float64
	Delay  float64
	Ref    EdgeID
}

// Graph is a directed multigraph with self-loops. It owns its nodes and
// edges; ids are dense and stable.
type Graph struct {
	nodes []Node
	edges []Edge
	out   [][]EdgeID
	in    [][]EdgeID
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a node and returns its id.
func (g *Graph) AddNode(label string) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Label: label, Ref: id})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return id
}

// AddEdge appends an edge from → to. Parallel edges and self-loops are
// allowed.
func (g *Graph) AddEdge(from, to NodeID, weight, delay float64) (EdgeID, error) {
	if !g.hasNode(from) || !g.hasNode(to) {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrUnknownNode)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || math.IsNaN(delay) || math.IsInf(delay, 0) {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrBadWeight)
	}
	if delay < 0 {
		return 0, fmt.Errorf("AddEdge(%d,%d): delay %g: %w", from, to, delay, ErrNegativeDelay)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight, Delay: delay, Ref: id})
	g.out[from] = append(g.out[from], id)
	g.in[to] = append(g.in[to], id)

	return id, nil
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns node v.
func (g *Graph) Node(v NodeID) Node { return g.nodes[v] }

// Edge returns edge e.
func (g *Graph) Edge(e EdgeID) Edge { return g.edges[e] }

// Edges returns all edges in id order. The slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// OutEdges returns the ids of edges leaving v.
func (g *Graph) OutEdges(v NodeID) []EdgeID { return g.out[v] }

// InEdges returns the ids of edges entering v.
func (g *Graph) InEdges(v NodeID) []EdgeID { return g.in[v] }

// CycleRatio returns Σw / Σd over the given edges.
func (g *Graph) CycleRatio(cycle []EdgeID) float64 {
	var w, d float64
	for _, e := range cycle {
		w += g.edges[e].Weight
		d += g.edges[e].Delay
	}

	return w / d
}

// CycleMean returns Σw / |cycle|.
func (g *Graph) CycleMean(cycle []EdgeID) float64 {
	var w float64
	for _, e := range cycle {
		w += g.edges[e].Weight
	}

	return w / float64(len(cycle))
}

// Induced returns the subgraph on nodes (in the given order) with every edge
// whose endpoints are both kept. Refs point into g.
func (g *Graph) Induced(nodes []NodeID) *Graph {
	sub := NewGraph()
	local := make(map[NodeID]NodeID, len(nodes))
	for _, v := range nodes {
		id := sub.AddNode(g.nodes[v].Label)
		sub.nodes[id].Ref = v
		local[v] = id
	}
	for _, e := range g.edges {
		from, okFrom := local[e.From]
		to, okTo := local[e.To]
		if !okFrom || !okTo {
			continue
		}
		sub.addDerivedEdge(from, to, e)
	}

	return sub
}

// ReachableFrom returns the nodes reachable from roots, in BFS order.
func (g *Graph) ReachableFrom(roots ...NodeID) []NodeID {
	seen := make([]bool, len(g.nodes))
	order := make([]NodeID, 0, len(g.nodes))
	for _, r := range roots {
		if g.hasNode(r) && !seen[r] {
			seen[r] = true
			order = append(order, r)
		}
	}
	for i := 0; i < len(order); i++ {
		for _, e := range g.out[order[i]] {
			to := g.edges[e].To
			if !seen[to] {
				seen[to] = true
				order = append(order, to)
			}
		}
	}

	return order
}

// addDerivedEdge copies e between already validated local endpoints.
func (g *Graph) addDerivedEdge(from, to NodeID, e Edge) {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: e.Weight, Delay: e.Delay, Ref: e.ID})
	g.out[from] = append(g.out[from], id)
	g.in[to] = append(g.in[to], id)
}

func (g *Graph) hasNode(v NodeID) bool { return v >= 0 && int(v) < len(g.nodes) }
