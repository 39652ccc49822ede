package mcm

import "errors"

var (
	// ErrUnknownNode indicates an edge endpoint that is not a node of the graph.
	ErrUnknownNode = errors.New("mcm: unknown node")

	// ErrNegativeDelay indicates an edge with a negative delay.
	ErrNegativeDelay = errors.New("mcm: negative edge delay")

	// ErrBadWeight indicates a NaN or infinite edge weight or delay.
	ErrBadWeight = errors.New("mcm: weight and delay must be finite")

	// ErrNoCycle indicates that no cycle (with positive delay, for ratios)
	// exists, so the cycle mean or ratio is undefined.
	ErrNoCycle = errors.New("mcm: graph has no cycle")

	// ErrZeroDelayCycle indicates a cycle whose delays sum to zero, so its
	// ratio is undefined.
	ErrZeroDelayCycle = errors.New("mcm: cycle with zero total delay")

	// ErrNotStronglyConnected indicates Karp was run on a graph that is not
	// strongly connected.
	ErrNotStronglyConnected = errors.New("mcm: graph is not strongly connected")
)
