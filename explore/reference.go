package explore

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
)

// ReferenceDelay returns the smallest tau such that repeating sc from the
// reference vector ref never produces a token later than ref + tau + k·period
// after k iterations. It replays the schedule from ref, accumulating
// delta = Σ(shift − period), and tracks
//
//	tau = max(tau, maxdiff(x_k, ref) + delta)
//
// until the normalized vector recurs. ref is compared in normalized form, so
// shifting it by a constant does not change tau. ref must be in the
// scenario's initial layout and the scenario square.
func ReferenceDelay(sc *firing.Scenario, period float64, ref maxplus.Vector, opts ...Option) (float64, error) {
	o := buildOptions(opts)
	if !sc.IsSquare() {
		return 0, fmt.Errorf("ReferenceDelay(%q): %w", sc.Name, ErrNotSquare)
	}

	r := ref.Clone()
	r.Normalize()
	seen := newStateTable(o.Epsilon)
	seen.insert(0, r)
	x := r.Clone()

	var tau, delta float64
	for it := 1; it <= o.MaxIterations; it++ {
		y, err := sc.Apply(x)
		if err != nil {
			return 0, err
		}
		shift := y.Normalize()
		if maxplus.IsMinusInfinity(shift) {
			return 0, fmt.Errorf("ReferenceDelay(%q): %w", sc.Name, ErrUnrelated)
		}
		delta += shift - period

		d, err := y.MaxDifference(r)
		if err != nil {
			return 0, err
		}
		if math.IsInf(d, 1) {
			return 0, fmt.Errorf("ReferenceDelay(%q): token related in trajectory, unrelated in reference: %w",
				sc.Name, ErrUnrelated)
		}
		if !maxplus.IsMinusInfinity(d) {
			tau = math.Max(tau, d+delta)
		}

		if _, ok := seen.find(0, y); ok {
			o.Logger.Debug("reference delay",
				"scenario", sc.Name, "tau", tau, "iterations", it)
			return tau, nil
		}
		seen.insert(0, y)
		x = y
	}

	return 0, fmt.Errorf("ReferenceDelay(%q): %d iterations: %w", sc.Name, o.MaxIterations, ErrNoConvergence)
}
