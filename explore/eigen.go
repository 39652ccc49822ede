package explore

import (
	"fmt"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
)

// Eigen is the asymptotic behaviour of a scenario repeated forever: every
// iteration delays the normalized Vector by Period.
type Eigen struct {
	Vector     maxplus.Vector
	Period     float64
	Iterations int
}

// Eigenpair runs EigenpairFrom starting at the all-zero vector.
func Eigenpair(sc *firing.Scenario, opts ...Option) (Eigen, error) {
	return EigenpairFrom(sc, maxplus.NewVector(sc.Initial.Size(), 0), opts...)
}

// EigenpairFrom applies the scenario schedule to x0 until the normalized
// vector is stable within Epsilon. From the second step on, the new vector
// is averaged with the previous one (maxplus.Vector.Smooth), which damps the
// oscillation of graphs with several critical cycles. The period is the
// normalization shift of the final step.
//
// The scenario must be square. Deadlocks surface from firing.
func EigenpairFrom(sc *firing.Scenario, x0 maxplus.Vector, opts ...Option) (Eigen, error) {
	o := buildOptions(opts)
	if !sc.IsSquare() {
		return Eigen{}, fmt.Errorf("Eigenpair(%q): %w", sc.Name, ErrNotSquare)
	}

	x := x0.Clone()
	if maxplus.IsMinusInfinity(x.Normalize()) {
		return Eigen{}, fmt.Errorf("Eigenpair(%q): start vector: %w", sc.Name, ErrUnrelated)
	}

	for it := 1; it <= o.MaxIterations; it++ {
		y, err := sc.Apply(x)
		if err != nil {
			return Eigen{}, err
		}
		shift := y.Normalize()
		if maxplus.IsMinusInfinity(shift) {
			return Eigen{}, fmt.Errorf("Eigenpair(%q): iteration %d: %w", sc.Name, it, ErrUnrelated)
		}
		if y.Equal(x, o.Epsilon) {
			o.Logger.Debug("eigenpair converged",
				"scenario", sc.Name, "period", shift, "iterations", it)
			return Eigen{Vector: y, Period: shift, Iterations: it}, nil
		}
		if it == 1 {
			// the first step fixes which tokens stay unrelated
			x = y
			continue
		}
		if x, err = x.Smooth(y); err != nil {
			return Eigen{}, err
		}
		x.Normalize()
	}

	return Eigen{}, fmt.Errorf("Eigenpair(%q): %d iterations: %w", sc.Name, o.MaxIterations, ErrNoConvergence)
}
