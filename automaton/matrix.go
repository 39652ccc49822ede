package automaton

import (
	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
)

// ScenarioMatrix returns the final × initial max-plus matrix of sc: column
// j is the final-token vector produced from the unit vector e_j.
func ScenarioMatrix(sc *firing.Scenario) (*maxplus.Matrix, error) {
	n := sc.Initial.Size()
	cols := make([]maxplus.Vector, n)
	for j := 0; j < n; j++ {
		col, err := sc.Apply(maxplus.Unit(n, j))
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	return maxplus.FromColumns(sc.Final.Size(), cols)
}
