package model

import "fmt"

// Validate checks that g can be analyzed: at least one scenario, a
// non-empty FSM whose states reference existing scenarios, and a solvable
// repetition vector with a non-negative token balance for every scenario.
func (g *Graph) Validate() error {
	// 1) Shape.
	if len(g.scenarios) == 0 {
		return fmt.Errorf("graph %q: %w", g.Name, ErrUnknownScenario)
	}
	if len(g.fsm.states) == 0 {
		return fmt.Errorf("graph %q: %w", g.Name, ErrEmptyFSM)
	}
	for _, st := range g.fsm.states {
		if !g.hasScenario(st.Scenario) {
			return fmt.Errorf("graph %q: state %q: %w", g.Name, st.Name, ErrUnknownScenario)
		}
	}

	// 2) Per-scenario balance. Handover between scenarios is checked where
	//    vectors cross FSM transitions.
	for i := range g.scenarios {
		if _, err := g.FinalLayout(ScenarioID(i)); err != nil {
			return fmt.Errorf("graph %q: %w", g.Name, err)
		}
	}

	return nil
}
