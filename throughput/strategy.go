package throughput

import (
	"fmt"
	"strings"
)

// Strategy selects a throughput analysis algorithm.
type Strategy int

const (
	ReferenceSchedule Strategy = iota
	ScenarioTransitions
	StateSpace
	MaxPlusAutomaton
	WeakMaxPlusAutomaton
)

var strategyNames = [...]string{
	ReferenceSchedule:    "reference-schedule",
	ScenarioTransitions:  "scenario-transitions",
	StateSpace:           "state-space",
	MaxPlusAutomaton:     "maxplus-automaton",
	WeakMaxPlusAutomaton: "weak-maxplus-automaton",
}

// Strategies lists all strategies in increasing order of generality.
func Strategies() []Strategy {
	return []Strategy{ReferenceSchedule, ScenarioTransitions, StateSpace, MaxPlusAutomaton, WeakMaxPlusAutomaton}
}

// String returns the strategy name used on the command line.
func (s Strategy) String() string {
	if s.valid() {
		return strategyNames[s]
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool { return s >= 0 && int(s) < len(strategyNames) }

// ParseStrategy resolves a strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Exact reports whether the strategy computes the exact worst-case
// throughput rather than a lower bound.
func (s Strategy) Exact() bool {
	return s == StateSpace || s == MaxPlusAutomaton || s == WeakMaxPlusAutomaton
}
