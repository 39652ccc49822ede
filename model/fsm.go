package model

import "fmt"

// StateID indexes FSM states.
type StateID int

// State is an FSM location. Entering it executes one iteration of Scenario.
type State struct {
	ID       StateID
	Name     string
	Scenario ScenarioID
}

// Transition is a legal scenario succession.
type Transition struct {
	From StateID
	To   StateID
}

// FSM sequences scenarios. The initial state's scenario runs first.
type FSM struct {
	states      []State
	transitions []Transition
	successors  [][]StateID
	initial     StateID
	stateByName map[string]StateID
}

func newFSM() *FSM {
	return &FSM{stateByName: make(map[string]StateID)}
}

// AddState appends a state bound to scenario s. The first state added is
// the initial state until SetInitial says otherwise.
func (f *FSM) AddState(name string, s ScenarioID) (StateID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := f.stateByName[name]; ok {
		return 0, fmt.Errorf("state %q: %w", name, ErrDuplicateName)
	}
	id := StateID(len(f.states))
	f.states = append(f.states, State{ID: id, Name: name, Scenario: s})
	f.successors = append(f.successors, nil)
	f.stateByName[name] = id

	return id, nil
}

// AddTransition adds from → to. Duplicate transitions are ignored.
func (f *FSM) AddTransition(from, to StateID) error {
	if !f.has(from) || !f.has(to) {
		return ErrUnknownState
	}
	for _, s := range f.successors[from] {
		if s == to {
			return nil
		}
	}
	f.transitions = append(f.transitions, Transition{From: from, To: to})
	f.successors[from] = append(f.successors[from], to)

	return nil
}

// SetInitial selects the initial state.
func (f *FSM) SetInitial(q StateID) error {
	if !f.has(q) {
		return ErrUnknownState
	}
	f.initial = q

	return nil
}

// Initial returns the initial state.
func (f *FSM) Initial() StateID { return f.initial }

// State returns state q.
func (f *FSM) State(q StateID) *State { return &f.states[q] }

// StateCount returns the number of states.
func (f *FSM) StateCount() int { return len(f.states) }

// StateByName looks a state up by name.
func (f *FSM) StateByName(name string) (StateID, bool) {
	id, ok := f.stateByName[name]

	return id, ok
}

// Successors returns the states reachable from q in one transition,
// in insertion order.
func (f *FSM) Successors(q StateID) []StateID { return f.successors[q] }

// Transitions returns all transitions in insertion order.
func (f *FSM) Transitions() []Transition { return f.transitions }

// Reachable returns the states reachable from the initial state, in BFS
// order, the initial state first.
func (f *FSM) Reachable() []StateID {
	if len(f.states) == 0 {
		return nil
	}
	seen := make([]bool, len(f.states))
	order := []StateID{f.initial}
	seen[f.initial] = true
	for i := 0; i < len(order); i++ {
		for _, next := range f.successors[order[i]] {
			if !seen[next] {
				seen[next] = true
				order = append(order, next)
			}
		}
	}

	return order
}

func (f *FSM) has(q StateID) bool { return q >= 0 && int(q) < len(f.states) }
