package firing

import (
	"fmt"

	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/model"
)

// Scenario is a scenario prepared for repeated execution: its graph, token
// layouts, reward and one captured firing schedule. It is built per
// analysis and never shared through the model.
type Scenario struct {
	ID       model.ScenarioID
	Name     string
	Graph    *model.ScenarioGraph
	Initial  model.Layout
	Final    model.Layout
	Reward   float64
	Schedule Schedule
}

// Prepare derives the repetition vector and layouts of s and captures a
// schedule by iterating once from all-zero timestamps.
func Prepare(g *model.Graph, s model.ScenarioID) (*Scenario, error) {
	sc := g.Scenario(s)
	reps, err := g.RepetitionVector(s)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	final, err := g.FinalLayout(s)
	if err != nil {
		return nil, err
	}
	out := &Scenario{
		ID:      s,
		Name:    sc.Name,
		Graph:   g.GraphOf(s),
		Initial: g.InitialLayout(s),
		Final:   final,
		Reward:  sc.Reward,
	}

	st, err := NewState(out.Graph, out.Initial, maxplus.NewVector(out.Initial.Size(), 0))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if out.Schedule, err = Iterate(out.Graph, s, reps, st); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	return out, nil
}

// PrepareAll prepares every scenario of g, indexed by scenario id.
func PrepareAll(g *model.Graph) ([]*Scenario, error) {
	out := make([]*Scenario, g.ScenarioCount())
	for i := range out {
		sc, err := Prepare(g, model.ScenarioID(i))
		if err != nil {
			return nil, err
		}
		out[i] = sc
	}

	return out, nil
}

// IsSquare reports whether the scenario ends with the slots it starts with.
func (sc *Scenario) IsSquare() bool {
	if len(sc.Initial.Counts) != len(sc.Final.Counts) {
		return false
	}
	for i := range sc.Initial.Counts {
		if sc.Initial.Counts[i] != sc.Final.Counts[i] {
			return false
		}
	}

	return true
}

// Apply replays the schedule on initial tokens v and returns the final
// token vector in the Final layout.
func (sc *Scenario) Apply(v maxplus.Vector) (maxplus.Vector, error) {
	st, err := NewState(sc.Graph, sc.Initial, v)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err = Replay(sc.Graph, sc.ID, sc.Schedule, st); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	return st.Vector(), nil
}

// Handover maps the final-token slots of one scenario onto the
// initial-token slots of the next by (channel name, arrival index).
type Handover []int

// NewHandover matches from.Final against to.Initial. A mismatch in
// per-channel counts or names returns model.ErrLayoutMismatch.
func NewHandover(from, to *Scenario) (Handover, error) {
	perm, err := from.Final.Permutation(to.Initial)
	if err != nil {
		return nil, fmt.Errorf("%q → %q: %w", from.Name, to.Name, err)
	}

	return Handover(perm), nil
}

// Apply moves v from the source layout into the destination layout.
func (h Handover) Apply(v maxplus.Vector) maxplus.Vector {
	out := make(maxplus.Vector, len(v))
	for i, j := range h {
		out[j] = v[i]
	}

	return out
}

// Inverse returns the slot of the source layout that feeds each slot of the
// destination layout.
func (h Handover) Inverse() []int {
	inv := make([]int, len(h))
	for i, j := range h {
		inv[j] = i
	}

	return inv
}
