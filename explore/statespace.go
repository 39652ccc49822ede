package explore

import (
	"fmt"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/mcm"
	"github.com/katalvlaran/sadf/model"
)

// State is one explored timed state: the FSM state whose scenario just ran
// and the normalized final-token vector it left.
type State struct {
	FSMState model.StateID
	Vector   maxplus.Vector
}

// Space is the explored state space. Node i of Graph is States[i]; an edge
// into a state of q' carries the normalization shift of executing q' as
// weight and the reward of that scenario as delay.
type Space struct {
	Graph   *mcm.Graph
	States  []State
	Initial mcm.NodeID

	// Redirected counts edges sent to a dominating state by pruning.
	Redirected int
}

// StateSpace explores (FSM state, vector) pairs breadth-first from the
// initial FSM state, whose scenario runs first on all-zero timestamps.
// Each successor hands the vector over by channel name, replays the
// destination scenario and normalizes.
//
// With Pruning on, a new vector that is pointwise no later than a stored
// vector of the same FSM state is not stored; its edge goes to the stored
// state instead.
//
// scs are the prepared scenarios of g indexed by scenario id. Errors:
// model.ErrLayoutMismatch for an FSM transition between incompatible token
// layouts, ErrStateSpaceLimit, ErrUnrelated, firing.ErrDeadlock, and the
// context error on cancellation.
func StateSpace(g *model.Graph, scs []*firing.Scenario, opts ...Option) (*Space, error) {
	o := buildOptions(opts)
	fsm := g.FSM()
	x := &stateExplorer{
		fsm:       fsm,
		scs:       scs,
		opts:      o,
		table:     newStateTable(o.Epsilon),
		handovers: make(map[[2]model.ScenarioID]firing.Handover),
		space:     &Space{Graph: mcm.NewGraph()},
	}

	// 1) Seed with the initial state's scenario.
	q0 := fsm.Initial()
	s0 := scs[fsm.State(q0).Scenario]
	y0, err := s0.Apply(maxplus.NewVector(s0.Initial.Size(), 0))
	if err != nil {
		return nil, err
	}
	if maxplus.IsMinusInfinity(y0.Normalize()) {
		return nil, fmt.Errorf("StateSpace: initial scenario %q: %w", s0.Name, ErrUnrelated)
	}
	x.space.Initial = x.add(q0, y0)

	// 2) Breadth-first expansion.
	for head := 0; head < len(x.space.States); head++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if err = x.expand(mcm.NodeID(head)); err != nil {
			return nil, err
		}
	}

	o.Logger.Debug("state space explored",
		"states", len(x.space.States),
		"edges", x.space.Graph.EdgeCount(),
		"redirected", x.space.Redirected,
		"pruning", o.Pruning)

	return x.space, nil
}

type stateExplorer struct {
	fsm       *model.FSM
	scs       []*firing.Scenario
	opts      Options
	table     *stateTable
	handovers map[[2]model.ScenarioID]firing.Handover
	space     *Space
}

func (x *stateExplorer) expand(node mcm.NodeID) error {
	cur := x.space.States[node]
	from := x.scs[x.fsm.State(cur.FSMState).Scenario]

	for _, q := range x.fsm.Successors(cur.FSMState) {
		to := x.scs[x.fsm.State(q).Scenario]
		h, err := x.handover(from, to)
		if err != nil {
			return err
		}
		y, err := to.Apply(h.Apply(cur.Vector))
		if err != nil {
			return err
		}
		shift := y.Normalize()
		if maxplus.IsMinusInfinity(shift) {
			return fmt.Errorf("StateSpace: scenario %q: %w", to.Name, ErrUnrelated)
		}

		target, err := x.target(q, y)
		if err != nil {
			return err
		}
		if _, err = x.space.Graph.AddEdge(node, target, shift, to.Reward); err != nil {
			return err
		}
	}

	return nil
}

// target returns the node for (q, y), storing it when it is new.
func (x *stateExplorer) target(q model.StateID, y maxplus.Vector) (mcm.NodeID, error) {
	if id, ok := x.table.find(int(q), y); ok {
		return mcm.NodeID(id), nil
	}
	if x.opts.Pruning {
		if id, ok := x.table.dominating(int(q), y); ok {
			x.space.Redirected++
			return mcm.NodeID(id), nil
		}
	}
	if x.table.len() >= x.opts.MaxStates {
		return 0, fmt.Errorf("StateSpace: %d states: %w", x.opts.MaxStates, ErrStateSpaceLimit)
	}

	return x.add(q, y), nil
}

func (x *stateExplorer) add(q model.StateID, y maxplus.Vector) mcm.NodeID {
	x.table.insert(int(q), y)
	x.space.States = append(x.space.States, State{FSMState: q, Vector: y})

	return x.space.Graph.AddNode(x.fsm.State(q).Name)
}

func (x *stateExplorer) handover(from, to *firing.Scenario) (firing.Handover, error) {
	k := [2]model.ScenarioID{from.ID, to.ID}
	if h, ok := x.handovers[k]; ok {
		return h, nil
	}
	h, err := firing.NewHandover(from, to)
	if err != nil {
		return nil, fmt.Errorf("StateSpace: %w", err)
	}
	x.handovers[k] = h

	return h, nil
}

// StateOf returns the FSM state of node v.
func (s *Space) StateOf(v mcm.NodeID) model.StateID { return s.States[v].FSMState }
