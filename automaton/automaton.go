package automaton

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/mcm"
	"github.com/katalvlaran/sadf/model"
)

// Location is an automaton location: an FSM state and one final-token slot
// of the state's scenario.
type Location struct {
	State model.StateID
	Token int
}

// Automaton is a max-plus automaton restricted to the locations reachable
// from the initial FSM state. Node i of Graph is Locations[i].
type Automaton struct {
	Graph     *mcm.Graph
	Locations []Location

	// Matrices holds the scenario matrices, indexed by scenario id.
	Matrices []*maxplus.Matrix
}

// Option configures Build.
type Option func(*Options)

// Options for Build.
type Options struct {
	Weak   bool
	Logger *slog.Logger
}

// WithWeakConsistency allows non-square scenario matrices.
func WithWeakConsistency() Option {
	return func(o *Options) { o.Weak = true }
}

// WithLogger routes Debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Build derives every scenario matrix and assembles the automaton of g.
// scs are the prepared scenarios of g indexed by scenario id.
func Build(g *model.Graph, scs []*firing.Scenario, opts ...Option) (*Automaton, error) {
	o := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Scenario matrices.
	mats := make([]*maxplus.Matrix, len(scs))
	for i, sc := range scs {
		m, err := ScenarioMatrix(sc)
		if err != nil {
			return nil, err
		}
		if !o.Weak && !m.IsSquare() {
			return nil, fmt.Errorf("scenario %q is %d×%d: %w", sc.Name, m.Rows(), m.Cols(), ErrNotSquare)
		}
		mats[i] = m
	}

	// 2) One node per (state, final token) of every FSM state.
	fsm := g.FSM()
	full := mcm.NewGraph()
	first := make([]mcm.NodeID, fsm.StateCount())
	var locs []Location
	for q := 0; q < fsm.StateCount(); q++ {
		st := fsm.State(model.StateID(q))
		first[q] = mcm.NodeID(full.NodeCount())
		for j := 0; j < scs[st.Scenario].Final.Size(); j++ {
			full.AddNode(fmt.Sprintf("%s/%d", st.Name, j))
			locs = append(locs, Location{State: st.ID, Token: j})
		}
	}

	// 3) Edges (q, j) → (q', i) for finite M_{s(q')}[i][P(j)].
	for _, tr := range fsm.Transitions() {
		from := scs[fsm.State(tr.From).Scenario]
		to := scs[fsm.State(tr.To).Scenario]
		perm, err := firing.NewHandover(from, to)
		if err != nil {
			return nil, fmt.Errorf("transition %q → %q: %w: %w",
				fsm.State(tr.From).Name, fsm.State(tr.To).Name, ErrTokenMismatch, err)
		}
		m := mats[to.ID]
		for j, pj := range perm {
			for i := 0; i < m.Rows(); i++ {
				w, _ := m.At(i, pj)
				if maxplus.IsMinusInfinity(w) {
					continue
				}
				src, dst := first[tr.From]+mcm.NodeID(j), first[tr.To]+mcm.NodeID(i)
				if _, err = full.AddEdge(src, dst, w, to.Reward); err != nil {
					return nil, err
				}
			}
		}
	}

	// 4) Keep what the initial state's tokens reach.
	q0 := fsm.Initial()
	var roots []mcm.NodeID
	for j := 0; j < scs[fsm.State(q0).Scenario].Final.Size(); j++ {
		roots = append(roots, first[q0]+mcm.NodeID(j))
	}
	sub := full.Induced(full.ReachableFrom(roots...))
	a := &Automaton{Graph: sub, Locations: make([]Location, sub.NodeCount()), Matrices: mats}
	for v := 0; v < sub.NodeCount(); v++ {
		a.Locations[v] = locs[sub.Node(mcm.NodeID(v)).Ref]
	}

	o.Logger.Debug("automaton built",
		"weak", o.Weak,
		"locations", sub.NodeCount(),
		"edges", sub.EdgeCount(),
		"dropped", full.NodeCount()-sub.NodeCount())

	return a, nil
}

// StateOf returns the FSM state of node v.
func (a *Automaton) StateOf(v mcm.NodeID) model.StateID { return a.Locations[v].State }
