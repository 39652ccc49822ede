package throughput

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/sadf/automaton"
	"github.com/katalvlaran/sadf/explore"
	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/mcm"
	"github.com/katalvlaran/sadf/model"
)

// eigenpairs computes the eigenpair of every scenario used by a reachable
// FSM state. Entries of unused scenarios stay nil.
func eigenpairs(g *model.Graph, scs []*firing.Scenario, xo []explore.Option, log *slog.Logger) ([]*explore.Eigen, error) {
	out := make([]*explore.Eigen, len(scs))
	fsm := g.FSM()
	for _, q := range fsm.Reachable() {
		s := fsm.State(q).Scenario
		if out[s] != nil {
			continue
		}
		eig, err := explore.Eigenpair(scs[s], xo...)
		if err != nil {
			return nil, err
		}
		log.Debug("scenario period", "scenario", scs[s].Name, "period", eig.Period, "iterations", eig.Iterations)
		out[s] = &eig
	}

	return out, nil
}

// fsmGraph builds one node per reachable FSM state and one edge per
// transition between them, weighted by weight and delayed by the reward of
// the destination scenario.
func fsmGraph(g *model.Graph, scs []*firing.Scenario, weight func(from, to model.StateID) (float64, error)) (*reduction, error) {
	fsm := g.FSM()
	reach := fsm.Reachable()
	node := make(map[model.StateID]mcm.NodeID, len(reach))
	mg := mcm.NewGraph()
	for _, q := range reach {
		node[q] = mg.AddNode(fsm.State(q).Name)
	}
	for _, q := range reach {
		for _, next := range fsm.Successors(q) {
			w, err := weight(q, next)
			if err != nil {
				return nil, err
			}
			reward := scs[fsm.State(next).Scenario].Reward
			if _, err = mg.AddEdge(node[q], node[next], w, reward); err != nil {
				return nil, err
			}
		}
	}

	return &reduction{
		graph:   mg,
		stateOf: func(v mcm.NodeID) model.StateID { return reach[v] },
	}, nil
}

// reduceReferenceSchedule bounds every scenario s by T_s + tau_s, where
// tau_s is the delay of s behind the reference vector: the componentwise
// maximum of all eigenvectors, expressed in the initial state's layout.
func reduceReferenceSchedule(ctx context.Context, g *model.Graph, scs []*firing.Scenario, o Options, log *slog.Logger) (*reduction, error) {
	xo := o.explore(ctx, log)
	eigs, err := eigenpairs(g, scs, xo, log)
	if err != nil {
		return nil, err
	}

	// 1) Reference vector in the layout of the initial scenario.
	fsm := g.FSM()
	base := scs[fsm.State(fsm.Initial()).Scenario]
	var ref maxplus.Vector
	for s, eig := range eigs {
		if eig == nil {
			continue
		}
		h, err := firing.NewHandover(scs[s], base)
		if err != nil {
			return nil, err
		}
		v := h.Apply(eig.Vector)
		if ref == nil {
			ref = v
			continue
		}
		if ref, err = ref.Maximum(v); err != nil {
			return nil, err
		}
	}
	log.Debug("reference vector", "ref", ref.String())

	// 2) Delay of every scenario behind the reference.
	bound := make([]float64, len(scs))
	for s, eig := range eigs {
		if eig == nil {
			continue
		}
		h, err := firing.NewHandover(base, scs[s])
		if err != nil {
			return nil, err
		}
		tau, err := explore.ReferenceDelay(scs[s], eig.Period, h.Apply(ref), xo...)
		if err != nil {
			return nil, err
		}
		log.Debug("reference delay", "scenario", scs[s].Name, "period", eig.Period, "tau", tau)
		bound[s] = eig.Period + tau
	}

	return fsmGraph(g, scs, func(_, to model.StateID) (float64, error) {
		return bound[fsm.State(to).Scenario], nil
	})
}

// reduceScenarioTransitions weights q → q' by how far executing s(q') on
// the eigenvector of s(q) lands beyond the eigenvector of s(q').
func reduceScenarioTransitions(ctx context.Context, g *model.Graph, scs []*firing.Scenario, o Options, log *slog.Logger) (*reduction, error) {
	eigs, err := eigenpairs(g, scs, o.explore(ctx, log), log)
	if err != nil {
		return nil, err
	}
	fsm := g.FSM()

	return fsmGraph(g, scs, func(from, to model.StateID) (float64, error) {
		src, dst := scs[fsm.State(from).Scenario], scs[fsm.State(to).Scenario]
		h, err := firing.NewHandover(src, dst)
		if err != nil {
			return 0, err
		}
		y, err := dst.Apply(h.Apply(eigs[src.ID].Vector))
		if err != nil {
			return 0, err
		}
		w, err := y.MaxDifference(eigs[dst.ID].Vector)
		if err != nil {
			return 0, err
		}
		if math.IsInf(w, 0) {
			return 0, fmt.Errorf("transition %q → %q: %w", fsm.State(from).Name, fsm.State(to).Name, explore.ErrUnrelated)
		}
		log.Debug("transition bound", "from", src.Name, "to", dst.Name, "weight", w)

		return w, nil
	})
}

func reduceStateSpace(ctx context.Context, g *model.Graph, scs []*firing.Scenario, o Options, log *slog.Logger) (*reduction, error) {
	space, err := explore.StateSpace(g, scs, o.explore(ctx, log)...)
	if err != nil {
		return nil, err
	}

	return &reduction{graph: space.Graph, stateOf: space.StateOf}, nil
}

func reduceAutomaton(weak bool) reducer {
	return func(_ context.Context, g *model.Graph, scs []*firing.Scenario, _ Options, log *slog.Logger) (*reduction, error) {
		opts := []automaton.Option{automaton.WithLogger(log)}
		if weak {
			opts = append(opts, automaton.WithWeakConsistency())
		}
		a, err := automaton.Build(g, scs, opts...)
		if err != nil {
			return nil, err
		}

		return &reduction{graph: a.Graph, stateOf: a.StateOf}, nil
	}
}
