package throughput

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/mcm"
	"github.com/katalvlaran/sadf/metrics"
	"github.com/katalvlaran/sadf/model"
)

// Result of one analysis.
type Result struct {
	RunID    uuid.UUID
	Graph    string
	Strategy Strategy

	// Throughput is rewarded iterations per time unit, 1/Period. Every
	// scenario execution counts its reward (default 1), so two alternating
	// scenarios taking 4 and 6 give 1/5; with reward 0.5 each, marking one
	// graph iteration per round, they give 1/10.
	Throughput float64

	// Period is the maximum cycle ratio of the reduced graph.
	Period float64

	// CriticalScenarios lists the scenarios executed along the critical
	// cycle, in order.
	CriticalScenarios []string

	// States is the node count of the reduced graph.
	States int
}

// reduction is what a strategy hands to the cycle-ratio engine.
type reduction struct {
	graph   *mcm.Graph
	stateOf func(mcm.NodeID) model.StateID
}

type reducer func(ctx context.Context, g *model.Graph, scs []*firing.Scenario, o Options, log *slog.Logger) (*reduction, error)

var reducers = map[Strategy]reducer{
	ReferenceSchedule:    reduceReferenceSchedule,
	ScenarioTransitions:  reduceScenarioTransitions,
	StateSpace:           reduceStateSpace,
	MaxPlusAutomaton:     reduceAutomaton(false),
	WeakMaxPlusAutomaton: reduceAutomaton(true),
}

// Analyze validates g, runs strategy s and returns the throughput. Every
// call gets a fresh RunID, which tags its log records.
func Analyze(ctx context.Context, g *model.Graph, s Strategy, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	run := uuid.New()
	log := o.Logger.With("run", run.String(), "graph", g.Name, "strategy", s.String())
	start := time.Now()

	res, err := analyze(ctx, g, s, o, log)
	metrics.AnalysisDuration.WithLabelValues(s.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues(s.String(), metrics.OutcomeError).Inc()
		log.Debug("analysis failed", "error", err)
		return nil, err
	}
	metrics.AnalysesTotal.WithLabelValues(s.String(), metrics.OutcomeOK).Inc()

	res.RunID = run
	log.Info("analysis complete",
		"throughput", res.Throughput,
		"period", res.Period,
		"states", res.States,
		"critical", res.CriticalScenarios)

	return res, nil
}

// AnalyzeReferenceSchedule runs the reference-schedule strategy.
func AnalyzeReferenceSchedule(ctx context.Context, g *model.Graph, opts ...Option) (*Result, error) {
	return Analyze(ctx, g, ReferenceSchedule, opts...)
}

// AnalyzeScenarioTransitions runs the scenario-transitions strategy.
func AnalyzeScenarioTransitions(ctx context.Context, g *model.Graph, opts ...Option) (*Result, error) {
	return Analyze(ctx, g, ScenarioTransitions, opts...)
}

// AnalyzeStateSpace runs the state-space strategy.
func AnalyzeStateSpace(ctx context.Context, g *model.Graph, opts ...Option) (*Result, error) {
	return Analyze(ctx, g, StateSpace, opts...)
}

// AnalyzeMaxPlusAutomaton runs the strict max-plus automaton strategy.
func AnalyzeMaxPlusAutomaton(ctx context.Context, g *model.Graph, opts ...Option) (*Result, error) {
	return Analyze(ctx, g, MaxPlusAutomaton, opts...)
}

// AnalyzeWeakMaxPlusAutomaton runs the weakly consistent max-plus
// automaton strategy.
func AnalyzeWeakMaxPlusAutomaton(ctx context.Context, g *model.Graph, opts ...Option) (*Result, error) {
	return Analyze(ctx, g, WeakMaxPlusAutomaton, opts...)
}

func analyze(ctx context.Context, g *model.Graph, s Strategy, o Options, log *slog.Logger) (*Result, error) {
	reduce, ok := reducers[s]
	if !ok {
		return nil, fmt.Errorf("%v: %w", s, ErrUnknownStrategy)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1) Model checks and per-scenario schedules.
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graph %q: %w", g.Name, err)
	}
	scs, err := firing.PrepareAll(g)
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", g.Name, err)
	}
	if err = checkTokens(g, scs); err != nil {
		return nil, err
	}
	log.Debug("scenarios prepared", "scenarios", len(scs))

	// 2) Strategy-specific reduction.
	red, err := reduce(ctx, g, scs, o, log)
	if err != nil {
		return nil, fmt.Errorf("%v on %q: %w", s, g.Name, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	states := red.graph.NodeCount()
	metrics.ExploredStates.WithLabelValues(s.String()).Add(float64(states))
	log.Debug("graph reduced", "states", states, "edges", red.graph.EdgeCount())

	// 3) Cycle ratio.
	metrics.CycleRatioRuns.WithLabelValues(s.String()).Inc()
	r, err := mcm.MaximumCycleRatio(red.graph)
	if err != nil {
		return nil, fmt.Errorf("%v on %q: %w", s, g.Name, err)
	}
	if r.Value <= o.Epsilon {
		return nil, fmt.Errorf("%v on %q: period %g: %w", s, g.Name, r.Value, ErrInfiniteThroughput)
	}

	return &Result{
		Graph:             g.Name,
		Strategy:          s,
		Throughput:        1 / r.Value,
		Period:            r.Value,
		CriticalScenarios: criticalScenarios(g, red, r.Cycle),
		States:            states,
	}, nil
}

// checkTokens rejects reachable FSM states whose scenario starts empty.
func checkTokens(g *model.Graph, scs []*firing.Scenario) error {
	fsm := g.FSM()
	for _, q := range fsm.Reachable() {
		sc := scs[fsm.State(q).Scenario]
		if sc.Initial.Size() == 0 {
			return fmt.Errorf("state %q, scenario %q: %w", fsm.State(q).Name, sc.Name, ErrNoInitialTokens)
		}
	}

	return nil
}

// criticalScenarios names the scenario executed by every edge of cycle.
func criticalScenarios(g *model.Graph, red *reduction, cycle []mcm.EdgeID) []string {
	out := make([]string, 0, len(cycle))
	for _, e := range cycle {
		q := red.stateOf(red.graph.Edge(e).To)
		out = append(out, g.Scenario(g.FSM().State(q).Scenario).Name)
	}

	return out
}
