package throughput_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/automaton"
	"github.com/katalvlaran/sadf/explore"
	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/model"
	"github.com/katalvlaran/sadf/model/modeltest"
	"github.com/katalvlaran/sadf/throughput"
)

// halfRewards gives every scenario of g reward 0.5.
func halfRewards(t *testing.T, g *model.Graph) *model.Graph {
	t.Helper()
	for s := 0; s < g.ScenarioCount(); s++ {
		require.NoError(t, g.SetReward(model.ScenarioID(s), 0.5))
	}

	return g
}

// TestEndToEnd_TwoScenarios alternates a scenario of period 4 with one of
// period 6. Each scenario is worth half a graph iteration, so one A→B round
// is one iteration taking 10 time units.
func TestEndToEnd_TwoScenarios(t *testing.T) {
	ctx := context.Background()
	for _, s := range throughput.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			r, err := throughput.Analyze(ctx, halfRewards(t, modeltest.TwoScenario(4, 6)), s)
			require.NoError(t, err)
			assert.InDelta(t, 1.0/10.0, r.Throughput, 1e-9)
			assert.InDelta(t, 10.0, r.Period, 1e-9)
			assert.ElementsMatch(t, []string{"A", "B"}, r.CriticalScenarios)
			assert.Equal(t, s, r.Strategy)
			assert.NotEqual(t, uuid.Nil, r.RunID)

			// With the default reward every scenario iteration counts.
			r, err = throughput.Analyze(ctx, modeltest.TwoScenario(4, 6), s)
			require.NoError(t, err)
			assert.InDelta(t, 1.0/5.0, r.Throughput, 1e-9)
		})
	}
}

func TestStrategiesAgree_SingleScenario(t *testing.T) {
	ctx := context.Background()
	for _, s := range throughput.Strategies() {
		r, err := throughput.Analyze(ctx, modeltest.Pipeline(), s)
		require.NoError(t, err, s.String())
		assert.InDelta(t, 1.0/3.0, r.Throughput, 1e-6, s.String())
	}
}

// TestBounds_Modal checks that the bounding strategies never report more
// throughput than the exact ones.
func TestBounds_Modal(t *testing.T) {
	ctx := context.Background()
	exact, err := throughput.AnalyzeMaxPlusAutomaton(ctx, modeltest.Modal())
	require.NoError(t, err)
	assert.InDelta(t, 0.4, exact.Throughput, 1e-9)

	space, err := throughput.AnalyzeStateSpace(ctx, modeltest.Modal())
	require.NoError(t, err)
	assert.InDelta(t, exact.Throughput, space.Throughput, 1e-9)

	weak, err := throughput.AnalyzeWeakMaxPlusAutomaton(ctx, modeltest.Modal())
	require.NoError(t, err)
	assert.InDelta(t, exact.Throughput, weak.Throughput, 1e-9)

	ref, err := throughput.AnalyzeReferenceSchedule(ctx, modeltest.Modal())
	require.NoError(t, err)
	assert.LessOrEqual(t, ref.Throughput, exact.Throughput+1e-9)

	tr, err := throughput.AnalyzeScenarioTransitions(ctx, modeltest.Modal())
	require.NoError(t, err)
	assert.LessOrEqual(t, tr.Throughput, exact.Throughput+1e-9)
}

func TestWeaklyConsistent(t *testing.T) {
	ctx := context.Background()

	r, err := throughput.AnalyzeWeakMaxPlusAutomaton(ctx, modeltest.WeakPair())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Throughput, 1e-9)
	assert.ElementsMatch(t, []string{"produce", "consume"}, r.CriticalScenarios)

	r, err = throughput.AnalyzeStateSpace(ctx, modeltest.WeakPair())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Throughput, 1e-9)

	_, err = throughput.AnalyzeMaxPlusAutomaton(ctx, modeltest.WeakPair())
	assert.ErrorIs(t, err, automaton.ErrNotSquare)
	_, err = throughput.AnalyzeReferenceSchedule(ctx, modeltest.WeakPair())
	assert.ErrorIs(t, err, explore.ErrNotSquare)
	_, err = throughput.AnalyzeScenarioTransitions(ctx, modeltest.WeakPair())
	assert.ErrorIs(t, err, explore.ErrNotSquare)
}

func TestAnalyze_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := throughput.AnalyzeStateSpace(ctx, modeltest.Deadlocked())
	assert.ErrorIs(t, err, firing.ErrDeadlock)

	_, err = throughput.Analyze(ctx, modeltest.Pipeline(), throughput.Strategy(42))
	assert.ErrorIs(t, err, throughput.ErrUnknownStrategy)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = throughput.AnalyzeMaxPlusAutomaton(cancelled, modeltest.Pipeline())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = throughput.AnalyzeStateSpace(ctx, model.NewGraph("empty"))
	assert.ErrorIs(t, err, model.ErrUnknownScenario)
}

func TestAnalyze_NoInitialTokens(t *testing.T) {
	g := model.NewGraph("tokenless")
	sg, err := g.AddScenarioGraph("line")
	require.NoError(t, err)
	a, err := sg.AddActor("A", 1)
	require.NoError(t, err)
	b, err := sg.AddActor("B", 1)
	require.NoError(t, err)
	_, err = sg.AddChannel("ab", a, 1, b, 1, 0)
	require.NoError(t, err)
	s, err := g.AddScenario("run", sg.ID)
	require.NoError(t, err)
	q, err := g.FSM().AddState("run", s)
	require.NoError(t, err)
	require.NoError(t, g.FSM().AddTransition(q, q))

	_, err = throughput.AnalyzeStateSpace(context.Background(), g)
	assert.ErrorIs(t, err, throughput.ErrNoInitialTokens)
}

func TestAnalyze_InfiniteThroughput(t *testing.T) {
	_, err := throughput.AnalyzeMaxPlusAutomaton(context.Background(), modeltest.TwoScenario(0, 0))
	assert.ErrorIs(t, err, throughput.ErrInfiniteThroughput)
}

func TestAnalyze_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r, err := throughput.AnalyzeStateSpace(context.Background(), modeltest.Pipeline(), throughput.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"analysis complete"`)
	assert.Contains(t, buf.String(), r.RunID.String())
	assert.Contains(t, buf.String(), `"strategy":"state-space"`)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range throughput.Strategies() {
		got, err := throughput.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := throughput.ParseStrategy("State-Space")
	require.NoError(t, err)
	assert.Equal(t, throughput.StateSpace, got)
	assert.True(t, got.Exact())
	assert.False(t, throughput.ReferenceSchedule.Exact())

	_, err = throughput.ParseStrategy("monte-carlo")
	assert.ErrorIs(t, err, throughput.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", throughput.Strategy(9).String())
}

func TestAnalyzeAll(t *testing.T) {
	jobs := []throughput.Job{
		{Graph: modeltest.Pipeline(), Strategy: throughput.StateSpace},
		{Graph: modeltest.TwoScenario(4, 6), Strategy: throughput.MaxPlusAutomaton},
		{Graph: modeltest.WeakPair(), Strategy: throughput.WeakMaxPlusAutomaton},
		{Graph: modeltest.Modal(), Strategy: throughput.ReferenceSchedule},
	}
	results, err := throughput.AnalyzeAll(context.Background(), jobs, throughput.WithParallelism(2))
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	assert.InDelta(t, 1.0/3.0, results[0].Throughput, 1e-6)
	assert.InDelta(t, 0.2, results[1].Throughput, 1e-9)
	assert.InDelta(t, 0.5, results[2].Throughput, 1e-9)
	assert.Equal(t, "modal", results[3].Graph)

	jobs = append(jobs, throughput.Job{Graph: modeltest.Deadlocked(), Strategy: throughput.StateSpace})
	_, err = throughput.AnalyzeAll(context.Background(), jobs)
	assert.ErrorIs(t, err, firing.ErrDeadlock)
}
