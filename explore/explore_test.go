package explore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/explore"
	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/mcm"
	"github.com/katalvlaran/sadf/model"
	"github.com/katalvlaran/sadf/model/modeltest"
)

func prepare(t *testing.T, g *model.Graph) []*firing.Scenario {
	t.Helper()
	scs, err := firing.PrepareAll(g)
	require.NoError(t, err)

	return scs
}

// TestEigenpair_TwoStarts converges on the pipeline from two different
// vectors to the same period and eigenvector.
func TestEigenpair_TwoStarts(t *testing.T) {
	sc := prepare(t, modeltest.Pipeline())[0]

	fromZero, err := explore.Eigenpair(sc)
	require.NoError(t, err)
	fromOther, err := explore.EigenpairFrom(sc, maxplus.Vector{0, -7, -1, -2})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, fromZero.Period, 1e-6)
	assert.InDelta(t, fromZero.Period, fromOther.Period, 1e-6)
	assert.True(t, fromZero.Vector.Equal(maxplus.Vector{-3, 0, -4, 0}, 1e-6), fromZero.Vector.String())
	assert.True(t, fromOther.Vector.Equal(fromZero.Vector, 1e-6))
}

func TestEigenpair_PerScenario(t *testing.T) {
	scs := prepare(t, modeltest.TwoScenario(4, 6))

	a, err := explore.Eigenpair(scs[0])
	require.NoError(t, err)
	b, err := explore.Eigenpair(scs[1])
	require.NoError(t, err)
	assert.InDelta(t, 4.0, a.Period, 1e-9)
	assert.InDelta(t, 6.0, b.Period, 1e-9)
}

func TestEigenpair_Errors(t *testing.T) {
	produce := prepare(t, modeltest.WeakPair())[0]
	_, err := explore.Eigenpair(produce)
	assert.ErrorIs(t, err, explore.ErrNotSquare)

	sc := prepare(t, modeltest.Pipeline())[0]
	_, err = explore.EigenpairFrom(sc, maxplus.NewVector(4, maxplus.MinusInfinity))
	assert.ErrorIs(t, err, explore.ErrUnrelated)

	_, err = explore.EigenpairFrom(sc, maxplus.Vector{0, -7, -1, -2}, explore.WithMaxIterations(2))
	assert.ErrorIs(t, err, explore.ErrNoConvergence)
}

func TestReferenceDelay(t *testing.T) {
	sc := prepare(t, modeltest.Pipeline())[0]
	eig, err := explore.Eigenpair(sc)
	require.NoError(t, err)

	tau, err := explore.ReferenceDelay(sc, eig.Period, eig.Vector)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, tau, 1e-6, "an eigenvector never lags itself")

	// From all-zero timestamps the first iteration ends at 5 instead of 3.
	tau, err = explore.ReferenceDelay(sc, 3, maxplus.NewVector(4, 0))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, tau, 1e-9)
}

func TestReferenceDelay_ShiftInvariant(t *testing.T) {
	sc := prepare(t, modeltest.Pipeline())[0]
	eig, err := explore.Eigenpair(sc)
	require.NoError(t, err)

	for _, c := range []float64{5, -4, 0.25} {
		tau, err := explore.ReferenceDelay(sc, 3, maxplus.NewVector(4, c))
		require.NoError(t, err)
		assert.InDelta(t, 2.0, tau, 1e-9, "shift %g", c)

		tau, err = explore.ReferenceDelay(sc, eig.Period, eig.Vector.AddScalar(c))
		require.NoError(t, err)
		assert.InDelta(t, 0.0, tau, 1e-6, "shift %g", c)
	}
}

func TestReferenceDelay_UnrelatedReference(t *testing.T) {
	sc := prepare(t, modeltest.Pipeline())[0]
	ref := maxplus.Vector{0, 0, maxplus.MinusInfinity, 0}
	_, err := explore.ReferenceDelay(sc, 3, ref)
	assert.ErrorIs(t, err, explore.ErrUnrelated)
}

func TestStateSpace_PruningAgrees(t *testing.T) {
	g := modeltest.Modal()
	scs := prepare(t, g)

	pruned, err := explore.StateSpace(g, scs)
	require.NoError(t, err)
	full, err := explore.StateSpace(g, scs, explore.WithPruning(false))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(pruned.States), len(full.States))
	assert.Zero(t, full.Redirected)

	r1, err := mcm.MaximumCycleRatio(pruned.Graph)
	require.NoError(t, err)
	r2, err := mcm.MaximumCycleRatio(full.Graph)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r1.Value, 1e-9)
	assert.InDelta(t, r1.Value, r2.Value, 1e-9)
}

func TestStateSpace_WeakPair(t *testing.T) {
	g := modeltest.WeakPair()
	scs := prepare(t, g)

	space, err := explore.StateSpace(g, scs)
	require.NoError(t, err)
	assert.Len(t, space.States, 3)
	assert.Equal(t, 1, space.Redirected)

	r, err := mcm.MaximumCycleRatio(space.Graph)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r.Value, 1e-9)

	// Without pruning P drifts ever further ahead of C.
	_, err = explore.StateSpace(g, scs, explore.WithPruning(false), explore.WithMaxStates(50))
	assert.ErrorIs(t, err, explore.ErrStateSpaceLimit)
}

func TestStateSpace_Cancelled(t *testing.T) {
	g := modeltest.Modal()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := explore.StateSpace(g, prepare(t, g), explore.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithEpsilonPanics(t *testing.T) {
	assert.Panics(t, func() { explore.WithEpsilon(0) })
	assert.Panics(t, func() { explore.WithMaxStates(0) })
}
