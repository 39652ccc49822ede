package firing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/model"
	"github.com/katalvlaran/sadf/model/modeltest"
)

func TestFIFO(t *testing.T) {
	var f firing.FIFO
	f.Produce(2, 3)
	f.Produce(1, 7)
	require.Equal(t, 3, f.Len())

	assert.Equal(t, 3.0, f.Consume(2))
	assert.True(t, maxplus.IsMinusInfinity(f.Consume(0)))
	assert.Equal(t, 7.0, f.Consume(1))
	assert.Equal(t, 0, f.Len())
}

// TestIterate_FlowBalance runs the 2/3 producer/consumer: P fires three
// times and C twice, and every channel ends with its initial token count.
func TestIterate_FlowBalance(t *testing.T) {
	g := modeltest.ProducerConsumer(4)
	sg := g.GraphOf(0)
	layout := g.InitialLayout(0)
	reps, err := g.RepetitionVector(0)
	require.NoError(t, err)

	st, err := firing.NewState(sg, layout, maxplus.NewVector(layout.Size(), 0))
	require.NoError(t, err)
	sched, err := firing.Iterate(sg, 0, reps, st)
	require.NoError(t, err)

	count := map[model.ActorID]int{}
	for _, a := range sched {
		count[a]++
	}
	assert.Equal(t, map[model.ActorID]int{0: 3, 1: 2}, count)
	assert.Equal(t, layout.Counts, st.Counts())
}

func TestIterate_Timestamps(t *testing.T) {
	g := modeltest.Pipeline()
	sc, err := firing.Prepare(g, 0)
	require.NoError(t, err)

	// slots: ba[0], ba[1], selfA, selfB
	out, err := sc.Apply(maxplus.Vector{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, maxplus.Vector{0, 5, 2, 5}, out)

	// An unrelated selfA token is dominated by the ba token A also consumes.
	out, err = sc.Apply(maxplus.Vector{0, 0, maxplus.MinusInfinity, 0})
	require.NoError(t, err)
	assert.Equal(t, maxplus.Vector{0, 5, 2, 5}, out)
}

func TestIterate_Deadlock(t *testing.T) {
	_, err := firing.Prepare(modeltest.Deadlocked(), 0)
	assert.ErrorIs(t, err, firing.ErrDeadlock)

	_, err = firing.Prepare(modeltest.ProducerConsumer(2), 0)
	require.ErrorIs(t, err, firing.ErrDeadlock)
	assert.Contains(t, err.Error(), `scenario "run"`)
	assert.Contains(t, err.Error(), "C")
}

func TestIterate_ActorWithoutInputs(t *testing.T) {
	g := model.NewGraph("source")
	sg, err := g.AddScenarioGraph("src")
	require.NoError(t, err)
	src, err := sg.AddActor("S", 5)
	require.NoError(t, err)
	sink, err := sg.AddActor("K", 1)
	require.NoError(t, err)
	_, err = sg.AddChannel("sk", src, 1, sink, 1, 0)
	require.NoError(t, err)
	_, err = sg.AddChannel("selfK", sink, 1, sink, 1, 1)
	require.NoError(t, err)
	s, err := g.AddScenario("run", sg.ID)
	require.NoError(t, err)

	sc, err := firing.Prepare(g, s)
	require.NoError(t, err)
	out, err := sc.Apply(maxplus.Vector{0})
	require.NoError(t, err)
	assert.Equal(t, maxplus.Vector{1}, out, "source tokens start at −∞ and never delay K")
}

func TestNormalize_Idempotent(t *testing.T) {
	g := modeltest.Pipeline()
	sg := g.GraphOf(0)
	st, err := firing.NewState(sg, g.InitialLayout(0), maxplus.Vector{1, 4, maxplus.MinusInfinity, 2})
	require.NoError(t, err)

	assert.Equal(t, 4.0, st.Normalize())
	first := st.Vector()
	assert.Equal(t, maxplus.Vector{-3, 0, maxplus.MinusInfinity, -2}, first)
	assert.Equal(t, 0.0, st.Normalize())
	assert.Equal(t, first, st.Vector())

	empty, err := firing.NewState(sg, g.InitialLayout(0),
		maxplus.Vector{maxplus.MinusInfinity, maxplus.MinusInfinity, maxplus.MinusInfinity, maxplus.MinusInfinity})
	require.NoError(t, err)
	assert.True(t, maxplus.IsMinusInfinity(empty.Normalize()))
}

func TestNewState_Shape(t *testing.T) {
	g := modeltest.Pipeline()
	_, err := firing.NewState(g.GraphOf(0), g.InitialLayout(0), maxplus.Vector{0})
	assert.ErrorIs(t, err, firing.ErrShape)
}

func TestHandover(t *testing.T) {
	g := modeltest.WeakPair()
	scs, err := firing.PrepareAll(g)
	require.NoError(t, err)
	produce, consume := scs[0], scs[1]
	assert.False(t, produce.IsSquare())

	h, err := firing.NewHandover(produce, consume)
	require.NoError(t, err)
	assert.Equal(t, firing.Handover{0, 1, 2}, h)

	_, err = firing.NewHandover(produce, produce)
	assert.ErrorIs(t, err, model.ErrLayoutMismatch)

	// produce: P consumes selfP(0) → completes 1 → pc=1, selfP=1
	out, err := produce.Apply(maxplus.Vector{0, 0})
	require.NoError(t, err)
	assert.Equal(t, maxplus.Vector{1, 1, 0}, out)
	assert.Equal(t, []int{0, 1, 2}, h.Inverse())
}
