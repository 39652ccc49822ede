package loader_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/loader"
	"github.com/katalvlaran/sadf/model"
	"github.com/katalvlaran/sadf/throughput"
)

func TestLoad_TwoScenario(t *testing.T) {
	g, err := loader.Load(filepath.Join("testdata", "two_scenario.yaml"))
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	assert.Equal(t, "two-scenario", g.Name)
	assert.Equal(t, 2, g.ScenarioCount())
	assert.Equal(t, 2, g.FSM().StateCount())
	assert.Len(t, g.FSM().Transitions(), 2)

	a, ok := g.ScenarioByName("A")
	require.True(t, ok)
	assert.InDelta(t, 0.5, g.Scenario(a).Reward, 0)

	r, err := throughput.Analyze(context.Background(), g, throughput.StateSpace)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, r.Throughput, 1e-9)
}

func TestLoad_Overrides(t *testing.T) {
	g, err := loader.Load(filepath.Join("testdata", "overrides.yaml"))
	require.NoError(t, err)

	sg, ok := g.ScenarioGraphByName("pc")
	require.True(t, ok)
	run, _ := g.ScenarioByName("run")
	burst, _ := g.ScenarioByName("burst")

	c, _ := sg.ActorByName("C")
	assert.InDelta(t, 2.0, sg.Actor(c).ExecutionTimeIn(run), 0)
	assert.InDelta(t, 5.0, sg.Actor(c).ExecutionTimeIn(burst), 0)

	pc, _ := sg.ChannelByName("pc")
	src := sg.Port(sg.Channel(pc).Src)
	assert.Equal(t, 2, src.RateIn(run))
	assert.Equal(t, 1, src.RateIn(burst))

	cp, _ := sg.ChannelByName("cp")
	assert.Equal(t, 6, sg.Channel(cp).InitialTokensIn(run))
	assert.Equal(t, 1, sg.Channel(cp).InitialTokensIn(burst))
	assert.Equal(t, 2, sg.Channel(cp).Final[burst])

	assert.Equal(t, map[string]int{"P": 1, "C": 1}, g.Scenario(burst).Repetitions)
	assert.InDelta(t, model.DefaultReward, g.Scenario(run).Reward, 0)
	assert.Equal(t, model.StateID(0), g.FSM().Initial())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "UnknownGraph",
			doc:  "scenarios: [{name: s, graph: nope}]",
			want: loader.ErrUnknownReference,
		},
		{
			name: "UnknownActor",
			doc: `graphs:
  - name: g
    actors: [{name: A, time: 1}]
    channels: [{name: c, src: A, dst: B}]`,
			want: loader.ErrUnknownReference,
		},
		{
			name: "UnknownOverrideScenario",
			doc: `graphs:
  - name: g
    actors: [{name: A, time: 1, times: {ghost: 2}}]`,
			want: loader.ErrUnknownReference,
		},
		{
			name: "UnknownState",
			doc: `graphs: [{name: g, actors: [{name: A, time: 1}]}]
scenarios: [{name: s, graph: g}]
fsm:
  states: [{name: q, scenario: s}]
  transitions: [{from: q, to: r}]`,
			want: loader.ErrUnknownReference,
		},
		{
			name: "UnknownInitial",
			doc: `graphs: [{name: g, actors: [{name: A, time: 1}]}]
scenarios: [{name: s, graph: g}]
fsm:
  initial: r
  states: [{name: q, scenario: s}]`,
			want: loader.ErrUnknownReference,
		},
		{
			name: "DuplicateActor",
			doc:  "graphs: [{name: g, actors: [{name: A, time: 1}, {name: A, time: 2}]}]",
			want: model.ErrDuplicateName,
		},
		{
			name: "NegativeTime",
			doc:  "graphs: [{name: g, actors: [{name: A, time: -1}]}]",
			want: model.ErrBadExecutionTime,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := loader.Parse([]byte("graphs: [{name: g, colour: red}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}
