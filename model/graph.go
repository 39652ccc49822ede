// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
)

// ScenarioID indexes Graph scenarios.
type ScenarioID int

// DefaultReward is the reward of a scenario that completes one full graph
// iteration.
const DefaultReward = 1.0

// Scenario is a named operating mode executing one iteration of its
// scenario graph. Repetitions, when non-nil, is the partial repetition
// vector (actor name → firings); actors missing from it do not fire.
type Scenario struct {
	ID          ScenarioID
	Name        string
	Graph       ScenarioGraphID
	Reward      float64
	Repetitions map[string]int
}

// Graph is an FSM-driven scenario-aware dataflow graph.
type Graph struct {
	Name string

	graphs    []*ScenarioGraph
	scenarios []Scenario
	fsm       *FSM

	graphByName    map[string]ScenarioGraphID
	scenarioByName map[string]ScenarioID
}

// NewGraph returns an empty graph with an empty FSM.
func NewGraph(name string) *Graph {
	return &Graph{
		Name:           name,
		fsm:            newFSM(),
		graphByName:    make(map[string]ScenarioGraphID),
		scenarioByName: make(map[string]ScenarioID),
	}
}

// AddScenarioGraph creates a new, empty scenario graph.
func (g *Graph) AddScenarioGraph(name string) (*ScenarioGraph, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, ok := g.graphByName[name]; ok {
		return nil, fmt.Errorf("scenario graph %q: %w", name, ErrDuplicateName)
	}
	id := ScenarioGraphID(len(g.graphs))
	sg := newScenarioGraph(id, name)
	g.graphs = append(g.graphs, sg)
	g.graphByName[name] = id

	return sg, nil
}

// AddScenario binds a new scenario to scenario graph sg with DefaultReward.
func (g *Graph) AddScenario(name string, sg ScenarioGraphID) (ScenarioID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := g.scenarioByName[name]; ok {
		return 0, fmt.Errorf("scenario %q: %w", name, ErrDuplicateName)
	}
	if sg < 0 || int(sg) >= len(g.graphs) {
		return 0, fmt.Errorf("scenario %q: %w", name, ErrUnknownGraph)
	}
	id := ScenarioID(len(g.scenarios))
	g.scenarios = append(g.scenarios, Scenario{ID: id, Name: name, Graph: sg, Reward: DefaultReward})
	g.scenarioByName[name] = id

	return id, nil
}

// SetReward sets the reward of scenario s.
func (g *Graph) SetReward(s ScenarioID, reward float64) error {
	if !g.hasScenario(s) {
		return ErrUnknownScenario
	}
	if reward < 0 || math.IsInf(reward, 0) || math.IsNaN(reward) {
		return fmt.Errorf("scenario %q: %w", g.scenarios[s].Name, ErrBadReward)
	}
	g.scenarios[s].Reward = reward

	return nil
}

// SetRepetitions installs a partial repetition vector for scenario s.
func (g *Graph) SetRepetitions(s ScenarioID, reps map[string]int) error {
	if !g.hasScenario(s) {
		return ErrUnknownScenario
	}
	sg := g.graphs[g.scenarios[s].Graph]
	copied := make(map[string]int, len(reps))
	for name, n := range reps {
		if _, ok := sg.ActorByName(name); !ok {
			return fmt.Errorf("scenario %q: actor %q: %w", g.scenarios[s].Name, name, ErrUnknownActor)
		}
		if n < 0 {
			return fmt.Errorf("scenario %q: actor %q: %w", g.scenarios[s].Name, name, ErrInconsistent)
		}
		copied[name] = n
	}
	g.scenarios[s].Repetitions = copied

	return nil
}

// FSM returns the scenario controller of g.
func (g *Graph) FSM() *FSM { return g.fsm }

// Scenario returns scenario s.
func (g *Graph) Scenario(s ScenarioID) *Scenario { return &g.scenarios[s] }

// ScenarioCount returns the number of scenarios.
func (g *Graph) ScenarioCount() int { return len(g.scenarios) }

// ScenarioByName looks a scenario up by name.
func (g *Graph) ScenarioByName(name string) (ScenarioID, bool) {
	id, ok := g.scenarioByName[name]

	return id, ok
}

// ScenarioGraph returns scenario graph id.
func (g *Graph) ScenarioGraph(id ScenarioGraphID) *ScenarioGraph { return g.graphs[id] }

// ScenarioGraphByName looks a scenario graph up by name.
func (g *Graph) ScenarioGraphByName(name string) (*ScenarioGraph, bool) {
	id, ok := g.graphByName[name]
	if !ok {
		return nil, false
	}

	return g.graphs[id], true
}

// GraphOf returns the scenario graph executed by scenario s.
func (g *Graph) GraphOf(s ScenarioID) *ScenarioGraph { return g.graphs[g.scenarios[s].Graph] }

func (g *Graph) hasScenario(s ScenarioID) bool {
	return s >= 0 && int(s) < len(g.scenarios)
}
