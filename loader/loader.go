// Package loader reads FSM-SADF graphs from YAML.
//
//	name: modal
//	graphs:
//	  - name: pipe
//	    actors:
//	      - {name: A, time: 1}
//	      - {name: B, time: 1, times: {slow: 4}}
//	    channels:
//	      - {name: ab, src: A, dst: B}
//	      - {name: ba, src: B, dst: A, tokens: 2}
//	      - {name: selfA, src: A, dst: A, tokens: 1}
//	      - {name: selfB, src: B, dst: B, tokens: 1}
//	scenarios:
//	  - {name: fast, graph: pipe}
//	  - {name: slow, graph: pipe, reward: 1}
//	fsm:
//	  initial: f
//	  states:
//	    - {name: f, scenario: fast}
//	    - {name: s, scenario: slow}
//	  transitions:
//	    - {from: f, to: f}
//	    - {from: f, to: s}
//	    - {from: s, to: f}
//
// Channel rates default to 1. Per-scenario overrides are keyed by scenario
// name: actor "times", channel "rates" ([src, dst]), "scenario_tokens"
// (initial tokens) and "final_tokens" (declared final tokens). A scenario's
// "repetitions" maps actor names to firing counts; listing it makes the
// repetition vector partial. Unknown fields are rejected.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sadf/model"
)

// ErrUnknownReference indicates a name that does not resolve to a graph,
// actor, channel, scenario or state of the document.
var ErrUnknownReference = errors.New("loader: unknown reference")

type document struct {
	Name      string        `yaml:"name"`
	Graphs    []graphDoc    `yaml:"graphs"`
	Scenarios []scenarioDoc `yaml:"scenarios"`
	FSM       fsmDoc        `yaml:"fsm"`
}

type graphDoc struct {
	Name     string       `yaml:"name"`
	Actors   []actorDoc   `yaml:"actors"`
	Channels []channelDoc `yaml:"channels"`
}

type actorDoc struct {
	Name  string             `yaml:"name"`
	Time  float64            `yaml:"time"`
	Times map[string]float64 `yaml:"times"`
}

type channelDoc struct {
	Name           string            `yaml:"name"`
	Src            string            `yaml:"src"`
	Dst            string            `yaml:"dst"`
	SrcRate        *int              `yaml:"src_rate"`
	DstRate        *int              `yaml:"dst_rate"`
	Tokens         int               `yaml:"tokens"`
	Rates          map[string][2]int `yaml:"rates"`
	ScenarioTokens map[string]int    `yaml:"scenario_tokens"`
	FinalTokens    map[string]int    `yaml:"final_tokens"`
}

type scenarioDoc struct {
	Name        string         `yaml:"name"`
	Graph       string         `yaml:"graph"`
	Reward      *float64       `yaml:"reward"`
	Repetitions map[string]int `yaml:"repetitions"`
}

type fsmDoc struct {
	Initial     string          `yaml:"initial"`
	States      []stateDoc      `yaml:"states"`
	Transitions []transitionDoc `yaml:"transitions"`
}

type stateDoc struct {
	Name     string `yaml:"name"`
	Scenario string `yaml:"scenario"`
}

type transitionDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*model.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse builds a graph from a YAML document. The graph is not validated;
// call model.Graph.Validate or let an analysis do it.
func Parse(data []byte) (*model.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: decode: %w", err)
	}

	b := &builder{g: model.NewGraph(doc.Name)}
	if err := b.graphs(doc.Graphs); err != nil {
		return nil, err
	}
	if err := b.scenarios(doc.Scenarios); err != nil {
		return nil, err
	}
	if err := b.overrides(doc.Graphs); err != nil {
		return nil, err
	}
	if err := b.fsm(doc.FSM); err != nil {
		return nil, err
	}

	return b.g, nil
}

type builder struct {
	g *model.Graph
}

func (b *builder) graphs(docs []graphDoc) error {
	for _, gs := range docs {
		sg, err := b.g.AddScenarioGraph(gs.Name)
		if err != nil {
			return fmt.Errorf("graph %q: %w", gs.Name, err)
		}
		for _, as := range gs.Actors {
			if _, err = sg.AddActor(as.Name, as.Time); err != nil {
				return fmt.Errorf("graph %q: actor %q: %w", gs.Name, as.Name, err)
			}
		}
		for _, cs := range gs.Channels {
			src, ok := sg.ActorByName(cs.Src)
			if !ok {
				return fmt.Errorf("graph %q: channel %q: source actor %q: %w", gs.Name, cs.Name, cs.Src, ErrUnknownReference)
			}
			dst, ok := sg.ActorByName(cs.Dst)
			if !ok {
				return fmt.Errorf("graph %q: channel %q: target actor %q: %w", gs.Name, cs.Name, cs.Dst, ErrUnknownReference)
			}
			if _, err = sg.AddChannel(cs.Name, src, rateOr1(cs.SrcRate), dst, rateOr1(cs.DstRate), cs.Tokens); err != nil {
				return fmt.Errorf("graph %q: channel %q: %w", gs.Name, cs.Name, err)
			}
		}
	}

	return nil
}

func (b *builder) scenarios(docs []scenarioDoc) error {
	for _, ss := range docs {
		sg, ok := b.g.ScenarioGraphByName(ss.Graph)
		if !ok {
			return fmt.Errorf("scenario %q: graph %q: %w", ss.Name, ss.Graph, ErrUnknownReference)
		}
		s, err := b.g.AddScenario(ss.Name, sg.ID)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", ss.Name, err)
		}
		if ss.Reward != nil {
			if err = b.g.SetReward(s, *ss.Reward); err != nil {
				return fmt.Errorf("scenario %q: %w", ss.Name, err)
			}
		}
		if ss.Repetitions != nil {
			if err = b.g.SetRepetitions(s, ss.Repetitions); err != nil {
				return fmt.Errorf("scenario %q: %w", ss.Name, err)
			}
		}
	}

	return nil
}

// overrides applies per-scenario actor and channel attributes once all
// scenarios exist.
func (b *builder) overrides(docs []graphDoc) error {
	for _, gs := range docs {
		sg, _ := b.g.ScenarioGraphByName(gs.Name)
		for _, as := range gs.Actors {
			a, _ := sg.ActorByName(as.Name)
			for name, t := range as.Times {
				s, err := b.scenario(name)
				if err != nil {
					return fmt.Errorf("actor %q: %w", as.Name, err)
				}
				if err = sg.SetExecutionTime(a, s, t); err != nil {
					return fmt.Errorf("actor %q: %w", as.Name, err)
				}
			}
		}
		for _, cs := range gs.Channels {
			c, _ := sg.ChannelByName(cs.Name)
			if err := b.channelOverrides(sg, c, cs); err != nil {
				return fmt.Errorf("graph %q: channel %q: %w", gs.Name, cs.Name, err)
			}
		}
	}

	return nil
}

func (b *builder) channelOverrides(sg *model.ScenarioGraph, c model.ChannelID, cs channelDoc) error {
	for name, r := range cs.Rates {
		s, err := b.scenario(name)
		if err != nil {
			return err
		}
		if err = sg.SetRates(c, s, r[0], r[1]); err != nil {
			return err
		}
	}
	for name, n := range cs.ScenarioTokens {
		s, err := b.scenario(name)
		if err != nil {
			return err
		}
		if err = sg.SetInitialTokens(c, s, n); err != nil {
			return err
		}
	}
	for name, n := range cs.FinalTokens {
		s, err := b.scenario(name)
		if err != nil {
			return err
		}
		if err = sg.DeclareFinalTokens(c, s, n); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) fsm(doc fsmDoc) error {
	fsm := b.g.FSM()
	for _, st := range doc.States {
		s, err := b.scenario(st.Scenario)
		if err != nil {
			return fmt.Errorf("state %q: %w", st.Name, err)
		}
		if _, err = fsm.AddState(st.Name, s); err != nil {
			return fmt.Errorf("state %q: %w", st.Name, err)
		}
	}
	for _, tr := range doc.Transitions {
		from, ok := fsm.StateByName(tr.From)
		if !ok {
			return fmt.Errorf("transition %q → %q: state %q: %w", tr.From, tr.To, tr.From, ErrUnknownReference)
		}
		to, ok := fsm.StateByName(tr.To)
		if !ok {
			return fmt.Errorf("transition %q → %q: state %q: %w", tr.From, tr.To, tr.To, ErrUnknownReference)
		}
		if err := fsm.AddTransition(from, to); err != nil {
			return err
		}
	}
	if doc.Initial != "" {
		q, ok := fsm.StateByName(doc.Initial)
		if !ok {
			return fmt.Errorf("initial state %q: %w", doc.Initial, ErrUnknownReference)
		}
		if err := fsm.SetInitial(q); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) scenario(name string) (model.ScenarioID, error) {
	s, ok := b.g.ScenarioByName(name)
	if !ok {
		return 0, fmt.Errorf("scenario %q: %w", name, ErrUnknownReference)
	}

	return s, nil
}

func rateOr1(r *int) int {
	if r == nil {
		return 1
	}

	return *r
}
