package model

import (
	"fmt"
	"math"
)

// ActorID indexes ScenarioGraph actors.
type ActorID int

// PortID indexes ScenarioGraph ports.
type PortID int

// ChannelID indexes ScenarioGraph channels.
type ChannelID int

// PortDirection tells whether a port consumes or produces tokens.
type PortDirection int

const (
	// In ports consume tokens.
	In PortDirection = iota
	// Out ports produce tokens.
	Out
)

// Actor is a dataflow actor. ExecutionTime applies to every scenario that
// has no entry in ExecutionTimes.
type Actor struct {
	ID             ActorID
	Name           string
	Inputs         []PortID
	Outputs        []PortID
	ExecutionTime  float64
	ExecutionTimes map[ScenarioID]float64
}

// ExecutionTimeIn returns the execution time of a in scenario s.
func (a *Actor) ExecutionTimeIn(s ScenarioID) float64 {
	if t, ok := a.ExecutionTimes[s]; ok {
		return t
	}

	return a.ExecutionTime
}

// Port connects an actor to exactly one channel.
type Port struct {
	ID        PortID
	Actor     ActorID
	Channel   ChannelID
	Direction PortDirection
	Rate      int
	Rates     map[ScenarioID]int
}

// RateIn returns the rate of p in scenario s.
func (p *Port) RateIn(s ScenarioID) int {
	if r, ok := p.Rates[s]; ok {
		return r
	}

	return p.Rate
}

// Channel is a FIFO between an output port and an input port.
type Channel struct {
	ID            ChannelID
	Name          string
	Src           PortID
	Dst           PortID
	InitialTokens int
	Initial       map[ScenarioID]int
	Final         map[ScenarioID]int
}

// InitialTokensIn returns the tokens present on c when scenario s starts.
func (c *Channel) InitialTokensIn(s ScenarioID) int {
	if n, ok := c.Initial[s]; ok {
		return n
	}

	return c.InitialTokens
}

// ScenarioGraph is one dataflow variant. It owns its actors, ports and
// channels.
type ScenarioGraph struct {
	ID   ScenarioGraphID
	Name string

	actors   []Actor
	ports    []Port
	channels []Channel

	actorByName   map[string]ActorID
	channelByName map[string]ChannelID
}

// ScenarioGraphID indexes Graph scenario graphs.
type ScenarioGraphID int

func newScenarioGraph(id ScenarioGraphID, name string) *ScenarioGraph {
	return &ScenarioGraph{
		ID:            id,
		Name:          name,
		actorByName:   make(map[string]ActorID),
		channelByName: make(map[string]ChannelID),
	}
}

// AddActor appends an actor with the given default execution time.
func (sg *ScenarioGraph) AddActor(name string, executionTime float64) (ActorID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := sg.actorByName[name]; ok {
		return 0, fmt.Errorf("actor %q: %w", name, ErrDuplicateName)
	}
	if !validTime(executionTime) {
		return 0, fmt.Errorf("actor %q: %w", name, ErrBadExecutionTime)
	}
	id := ActorID(len(sg.actors))
	sg.actors = append(sg.actors, Actor{ID: id, Name: name, ExecutionTime: executionTime})
	sg.actorByName[name] = id

	return id, nil
}

// AddChannel connects src to dst through a new channel. A new output port
// with rate srcRate is created on src and an input port with rate dstRate
// on dst.
func (sg *ScenarioGraph) AddChannel(name string, src ActorID, srcRate int, dst ActorID, dstRate int, initialTokens int) (ChannelID, error) {
	// 1) Validate names, endpoints and counts before touching the arenas.
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := sg.channelByName[name]; ok {
		return 0, fmt.Errorf("channel %q: %w", name, ErrDuplicateName)
	}
	if !sg.hasActor(src) || !sg.hasActor(dst) {
		return 0, fmt.Errorf("channel %q: %w", name, ErrUnknownActor)
	}
	if srcRate < 0 || dstRate < 0 {
		return 0, fmt.Errorf("channel %q: %w", name, ErrBadRate)
	}
	if initialTokens < 0 {
		return 0, fmt.Errorf("channel %q: %w", name, ErrBadTokens)
	}

	// 2) Allocate the channel and both ports.
	cid := ChannelID(len(sg.channels))
	out := PortID(len(sg.ports))
	in := out + 1
	sg.ports = append(sg.ports,
		Port{ID: out, Actor: src, Channel: cid, Direction: Out, Rate: srcRate},
		Port{ID: in, Actor: dst, Channel: cid, Direction: In, Rate: dstRate},
	)
	sg.channels = append(sg.channels, Channel{ID: cid, Name: name, Src: out, Dst: in, InitialTokens: initialTokens})
	sg.channelByName[name] = cid

	// 3) Register the ports on their actors.
	sg.actors[src].Outputs = append(sg.actors[src].Outputs, out)
	sg.actors[dst].Inputs = append(sg.actors[dst].Inputs, in)

	return cid, nil
}

// SetExecutionTime overrides the execution time of actor a in scenario s.
func (sg *ScenarioGraph) SetExecutionTime(a ActorID, s ScenarioID, t float64) error {
	if !sg.hasActor(a) {
		return ErrUnknownActor
	}
	if !validTime(t) {
		return fmt.Errorf("actor %q: %w", sg.actors[a].Name, ErrBadExecutionTime)
	}
	if sg.actors[a].ExecutionTimes == nil {
		sg.actors[a].ExecutionTimes = make(map[ScenarioID]float64)
	}
	sg.actors[a].ExecutionTimes[s] = t

	return nil
}

// SetRates overrides both port rates of channel c in scenario s.
func (sg *ScenarioGraph) SetRates(c ChannelID, s ScenarioID, srcRate, dstRate int) error {
	if !sg.hasChannel(c) {
		return ErrUnknownChannel
	}
	if srcRate < 0 || dstRate < 0 {
		return fmt.Errorf("channel %q: %w", sg.channels[c].Name, ErrBadRate)
	}
	ch := sg.channels[c]
	setRate(&sg.ports[ch.Src], s, srcRate)
	setRate(&sg.ports[ch.Dst], s, dstRate)

	return nil
}

func setRate(p *Port, s ScenarioID, r int) {
	if p.Rates == nil {
		p.Rates = make(map[ScenarioID]int)
	}
	p.Rates[s] = r
}

// SetInitialTokens overrides the initial tokens of channel c in scenario s.
func (sg *ScenarioGraph) SetInitialTokens(c ChannelID, s ScenarioID, n int) error {
	if !sg.hasChannel(c) {
		return ErrUnknownChannel
	}
	if n < 0 {
		return fmt.Errorf("channel %q: %w", sg.channels[c].Name, ErrBadTokens)
	}
	if sg.channels[c].Initial == nil {
		sg.channels[c].Initial = make(map[ScenarioID]int)
	}
	sg.channels[c].Initial[s] = n

	return nil
}

// DeclareFinalTokens records the token count channel c must hold after one
// iteration of scenario s. Validation checks it against the balance law.
func (sg *ScenarioGraph) DeclareFinalTokens(c ChannelID, s ScenarioID, n int) error {
	if !sg.hasChannel(c) {
		return ErrUnknownChannel
	}
	if n < 0 {
		return fmt.Errorf("channel %q: %w", sg.channels[c].Name, ErrBadTokens)
	}
	if sg.channels[c].Final == nil {
		sg.channels[c].Final = make(map[ScenarioID]int)
	}
	sg.channels[c].Final[s] = n

	return nil
}

// Actor returns actor a. The pointer is valid until the next AddActor.
func (sg *ScenarioGraph) Actor(a ActorID) *Actor { return &sg.actors[a] }

// Port returns port p.
func (sg *ScenarioGraph) Port(p PortID) *Port { return &sg.ports[p] }

// Channel returns channel c.
func (sg *ScenarioGraph) Channel(c ChannelID) *Channel { return &sg.channels[c] }

// ActorCount returns the number of actors.
func (sg *ScenarioGraph) ActorCount() int { return len(sg.actors) }

// ChannelCount returns the number of channels.
func (sg *ScenarioGraph) ChannelCount() int { return len(sg.channels) }

// ActorByName looks an actor up by name.
func (sg *ScenarioGraph) ActorByName(name string) (ActorID, bool) {
	id, ok := sg.actorByName[name]

	return id, ok
}

// ChannelByName looks a channel up by name.
func (sg *ScenarioGraph) ChannelByName(name string) (ChannelID, bool) {
	id, ok := sg.channelByName[name]

	return id, ok
}

func (sg *ScenarioGraph) hasActor(a ActorID) bool { return a >= 0 && int(a) < len(sg.actors) }

func (sg *ScenarioGraph) hasChannel(c ChannelID) bool {
	return c >= 0 && int(c) < len(sg.channels)
}

func validTime(t float64) bool {
	return t >= 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}
