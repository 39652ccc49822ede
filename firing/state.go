// SPDX-License-Identifier: MIT

package firing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/model"
)

// Schedule is a firing order for one scenario iteration.
type Schedule []model.ActorID

// State holds the token FIFOs of a scenario graph, indexed by channel id.
type State struct {
	sg    *model.ScenarioGraph
	fifos []FIFO
}

// NewState distributes the entries of v over the channels of sg according
// to layout: the first layout.Counts[0] entries go to channel 0 and so on.
func NewState(sg *model.ScenarioGraph, layout model.Layout, v maxplus.Vector) (*State, error) {
	if len(layout.Counts) != sg.ChannelCount() {
		return nil, fmt.Errorf("layout has %d channels, graph %q has %d: %w",
			len(layout.Counts), sg.Name, sg.ChannelCount(), ErrShape)
	}
	if len(v) != layout.Size() {
		return nil, fmt.Errorf("vector has %d entries, layout %d: %w", len(v), layout.Size(), ErrShape)
	}
	st := &State{sg: sg, fifos: make([]FIFO, len(layout.Counts))}
	at := 0
	for c, n := range layout.Counts {
		st.fifos[c].tokens = append(make([]float64, 0, n), v[at:at+n]...)
		at += n
	}

	return st, nil
}

// FIFO returns the queue of channel c.
func (st *State) FIFO(c model.ChannelID) *FIFO { return &st.fifos[c] }

// Counts returns the token count per channel.
func (st *State) Counts() []int {
	out := make([]int, len(st.fifos))
	for i := range st.fifos {
		out[i] = st.fifos[i].Len()
	}

	return out
}

// Vector flattens the FIFOs in channel-id order, oldest token first.
func (st *State) Vector() maxplus.Vector {
	n := 0
	for i := range st.fifos {
		n += st.fifos[i].Len()
	}
	v := make(maxplus.Vector, 0, n)
	for i := range st.fifos {
		v = append(v, st.fifos[i].tokens...)
	}

	return v
}

// Normalize subtracts the latest timestamp from every finite token and
// returns it. A state without finite tokens is unchanged and MinusInfinity
// is returned.
func (st *State) Normalize() float64 {
	shift := maxplus.MinusInfinity
	for i := range st.fifos {
		for _, t := range st.fifos[i].tokens {
			shift = maxplus.Max(shift, t)
		}
	}
	if maxplus.IsMinusInfinity(shift) {
		return shift
	}
	for i := range st.fifos {
		for j, t := range st.fifos[i].tokens {
			if !maxplus.IsMinusInfinity(t) {
				st.fifos[i].tokens[j] = t - shift
			}
		}
	}

	return shift
}

// Iterate fires every actor a exactly reps[a] times in scenario s, scanning
// actors in id order and firing each enabled one, and returns the order
// used. It fails with ErrDeadlock when a scan fires nothing.
func Iterate(sg *model.ScenarioGraph, s model.ScenarioID, reps []int, st *State) (Schedule, error) {
	if len(reps) != sg.ActorCount() {
		return nil, fmt.Errorf("%d repetitions for %d actors: %w", len(reps), sg.ActorCount(), ErrShape)
	}
	remaining := append([]int(nil), reps...)
	left := 0
	for _, r := range remaining {
		left += r
	}

	sched := make(Schedule, 0, left)
	for left > 0 {
		fired := false
		for a := range remaining {
			id := model.ActorID(a)
			if remaining[a] == 0 || !st.enabled(id, s) {
				continue
			}
			st.fire(id, s)
			sched = append(sched, id)
			remaining[a]--
			left--
			fired = true
		}
		if !fired {
			return nil, st.deadlock(remaining)
		}
	}

	return sched, nil
}

// Replay fires the actors of sched in order.
func Replay(sg *model.ScenarioGraph, s model.ScenarioID, sched Schedule, st *State) error {
	if st.sg != sg {
		return fmt.Errorf("state belongs to graph %q, not %q: %w", st.sg.Name, sg.Name, ErrShape)
	}
	for i, a := range sched {
		if !st.enabled(a, s) {
			return fmt.Errorf("replay step %d: actor %q not enabled: %w", i, sg.Actor(a).Name, ErrDeadlock)
		}
		st.fire(a, s)
	}

	return nil
}

func (st *State) enabled(a model.ActorID, s model.ScenarioID) bool {
	for _, pid := range st.sg.Actor(a).Inputs {
		p := st.sg.Port(pid)
		if st.fifos[p.Channel].Len() < p.RateIn(s) {
			return false
		}
	}

	return true
}

func (st *State) fire(a model.ActorID, s model.ScenarioID) {
	actor := st.sg.Actor(a)
	start := maxplus.MinusInfinity
	for _, pid := range actor.Inputs {
		p := st.sg.Port(pid)
		start = maxplus.Max(start, st.fifos[p.Channel].Consume(p.RateIn(s)))
	}
	done := maxplus.Add(start, actor.ExecutionTimeIn(s))
	for _, pid := range actor.Outputs {
		p := st.sg.Port(pid)
		st.fifos[p.Channel].Produce(p.RateIn(s), done)
	}
}

func (st *State) deadlock(remaining []int) error {
	var blocked []string
	for a, r := range remaining {
		if r > 0 {
			blocked = append(blocked, st.sg.Actor(model.ActorID(a)).Name)
		}
	}

	return fmt.Errorf("graph %q: blocked actors [%s]: %w", st.sg.Name, strings.Join(blocked, " "), ErrDeadlock)
}
