package model

import "fmt"

// Layout describes the token slots of a max-plus vector: channel names in
// channel-id order with the number of tokens each holds. Slot order is
// channel id first, arrival order second.
type Layout struct {
	Names  []string
	Counts []int
}

// Size returns the total number of token slots.
func (l Layout) Size() int {
	n := 0
	for _, c := range l.Counts {
		n += c
	}

	return n
}

// Offset returns the index of the first slot of the i-th channel.
func (l Layout) Offset(i int) int {
	n := 0
	for _, c := range l.Counts[:i] {
		n += c
	}

	return n
}

// Permutation maps every slot of l to the slot of to that holds the same
// (channel name, arrival index). Channels without tokens are ignored, so
// scenario graphs may differ in token-free channels.
func (l Layout) Permutation(to Layout) ([]int, error) {
	if l.Size() != to.Size() {
		return nil, fmt.Errorf("%d vs %d tokens: %w", l.Size(), to.Size(), ErrLayoutMismatch)
	}
	target := make(map[string]int, len(to.Names))
	for i, name := range to.Names {
		if to.Counts[i] > 0 {
			target[name] = i
		}
	}
	perm := make([]int, 0, l.Size())
	for i, name := range l.Names {
		if l.Counts[i] == 0 {
			continue
		}
		j, ok := target[name]
		if !ok || to.Counts[j] != l.Counts[i] {
			return nil, fmt.Errorf("channel %q: %w", name, ErrLayoutMismatch)
		}
		base := to.Offset(j)
		for k := 0; k < l.Counts[i]; k++ {
			perm = append(perm, base+k)
		}
	}

	return perm, nil
}

// IsIdentity reports whether perm maps every slot to itself.
func IsIdentity(perm []int) bool {
	for i, j := range perm {
		if i != j {
			return false
		}
	}

	return true
}

// InitialLayout returns the token slots present when scenario s starts.
func (g *Graph) InitialLayout(s ScenarioID) Layout {
	sg := g.GraphOf(s)
	l := Layout{Names: make([]string, len(sg.channels)), Counts: make([]int, len(sg.channels))}
	for i := range sg.channels {
		l.Names[i] = sg.channels[i].Name
		l.Counts[i] = sg.channels[i].InitialTokensIn(s)
	}

	return l
}

// FinalLayout returns the token slots left after one iteration of s,
// derived from the balance law and checked against declared final counts.
func (g *Graph) FinalLayout(s ScenarioID) (Layout, error) {
	q, err := g.RepetitionVector(s)
	if err != nil {
		return Layout{}, err
	}
	sg := g.GraphOf(s)
	name := g.scenarios[s].Name
	l := Layout{Names: make([]string, len(sg.channels)), Counts: make([]int, len(sg.channels))}
	for i := range sg.channels {
		ch := &sg.channels[i]
		src, dst := &sg.ports[ch.Src], &sg.ports[ch.Dst]
		produced := q[src.Actor] * src.RateIn(s)
		consumed := q[dst.Actor] * dst.RateIn(s)
		final := ch.InitialTokensIn(s) + produced - consumed
		if final < 0 {
			return Layout{}, fmt.Errorf("scenario %q: channel %q ends with %d tokens: %w", name, ch.Name, final, ErrTokenBalance)
		}
		if declared, ok := ch.Final[s]; ok && declared != final {
			return Layout{}, fmt.Errorf("scenario %q: channel %q: declared %d final tokens, balance gives %d: %w",
				name, ch.Name, declared, final, ErrTokenBalance)
		}
		l.Names[i] = ch.Name
		l.Counts[i] = final
	}

	return l, nil
}

// IsSquare reports whether s leaves the same token slots it started with,
// i.e. whether s is strictly consistent on its own.
func (g *Graph) IsSquare(s ScenarioID) (bool, error) {
	final, err := g.FinalLayout(s)
	if err != nil {
		return false, err
	}
	initial := g.InitialLayout(s)
	for i := range initial.Counts {
		if initial.Counts[i] != final.Counts[i] {
			return false, nil
		}
	}

	return true, nil
}
