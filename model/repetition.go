package model

import "fmt"

// fraction is a non-negative rational used while solving balance equations.
type fraction struct{ num, den int64 }

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

func (f fraction) reduce() fraction {
	if f.num == 0 {
		return fraction{0, 1}
	}
	d := gcd(f.num, f.den)

	return fraction{f.num / d, f.den / d}
}

// RepetitionVector returns the firing count of every actor of s's scenario
// graph for one iteration of s.
//
// A partial repetition vector set with SetRepetitions is returned as is
// (actors not listed fire zero times). Otherwise the balance equations
// q[src]·rate(src) = q[dst]·rate(dst) are solved per connected component
// and the smallest positive integer solution is returned. Channels where
// both rates are zero in s impose no constraint.
//
// Complexity: O(A + C) plus the gcd/lcm arithmetic.
func (g *Graph) RepetitionVector(s ScenarioID) ([]int, error) {
	if !g.hasScenario(s) {
		return nil, ErrUnknownScenario
	}
	sc := &g.scenarios[s]
	sg := g.graphs[sc.Graph]

	// 1) Partial vectors are authoritative.
	if sc.Repetitions != nil {
		q := make([]int, len(sg.actors))
		for name, n := range sc.Repetitions {
			id, _ := sg.ActorByName(name)
			q[id] = n
		}

		return q, nil
	}

	// 2) Build the undirected constraint adjacency: for each channel active
	//    in s, neighbor entries carry the ratio of the two rates.
	type link struct {
		other   ActorID
		mine    int64 // rate on this actor's side
		theirs  int64 // rate on the other side
		channel ChannelID
	}
	adj := make([][]link, len(sg.actors))
	for i := range sg.channels {
		ch := &sg.channels[i]
		src, dst := &sg.ports[ch.Src], &sg.ports[ch.Dst]
		p, c := int64(src.RateIn(s)), int64(dst.RateIn(s))
		if p == 0 && c == 0 {
			continue
		}
		if p == 0 || c == 0 {
			return nil, fmt.Errorf("scenario %q: channel %q has a zero rate on one side: %w", sc.Name, ch.Name, ErrInconsistent)
		}
		adj[src.Actor] = append(adj[src.Actor], link{other: dst.Actor, mine: p, theirs: c, channel: ch.ID})
		adj[dst.Actor] = append(adj[dst.Actor], link{other: src.Actor, mine: c, theirs: p, channel: ch.ID})
	}

	// 3) Propagate fractions over each component with an explicit queue,
	//    then scale the component to the smallest integer solution.
	frac := make([]fraction, len(sg.actors))
	q := make([]int, len(sg.actors))
	for root := range sg.actors {
		if frac[root].den != 0 {
			continue
		}
		frac[root] = fraction{1, 1}
		component := []ActorID{ActorID(root)}
		for i := 0; i < len(component); i++ {
			a := component[i]
			for _, l := range adj[a] {
				// q[other] = q[a] · mine / theirs
				want := fraction{frac[a].num * l.mine, frac[a].den * l.theirs}.reduce()
				if frac[l.other].den == 0 {
					frac[l.other] = want
					component = append(component, l.other)
					continue
				}
				if frac[l.other] != want {
					return nil, fmt.Errorf("scenario %q: channel %q: %w", sc.Name, sg.channels[l.channel].Name, ErrInconsistent)
				}
			}
		}

		var lcm int64 = 1
		for _, a := range component {
			lcm = lcm / gcd(lcm, frac[a].den) * frac[a].den
		}
		var common int64
		for _, a := range component {
			common = gcd(common, frac[a].num*(lcm/frac[a].den))
		}
		for _, a := range component {
			q[a] = int(frac[a].num * (lcm / frac[a].den) / common)
		}
	}

	return q, nil
}
