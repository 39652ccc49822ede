// Package modeltest provides small, hand-checked FSM-SADF graphs for tests
// and examples across the module.
package modeltest

import (
	"github.com/katalvlaran/sadf/model"
)

// must panics on construction errors; fixtures are static.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// TwoScenario returns a single-actor graph "X" with a one-token self-loop.
// Scenario "A" runs X in execA, scenario "B" in execB, and the FSM cycles
// a → b → a. The period of A is execA and the period of B is execB.
func TwoScenario(execA, execB float64) *model.Graph {
	g := model.NewGraph("two-scenario")
	sg := must(g.AddScenarioGraph("loop"))
	x := must(sg.AddActor("X", 0))
	must(sg.AddChannel("self", x, 1, x, 1, 1))

	a := must(g.AddScenario("A", sg.ID))
	b := must(g.AddScenario("B", sg.ID))
	check(sg.SetExecutionTime(x, a, execA))
	check(sg.SetExecutionTime(x, b, execB))

	fsm := g.FSM()
	qa := must(fsm.AddState("a", a))
	qb := must(fsm.AddState("b", b))
	check(fsm.AddTransition(qa, qb))
	check(fsm.AddTransition(qb, qa))
	check(fsm.SetInitial(qa))

	return g
}

// ProducerConsumer returns a one-scenario graph: P (time 1) sends to C
// (time 2) over "pc" with rates 2/3, C returns credits over "cp" with
// rates 3/2 holding `credits` initial tokens, and both actors have a
// one-token self-loop. The repetition vector is P=3, C=2.
//
// Channel order (token layout): pc, cp, selfP, selfC.
func ProducerConsumer(credits int) *model.Graph {
	g := model.NewGraph("producer-consumer")
	sg := must(g.AddScenarioGraph("pc"))
	p := must(sg.AddActor("P", 1))
	c := must(sg.AddActor("C", 2))
	must(sg.AddChannel("pc", p, 2, c, 3, 0))
	must(sg.AddChannel("cp", c, 3, p, 2, credits))
	must(sg.AddChannel("selfP", p, 1, p, 1, 1))
	must(sg.AddChannel("selfC", c, 1, c, 1, 1))

	s := must(g.AddScenario("run", sg.ID))
	q := must(g.FSM().AddState("run", s))
	check(g.FSM().AddTransition(q, q))

	return g
}

// Pipeline returns a one-scenario two-actor cycle: A (time 2) → B (time 3)
// over "ab" with no tokens, B → A over "ba" with two tokens, and one-token
// self-loops on both. Its period is 3 (B's self-loop).
//
// Channel order (token layout): ab, ba, selfA, selfB.
func Pipeline() *model.Graph {
	g := model.NewGraph("pipeline")
	sg := must(g.AddScenarioGraph("pipe"))
	a := must(sg.AddActor("A", 2))
	b := must(sg.AddActor("B", 3))
	must(sg.AddChannel("ab", a, 1, b, 1, 0))
	must(sg.AddChannel("ba", b, 1, a, 1, 2))
	must(sg.AddChannel("selfA", a, 1, a, 1, 1))
	must(sg.AddChannel("selfB", b, 1, b, 1, 1))

	s := must(g.AddScenario("run", sg.ID))
	q := must(g.FSM().AddState("run", s))
	check(g.FSM().AddTransition(q, q))

	return g
}

// Modal returns a two-scenario graph sharing the Pipeline topology: in
// scenario "fast" A takes 1 and B takes 1, in scenario "slow" B takes 4.
// The FSM allows fast → fast, fast → slow and slow → fast.
func Modal() *model.Graph {
	g := model.NewGraph("modal")
	sg := must(g.AddScenarioGraph("pipe"))
	a := must(sg.AddActor("A", 1))
	b := must(sg.AddActor("B", 1))
	must(sg.AddChannel("ab", a, 1, b, 1, 0))
	must(sg.AddChannel("ba", b, 1, a, 1, 2))
	must(sg.AddChannel("selfA", a, 1, a, 1, 1))
	must(sg.AddChannel("selfB", b, 1, b, 1, 1))

	fast := must(g.AddScenario("fast", sg.ID))
	slow := must(g.AddScenario("slow", sg.ID))
	check(sg.SetExecutionTime(b, slow, 4))

	fsm := g.FSM()
	qf := must(fsm.AddState("f", fast))
	qs := must(fsm.AddState("s", slow))
	check(fsm.AddTransition(qf, qf))
	check(fsm.AddTransition(qf, qs))
	check(fsm.AddTransition(qs, qf))

	return g
}

// WeakPair returns a weakly consistent graph: scenario "produce" fires P
// (time 1) once, putting a token on "pc"; scenario "consume" fires C
// (time 2) once, taking it. Both actors have one-token self-loops. Only the
// round produce → consume is balanced. Rewards are 0 for produce and 1 for
// consume, so one round is one graph iteration; the worst-case period per
// round is 2 (C's self-loop).
//
// Channel order: pc, selfP, selfC.
func WeakPair() *model.Graph {
	g := model.NewGraph("weak-pair")
	sg := must(g.AddScenarioGraph("pair"))
	p := must(sg.AddActor("P", 1))
	c := must(sg.AddActor("C", 2))
	pc := must(sg.AddChannel("pc", p, 1, c, 1, 0))
	must(sg.AddChannel("selfP", p, 1, p, 1, 1))
	must(sg.AddChannel("selfC", c, 1, c, 1, 1))

	produce := must(g.AddScenario("produce", sg.ID))
	consume := must(g.AddScenario("consume", sg.ID))
	check(g.SetRepetitions(produce, map[string]int{"P": 1}))
	check(g.SetRepetitions(consume, map[string]int{"C": 1}))
	check(sg.SetInitialTokens(pc, consume, 1))
	check(g.SetReward(produce, 0))

	fsm := g.FSM()
	qp := must(fsm.AddState("p", produce))
	qc := must(fsm.AddState("c", consume))
	check(fsm.AddTransition(qp, qc))
	check(fsm.AddTransition(qc, qp))

	return g
}

// Deadlocked returns a two-actor cycle without tokens.
func Deadlocked() *model.Graph {
	g := model.NewGraph("deadlock")
	sg := must(g.AddScenarioGraph("dead"))
	a := must(sg.AddActor("A", 1))
	b := must(sg.AddActor("B", 1))
	must(sg.AddChannel("ab", a, 1, b, 1, 0))
	must(sg.AddChannel("ba", b, 1, a, 1, 0))
	s := must(g.AddScenario("run", sg.ID))
	q := must(g.FSM().AddState("run", s))
	check(g.FSM().AddTransition(q, q))

	return g
}
