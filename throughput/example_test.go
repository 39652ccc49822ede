package throughput_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sadf/model"
	"github.com/katalvlaran/sadf/throughput"
)

// ExampleAnalyze builds a single-actor graph whose actor X runs for 4 time
// units in scenario "A" and 6 in scenario "B", alternated by the FSM, and
// computes its throughput exactly.
func ExampleAnalyze() {
	g := model.NewGraph("example")
	sg, _ := g.AddScenarioGraph("loop")
	x, _ := sg.AddActor("X", 0)
	_, _ = sg.AddChannel("self", x, 1, x, 1, 1)

	a, _ := g.AddScenario("A", sg.ID)
	b, _ := g.AddScenario("B", sg.ID)
	_ = sg.SetExecutionTime(x, a, 4)
	_ = sg.SetExecutionTime(x, b, 6)

	qa, _ := g.FSM().AddState("a", a)
	qb, _ := g.FSM().AddState("b", b)
	_ = g.FSM().AddTransition(qa, qb)
	_ = g.FSM().AddTransition(qb, qa)

	r, err := throughput.Analyze(context.Background(), g, throughput.MaxPlusAutomaton)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("period %.1f, throughput %.2f\n", r.Period, r.Throughput)
	// Output: period 5.0, throughput 0.20
}

func ExampleStrategies() {
	for _, s := range throughput.Strategies() {
		fmt.Println(s, s.Exact())
	}
	// Output:
	// reference-schedule false
	// scenario-transitions false
	// state-space true
	// maxplus-automaton true
	// weak-maxplus-automaton true
}
