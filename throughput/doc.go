// Package throughput computes the worst-case throughput of FSM-SADF graphs.
//
// Every strategy reduces the graph to an mcm.Graph whose edges carry a time
// (weight) and a reward (delay), and reports
//
//	Throughput = 1 / MaximumCycleRatio
//
// in rewarded scenario iterations per time unit. With the default reward of
// 1 per scenario this is scenario iterations per time unit.
//
// Strategies, from cheapest to most general:
//
//	reference-schedule     – one node per FSM state; every scenario is bounded
//	                         by its period plus its delay behind a shared
//	                         reference vector. Upper bound on the period.
//	scenario-transitions   – one node per FSM state; every transition is
//	                         bounded by how far the destination scenario
//	                         pushes the source eigenvector beyond its own.
//	                         Upper bound on the period.
//	state-space            – exact: explored (FSM state, timed vector) pairs.
//	maxplus-automaton      – exact for strictly consistent graphs.
//	weak-maxplus-automaton – exact for weakly consistent graphs.
//
// All strategies fill Result.CriticalScenarios from the critical cycle.
// AnalyzeAll runs independent analyses with bounded parallelism.
package throughput
