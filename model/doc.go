// Package model describes FSM-driven scenario-aware dataflow graphs.
//
// A Graph owns a set of ScenarioGraphs (actors, ports and channels of one
// dataflow variant), a set of Scenarios (named operating modes bound to a
// scenario graph, with optional partial repetition vectors and a reward)
// and an FSM whose states each activate one scenario.
//
// All structures are arena-indexed: actors, ports and channels live in
// slices owned by their ScenarioGraph and are referred to by integer ids;
// name→id maps give stable lookup. Nothing in this package holds pointers
// into another arena, so a Graph can be shared read-only between goroutines
// once it is built and validated.
//
// Per-scenario attributes:
//
//	Port.Rate            – default rate, overridden per scenario via SetRate.
//	Actor.ExecutionTime  – default time, overridden per scenario via SetExecutionTime.
//	Channel tokens       – initial tokens (default plus per-scenario override) and
//	                       optional declared final tokens; undeclared final
//	                       counts are derived from the flow-balance law
//	                       initial + produced = consumed + final.
//
// Token identity across scenario graphs is the channel name: the tokens left
// on channel "c" after one scenario are the initial tokens of channel "c" in
// the next one.
package model
