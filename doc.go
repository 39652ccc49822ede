// Package sadf analyzes the worst-case throughput of FSM-driven
// scenario-aware dataflow (FSM-SADF) graphs.
//
// A graph is a set of scenario graphs (synchronous dataflow variants), a set
// of scenarios binding each variant to execution times, rates and a reward,
// and a finite-state machine that decides which scenario may follow which.
// Every scenario is reduced to a max-plus matrix over its initial tokens;
// the throughput is the inverse of the maximum cycle ratio of a graph built
// from those matrices.
//
// Packages:
//
//	maxplus/      max-plus vectors and matrices (−∞ is "unrelated")
//	model/        scenario graphs, scenarios, FSM, repetition vectors, validation
//	firing/       self-timed execution of one scenario iteration over token timestamps
//	mcm/          maximum cycle mean (Karp) and ratio (Young–Tarjan–Orlin)
//	explore/      eigenvectors, reference delays and the timed state space
//	automaton/    max-plus automaton over (FSM state, token) locations
//	throughput/   the five analysis strategies, batch analysis
//	loader/       YAML graph descriptions
//	config/       analyzer settings (YAML file + SADF_* environment)
//	metrics/      Prometheus counters for analyses
//
// Quick ASCII example:
//
//	   ┌──┐
//	   ▼  │
//	   (f) ◀──▶ (s)
//
//	an FSM where the fast state may repeat and the slow state never does.
//
// The sadf command (cmd/sadf) analyzes YAML graphs from the shell:
//
//	go run ./cmd/sadf analyze --strategy all examples/modal.yaml
package sadf
