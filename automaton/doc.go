// Package automaton turns an FSM-SADF graph into a max-plus automaton whose
// maximum cycle ratio is the worst-case period per unit of reward.
//
// Every scenario is a max-plus linear map from its initial-token
// timestamps to its final-token timestamps; ScenarioMatrix recovers the
// matrix column by column from unit vectors. Build then creates one
// location per (FSM state, final token of the state's scenario) and, for
// every FSM transition q → q' and every finite entry M[i][P(j)] of the
// matrix of the scenario of q', an edge (q, j) → (q', i) weighted by the entry,
// where P matches tokens across the transition by channel name and
// arrival index. The edge delay is the reward of the scenario of q'.
//
// Strict mode (the default) requires every scenario to leave the token
// slots it found. WithWeakConsistency lifts this requirement: scenarios
// may move tokens between channels as long as FSM transitions hand over
// matching token sets.
package automaton
