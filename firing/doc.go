// Package firing executes scenario graph iterations in max-plus time.
//
// Every token carries the time at which it became available. Firing an
// actor consumes its input rates (start = latest consumed token, or −∞ for
// an actor without inputs), completes after its scenario execution time and
// appends its output rates stamped with the completion time.
//
// Iterate finds a valid firing order for one iteration and returns it as a
// Schedule; Replay re-executes a Schedule on other token timestamps. Since
// the firing order does not change the resulting timestamps, a Schedule
// captured once per scenario is replayed for every vector an analysis
// explores.
//
// Prepare bundles what analyses need per scenario (layouts, reward and the
// captured schedule) and Scenario.Apply maps an initial-token vector to the
// final-token vector: the columns of the scenario's max-plus matrix.
package firing
