package throughput

import "errors"

var (
	// ErrInfiniteThroughput indicates a maximum cycle ratio of zero: the
	// graph completes rewarded iterations without taking time.
	ErrInfiniteThroughput = errors.New("throughput: infinite throughput")

	// ErrNoInitialTokens indicates an FSM state whose scenario starts
	// without tokens, leaving nothing to time.
	ErrNoInitialTokens = errors.New("throughput: scenario has no initial tokens")

	// ErrUnknownStrategy indicates an unsupported strategy value or name.
	ErrUnknownStrategy = errors.New("throughput: unknown strategy")
)
