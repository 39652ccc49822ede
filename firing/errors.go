package firing

import "errors"

var (
	// ErrDeadlock indicates that an iteration cannot complete: a full scan
	// over the actors fired nothing while firings remained.
	ErrDeadlock = errors.New("firing: deadlock")

	// ErrShape indicates a vector or layout that does not fit the scenario
	// graph's channels.
	ErrShape = errors.New("firing: vector does not match token layout")
)
