package model

import "errors"

var (
	// ErrEmptyName indicates an empty actor, channel, scenario or state name.
	ErrEmptyName = errors.New("model: empty name")

	// ErrDuplicateName indicates a name that is already taken in its namespace.
	ErrDuplicateName = errors.New("model: duplicate name")

	// ErrUnknownActor indicates a reference to an actor that does not exist.
	ErrUnknownActor = errors.New("model: unknown actor")

	// ErrUnknownChannel indicates a reference to a channel that does not exist.
	ErrUnknownChannel = errors.New("model: unknown channel")

	// ErrUnknownScenario indicates a reference to a scenario that does not exist.
	ErrUnknownScenario = errors.New("model: unknown scenario")

	// ErrUnknownGraph indicates a reference to a scenario graph that does not exist.
	ErrUnknownGraph = errors.New("model: unknown scenario graph")

	// ErrUnknownState indicates a reference to an FSM state that does not exist.
	ErrUnknownState = errors.New("model: unknown FSM state")

	// ErrBadRate indicates a negative port rate.
	ErrBadRate = errors.New("model: rate must be non-negative")

	// ErrBadTokens indicates a negative token count.
	ErrBadTokens = errors.New("model: token count must be non-negative")

	// ErrBadExecutionTime indicates a negative or non-finite execution time.
	ErrBadExecutionTime = errors.New("model: execution time must be finite and non-negative")

	// ErrBadReward indicates a negative or non-finite scenario reward.
	ErrBadReward = errors.New("model: reward must be finite and non-negative")

	// ErrInconsistent indicates that the balance equations of a scenario have
	// no positive solution.
	ErrInconsistent = errors.New("model: inconsistent rates")

	// ErrTokenBalance indicates that initial + produced ≠ consumed + final on
	// some channel, or that a channel would end an iteration with a negative
	// token count.
	ErrTokenBalance = errors.New("model: token balance violated")

	// ErrEmptyFSM indicates an FSM without states.
	ErrEmptyFSM = errors.New("model: FSM has no states")

	// ErrLayoutMismatch indicates two token layouts that cannot be matched
	// slot for slot by channel name.
	ErrLayoutMismatch = errors.New("model: token layouts do not match")
)
