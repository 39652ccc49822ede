// Package explore runs scenario schedules repeatedly to obtain the periods,
// eigenvectors, reference delays and reachable timed states that the
// throughput strategies reduce to cycle-ratio problems.
//
//	Eigenpair / EigenpairFrom – smoothed power iteration of one scenario:
//	                            period T and normalized eigenvector.
//	ReferenceDelay            – largest lag of a scenario's trajectory behind
//	                            a reference vector advanced by T per iteration.
//	StateSpace                – breadth-first search over (FSM state, timed
//	                            vector) pairs with optional dominance pruning,
//	                            returned as an mcm.Graph.
//
// Timed vectors are compared with maxplus.Close under Options.Epsilon and
// hashed by their epsilon-quantized key (maxplus.Vector.Key); a key hit is
// always confirmed with an exact epsilon comparison.
package explore

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/sadf/maxplus"
)

var (
	// ErrNoConvergence indicates that an iteration cap was reached before
	// the explored sequence became stable or recurrent.
	ErrNoConvergence = errors.New("explore: no convergence")

	// ErrStateSpaceLimit indicates that StateSpace stored MaxStates states
	// and still found new ones.
	ErrStateSpaceLimit = errors.New("explore: state space limit reached")

	// ErrNotSquare indicates a scenario whose final token slots differ from
	// its initial ones, so it has no eigenpair on its own.
	ErrNotSquare = errors.New("explore: scenario is not square")

	// ErrUnrelated indicates a timed vector without any finite entry, or a
	// reference that leaves a produced token unrelated.
	ErrUnrelated = errors.New("explore: unrelated timestamps")
)

// Defaults used by DefaultOptions.
const (
	DefaultMaxIterations = 10000
	DefaultMaxStates     = 100000
)

// Option configures an exploration.
type Option func(*Options)

// Options holds the tolerances, caps and hooks of an exploration.
type Options struct {
	// Ctx aborts StateSpace between expansions when cancelled.
	Ctx context.Context

	// Epsilon is the timestamp tolerance for equality, dominance and hashing.
	Epsilon float64

	// MaxIterations caps Eigenpair and ReferenceDelay.
	MaxIterations int

	// MaxStates caps the number of states StateSpace stores.
	MaxStates int

	// Pruning enables dominance pruning in StateSpace.
	Pruning bool

	// Logger receives Debug records per exploration.
	Logger *slog.Logger
}

// DefaultOptions returns:
//   - Background context
//   - Epsilon = maxplus.DefaultEpsilon
//   - MaxIterations = DefaultMaxIterations, MaxStates = DefaultMaxStates
//   - Pruning enabled
//   - a Logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Epsilon:       maxplus.DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		MaxStates:     DefaultMaxStates,
		Pruning:       true,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon sets the timestamp tolerance. Panics if eps is not positive.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) {
		panic("explore: WithEpsilon requires eps > 0")
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMaxIterations caps power iteration and reference replay.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("explore: WithMaxIterations requires n >= 1")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithMaxStates caps the stored states of StateSpace. Panics if n < 1.
func WithMaxStates(n int) Option {
	if n < 1 {
		panic("explore: WithMaxStates requires n >= 1")
	}
	return func(o *Options) {
		o.MaxStates = n
	}
}

// WithPruning toggles dominance pruning.
func WithPruning(on bool) Option {
	return func(o *Options) {
		o.Pruning = on
	}
}

// WithLogger routes Debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
