package throughput

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/sadf/explore"
	"github.com/katalvlaran/sadf/maxplus"
)

// Option configures an analysis.
type Option func(*Options)

// Options holds the tolerances, caps and logger shared by all strategies.
type Options struct {
	Epsilon       float64
	MaxIterations int
	MaxStates     int
	Pruning       bool

	// Parallelism bounds concurrent analyses in AnalyzeAll.
	Parallelism int

	Logger *slog.Logger
}

// DefaultOptions mirrors explore.DefaultOptions and runs AnalyzeAll with
// four workers.
func DefaultOptions() Options {
	return Options{
		Epsilon:       maxplus.DefaultEpsilon,
		MaxIterations: explore.DefaultMaxIterations,
		MaxStates:     explore.DefaultMaxStates,
		Pruning:       true,
		Parallelism:   4,
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

// WithEpsilon sets the timestamp tolerance. Panics if eps is not positive.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) {
		panic("throughput: WithEpsilon requires eps > 0")
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations caps eigenvector and reference iterations.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("throughput: WithMaxIterations requires n >= 1")
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithMaxStates caps the state-space exploration. Panics if n < 1.
func WithMaxStates(n int) Option {
	if n < 1 {
		panic("throughput: WithMaxStates requires n >= 1")
	}
	return func(o *Options) { o.MaxStates = n }
}

// WithPruning toggles dominance pruning of the state-space strategy.
func WithPruning(on bool) Option {
	return func(o *Options) { o.Pruning = on }
}

// WithParallelism bounds AnalyzeAll. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("throughput: WithParallelism requires n >= 1")
	}
	return func(o *Options) { o.Parallelism = n }
}

// WithLogger routes analysis records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) explore(ctx context.Context, log *slog.Logger) []explore.Option {
	return []explore.Option{
		explore.WithContext(ctx),
		explore.WithEpsilon(o.Epsilon),
		explore.WithMaxIterations(o.MaxIterations),
		explore.WithMaxStates(o.MaxStates),
		explore.WithPruning(o.Pruning),
		explore.WithLogger(log),
	}
}
