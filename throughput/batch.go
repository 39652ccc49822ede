package throughput

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sadf/model"
)

// Job is one analysis of a batch.
type Job struct {
	Graph    *model.Graph
	Strategy Strategy
}

// AnalyzeAll runs every job with at most Options.Parallelism analyses in
// flight. Results are in job order. The first failure cancels the jobs
// still running and is returned alone.
func AnalyzeAll(ctx context.Context, jobs []Job, opts ...Option) ([]*Result, error) {
	o := buildOptions(opts)
	results := make([]*Result, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := Analyze(gCtx, job.Graph, job.Strategy, opts...)
			if err != nil {
				return fmt.Errorf("job %d (%s, %v): %w", i, job.Graph.Name, job.Strategy, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
