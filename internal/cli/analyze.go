package cli

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sadf/config"
	"github.com/katalvlaran/sadf/loader"
	"github.com/katalvlaran/sadf/throughput"
)

// allStrategies selects every strategy for each file.
const allStrategies = "all"

// AnalyzeOptions holds the analyze flags.
type AnalyzeOptions struct {
	Strategy string
	Metrics  bool
}

// AnalysisOutput is one analyzed (file, strategy) pair.
type AnalysisOutput struct {
	File       string   `json:"file"`
	Graph      string   `json:"graph"`
	Strategy   string   `json:"strategy"`
	Exact      bool     `json:"exact"`
	RunID      string   `json:"run_id"`
	Throughput float64  `json:"throughput"`
	Period     float64  `json:"period"`
	Critical   []string `json:"critical_scenarios,omitempty"`
	States     int      `json:"states"`
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <graph.yaml>...",
		Short: "Compute the throughput of one or more graphs",
		Long: `Analyze loads every graph file and runs the selected strategy on each,
in parallel up to the configured parallelism. --strategy overrides the
configuration; "all" runs every strategy on every file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "strategy name or \"all\" (default from config)")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "print Prometheus metrics after the results")

	return cmd
}

func runAnalyze(cmd *cobra.Command, rootOpts *RootOptions, opts *AnalyzeOptions, files []string) error {
	cfg, err := config.Load(rootOpts.Config)
	if err != nil {
		return err
	}
	strategies, err := selectStrategies(opts.Strategy, cfg)
	if err != nil {
		return err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	var (
		jobs   []throughput.Job
		origin []string
	)
	for _, f := range files {
		g, err := loader.Load(f)
		if err != nil {
			return err
		}
		for _, s := range strategies {
			jobs = append(jobs, throughput.Job{Graph: g, Strategy: s})
			origin = append(origin, f)
		}
	}

	results, err := throughput.AnalyzeAll(cmd.Context(), jobs, cfg.Options(logger)...)
	if err != nil {
		return err
	}

	out := make([]AnalysisOutput, len(results))
	for i, r := range results {
		out[i] = AnalysisOutput{
			File:       origin[i],
			Graph:      r.Graph,
			Strategy:   r.Strategy.String(),
			Exact:      r.Strategy.Exact(),
			RunID:      r.RunID.String(),
			Throughput: r.Throughput,
			Period:     r.Period,
			Critical:   r.CriticalScenarios,
			States:     r.States,
		}
	}

	f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	if err = f.Analyses(out); err != nil {
		return err
	}
	if opts.Metrics {
		return writeMetrics(cmd, prometheus.DefaultGatherer)
	}
	return nil
}

func selectStrategies(flag string, cfg *config.Config) ([]throughput.Strategy, error) {
	switch strings.ToLower(flag) {
	case "":
		return []throughput.Strategy{cfg.StrategyValue()}, nil
	case allStrategies:
		return throughput.Strategies(), nil
	}
	s, err := throughput.ParseStrategy(flag)
	if err != nil {
		return nil, err
	}
	return []throughput.Strategy{s}, nil
}

func writeMetrics(cmd *cobra.Command, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "sadf_") {
			continue
		}
		if _, err = expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return err
		}
	}
	return nil
}
