package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sadf/throughput"
)

// StrategyOutput describes one analysis strategy.
type StrategyOutput struct {
	Name  string `json:"name"`
	Exact bool   `json:"exact"`
}

// NewStrategiesCommand creates the strategies command.
func NewStrategiesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the analysis strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []StrategyOutput
			for _, s := range throughput.Strategies() {
				out = append(out, StrategyOutput{Name: s.String(), Exact: s.Exact()})
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Strategies(out)
		},
	}
}
