package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sadf/firing"
	"github.com/katalvlaran/sadf/loader"
)

// ValidationOutput reports one checked graph file.
type ValidationOutput struct {
	File      string `json:"file"`
	Graph     string `json:"graph"`
	Valid     bool   `json:"valid"`
	Scenarios int    `json:"scenarios,omitempty"`
	States    int    `json:"states,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <graph.yaml>...",
		Short: "Check graphs without analyzing them",
		Long: `Validate loads every graph, checks consistency and token balance, and
runs one iteration of each scenario to detect deadlock.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootOpts *RootOptions, files []string) error {
	out := make([]ValidationOutput, len(files))
	failed := 0
	for i, f := range files {
		out[i] = validateFile(f)
		if !out[i].Valid {
			failed++
		}
	}

	fm := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	if err := fm.Validations(out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d graphs invalid", failed, len(files))
	}
	return nil
}

func validateFile(path string) ValidationOutput {
	v := ValidationOutput{File: path}
	g, err := loader.Load(path)
	if err != nil {
		v.Error = err.Error()
		return v
	}
	v.Graph = g.Name
	if err = g.Validate(); err != nil {
		v.Error = err.Error()
		return v
	}
	if _, err = firing.PrepareAll(g); err != nil {
		v.Error = err.Error()
		return v
	}
	v.Valid = true
	v.Scenarios = g.ScenarioCount()
	v.States = g.FSM().StateCount()
	return v
}
