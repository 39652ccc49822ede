package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Analyses prints analysis results.
func (f *OutputFormatter) Analyses(out []AnalysisOutput) error {
	if f.Format == "json" {
		return f.json(out)
	}
	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tGRAPH\tSTRATEGY\tTHROUGHPUT\tPERIOD\tSTATES\tCRITICAL")
	for _, a := range out {
		kind := a.Strategy
		if !a.Exact {
			kind += " (bound)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.6g\t%.6g\t%d\t%s\n",
			a.File, a.Graph, kind, a.Throughput, a.Period, a.States, strings.Join(a.Critical, " "))
	}
	return tw.Flush()
}

// Validations prints validation reports.
func (f *OutputFormatter) Validations(out []ValidationOutput) error {
	if f.Format == "json" {
		return f.json(out)
	}
	for _, v := range out {
		if v.Valid {
			fmt.Fprintf(f.Writer, "ok   %s (%s: %d scenarios, %d states)\n", v.File, v.Graph, v.Scenarios, v.States)
			continue
		}
		fmt.Fprintf(f.Writer, "FAIL %s: %s\n", v.File, v.Error)
	}
	return nil
}

// Strategies prints the strategy list.
func (f *OutputFormatter) Strategies(out []StrategyOutput) error {
	if f.Format == "json" {
		return f.json(out)
	}
	for _, s := range out {
		kind := "lower bound"
		if s.Exact {
			kind = "exact"
		}
		fmt.Fprintf(f.Writer, "%-24s %s\n", s.Name, kind)
	}
	return nil
}
