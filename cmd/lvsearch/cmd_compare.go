package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/scenario"
	"github.com/katalvlaran/lvsearch/search"
)

type compareFlags struct {
	markdown      bool
	parallel      int
	maxExpansions int
}

func newCompareCmd(g *globalFlags) *cobra.Command {
	cf := &compareFlags{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Solve a scenario with every strategy and tabulate the counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, g, cf)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&cf.markdown, "markdown", false, "Render the table as Markdown")
	f.IntVar(&cf.parallel, "parallel", 4, "Maximum number of strategies run at once")
	f.IntVar(&cf.maxExpansions, "max-expansions", 0, "Abort each run after N expansions (0 keeps the scenario setting)")

	return cmd
}

func runCompare(cmd *cobra.Command, g *globalFlags, cf *compareFlags) error {
	s, err := g.loadScenario()
	if err != nil {
		return err
	}
	if cf.parallel < 1 {
		return fmt.Errorf("--parallel must be >= 1, got %d", cf.parallel)
	}
	sess, err := g.newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	strategies := search.Strategies()
	reports := make([]*scenario.Report, len(strategies))
	limited := make([]bool, len(strategies))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cf.parallel)
	for i, st := range strategies {
		eg.Go(func() error {
			opts := sess.options(gctx)
			if cf.maxExpansions > 0 {
				opts = append(opts, search.WithMaxExpansions(cf.maxExpansions))
			}
			rep, err := scenario.Solve(s, st, opts...)
			if errors.Is(err, search.ErrExpansionLimit) {
				limited[i] = true
				err = nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", st, err)
			}
			reports[i] = rep

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s (%s)", s.Name, s.Kind))
	t.AppendHeader(table.Row{"Strategy", "Found", "Actions", "Cost", "Generated", "Expanded", "Ramification"})
	for i, rep := range reports {
		found := fmt.Sprint(rep.Found)
		if limited[i] {
			found = "limit"
		}
		cost := "-"
		if rep.Found {
			cost = fmt.Sprintf("%g", rep.Cost)
		}
		t.AppendRow(table.Row{
			rep.Strategy.String(), found, len(rep.Solution), cost,
			rep.Generated, rep.Expanded, fmt.Sprintf("%.4f", rep.Ramification),
		})
	}
	if cf.markdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}

	return sess.close(ctx, out)
}
