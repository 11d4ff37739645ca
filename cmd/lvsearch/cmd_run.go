package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/scenario"
	"github.com/katalvlaran/lvsearch/search"
)

type runFlags struct {
	strategy      string
	maxExpansions int
	timeout       time.Duration
}

func newRunCmd(g *globalFlags) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a scenario with one strategy",
		Long: "Solve a scenario with one strategy and print the solution, its cost and\n" +
			"the generated, expanded and ramification counters.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, g, rf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&rf.strategy, "strategy", "", "Strategy: dfs, bfs, bestfirst, astar (default from scenario, else astar)")
	f.IntVar(&rf.maxExpansions, "max-expansions", 0, "Abort after N expansions (0 keeps the scenario setting)")
	f.DurationVar(&rf.timeout, "timeout", 0, "Abort the search after this duration (0 = no timeout)")

	return cmd
}

func runRun(cmd *cobra.Command, g *globalFlags, rf *runFlags) error {
	s, err := g.loadScenario()
	if err != nil {
		return err
	}
	strategy, err := pickStrategy(s, rf.strategy)
	if err != nil {
		return err
	}
	sess, err := g.newSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if rf.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rf.timeout)
		defer cancel()
	}

	opts := sess.options(ctx)
	if rf.maxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(rf.maxExpansions))
	}

	out := cmd.OutOrStdout()
	rep, runErr := scenario.Solve(s, strategy, opts...)
	if rep != nil {
		printReport(out, rep)
	}
	if err := sess.close(context.WithoutCancel(ctx), out); err != nil {
		return errors.Join(runErr, err)
	}

	return runErr
}

// pickStrategy resolves the --strategy flag, falling back to the scenario.
func pickStrategy(s *scenario.Scenario, flag string) (search.Strategy, error) {
	if flag == "" {
		return s.DefaultStrategy()
	}

	return search.ParseStrategy(flag)
}

func printReport(w io.Writer, rep *scenario.Report) {
	fmt.Fprintf(w, "scenario:     %s (%s)\n", rep.Scenario, rep.Kind)
	fmt.Fprintf(w, "strategy:     %s\n", rep.Strategy)
	fmt.Fprintf(w, "found:        %t\n", rep.Found)
	if rep.Found {
		fmt.Fprintf(w, "solution:     %s\n", formatSolution(rep.Solution))
		fmt.Fprintf(w, "cost:         %g\n", rep.Cost)
	}
	fmt.Fprintf(w, "generated:    %d\n", rep.Generated)
	fmt.Fprintf(w, "expanded:     %d\n", rep.Expanded)
	fmt.Fprintf(w, "ramification: %.4f\n", rep.Ramification)
	fmt.Fprintf(w, "elapsed:      %s\n", rep.Elapsed.Round(time.Microsecond))
	if rep.Picture != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, rep.Picture)
		if !strings.HasSuffix(rep.Picture, "\n") {
			fmt.Fprintln(w)
		}
	}
}

func formatSolution(actions []string) string {
	if len(actions) == 0 {
		return "(empty)"
	}

	return strings.Join(actions, " ")
}
