package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/scenario"
)

type replayFlags struct {
	actions []string
}

func newReplayCmd(g *globalFlags) *cobra.Command {
	rf := &replayFlags{}
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply an action list to a scenario and report where it ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.loadScenario()
			if err != nil {
				return err
			}
			rep, err := scenario.Replay(s, rf.actions)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "scenario: %s\n", rep.Scenario)
			fmt.Fprintf(w, "final:    %s\n", rep.Final)
			fmt.Fprintf(w, "cost:     %g\n", rep.Cost)
			fmt.Fprintf(w, "goal:     %t\n", rep.Goal)
			if !rep.Goal {
				return errors.New("replay did not reach the goal")
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rf.actions, "actions", nil, "Comma-separated action names")
	_ = cmd.MarkFlagRequired("actions")

	return cmd
}
