package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/tetromino"
)

// Report is the outcome of solving a scenario with one strategy.
type Report struct {
	Scenario     string
	Kind         string
	Strategy     search.Strategy
	Found        bool
	Solution     []string
	Cost         float64
	Generated    int
	Expanded     int
	Ramification float64
	Elapsed      time.Duration
	// Picture is the rendered goal placement (tetromino only).
	Picture string
}

// ReplayReport is the outcome of replaying an action list.
type ReplayReport struct {
	Scenario string
	Final    string
	Cost     float64
	Goal     bool
}

// Solve builds the scenario's problem and runs strategy on it. The scenario's
// max_expansions is applied before opts, so opts may override it. On an
// aborted run the partial report is returned together with the error.
func Solve(s *Scenario, strategy search.Strategy, opts ...search.Option) (*Report, error) {
	if s.MaxExpansions > 0 {
		opts = append([]search.Option{search.WithMaxExpansions(s.MaxExpansions)}, opts...)
	}

	switch s.Kind {
	case KindGrid:
		p, err := s.BuildGrid()
		if err != nil {
			return nil, err
		}
		h, err := locatorHeuristic(s.Heuristic, p.Heuristic())
		if err != nil {
			return nil, err
		}
		return solve[gridgraph.Cell, gridgraph.Move](s, strategy, p, h, gridgraph.Move.String, opts)

	case KindRoadmap:
		p, err := s.BuildRoadmap()
		if err != nil {
			return nil, err
		}
		h, err := roadHeuristic(s.Heuristic, p)
		if err != nil {
			return nil, err
		}
		return solve[string, string](s, strategy, p, h, func(a string) string { return a }, opts)

	case KindTetromino:
		p, err := s.BuildTetromino()
		if err != nil {
			return nil, err
		}
		h, err := locatorHeuristic(s.Heuristic, p.Heuristic())
		if err != nil {
			return nil, err
		}
		rep, err := solve[tetromino.State, tetromino.Action](s, strategy, p, h, tetromino.Action.String, opts)
		if rep != nil && rep.Found {
			rep.Picture = p.Board().Render(p.GoalState())
		}
		return rep, err
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

func solve[S, A any](s *Scenario, strategy search.Strategy, p search.Problem[S, A], h search.Heuristic[S], name func(A) string, opts []search.Option) (*Report, error) {
	start := time.Now()
	res, err := search.Run(strategy, p, h, opts...)
	if res == nil {
		return nil, err
	}
	rep := &Report{
		Scenario:     s.Name,
		Kind:         s.Kind,
		Strategy:     strategy,
		Found:        res.Found,
		Cost:         res.Cost,
		Generated:    res.Generated,
		Expanded:     res.Expanded,
		Ramification: res.Ramification,
		Elapsed:      time.Since(start),
	}
	if res.Found {
		rep.Solution = make([]string, len(res.Solution))
		for i, a := range res.Solution {
			rep.Solution[i] = name(a)
		}
	}

	return rep, err
}

// Replay applies named actions from the scenario's initial state. Action
// names are parsed per kind: compass moves for grid, city names for roadmap,
// left/right/rotate/down for tetromino.
func Replay(s *Scenario, actions []string) (*ReplayReport, error) {
	switch s.Kind {
	case KindGrid:
		p, err := s.BuildGrid()
		if err != nil {
			return nil, err
		}
		return replay[gridgraph.Cell, gridgraph.Move](s, p, actions, gridgraph.ParseMove, gridgraph.Cell.String)

	case KindRoadmap:
		p, err := s.BuildRoadmap()
		if err != nil {
			return nil, err
		}
		city := func(a string) (string, error) { return strings.TrimSpace(a), nil }
		return replay[string, string](s, p, actions, city, func(c string) string { return c })

	case KindTetromino:
		p, err := s.BuildTetromino()
		if err != nil {
			return nil, err
		}
		render := func(st tetromino.State) string { return p.Board().Render(st) }
		return replay[tetromino.State, tetromino.Action](s, p, actions, tetromino.ParseAction, render)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

func replay[S any, A comparable](s *Scenario, p search.Problem[S, A], names []string, parse func(string) (A, error), show func(S) string) (*ReplayReport, error) {
	actions := make([]A, 0, len(names))
	for _, n := range names {
		a, err := parse(n)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	final, cost, err := search.Replay(p, actions)
	if err != nil {
		return nil, err
	}

	return &ReplayReport{
		Scenario: s.Name,
		Final:    show(final),
		Cost:     cost,
		Goal:     p.GoalTest(final),
	}, nil
}
