// Package search defines options, sentinel errors, strategies and result types
// shared by every search algorithm.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilHeuristic is returned when an informed strategy receives a nil Heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a run before
	// the frontier was exhausted or a goal was found.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrNegativeStepCost is returned under WithValidation when the Problem
	// reports a negative step cost.
	ErrNegativeStepCost = errors.New("search: negative step cost")

	// ErrUnknownStrategy is returned by ParseStrategy and Run for unknown strategies.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrInvalidSolution is returned by Replay and Verify when an action
	// sequence cannot be applied or does not reach a goal state.
	ErrInvalidSolution = errors.New("search: invalid solution")
)

// Strategy identifies a search algorithm.
type Strategy int

const (
	// StrategyDFS is depth-first graph search.
	StrategyDFS Strategy = iota
	// StrategyBFS is breadth-first graph search.
	StrategyBFS
	// StrategyBestFirst is greedy best-first graph search ordered by h.
	StrategyBestFirst
	// StrategyAStar is A* graph search ordered by g + h.
	StrategyAStar
)

// Strategies lists every strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyDFS, StrategyBFS, StrategyBestFirst, StrategyAStar}
}

// String returns the short name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyDFS:
		return "dfs"
	case StrategyBFS:
		return "bfs"
	case StrategyBestFirst:
		return "bestfirst"
	case StrategyAStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Informed reports whether s consults a heuristic.
func (s Strategy) Informed() bool {
	return s == StrategyBestFirst || s == StrategyAStar
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
// Accepted: dfs, depth-first, bfs, breadth-first, bestfirst, best-first, best,
// greedy, astar, a*.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return StrategyDFS, nil
	case "bfs", "breadth-first":
		return StrategyBFS, nil
	case "bestfirst", "best-first", "best", "greedy":
		return StrategyBestFirst, nil
	case "astar", "a*":
		return StrategyAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Result is the outcome of one search run. Solution, Generated, Expanded and
// Ramification are the stable output contract; Found, Cost and Strategy are
// conveniences derived from the same run.
type Result[A any] struct {
	// Solution is the action sequence from the initial state to the goal,
	// nil when no goal was found. It is empty (non-nil) when the initial
	// state already satisfies the goal test.
	Solution []A

	// Generated counts constructed nodes, the root included.
	Generated int

	// Expanded counts nodes popped from the frontier and goal-tested.
	Expanded int

	// Ramification is Expanded / Generated, computed once after the loop.
	Ramification float64

	// Found reports whether a goal state was reached.
	Found bool

	// Cost is the accumulated step cost of Solution.
	Cost float64

	// Strategy is the algorithm that produced this result.
	Strategy Strategy
}

// Stats returns the counters of r without the solution.
func (r *Result[A]) Stats() Stats {
	return Stats{
		Strategy:     r.Strategy,
		Generated:    r.Generated,
		Expanded:     r.Expanded,
		Ramification: r.Ramification,
		Found:        r.Found,
		Cost:         r.Cost,
	}
}

// Ramification returns expanded / generated, or 0 when generated is 0.
func Ramification(expanded, generated int) float64 {
	if generated == 0 {
		return 0
	}

	return float64(expanded) / float64(generated)
}

// Stats is a solution-free summary of a run handed to an Observer.
type Stats struct {
	Strategy     Strategy
	Generated    int
	Expanded     int
	Ramification float64
	Found        bool
	Cost         float64
	Elapsed      time.Duration
}

// Observer receives lifecycle events of every search run.
// SearchStarted may return a derived context (for example carrying a span);
// that context is the one later passed to SearchFinished.
type Observer interface {
	SearchStarted(ctx context.Context, s Strategy) context.Context
	SearchFinished(ctx context.Context, st Stats, err error)
}

type nopObserver struct{}

func (nopObserver) SearchStarted(ctx context.Context, _ Strategy) context.Context { return ctx }
func (nopObserver) SearchFinished(context.Context, Stats, error)                  {}

// Option configures a search run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// strategy is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the run with ErrExpansionLimit once that
	// many nodes were expanded without reaching a goal.
	MaxExpansions int

	// MaxDepth, if > 0, skips children whose accumulated path cost exceeds it.
	MaxDepth float64

	// OnGenerate is called for every generated node with its state key and
	// accumulated path cost.
	OnGenerate func(key string, cost float64)

	// OnExpand is called for every expanded node. A non-nil error aborts the run.
	OnExpand func(key string, cost float64) error

	// Logger receives structured debug records; discarded by default.
	Logger *slog.Logger

	// Observer receives start/finish events.
	Observer Observer

	// Validate enables precondition checks on the Problem's step costs.
	Validate bool

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion budget and no depth limit
//   - no-op hooks and observer
//   - a discarding logger
//   - validation disabled
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		MaxDepth:      0,
		OnGenerate:    func(string, float64) {},
		OnExpand:      func(string, float64) error { return nil },
		Logger:        slog.New(slog.DiscardHandler),
		Observer:      nopObserver{},
		Validate:      false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: stop after n expansions with ErrExpansionLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth prunes children whose accumulated path cost exceeds d.
//
//	d > 0: limit to d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%g)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnGenerate registers a callback run for every generated node.
func WithOnGenerate(fn func(key string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithOnExpand registers a callback run for every expanded node; returning
// an error from it stops the search.
func WithOnExpand(fn func(key string, cost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs a lifecycle observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithValidation enables step-cost precondition checks.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}
