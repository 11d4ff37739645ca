package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// runner encapsulates the mutable state of one search run: options, visited
// set and result counters. A runner is never shared between runs.
type runner[S, A any] struct {
	problem  Problem[S, A]
	opts     Options
	ctx      context.Context
	visited  map[string]struct{}
	res      *Result[A]
	started  time.Time
	strategy Strategy
}

// newRunner validates p, applies options and returns a fresh runner.
func newRunner[S, A any](s Strategy, p Problem[S, A], opts []Option) (*runner[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &runner[S, A]{
		problem:  p,
		opts:     o,
		ctx:      o.Ctx,
		visited:  make(map[string]struct{}),
		res:      &Result[A]{Strategy: s},
		strategy: s,
	}, nil
}

// begin notifies the observer and logs the start of the run.
func (r *runner[S, A]) begin() {
	r.started = time.Now()
	r.ctx = r.opts.Observer.SearchStarted(r.ctx, r.strategy)
	r.opts.Logger.Debug("search_start",
		slog.String("strategy", r.strategy.String()),
		slog.String("initial", r.problem.StateKey(r.problem.InitialState())),
	)
}

// step runs before every pop: cancellation check and expansion budget.
func (r *runner[S, A]) step() error {
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
	}
	if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.res.Expanded)
	}

	return nil
}

func (r *runner[S, A]) key(state S) string { return r.problem.StateKey(state) }

func (r *runner[S, A]) seen(key string) bool {
	_, ok := r.visited[key]
	return ok
}

func (r *runner[S, A]) mark(key string) { r.visited[key] = struct{}{} }

// expand counts n as expanded and runs the OnExpand hook.
func (r *runner[S, A]) expand(n *Node[S, A], key string) error {
	r.res.Expanded++
	if err := r.opts.OnExpand(key, n.Depth); err != nil {
		return fmt.Errorf("search: OnExpand error at %q: %w", key, err)
	}

	return nil
}

// successor applies act to n.State and returns the new state and its
// accumulated cost n.Depth + StepCost(n.State, act).
func (r *runner[S, A]) successor(n *Node[S, A], act A) (S, float64, error) {
	state := r.problem.Result(n.State, act)
	step := r.problem.StepCost(n.State, act)
	if r.opts.Validate && step < 0 {
		return state, 0, fmt.Errorf("%w: %g from %q", ErrNegativeStepCost, step, r.key(n.State))
	}

	return state, n.Depth + step, nil
}

// admit reports whether a child of accumulated cost may be generated.
func (r *runner[S, A]) admit(cost float64) bool {
	return r.opts.MaxDepth <= 0 || cost <= r.opts.MaxDepth
}

// generated counts n and runs the OnGenerate hook.
func (r *runner[S, A]) generated(n *Node[S, A], key string) {
	r.res.Generated++
	r.opts.OnGenerate(key, n.Depth)
}

// solve records n as the goal node.
func (r *runner[S, A]) solve(n *Node[S, A]) {
	r.res.Found = true
	r.res.Solution = n.Path()
	r.res.Cost = n.Depth
}

// finish computes Ramification, notifies the observer and returns the result
// together with err. The result is returned even when err != nil.
func (r *runner[S, A]) finish(err error) (*Result[A], error) {
	r.res.Ramification = Ramification(r.res.Expanded, r.res.Generated)
	st := r.res.Stats()
	st.Elapsed = time.Since(r.started)
	r.opts.Observer.SearchFinished(r.ctx, st, err)

	attrs := []any{
		slog.String("strategy", r.strategy.String()),
		slog.Int("generated", st.Generated),
		slog.Int("expanded", st.Expanded),
		slog.Float64("ramification", st.Ramification),
		slog.Bool("found", st.Found),
		slog.Float64("cost", st.Cost),
		slog.Duration("elapsed", st.Elapsed),
	}
	if err != nil {
		r.opts.Logger.Debug("search_aborted", append(attrs, slog.Any("err", err))...)
	} else {
		r.opts.Logger.Debug("search_done", attrs...)
	}

	return r.res, err
}

// expandAtPop drives the loop shared by BFS, BestFirst and AStar: the popped
// state is marked visited, goal-tested, then expanded; children whose state
// is already visited are not generated. Duplicates already in the frontier
// are not purged.
func (r *runner[S, A]) expandAtPop(fr frontier[*Node[S, A]], child func(parent *Node[S, A], act A, state S, cost float64) *Node[S, A]) (*Result[A], error) {
	for !fr.empty() {
		if err := r.step(); err != nil {
			return r.finish(err)
		}
		node := fr.pop()
		key := r.key(node.State)
		r.mark(key)
		if err := r.expand(node, key); err != nil {
			return r.finish(err)
		}
		if r.problem.GoalTest(node.State) {
			r.solve(node)
			break
		}
		for _, act := range r.problem.Actions(node.State) {
			state, cost, err := r.successor(node, act)
			if err != nil {
				return r.finish(err)
			}
			ckey := r.key(state)
			if r.seen(ckey) || !r.admit(cost) {
				continue
			}
			next := child(node, act, state, cost)
			r.generated(next, ckey)
			fr.push(next)
		}
	}

	return r.finish(nil)
}
