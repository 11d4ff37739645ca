package search

import (
	"fmt"
	"math"
	"slices"
)

// Problem describes a deterministic state space.
//
// The search core never inspects states beyond these methods. StateKey is the
// single equality hook: two states are the same iff their keys are equal.
type Problem[S, A any] interface {
	// InitialState returns the start state.
	InitialState() S
	// GoalState returns the reference goal used by heuristics.
	GoalState() S
	// Actions returns the actions applicable in state, in a stable order.
	Actions(state S) []A
	// Result returns the state reached by applying action to state.
	Result(state S, action A) S
	// StepCost returns the non-negative cost of applying action to state.
	StepCost(state S, action A) float64
	// GoalTest reports whether state satisfies the goal condition.
	GoalTest(state S) bool
	// StateKey returns a comparable identity for state.
	StateKey(state S) string
}

// Heuristic estimates the remaining cost from state to goal.
type Heuristic[S any] func(state, goal S) float64

// Locator is implemented by states that sit on an integer plane.
type Locator interface {
	Position() (x, y int)
}

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(a, b Locator) float64 {
	ax, ay := a.Position()
	bx, by := b.Position()

	return math.Abs(float64(ax-bx)) + math.Abs(float64(ay-by))
}

// ManhattanDistanceAdmissible returns only the vertical component |y1-y2|.
// It stays a lower bound in domains where horizontal moves are free and each
// row costs one unit.
func ManhattanDistanceAdmissible(a, b Locator) float64 {
	_, ay := a.Position()
	_, by := b.Position()

	return math.Abs(float64(ay - by))
}

// ManhattanHeuristic adapts ManhattanDistance to a Heuristic.
func ManhattanHeuristic[S Locator]() Heuristic[S] {
	return func(state, goal S) float64 { return ManhattanDistance(state, goal) }
}

// AdmissibleHeuristic adapts ManhattanDistanceAdmissible to a Heuristic.
func AdmissibleHeuristic[S Locator]() Heuristic[S] {
	return func(state, goal S) float64 { return ManhattanDistanceAdmissible(state, goal) }
}

// ZeroHeuristic always returns 0; AStar with it behaves as uniform-cost search.
func ZeroHeuristic[S any]() Heuristic[S] {
	return func(S, S) float64 { return 0 }
}

// Replay applies actions from p's initial state, checking that each one is
// applicable. It returns the final state and the accumulated cost.
func Replay[S any, A comparable](p Problem[S, A], actions []A) (S, float64, error) {
	var zero S
	if p == nil {
		return zero, 0, ErrNilProblem
	}
	state := p.InitialState()
	cost := 0.0
	for i, act := range actions {
		if !slices.Contains(p.Actions(state), act) {
			return state, cost, fmt.Errorf("%w: action %v at step %d not applicable in %s",
				ErrInvalidSolution, act, i, p.StateKey(state))
		}
		cost += p.StepCost(state, act)
		state = p.Result(state, act)
	}

	return state, cost, nil
}

// Verify replays actions and checks that the final state passes the goal test.
// It returns the accumulated cost.
func Verify[S any, A comparable](p Problem[S, A], actions []A) (float64, error) {
	state, cost, err := Replay(p, actions)
	if err != nil {
		return cost, err
	}
	if !p.GoalTest(state) {
		return cost, fmt.Errorf("%w: final state %s is not a goal", ErrInvalidSolution, p.StateKey(state))
	}

	return cost, nil
}
