package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Problem is a path-finding search.Problem over a GridGraph: states are cells,
// actions are moves and entering a cell costs its value.
type Problem struct {
	grid        *GridGraph
	start, goal Cell
}

var _ search.Problem[Cell, Move] = (*Problem)(nil)

// NewProblem validates start and goal against gg.
// Returns ErrNilGrid, or ErrOutOfBounds / ErrBlockedCell wrapped with the
// offending cell.
func NewProblem(gg *GridGraph, start, goal Cell) (*Problem, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	for _, c := range []struct {
		role string
		cell Cell
	}{{"start", start}, {"goal", goal}} {
		if !gg.InBounds(c.cell.X, c.cell.Y) {
			return nil, fmt.Errorf("%w: %s %s in %dx%d grid", ErrOutOfBounds, c.role, c.cell, gg.Width, gg.Height)
		}
		if !gg.IsLand(c.cell.X, c.cell.Y) {
			return nil, fmt.Errorf("%w: %s %s has value %d < %d",
				ErrBlockedCell, c.role, c.cell, gg.CellValues[c.cell.Y][c.cell.X], gg.LandThreshold)
		}
	}

	return &Problem{grid: gg, start: start, goal: goal}, nil
}

// Grid returns the underlying grid.
func (p *Problem) Grid() *GridGraph { return p.grid }

// Reachable reports whether start and goal share a component.
func (p *Problem) Reachable() bool { return p.grid.SameComponent(p.start, p.goal) }

func (p *Problem) InitialState() Cell     { return p.start }
func (p *Problem) GoalState() Cell        { return p.goal }
func (p *Problem) GoalTest(c Cell) bool   { return c == p.goal }
func (p *Problem) StateKey(c Cell) string { return c.String() }

// Actions returns the moves from c that land on an in-bounds land cell.
func (p *Problem) Actions(c Cell) []Move {
	out := make([]Move, 0, len(p.grid.moves))
	for _, m := range p.grid.moves {
		dx, dy := m.Offset()
		if p.grid.IsLand(c.X+dx, c.Y+dy) {
			out = append(out, m)
		}
	}

	return out
}

// Result applies m to c without checking walls.
func (p *Problem) Result(c Cell, m Move) Cell {
	dx, dy := m.Offset()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// StepCost returns the value of the cell entered by m.
func (p *Problem) StepCost(c Cell, m Move) float64 {
	next := p.Result(c, m)
	return float64(p.grid.CellValues[next.Y][next.X])
}

// Heuristic returns an admissible estimate for the grid's connectivity:
// Manhattan distance under Conn4, Chebyshev distance under Conn8, both scaled
// by the cheapest land value.
func (p *Problem) Heuristic() search.Heuristic[Cell] {
	scale := float64(p.grid.minCost)
	if p.grid.Conn == Conn8 {
		return func(s, goal Cell) float64 {
			return scale * math.Max(math.Abs(float64(s.X-goal.X)), math.Abs(float64(s.Y-goal.Y)))
		}
	}

	return func(s, goal Cell) float64 {
		return scale * search.ManhattanDistance(s, goal)
	}
}
