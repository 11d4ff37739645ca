package tetromino

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Puzzle asks for a sequence of moves that brings the active piece from its
// start placement to a target placement. Down costs one gravity tick; Left,
// Right and Rotate happen within a tick and are free. Pieces never move up.
type Puzzle struct {
	board       *Board
	start, goal State
}

var _ search.Problem[State, Action] = (*Puzzle)(nil)

// NewPuzzle validates both placements against board.
// Returns ErrNilBoard, ErrKindMismatch or ErrPieceCollision.
func NewPuzzle(board *Board, start, goal State) (*Puzzle, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	if start.Kind != goal.Kind {
		return nil, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, start.Kind, goal.Kind)
	}
	if !board.Fits(start) {
		return nil, fmt.Errorf("%w: start %s", ErrPieceCollision, start)
	}
	if !board.Fits(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrPieceCollision, goal)
	}

	return &Puzzle{board: board, start: start, goal: goal}, nil
}

// Board returns the puzzle board.
func (p *Puzzle) Board() *Board { return p.board }

func (p *Puzzle) InitialState() State     { return p.start }
func (p *Puzzle) GoalState() State        { return p.goal }
func (p *Puzzle) GoalTest(s State) bool   { return s == p.goal }
func (p *Puzzle) StateKey(s State) string { return s.String() }

// Actions returns the moves after which the piece still fits, in the order
// Left, Right, Rotate, Down.
func (p *Puzzle) Actions(s State) []Action {
	out := make([]Action, 0, 4)
	for _, a := range Actions() {
		if p.board.Fits(p.Result(s, a)) {
			out = append(out, a)
		}
	}

	return out
}

// Result applies a without collision checks.
func (p *Puzzle) Result(s State, a Action) State {
	switch a {
	case Left:
		s.XPos--
	case Right:
		s.XPos++
	case Rotate:
		s.Rotation = (s.Rotation + 1) % Rotations
	case Down:
		s.YPos++
	}

	return s
}

// StepCost is 1 for Down and 0 otherwise.
func (p *Puzzle) StepCost(_ State, a Action) float64 {
	if a == Down {
		return 1
	}

	return 0
}

// Heuristic returns the vertical distance to the goal, which never
// overestimates because horizontal moves and rotations are free.
func (p *Puzzle) Heuristic() search.Heuristic[State] {
	return search.AdmissibleHeuristic[State]()
}
