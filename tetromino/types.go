// Package tetromino defines the pieces, board and sentinel errors of the
// tetromino placement puzzle.
package tetromino

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for tetromino operations.
var (
	// ErrEmptyBoard indicates a board without rows or columns.
	ErrEmptyBoard = errors.New("tetromino: board must have at least one row and one column")
	// ErrRaggedBoard indicates rows of differing lengths.
	ErrRaggedBoard = errors.New("tetromino: all board rows must have the same length")
	// ErrBadCell indicates a board character other than '.' or '#'.
	ErrBadCell = errors.New("tetromino: board cells must be '.' or '#'")
	// ErrUnknownKind is returned by ParseKind for unrecognized pieces.
	ErrUnknownKind = errors.New("tetromino: unknown piece kind")
	// ErrUnknownAction is returned by ParseAction for unrecognized moves.
	ErrUnknownAction = errors.New("tetromino: unknown action")
	// ErrPieceCollision indicates a start or goal placement that leaves the
	// board or overlaps filled cells.
	ErrPieceCollision = errors.New("tetromino: piece does not fit")
	// ErrKindMismatch indicates start and goal use different pieces.
	ErrKindMismatch = errors.New("tetromino: start and goal pieces differ")
	// ErrNilBoard is returned by NewPuzzle when the board is nil.
	ErrNilBoard = errors.New("tetromino: board is nil")
)

// Kind is one of the seven tetrominoes.
type Kind int

// The seven one-sided tetrominoes.
const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

const kindNames = "IOTSZJL"

// Kinds lists every piece in a stable order.
func Kinds() []Kind { return []Kind{I, O, T, S, Z, J, L} }

// String returns the single-letter name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k : k+1]
}

// ParseKind accepts a single piece letter, case-insensitively.
func ParseKind(name string) (Kind, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) == 1 {
		if i := strings.IndexByte(kindNames, s[0]); i >= 0 {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Rotations is the number of orientations of every piece.
const Rotations = 4

// offset is a cell relative to the piece origin; Y grows downwards.
type offset struct{ x, y int }

// spawn shapes, rotation 0.
var baseShapes = [...][4]offset{
	I: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	T: {{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	S: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	Z: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	J: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	L: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// shapes[kind][rotation] holds the normalized cells of every orientation.
var shapes = buildShapes()

func buildShapes() [len(baseShapes)][Rotations][4]offset {
	var out [len(baseShapes)][Rotations][4]offset
	for k, base := range baseShapes {
		cur := base
		for r := 0; r < Rotations; r++ {
			out[k][r] = normalize(cur)
			cur = rotateCW(cur)
		}
	}

	return out
}

// rotateCW turns cells a quarter clockwise: (x, y) → (-y, x).
func rotateCW(cells [4]offset) [4]offset {
	var out [4]offset
	for i, c := range cells {
		out[i] = offset{-c.y, c.x}
	}

	return out
}

// normalize shifts cells so the minimum x and y are 0 and sorts them
// row-major.
func normalize(cells [4]offset) [4]offset {
	minX, minY := cells[0].x, cells[0].y
	for _, c := range cells[1:] {
		minX, minY = min(minX, c.x), min(minY, c.y)
	}
	for i := range cells {
		cells[i].x -= minX
		cells[i].y -= minY
	}
	slices.SortFunc(cells[:], func(a, b offset) int {
		if a.y != b.y {
			return a.y - b.y
		}
		return a.x - b.x
	})

	return cells
}

// State is a piece placement: kind, rotation and origin (top-left of the
// piece's bounding box). It is the search state of a Puzzle.
type State struct {
	Kind     Kind
	Rotation int
	XPos     int
	YPos     int
}

// Position implements search.Locator.
func (s State) Position() (int, int) { return s.XPos, s.YPos }

// String renders s as "T/1@3,5"; it doubles as the state key.
func (s State) String() string {
	return fmt.Sprintf("%s/%d@%d,%d", s.Kind, s.Rotation, s.XPos, s.YPos)
}

// Cells returns the absolute board cells covered by s.
func (s State) Cells() [4][2]int {
	var out [4][2]int
	for i, c := range shapes[s.Kind][s.Rotation%Rotations] {
		out[i] = [2]int{s.XPos + c.x, s.YPos + c.y}
	}

	return out
}

// Action moves the active piece.
type Action int

// Moves in the order Puzzle.Actions reports them.
const (
	Left Action = iota
	Right
	Rotate
	Down
)

var actionNames = [...]string{"left", "right", "rotate", "down"}

// Actions lists every action in a stable order.
func Actions() []Action { return []Action{Left, Right, Rotate, Down} }

// String returns the lower-case name of a.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}

	return actionNames[a]
}

// ParseAction accepts action names and the single letters l, r, o, d.
func ParseAction(name string) (Action, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if s == n {
			return Action(i), nil
		}
	}
	switch s {
	case "l":
		return Left, nil
	case "r":
		return Right, nil
	case "o", "rot", "cw":
		return Rotate, nil
	case "d":
		return Down, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
