// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvsearch.
package gridgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a LandThreshold below 1, which would allow
	// free (zero-cost) cells.
	ErrBadThreshold = errors.New("gridgraph: land threshold must be at least 1")
	// ErrNilGrid is returned by NewProblem when the grid is nil.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedCell indicates a start or goal cell below LandThreshold.
	ErrBlockedCell = errors.New("gridgraph: cell is blocked")
	// ErrUnknownMove is returned by ParseMove for unrecognized names.
	ErrUnknownMove = errors.New("gridgraph: unknown move")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid position. It is the search state of a grid Problem.
type Cell struct {
	X, Y int
}

// Position implements search.Locator.
func (c Cell) Position() (int, int) { return c.X, c.Y }

// String renders the cell as "x,y"; it doubles as the state key.
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Move is a single step to a neighboring cell.
type Move int

// Moves in clockwise order starting at north. Y grows downwards.
const (
	North Move = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var moveNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// moveOffsets is indexed by Move.
var moveOffsets = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// String returns the compass abbreviation of m.
func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("move(%d)", int(m))
	}

	return moveNames[m]
}

// Offset returns the (dx, dy) applied by m.
func (m Move) Offset() (dx, dy int) {
	o := moveOffsets[m]
	return o[0], o[1]
}

// Diagonal reports whether m changes both coordinates.
func (m Move) Diagonal() bool { return m%2 == 1 }

var longMoveNames = map[string]Move{
	"NORTH": North, "NORTHEAST": NorthEast, "EAST": East, "SOUTHEAST": SouthEast,
	"SOUTH": South, "SOUTHWEST": SouthWest, "WEST": West, "NORTHWEST": NorthWest,
}

// ParseMove accepts compass abbreviations (N, NE, ...) and full names
// (north, north-east, northeast), case-insensitively.
func ParseMove(name string) (Move, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for i, n := range moveNames {
		if s == n {
			return Move(i), nil
		}
	}
	if m, ok := longMoveNames[s]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, name)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	// Cells below it are walls.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds a copy of the input value.
// Conn and LandThreshold are set from GridOptions during construction.
// Entering a land cell costs its value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	moves           []Move
	neighborOffsets [][2]int
	minCost         int
}
