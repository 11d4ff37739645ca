package tetromino

import (
	"fmt"
	"strings"
)

// Board is a fixed grid of empty and filled cells. It is immutable once
// built; Lock returns a new board.
type Board struct {
	Width, Height int
	filled        [][]bool
}

// NewBoard parses rows of '.' (empty) and '#' (filled), top row first.
// Returns ErrEmptyBoard, ErrRaggedBoard or ErrBadCell.
func NewBoard(rows []string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	w := len(rows[0])
	filled := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedBoard, y, len(row), w)
		}
		filled[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			switch row[x] {
			case '.':
			case '#':
				filled[y][x] = true
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, row[x], x, y)
			}
		}
	}

	return &Board{Width: w, Height: len(rows), filled: filled}, nil
}

// NewEmptyBoard returns a w×h board with no filled cells.
func NewEmptyBoard(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyBoard
	}
	rows := make([]string, h)
	for y := range rows {
		rows[y] = strings.Repeat(".", w)
	}

	return NewBoard(rows)
}

// Filled reports whether (x, y) is filled. Cells outside the board count as
// filled.
func (b *Board) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return true
	}

	return b.filled[y][x]
}

// Fits reports whether every cell of s lies on an empty board cell.
func (b *Board) Fits(s State) bool {
	if s.Kind < 0 || int(s.Kind) >= len(shapes) || s.Rotation < 0 || s.Rotation >= Rotations {
		return false
	}
	for _, c := range s.Cells() {
		if b.Filled(c[0], c[1]) {
			return false
		}
	}

	return true
}

// Lock returns a copy of b with s's cells filled, followed by the number of
// completed rows that were cleared.
func (b *Board) Lock(s State) (*Board, int, error) {
	if !b.Fits(s) {
		return nil, 0, fmt.Errorf("%w: %s", ErrPieceCollision, s)
	}
	filled := make([][]bool, 0, b.Height)
	for _, row := range b.filled {
		filled = append(filled, append([]bool(nil), row...))
	}
	for _, c := range s.Cells() {
		filled[c[1]][c[0]] = true
	}
	// Drop full rows and pad with empty ones on top
	kept := filled[:0]
	for _, row := range filled {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.Height - len(kept)
	out := make([][]bool, 0, b.Height)
	for i := 0; i < cleared; i++ {
		out = append(out, make([]bool, b.Width))
	}
	out = append(out, kept...)

	return &Board{Width: b.Width, Height: b.Height, filled: out}, cleared, nil
}

func full(row []bool) bool {
	for _, f := range row {
		if !f {
			return false
		}
	}

	return true
}

// Render draws the board with '#' for filled cells and '@' for the cells
// of each given state.
func (b *Board) Render(states ...State) string {
	piece := make(map[[2]int]bool)
	for _, s := range states {
		for _, c := range s.Cells() {
			piece[c] = true
		}
	}
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			switch {
			case piece[[2]int{x, y}]:
				sb.WriteByte('@')
			case b.filled[y][x]:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
