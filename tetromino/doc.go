// Package tetromino implements the tetromino placement puzzle as a
// search.Problem.
//
// A Board is a fixed grid of empty ('.') and filled ('#') cells. The active
// piece is one of I, O, T, S, Z, J, L in one of four clockwise rotations,
// anchored at the top-left corner of its bounding box. The player may move it
// Left, Right, Rotate it, or let it fall one row Down; a move is legal when
// the piece stays on the board without overlapping filled cells.
//
// Costs:
//
//   - Down costs 1 (one gravity tick).
//   - Left, Right and Rotate cost 0.
//
// Because only the vertical component of a move costs anything, the
// Manhattan distance between placements overestimates the remaining cost,
// while its vertical component (search.AdmissibleHeuristic, Puzzle.Heuristic)
// is admissible and consistent.
package tetromino
