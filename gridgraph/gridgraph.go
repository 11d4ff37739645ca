// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a weighted state space. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of “land” cells
//   - A search.Problem over cells where entering a cell costs its value
//
// Cells with value < LandThreshold are walls; cells with value ≥ LandThreshold are “land”.
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadThreshold if opts.LandThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; track the cheapest land cell
	minCost := 0
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.LandThreshold && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}
	if minCost == 0 {
		minCost = opts.LandThreshold
	}
	// Precompute moves and neighbor offsets based on connectivity
	moves := []Move{North, East, South, West}
	if opts.Conn == Conn8 {
		moves = []Move{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	}
	offsets := make([][2]int, len(moves))
	for i, m := range moves {
		offsets[i] = moveOffsets[m]
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		moves:           moves,
		neighborOffsets: offsets,
		minCost:         minCost,
	}, nil
}

// From2D is NewGridGraph with LandThreshold=1 and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and not a wall.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Moves returns the moves allowed by gg.Conn, in clockwise order from north.
func (gg *GridGraph) Moves() []Move {
	return gg.moves
}

// MinCost returns the cheapest land value in the grid, the per-step lower
// bound used by Problem heuristics.
func (gg *GridGraph) MinCost() int {
	return gg.minCost
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
