package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps, _ := gg.components()
	return comps
}

// SameComponent reports whether a and b are land cells of the same component,
// i.e. whether a path between them exists at all.
func (gg *GridGraph) SameComponent(a, b Cell) bool {
	if !gg.IsLand(a.X, a.Y) || !gg.IsLand(b.X, b.Y) {
		return false
	}
	_, label := gg.components()

	return label[gg.index(a.X, a.Y)] == label[gg.index(b.X, b.Y)]
}

// components returns the components together with a per-index label
// (-1 for walls).
func (gg *GridGraph) components() ([][]int, []int) {
	total := gg.Width * gg.Height
	label := make([]int, total)
	for i := range label {
		label[i] = -1
	}
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if label[i0] >= 0 {
				continue
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			label[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if label[vi] < 0 {
						label[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps, label
}
