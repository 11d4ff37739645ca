package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// randomTerrain returns an n×n grid with values in [lo, lo+span).
func randomTerrain(n, lo, span int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = lo + rng.Intn(span)
		}
	}

	return grid
}

// 1000×1000, values 0..4: roughly one cell in five is a wall.
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.From2D(randomTerrain(1000, 0, 5), gridgraph.Conn4)
	if err != nil {
		b.Fatalf("From2D: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkAStar runs A* corner to corner on a wall-free 200×200 terrain.
func BenchmarkAStar(b *testing.B) {
	const n = 200
	gg, err := gridgraph.From2D(randomTerrain(n, 1, 4), gridgraph.Conn8)
	if err != nil {
		b.Fatalf("From2D: %v", err)
	}
	p, err := gridgraph.NewProblem(gg, gridgraph.Cell{}, gridgraph.Cell{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatalf("NewProblem: %v", err)
	}
	h := p.Heuristic()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStar[gridgraph.Cell, gridgraph.Move](p, h); err != nil {
			b.Fatal(err)
		}
	}
}
