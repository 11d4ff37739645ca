package roadmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/roadmap"
	"github.com/katalvlaran/lvsearch/search"
)

func TestGrid(t *testing.T) {
	m, err := roadmap.Grid(3, 4, 2)
	require.NoError(t, err)
	assert.Len(t, m.Cities(), 12)
	// 3·3 horizontal + 2·4 vertical roads, reported in both directions.
	assert.Len(t, m.Roads(), 34)

	c, err := m.City("2,3")
	require.NoError(t, err)
	assert.Equal(t, roadmap.City{Name: "2,3", X: 6, Y: 4}, c)

	p, err := roadmap.NewProblem(m, "0,0", "2,3")
	require.NoError(t, err)
	for _, s := range []search.Strategy{search.StrategyBFS, search.StrategyAStar} {
		res, err := search.Run[string, string](s, p, p.StraightLine())
		require.NoError(t, err)
		assert.True(t, res.Found, s)
		assert.Equal(t, 10.0, res.Cost, s)
		assert.Len(t, res.Solution, 5, s)
	}
}

func TestGrid_Directed(t *testing.T) {
	und, err := roadmap.Grid(2, 2, 1)
	require.NoError(t, err)
	dir, err := roadmap.Grid(2, 2, 1, roadmap.WithDirected())
	require.NoError(t, err)
	assert.True(t, dir.Directed())
	assert.Equal(t, und.Roads(), dir.Roads())
}

func TestGrid_Errors(t *testing.T) {
	_, err := roadmap.Grid(0, 3, 1)
	assert.ErrorIs(t, err, roadmap.ErrTooFewCities)
	_, err = roadmap.Grid(2, 2, -1)
	assert.ErrorIs(t, err, roadmap.ErrNegativeCost)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := roadmap.Random(30, 50, 0.1, 7)
	require.NoError(t, err)
	b, err := roadmap.Random(30, 50, 0.1, 7)
	require.NoError(t, err)
	assert.Equal(t, a.Cities(), b.Cities())
	assert.Equal(t, a.Roads(), b.Roads())

	d, err := roadmap.Random(30, 50, 0.1, 7, roadmap.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, a.Roads(), d.Roads())
}

func TestRandom_Errors(t *testing.T) {
	_, err := roadmap.Random(1, 10, 0.5, 1)
	assert.ErrorIs(t, err, roadmap.ErrTooFewCities)
	_, err = roadmap.Random(5, 10, 1.5, 1)
	assert.ErrorIs(t, err, roadmap.ErrInvalidProbability)
	_, err = roadmap.Random(5, 10, -0.1, 1)
	assert.ErrorIs(t, err, roadmap.ErrInvalidProbability)
}

// TestRandom_StraightLineIsAdmissible compares A* with the straight-line
// bound against uniform-cost A* on several generated maps.
func TestRandom_StraightLineIsAdmissible(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			m, err := roadmap.Random(40, 100, 0.08, seed)
			require.NoError(t, err)
			for _, r := range m.Roads() {
				from, _ := m.City(r.From)
				to, _ := m.City(r.To)
				require.GreaterOrEqual(t, r.Cost, search.ManhattanDistance(from, to))
			}

			p, err := roadmap.NewProblem(m, "c0", "c39")
			require.NoError(t, err)
			informed, err := search.AStar[string, string](p, p.StraightLine())
			require.NoError(t, err)
			uniform, err := search.AStar[string, string](p, search.ZeroHeuristic[string]())
			require.NoError(t, err)
			require.True(t, informed.Found)
			assert.InDelta(t, uniform.Cost, informed.Cost, 1e-9)

			cost, err := search.Verify[string, string](p, informed.Solution)
			require.NoError(t, err)
			assert.InDelta(t, informed.Cost, cost, 1e-9)
		})
	}
}

func BenchmarkAStar_Random500(b *testing.B) {
	m, err := roadmap.Random(500, 1000, 0.01, 42)
	require.NoError(b, err)
	p, err := roadmap.NewProblem(m, "c0", "c499")
	require.NoError(b, err)
	h := p.StraightLine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStar[string, string](p, h); err != nil {
			b.Fatal(err)
		}
	}
}
