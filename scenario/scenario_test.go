package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/roadmap"
	"github.com/katalvlaran/lvsearch/scenario"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/tetromino"
)

func TestList(t *testing.T) {
	assert.Equal(t, []string{"five-cities", "shelf", "valley"}, scenario.List())

	_, err := scenario.Builtin("nope")
	assert.ErrorIs(t, err, scenario.ErrNotFound)
	assert.Contains(t, err.Error(), "valley")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"UnknownKind", "kind: maze\n", scenario.ErrUnknownKind},
		{"MissingBody", "kind: grid\n", scenario.ErrMissingBody},
		{"WrongBody", "kind: roadmap\ngrid: {rows: [[1]]}\n", scenario.ErrMissingBody},
		{"BadStrategy", "kind: grid\nstrategy: hill\ngrid: {rows: [[1]]}\n", search.ErrUnknownStrategy},
		{"BadHeuristic", "kind: grid\nheuristic: magic\ngrid: {rows: [[1]]}\n", scenario.ErrUnknownHeuristic},
		{"NegativeBudget", "kind: grid\nmax_expansions: -1\ngrid: {rows: [[1]]}\n", search.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := scenario.Parse([]byte("kind: grid\ncolour: blue\ngrid: {rows: [[1]]}\n"))
	require.Error(t, err, "unknown fields are rejected")
	assert.Contains(t, err.Error(), "colour")

	_, err = scenario.Parse(nil)
	assert.EqualError(t, err, "parse scenario: empty document")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: line
kind: grid
strategy: bfs
grid:
  rows: [[1, 1, 1, 1]]
  start: {x: 0, y: 0}
  goal: {x: 3, y: 0}
`), 0o600))

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "line", sc.Name)
	s, err := sc.DefaultStrategy()
	require.NoError(t, err)
	assert.Equal(t, search.StrategyBFS, s)

	rep, err := scenario.Solve(sc, s)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"E", "E", "E"}, rep.Solution); diff != "" {
		t.Errorf("solution mismatch (-want +got):\n%s", diff)
	}

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Errors(t *testing.T) {
	sc := &scenario.Scenario{Name: "x", Kind: scenario.KindGrid, Grid: &scenario.GridSpec{
		Rows: [][]int{{1, 0}}, Goal: scenario.Point{X: 1},
	}}
	_, err := sc.BuildGrid()
	assert.ErrorIs(t, err, gridgraph.ErrBlockedCell)

	sc.Grid.Conn = 6
	_, err = sc.BuildGrid()
	assert.ErrorContains(t, err, "conn must be 4 or 8")

	_, err = sc.BuildRoadmap()
	assert.ErrorIs(t, err, scenario.ErrMissingBody)

	sc.Roadmap = &scenario.RoadmapSpec{
		Cities: []scenario.CitySpec{{Name: "A"}, {Name: "B"}},
		Roads:  []scenario.RoadSpec{{From: "A", To: "B", Cost: -2}},
		From:   "A", To: "B",
	}
	_, err = sc.BuildRoadmap()
	assert.ErrorIs(t, err, roadmap.ErrNegativeCost)

	sc.Tetromino = &scenario.TetrominoSpec{Board: []string{"...."}, Piece: "Q"}
	_, err = sc.BuildTetromino()
	assert.ErrorIs(t, err, tetromino.ErrUnknownKind)
	sc.Tetromino.Piece = "I"
	sc.Tetromino.Goal = scenario.PlacementSpec{X: 1}
	_, err = sc.BuildTetromino()
	assert.ErrorIs(t, err, tetromino.ErrPieceCollision)
}

func TestSolve_Builtins(t *testing.T) {
	cases := []struct {
		name     string
		solution []string
		cost     float64
	}{
		{"valley", []string{"S", "S", "E", "E", "N", "N"}, 6},
		{"five-cities", []string{"B", "C", "D"}, 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := scenario.Builtin(tc.name)
			require.NoError(t, err)
			rep, err := scenario.Solve(sc, search.StrategyAStar)
			require.NoError(t, err)
			require.True(t, rep.Found)
			if diff := cmp.Diff(tc.solution, rep.Solution); diff != "" {
				t.Errorf("solution mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.cost, rep.Cost)
			assert.Equal(t, search.Ramification(rep.Expanded, rep.Generated), rep.Ramification)

			back, err := scenario.Replay(sc, rep.Solution)
			require.NoError(t, err)
			assert.True(t, back.Goal)
			assert.Equal(t, rep.Cost, back.Cost)
		})
	}
}

// TestSolve_EveryStrategy checks that every builtin is solved by every
// strategy and that the reported plan replays to the goal.
func TestSolve_EveryStrategy(t *testing.T) {
	for _, name := range scenario.List() {
		sc, err := scenario.Builtin(name)
		require.NoError(t, err)
		for _, s := range search.Strategies() {
			rep, err := scenario.Solve(sc, s)
			require.NoError(t, err, "%s/%s", name, s)
			require.True(t, rep.Found, "%s/%s", name, s)
			assert.Equal(t, s, rep.Strategy)
			assert.Equal(t, sc.Kind, rep.Kind)

			back, err := scenario.Replay(sc, rep.Solution)
			require.NoError(t, err, "%s/%s", name, s)
			assert.True(t, back.Goal, "%s/%s", name, s)
			assert.Equal(t, rep.Cost, back.Cost, "%s/%s", name, s)
		}
	}
}

func TestSolve_Tetromino(t *testing.T) {
	sc, err := scenario.Builtin("shelf")
	require.NoError(t, err)

	rep, err := scenario.Solve(sc, search.StrategyAStar)
	require.NoError(t, err)
	assert.Equal(t, 3.0, rep.Cost)
	assert.Equal(t, "......\n......\n###...\n.@....\n@@@...\n", rep.Picture)
}

func TestSolve_Budget(t *testing.T) {
	sc, err := scenario.Builtin("valley")
	require.NoError(t, err)
	sc.MaxExpansions = 2

	rep, err := scenario.Solve(sc, search.StrategyBFS)
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	require.NotNil(t, rep)
	assert.Equal(t, 2, rep.Expanded)
	assert.False(t, rep.Found)
	assert.Nil(t, rep.Solution)

	rep, err = scenario.Solve(sc, search.StrategyBFS, search.WithMaxExpansions(0))
	require.NoError(t, err, "later options override the scenario budget")
	assert.True(t, rep.Found)
}

func TestSolve_Heuristics(t *testing.T) {
	sc, err := scenario.Builtin("five-cities")
	require.NoError(t, err)

	sc.Heuristic = scenario.HeuristicZero
	rep, err := scenario.Solve(sc, search.StrategyAStar)
	require.NoError(t, err)
	assert.Equal(t, 11.0, rep.Cost)

	sc.Heuristic = scenario.HeuristicAdmissible
	_, err = scenario.Solve(sc, search.StrategyAStar)
	assert.ErrorIs(t, err, scenario.ErrUnknownHeuristic)

	grid, err := scenario.Builtin("valley")
	require.NoError(t, err)
	for _, h := range []string{scenario.HeuristicManhattan, scenario.HeuristicAdmissible, scenario.HeuristicZero} {
		grid.Heuristic = h
		rep, err := scenario.Solve(grid, search.StrategyAStar)
		require.NoError(t, err, h)
		assert.Equal(t, 6.0, rep.Cost, h)
	}
}

func TestReplay_Errors(t *testing.T) {
	sc, err := scenario.Builtin("valley")
	require.NoError(t, err)

	_, err = scenario.Replay(sc, []string{"up"})
	assert.ErrorIs(t, err, gridgraph.ErrUnknownMove)

	_, err = scenario.Replay(sc, []string{"W"})
	assert.ErrorIs(t, err, search.ErrInvalidSolution)

	rep, err := scenario.Replay(sc, []string{"south"})
	require.NoError(t, err)
	assert.False(t, rep.Goal)
	assert.Equal(t, "0,1", rep.Final)
	assert.Equal(t, 1.0, rep.Cost)

	shelf, err := scenario.Builtin("shelf")
	require.NoError(t, err)
	rep, err = scenario.Replay(shelf, []string{"right", "right", "right", "down"})
	require.NoError(t, err)
	assert.Equal(t, "......\n...@@@\n###.@.\n......\n......\n", rep.Final)

	unknown := &scenario.Scenario{Kind: "maze"}
	_, err = scenario.Replay(unknown, nil)
	assert.ErrorIs(t, err, scenario.ErrUnknownKind)
	_, err = scenario.Solve(unknown, search.StrategyBFS)
	assert.ErrorIs(t, err, scenario.ErrUnknownKind)
}
