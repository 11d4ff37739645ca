package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// execute runs a fresh command tree with args and returns stdout, stderr
// and the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"five-cities", "shelf", "valley"} {
		assert.Contains(t, out, name)
	}
}

func TestRun_Builtin(t *testing.T) {
	out, _, err := execute(t, "run", "--builtin", "valley", "--strategy", "astar")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy:     astar")
	assert.Contains(t, out, "found:        true")
	assert.Contains(t, out, "solution:     S S E E N N")
	assert.Contains(t, out, "cost:         6")
}

func TestRun_DefaultStrategy(t *testing.T) {
	out, _, err := execute(t, "run", "--builtin", "five-cities")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy:     astar")
	assert.Contains(t, out, "solution:     B C D")
}

func TestRun_TetrominoPicture(t *testing.T) {
	out, _, err := execute(t, "run", "--builtin", "shelf")
	require.NoError(t, err)
	assert.Contains(t, out, "cost:         3")
	assert.Contains(t, out, "@")
}

func TestRun_ScenarioFile(t *testing.T) {
	doc := `name: corridor
kind: grid
strategy: bfs
grid:
  rows:
    - [1, 1, 1, 1]
  start: {x: 0, y: 0}
  goal: {x: 3, y: 0}
`
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "run", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario:     corridor (grid)")
	assert.Contains(t, out, "strategy:     bfs")
	assert.Contains(t, out, "solution:     E E E")
}

func TestRun_ExpansionLimit(t *testing.T) {
	out, _, err := execute(t, "run", "--builtin", "valley", "--max-expansions", "1")
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Contains(t, out, "found:        false")
	assert.Contains(t, out, "expanded:     1")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no scenario", []string{"run"}, "a scenario is required"},
		{"both sources", []string{"run", "--builtin", "valley", "--scenario", "x.yaml"}, "not both"},
		{"unknown builtin", []string{"run", "--builtin", "nowhere"}, "nowhere"},
		{"unknown strategy", []string{"run", "--builtin", "valley", "--strategy", "ida"}, "unknown strategy"},
		{"bad log level", []string{"run", "--builtin", "valley", "--log-level", "loud"}, "invalid --log-level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRun_Metrics(t *testing.T) {
	out, _, err := execute(t, "run", "--builtin", "valley", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `lvsearch_runs_total{outcome="found",strategy="astar"} 1`)
	assert.Contains(t, out, "lvsearch_nodes_expanded_total")
}

func TestRun_Trace(t *testing.T) {
	_, errOut, err := execute(t, "run", "--builtin", "valley", "--strategy", "bfs", "--trace")
	require.NoError(t, err)
	assert.Contains(t, errOut, "search.bfs")
}

func TestRun_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "run", "--builtin", "valley", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=search_done")
	assert.Contains(t, errOut, "strategy=astar")
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare", "--builtin", "five-cities", "--markdown")
	require.NoError(t, err)
	for _, s := range search.Strategies() {
		assert.Contains(t, out, "| "+s.String()+" |")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.GreaterOrEqual(t, len(lines), 6)
}

func TestCompare_ASCII(t *testing.T) {
	out, _, err := execute(t, "compare", "--builtin", "valley", "--parallel", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "RAMIFICATION")
}

func TestCompare_MetricsCountEveryStrategy(t *testing.T) {
	out, _, err := execute(t, "compare", "--builtin", "valley", "--metrics")
	require.NoError(t, err)
	for _, s := range search.Strategies() {
		assert.Contains(t, out, `lvsearch_runs_total{outcome="found",strategy="`+s.String()+`"} 1`)
	}
}

func TestCompare_LimitIsReported(t *testing.T) {
	out, _, err := execute(t, "compare", "--builtin", "valley", "--max-expansions", "1", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| limit |")
}

func TestReplay(t *testing.T) {
	out, _, err := execute(t, "replay", "--builtin", "valley", "--actions", "S,S,E,E,N,N")
	require.NoError(t, err)
	assert.Contains(t, out, "final:    2,0")
	assert.Contains(t, out, "cost:     6")
	assert.Contains(t, out, "goal:     true")
}

func TestReplay_NotAtGoal(t *testing.T) {
	out, _, err := execute(t, "replay", "--builtin", "five-cities", "--actions", "B")
	require.Error(t, err)
	assert.Contains(t, out, "final:    B")
	assert.Contains(t, out, "goal:     false")
}

func TestReplay_InvalidAction(t *testing.T) {
	_, _, err := execute(t, "replay", "--builtin", "five-cities", "--actions", "C")
	require.ErrorIs(t, err, search.ErrInvalidSolution)
}
