package search_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// road is a weighted one-way connection used by graphProblem.
type road struct {
	to   string
	cost float64
}

// graphProblem is a small explicit state graph: states and actions are vertex
// names, the action is the destination vertex.
type graphProblem struct {
	start, goal string
	roads       map[string][]road
	pos         map[string][2]int
}

func newGraph(start, goal string) *graphProblem {
	return &graphProblem{
		start: start,
		goal:  goal,
		roads: make(map[string][]road),
		pos:   make(map[string][2]int),
	}
}

func (g *graphProblem) add(from, to string, cost float64) *graphProblem {
	g.roads[from] = append(g.roads[from], road{to: to, cost: cost})
	return g
}

func (g *graphProblem) place(name string, x, y int) *graphProblem {
	g.pos[name] = [2]int{x, y}
	return g
}

func (g *graphProblem) InitialState() string { return g.start }
func (g *graphProblem) GoalState() string    { return g.goal }
func (g *graphProblem) GoalTest(s string) bool {
	return s == g.goal
}
func (g *graphProblem) StateKey(s string) string { return s }

func (g *graphProblem) Actions(s string) []string {
	out := make([]string, 0, len(g.roads[s]))
	for _, r := range g.roads[s] {
		out = append(out, r.to)
	}

	return out
}

func (g *graphProblem) Result(_ string, a string) string { return a }

func (g *graphProblem) StepCost(s, a string) float64 {
	for _, r := range g.roads[s] {
		if r.to == a {
			return r.cost
		}
	}
	panic(fmt.Sprintf("no road %s→%s", s, a))
}

// manhattan is consistent when every road costs at least the Manhattan
// distance between its endpoints.
func (g *graphProblem) manhattan() search.Heuristic[string] {
	return func(s, goal string) float64 {
		a, b := g.pos[s], g.pos[goal]
		return math.Abs(float64(a[0]-b[0])) + math.Abs(float64(a[1]-b[1]))
	}
}

// diamond: S→A→G and S→B→G, all unit costs.
func diamond() *graphProblem {
	return newGraph("S", "G").
		add("S", "A", 1).add("S", "B", 1).
		add("A", "G", 1).add("B", "G", 1)
}

// greedyTrap: the greedy choice A leads to an expensive road into G.
//
//	S(0,0) ──8── A(8,0) ──20── G(10,0)
//	  └────4── B(3,0) ──7──────┘
func greedyTrap() *graphProblem {
	return newGraph("S", "G").
		place("S", 0, 0).place("A", 8, 0).place("B", 3, 0).place("G", 10, 0).
		add("S", "A", 8).add("S", "B", 4).
		add("A", "G", 20).add("B", "G", 7)
}

// chain builds v0→v1→…→v(n-1) with unit costs and goal v(n-1).
func chain(n int) *graphProblem {
	g := newGraph("v0", fmt.Sprintf("v%d", n-1))
	for i := 0; i < n-1; i++ {
		g.add(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	return g
}

// ring is a directed cycle A→B→C→A whose goal Z is unreachable.
func ring() *graphProblem {
	return newGraph("A", "Z").
		add("A", "B", 1).add("B", "C", 1).add("C", "A", 1)
}

// point is a Locator used by heuristic tests.
type point struct{ x, y int }

func (p point) Position() (int, int) { return p.x, p.y }

// runAll runs every strategy on p with a Manhattan-style heuristic h.
func runAll(p search.Problem[string, string], h search.Heuristic[string], opts ...search.Option) map[search.Strategy]*search.Result[string] {
	out := make(map[search.Strategy]*search.Result[string], 4)
	for _, s := range search.Strategies() {
		res, err := search.Run(s, p, h, opts...)
		if err != nil {
			panic(err)
		}
		out[s] = res
	}

	return out
}
