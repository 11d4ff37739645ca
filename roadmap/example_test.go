package roadmap_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/roadmap"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleProblem contrasts greedy best-first with A* on a three-city map
// where the road that looks direct is the slow one.
func ExampleProblem() {
	m := roadmap.New()
	_ = m.AddCity("Port", 0, 0)
	_ = m.AddCity("Ridge", 5, 0)
	_ = m.AddCity("Bay", 3, 4)
	_ = m.AddCity("Fort", 9, 0)
	_ = m.AddRoad("Port", "Ridge", 5)
	_ = m.AddRoad("Ridge", "Fort", 20)
	_ = m.AddRoad("Port", "Bay", 7)
	_ = m.AddRoad("Bay", "Fort", 10)

	p, _ := roadmap.NewProblem(m, "Port", "Fort")
	greedy, _ := search.BestFirst[string, string](p, p.StraightLine())
	optimal, _ := search.AStar[string, string](p, p.StraightLine())

	fmt.Println("greedy:", greedy.Solution, greedy.Cost)
	fmt.Println("astar: ", optimal.Solution, optimal.Cost)
	// Output:
	// greedy: [Ridge Fort] 25
	// astar:  [Bay Fort] 17
}
