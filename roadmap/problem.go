package roadmap

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Problem is a route-finding search.Problem over a Map. States are city
// names and each action names the destination city of a road.
type Problem struct {
	m        *Map
	from, to string
}

var _ search.Problem[string, string] = (*Problem)(nil)

// NewProblem returns the problem of travelling from one city to another.
// Returns ErrNilMap, ErrEmptyCity or ErrCityNotFound.
func NewProblem(m *Map, from, to string) (*Problem, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if from == "" || to == "" {
		return nil, ErrEmptyCity
	}
	for _, name := range []string{from, to} {
		if !m.HasCity(name) {
			return nil, fmt.Errorf("%w: %q", ErrCityNotFound, name)
		}
	}

	return &Problem{m: m, from: from, to: to}, nil
}

func (p *Problem) InitialState() string         { return p.from }
func (p *Problem) GoalState() string            { return p.to }
func (p *Problem) GoalTest(city string) bool    { return city == p.to }
func (p *Problem) StateKey(city string) string  { return city }
func (p *Problem) Result(_, road string) string { return road }

// Actions lists the destinations reachable by one road, sorted by name.
func (p *Problem) Actions(city string) []string {
	roads, err := p.m.Neighbors(city)
	if err != nil {
		return nil
	}
	out := make([]string, len(roads))
	for i, r := range roads {
		out[i] = r.To
	}

	return out
}

// StepCost returns the cost of the road city→dest.
func (p *Problem) StepCost(city, dest string) float64 {
	c, _ := p.m.Cost(city, dest)
	return c
}

// StraightLine returns the Manhattan distance between city coordinates. It
// is admissible when no road is cheaper than that distance.
func (p *Problem) StraightLine() search.Heuristic[string] {
	return func(state, goal string) float64 {
		a, errA := p.m.City(state)
		b, errB := p.m.City(goal)
		if errA != nil || errB != nil {
			return 0
		}

		return search.ManhattanDistance(a, b)
	}
}
