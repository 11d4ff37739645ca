package roadmap

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Directed reports whether roads are one-way.
func (m *Map) Directed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.directed
}

// AddCity registers a city at (x, y).
// Returns ErrEmptyCity or ErrDuplicateCity.
func (m *Map) AddCity(name string, x, y int) error {
	if name == "" {
		return ErrEmptyCity
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cities[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCity, name)
	}
	m.cities[name] = City{Name: name, X: x, Y: y}

	return nil
}

// AddRoad connects two existing cities. Undirected maps also add the
// reverse road.
//
// Returns ErrEmptyCity, ErrSelfRoad, ErrNegativeCost, ErrCityNotFound or
// ErrDuplicateRoad.
// Complexity: O(d) where d is the out-degree of from.
func (m *Map) AddRoad(from, to string, cost float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyCity
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfRoad, from)
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %s→%s costs %g", ErrNegativeCost, from, to, cost)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// 2) Both endpoints must exist
	for _, name := range []string{from, to} {
		if _, ok := m.cities[name]; !ok {
			return fmt.Errorf("%w: %q", ErrCityNotFound, name)
		}
	}
	// 3) Reject parallel roads, then insert (and mirror) in sorted position
	if m.hasRoad(from, to) || (!m.directed && m.hasRoad(to, from)) {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateRoad, from, to)
	}
	m.insert(Road{From: from, To: to, Cost: cost})
	if !m.directed {
		m.insert(Road{From: to, To: from, Cost: cost})
	}

	return nil
}

func byTo(a Road, to string) int { return cmp.Compare(a.To, to) }

func (m *Map) hasRoad(from, to string) bool {
	_, ok := slices.BinarySearchFunc(m.roads[from], to, byTo)
	return ok
}

func (m *Map) insert(r Road) {
	out := m.roads[r.From]
	i, _ := slices.BinarySearchFunc(out, r.To, byTo)
	m.roads[r.From] = slices.Insert(out, i, r)
}

// City returns the named city.
func (m *Map) City(name string) (City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cities[name]
	if !ok {
		return City{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	return c, nil
}

// HasCity reports whether name is registered.
func (m *Map) HasCity(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cities[name]

	return ok
}

// Cities returns every city sorted by name.
func (m *Map) Cities() []City {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]City, 0, len(m.cities))
	for _, c := range m.cities {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b City) int { return cmp.Compare(a.Name, b.Name) })

	return out
}

// Roads returns every stored road sorted by (From, To). Undirected maps
// report both directions.
func (m *Map) Roads() []Road {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Road
	for _, rs := range m.roads {
		out = append(out, rs...)
	}
	slices.SortFunc(out, func(a, b Road) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})

	return out
}

// Neighbors returns the roads leaving name, sorted by destination.
// The returned slice is a copy.
func (m *Map) Neighbors(name string) ([]Road, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.cities[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	return slices.Clone(m.roads[name]), nil
}

// Cost returns the cost of the road from→to and whether it exists.
func (m *Map) Cost(from, to string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rs := m.roads[from]
	i, ok := slices.BinarySearchFunc(rs, to, byTo)
	if !ok {
		return 0, false
	}

	return rs[i].Cost, true
}
