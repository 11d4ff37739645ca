package roadmap

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrTooFewCities indicates a generator was asked for fewer cities than it needs.
	ErrTooFewCities = errors.New("roadmap: too few cities")

	// ErrInvalidProbability indicates a road probability outside [0,1].
	ErrInvalidProbability = errors.New("roadmap: probability must be in [0,1]")
)

const (
	gridNameFmt   = "%d,%d" // "r,c", row-major
	randomNameFmt = "c%d"
)

// Grid returns a rows×cols lattice of cities named "r,c" and placed
// spacing units apart. Each city is joined to its right and bottom
// neighbours by a road of cost spacing, so StraightLine is exact on an
// empty lattice.
func Grid(rows, cols, spacing int, opts ...Option) (*Map, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewCities)
	}
	if spacing < 0 {
		return nil, fmt.Errorf("Grid: spacing=%d: %w", spacing, ErrNegativeCost)
	}

	m := New(opts...)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := m.AddCity(fmt.Sprintf(gridNameFmt, r, c), c*spacing, r*spacing); err != nil {
				return nil, err
			}
		}
	}
	cost := float64(spacing)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := fmt.Sprintf(gridNameFmt, r, c)
			if c+1 < cols {
				if err := m.link(u, fmt.Sprintf(gridNameFmt, r, c+1), cost); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := m.link(u, fmt.Sprintf(gridNameFmt, r+1, c), cost); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// Random places n cities named "c0".."c(n-1)" uniformly on a size×size
// square and joins every pair with probability p. Consecutive cities are
// always joined, so every city is reachable from every other one.
//
// A road costs its Manhattan length times a factor drawn from [1,2), which
// keeps StraightLine admissible. The same seed yields the same map.
func Random(n, size int, p float64, seed uint64, opts ...Option) (*Map, error) {
	if n < 2 {
		return nil, fmt.Errorf("Random: n=%d < 2: %w", n, ErrTooFewCities)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Random: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if size < 1 {
		size = 1
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := New(opts...)
	cities := make([]City, n)
	for i := range cities {
		cities[i] = City{Name: fmt.Sprintf(randomNameFmt, i), X: rng.IntN(size), Y: rng.IntN(size)}
		if err := m.AddCity(cities[i].Name, cities[i].X, cities[i].Y); err != nil {
			return nil, err
		}
	}
	cost := func(a, b City) float64 {
		return manhattan(a, b) * (1 + rng.Float64())
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j != i+1 && rng.Float64() >= p {
				continue
			}
			if err := m.link(cities[i].Name, cities[j].Name, cost(cities[i], cities[j])); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// link adds from→to and, on a directed map, to→from as well.
func (m *Map) link(from, to string, cost float64) error {
	if err := m.AddRoad(from, to, cost); err != nil {
		return err
	}
	if m.Directed() {
		return m.AddRoad(to, from, cost)
	}

	return nil
}

func manhattan(a, b City) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return float64(dx + dy)
}
