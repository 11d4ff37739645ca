// Package roadmap defines the Map, City and Road types and sentinel errors
// for the roadmap subpackage of github.com/katalvlaran/lvsearch.
//
// All Map APIs guard their state with a sync.RWMutex, so a fully built map
// can be searched from many goroutines while roads are still being added.
//
// Errors:
//
//	ErrEmptyCity     - city name is the empty string.
//	ErrCityNotFound  - requested city does not exist.
//	ErrDuplicateCity - a city with the same name already exists.
//	ErrNegativeCost  - road cost is negative, NaN or infinite.
//	ErrDuplicateRoad - a road between the same cities already exists.
//	ErrSelfRoad      - road from a city to itself.
//	ErrNilMap        - nil *Map passed to NewProblem.
package roadmap

import (
	"errors"
	"sync"
)

// Sentinel errors for roadmap operations.
var (
	// ErrEmptyCity indicates that the provided city name is empty.
	ErrEmptyCity = errors.New("roadmap: city name is empty")

	// ErrCityNotFound indicates an operation referenced a non-existent city.
	ErrCityNotFound = errors.New("roadmap: city not found")

	// ErrDuplicateCity indicates AddCity was called twice with the same name.
	ErrDuplicateCity = errors.New("roadmap: city already exists")

	// ErrNegativeCost indicates a road cost that is negative or not finite.
	ErrNegativeCost = errors.New("roadmap: road cost must be a finite non-negative number")

	// ErrDuplicateRoad indicates a second road between the same ordered pair.
	ErrDuplicateRoad = errors.New("roadmap: road already exists")

	// ErrSelfRoad indicates a road that starts and ends in the same city.
	ErrSelfRoad = errors.New("roadmap: road from a city to itself")

	// ErrNilMap indicates that a nil *Map was passed to NewProblem.
	ErrNilMap = errors.New("roadmap: map is nil")
)

// City is a named point on the plane.
type City struct {
	Name string
	X, Y int
}

// Position implements search.Locator.
func (c City) Position() (int, int) { return c.X, c.Y }

// Road is a one-way connection. Undirected maps store each road twice.
type Road struct {
	From, To string
	Cost     float64
}

// Option configures a Map before use.
type Option func(m *Map)

// WithDirected makes AddRoad create one-way roads. By default every road can
// be travelled both ways at the same cost.
func WithDirected() Option {
	return func(m *Map) { m.directed = true }
}

// Map is a weighted road network. The zero value is not usable; call New.
type Map struct {
	mu       sync.RWMutex
	directed bool
	cities   map[string]City
	roads    map[string][]Road // outgoing roads, sorted by To
}

// New creates an empty Map configured by opts.
func New(opts ...Option) *Map {
	m := &Map{
		cities: make(map[string]City),
		roads:  make(map[string][]Road),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
