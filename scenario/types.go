// Package scenario loads problem instances from YAML files and solves them
// with package search.
//
// A scenario names its kind (grid, roadmap or tetromino) and carries the
// matching body:
//
//	name: valley
//	kind: grid
//	strategy: astar
//	grid:
//	  conn: 4
//	  rows:
//	    - [1, 9, 1]
//	    - [1, 9, 1]
//	    - [1, 1, 1]
//	  start: {x: 0, y: 0}
//	  goal: {x: 2, y: 0}
package scenario

import (
	"errors"
)

// Sentinel errors for scenario loading and solving.
var (
	// ErrUnknownKind indicates a kind other than grid, roadmap or tetromino.
	ErrUnknownKind = errors.New("scenario: unknown kind")
	// ErrMissingBody indicates that the body for the declared kind is absent.
	ErrMissingBody = errors.New("scenario: missing body for kind")
	// ErrUnknownHeuristic indicates an unsupported heuristic name for the kind.
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")
	// ErrNotFound indicates a builtin scenario name that does not exist.
	ErrNotFound = errors.New("scenario: not found")
)

// Scenario kinds.
const (
	KindGrid      = "grid"
	KindRoadmap   = "roadmap"
	KindTetromino = "tetromino"
)

// Heuristic names. HeuristicDefault picks the domain's admissible estimate.
const (
	HeuristicDefault    = "default"
	HeuristicManhattan  = "manhattan"
	HeuristicAdmissible = "admissible"
	HeuristicZero       = "zero"
)

// Scenario is one problem instance.
type Scenario struct {
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description,omitempty"`
	Kind          string         `yaml:"kind"`
	Strategy      string         `yaml:"strategy,omitempty"`
	Heuristic     string         `yaml:"heuristic,omitempty"`
	MaxExpansions int            `yaml:"max_expansions,omitempty"`
	Grid          *GridSpec      `yaml:"grid,omitempty"`
	Roadmap       *RoadmapSpec   `yaml:"roadmap,omitempty"`
	Tetromino     *TetrominoSpec `yaml:"tetromino,omitempty"`
}

// Point is an integer coordinate pair.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GridSpec describes a gridgraph problem.
type GridSpec struct {
	Conn          int     `yaml:"conn,omitempty"` // 4 (default) or 8
	LandThreshold int     `yaml:"land_threshold,omitempty"`
	Rows          [][]int `yaml:"rows"`
	Start         Point   `yaml:"start"`
	Goal          Point   `yaml:"goal"`
}

// CitySpec is one roadmap city.
type CitySpec struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// RoadSpec is one roadmap road.
type RoadSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// RoadmapSpec describes a roadmap problem.
type RoadmapSpec struct {
	Directed bool       `yaml:"directed,omitempty"`
	Cities   []CitySpec `yaml:"cities"`
	Roads    []RoadSpec `yaml:"roads"`
	From     string     `yaml:"from"`
	To       string     `yaml:"to"`
}

// PlacementSpec is a tetromino rotation and position.
type PlacementSpec struct {
	Rotation int `yaml:"rotation,omitempty"`
	X        int `yaml:"x"`
	Y        int `yaml:"y"`
}

// TetrominoSpec describes a tetromino puzzle.
type TetrominoSpec struct {
	Board []string      `yaml:"board"`
	Piece string        `yaml:"piece"`
	Start PlacementSpec `yaml:"start"`
	Goal  PlacementSpec `yaml:"goal"`
}
