package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/roadmap"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/tetromino"
)

// BuildGrid builds the gridgraph problem of a grid scenario.
func (s *Scenario) BuildGrid() (*gridgraph.Problem, error) {
	if s.Grid == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingBody, KindGrid)
	}
	g := s.Grid
	opts := gridgraph.DefaultGridOptions()
	switch g.Conn {
	case 0, 4:
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("scenario: grid conn must be 4 or 8, got %d", g.Conn)
	}
	if g.LandThreshold != 0 {
		opts.LandThreshold = g.LandThreshold
	}
	gg, err := gridgraph.NewGridGraph(g.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	p, err := gridgraph.NewProblem(gg,
		gridgraph.Cell{X: g.Start.X, Y: g.Start.Y},
		gridgraph.Cell{X: g.Goal.X, Y: g.Goal.Y})
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return p, nil
}

// BuildRoadmap builds the roadmap problem of a roadmap scenario.
func (s *Scenario) BuildRoadmap() (*roadmap.Problem, error) {
	if s.Roadmap == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingBody, KindRoadmap)
	}
	r := s.Roadmap
	var opts []roadmap.Option
	if r.Directed {
		opts = append(opts, roadmap.WithDirected())
	}
	m := roadmap.New(opts...)
	for _, c := range r.Cities {
		if err := m.AddCity(c.Name, c.X, c.Y); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	for _, rd := range r.Roads {
		if err := m.AddRoad(rd.From, rd.To, rd.Cost); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	p, err := roadmap.NewProblem(m, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return p, nil
}

// BuildTetromino builds the puzzle of a tetromino scenario.
func (s *Scenario) BuildTetromino() (*tetromino.Puzzle, error) {
	if s.Tetromino == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingBody, KindTetromino)
	}
	t := s.Tetromino
	kind, err := tetromino.ParseKind(t.Piece)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	board, err := tetromino.NewBoard(t.Board)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	place := func(p PlacementSpec) tetromino.State {
		return tetromino.State{Kind: kind, Rotation: p.Rotation, XPos: p.X, YPos: p.Y}
	}
	pz, err := tetromino.NewPuzzle(board, place(t.Start), place(t.Goal))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return pz, nil
}

// locatorHeuristic resolves a heuristic name for Locator states; def is the
// domain's admissible default.
func locatorHeuristic[S search.Locator](name string, def search.Heuristic[S]) (search.Heuristic[S], error) {
	switch strings.ToLower(name) {
	case "", HeuristicDefault:
		return def, nil
	case HeuristicManhattan:
		return search.ManhattanHeuristic[S](), nil
	case HeuristicAdmissible:
		return search.AdmissibleHeuristic[S](), nil
	case HeuristicZero:
		return search.ZeroHeuristic[S](), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func roadHeuristic(name string, p *roadmap.Problem) (search.Heuristic[string], error) {
	switch strings.ToLower(name) {
	case "", HeuristicDefault, HeuristicManhattan:
		return p.StraightLine(), nil
	case HeuristicZero:
		return search.ZeroHeuristic[string](), nil
	}

	return nil, fmt.Errorf("%w: %q for %s", ErrUnknownHeuristic, name, KindRoadmap)
}
