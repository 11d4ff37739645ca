package search

import "fmt"

// Run dispatches to the strategy s. The heuristic h is only consulted by the
// informed strategies and may be nil for DFS and BFS.
func Run[S, A any](s Strategy, p Problem[S, A], h Heuristic[S], opts ...Option) (*Result[A], error) {
	switch s {
	case StrategyDFS:
		return DFS(p, opts...)
	case StrategyBFS:
		return BFS(p, opts...)
	case StrategyBestFirst:
		return BestFirst(p, h, opts...)
	case StrategyAStar:
		return AStar(p, h, opts...)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}
