// Package gridgraph treats a 2D grid of cells as a weighted state space,
// enabling component analysis and path search with package search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Problem adapts a GridGraph plus start and goal cells to search.Problem[Cell, Move].
//
// Why:
//
//   - Game maps: terrain-cost path finding, reachability checks.
//   - Robotics: occupancy grids with traversal costs.
//   - Teaching: compare DFS, BFS, greedy best-first and A* on the same map.
//
// Costs:
//
//   - Entering a land cell costs its value; walls are never entered.
//   - Problem.Heuristic scales Manhattan (Conn4) or Chebyshev (Conn8) distance
//     by the cheapest land value, so it never overestimates.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Problem.Actions:     O(d).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land" (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold below 1.
//   - ErrOutOfBounds, ErrBlockedCell: invalid start or goal for NewProblem.
package gridgraph
