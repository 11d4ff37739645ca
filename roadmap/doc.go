// Package roadmap models a weighted road network between named cities and
// exposes it as a route-finding search.Problem.
//
// What:
//
//   - Map stores cities with integer coordinates and weighted roads between them.
//   - Roads are undirected by default; WithDirected makes them one-way.
//   - Problem adapts a Map plus origin and destination to search.Problem[string, string].
//   - StraightLine is a Manhattan heuristic over city coordinates.
//   - Grid and Random generate lattice and seeded random maps whose road
//     costs never undercut StraightLine.
//
// Determinism:
//
//   - Cities, Roads and Neighbors return sorted slices, so the order in which
//     strategies consider actions never depends on map iteration.
//
// Concurrency:
//
//   - Map methods take a read or write lock; concurrent searches over the same
//     Map are safe.
//
// Complexity:
//
//   - AddCity: O(1). AddRoad: O(d). Neighbors: O(d). Cities/Roads: O(n log n).
//
// Usage:
//
//	m := roadmap.New()
//	_ = m.AddCity("A", 0, 0)
//	_ = m.AddCity("B", 4, 0)
//	_ = m.AddRoad("A", "B", 4)
//	p, _ := roadmap.NewProblem(m, "A", "B")
//	res, _ := search.AStar[string, string](p, p.StraightLine())
package roadmap
