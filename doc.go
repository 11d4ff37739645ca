// Package lvsearch is a small workbench for uninformed and informed state-space
// search: depth-first, breadth-first, greedy best-first and A*, run over any
// problem that can describe its states, actions and step costs.
//
// 🚀 What is in the box?
//
//	• search        Problem, Node and Result types, the four strategies,
//	                Manhattan heuristics and plan replay
//	• gridgraph     weighted 2D grids (4- or 8-connectivity) as search
//	                problems, plus connected components
//	• roadmap       named cities joined by weighted roads, with a
//	                straight-line heuristic and map generators
//	• tetromino     moving a falling piece to a target placement on a board
//	• telemetry     Prometheus counters and OpenTelemetry spans per run
//	• scenario      YAML scenario files (and a few embedded ones) solved or
//	                replayed in one call
//	• cmd/lvsearch  the command-line front end
//
// ✨ Every run reports the same counters:
//
//   - Generated: nodes created, the root included
//   - Expanded: nodes whose successors were produced
//   - Ramification: Expanded / Generated, 0 when nothing was generated
//
// Quick example (four-connected grid, cost = value of the entered cell):
//
//	S 9 G        A* goes S S E E N N (cost 6)
//	1 9 1        BFS goes E E (cost 10)
//	1 1 1
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
//	lvsearch compare --builtin valley
package lvsearch
