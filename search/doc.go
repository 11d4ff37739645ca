// Package search provides uninformed and informed graph search over a state
// space described by a caller-supplied Problem.
//
// What
//
//   - Node: one explored point of the search tree (state, parent, action,
//     accumulated cost, optional g and h) with Path reconstruction.
//   - Problem: the contract every strategy depends on (initial and goal state,
//     applicable actions, transition, step cost, goal test, state key).
//   - Four interchangeable strategies, each returning the same Result:
//   - DFS:        LIFO frontier, visited marked when a child is generated.
//   - BFS:        FIFO frontier, visited marked when a node is expanded.
//   - BestFirst:  greedy, min-heap ordered by h.
//   - AStar:      min-heap ordered by f = g + h.
//   - Heuristics over Locator states: ManhattanDistance and its admissible
//     (vertical-only) variant, plus ZeroHeuristic.
//
// Why
//
//   - Puzzle solving, path planning and any deterministic state space where the
//     caller can enumerate actions and their costs.
//   - Side-by-side comparison of strategies through a uniform Result record
//     (Solution, Generated, Expanded, Ramification).
//
// Counting
//
//	The root node counts as generated, so Generated >= Expanded holds for every
//	run and Ramification = Expanded / Generated is always defined. A node popped
//	from the frontier counts as expanded even when its state was already
//	expanded through another path (BFS, BestFirst and AStar keep such
//	duplicates in the frontier).
//
// Optimality
//
//	DFS and BFS are not cost-optimal; BFS returns fewest-actions solutions when
//	all step costs are equal. BestFirst ignores path cost and is never
//	cost-optimal. AStar is cost-optimal when h is admissible and consistent;
//	with an admissible but inconsistent h, marking visited at pop time can miss
//	a cheaper path to an already expanded state.
//
// Complexity (b = branching factor, d = solution depth, m = max depth)
//
//   - DFS:    Time O(b^m), Memory O(b·m) frontier + O(states) visited set.
//   - BFS:    Time O(b^d), Memory O(b^d).
//   - Informed strategies: Time and memory O(b^d) worst case,
//     each frontier operation O(log n).
//
// Usage
//
//	res, err := search.AStar(problem, search.AdmissibleHeuristic[tetromino.State](),
//	    search.WithContext(ctx),
//	    search.WithMaxExpansions(10_000),
//	)
//	if err != nil {
//	    // ErrNilProblem, ErrNilHeuristic, ErrOptionViolation,
//	    // ErrExpansionLimit, ErrNegativeStepCost, ctx.Err() or a hook error
//	}
//	if res.Found {
//	    fmt.Println(res.Solution, res.Cost)
//	}
//
// Options
//
//   - WithContext(ctx):        cooperative cancellation, checked once per iteration.
//   - WithMaxExpansions(n):    stop with ErrExpansionLimit after n expansions.
//   - WithMaxDepth(d):         do not generate children whose path cost exceeds d.
//   - WithOnGenerate(fn):      hook called for every generated node.
//   - WithOnExpand(fn):        hook called for every expanded node; an error aborts.
//   - WithLogger(l):           structured logging through log/slog.
//   - WithObserver(o):         lifecycle observer (metrics, tracing).
//   - WithValidation():        reject negative step costs with ErrNegativeStepCost.
//
// Every invocation owns its frontier, visited set and counters; strategies are
// safe to run concurrently on the same Problem as long as the Problem itself
// is safe for concurrent reads.
package search
