package search

// AStar runs A* graph search on p, expanding the frontier node with the
// smallest f = g + h, where g(n, a) = n.Depth + StepCost(n.State, a) and
// h = h(state, p.GoalState()). Children carry Depth == G.
//
// Visited states are marked at pop time. The solution is cost-optimal when h
// is admissible and consistent; an admissible but inconsistent h may miss a
// cheaper path to a state that was already expanded.
//
// Returns ErrNilHeuristic when h is nil; other errors are the same as for DFS.
func AStar[S, A any](p Problem[S, A], h Heuristic[S], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	r, err := newRunner(StrategyAStar, p, opts)
	if err != nil {
		return nil, err
	}
	r.begin()

	goal := p.GoalState()
	initial := p.InitialState()
	root := NewNode[S, A](*new(A), nil, initial, 0, ptr(0), ptr(h(initial, goal)))
	r.generated(root, r.key(root.State))
	pq := newPriorityQueue(func(n *Node[S, A]) float64 { return n.F() })
	pq.push(root)

	return r.expandAtPop(pq, func(parent *Node[S, A], act A, state S, g float64) *Node[S, A] {
		return NewNode(act, parent, state, g, ptr(g), ptr(h(state, goal)))
	})
}
