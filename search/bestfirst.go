package search

// BestFirst runs greedy best-first graph search on p, always expanding the
// frontier node with the smallest h(state, p.GoalState()).
//
// Visited states are marked at pop time (as in BFS). Children carry the
// heuristic in H and leave G nil. Because accumulated path cost is ignored,
// the solution is not cost-optimal even with an admissible h.
//
// Returns ErrNilHeuristic when h is nil; other errors are the same as for DFS.
func BestFirst[S, A any](p Problem[S, A], h Heuristic[S], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	r, err := newRunner(StrategyBestFirst, p, opts)
	if err != nil {
		return nil, err
	}
	r.begin()

	goal := p.GoalState()
	estimate := func(state S) *float64 { return ptr(h(state, goal)) }

	root := NewNode[S, A](*new(A), nil, p.InitialState(), 0, nil, estimate(p.InitialState()))
	r.generated(root, r.key(root.State))
	pq := newPriorityQueue(func(n *Node[S, A]) float64 { return n.HValue() })
	pq.push(root)

	return r.expandAtPop(pq, func(parent *Node[S, A], act A, state S, cost float64) *Node[S, A] {
		return NewNode(act, parent, state, cost, nil, estimate(state))
	})
}
