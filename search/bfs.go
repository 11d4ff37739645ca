package search

// BFS runs breadth-first graph search on p.
//
// The frontier is a FIFO queue seeded with the root. A state is marked visited
// when its node is popped, so the same state may sit in the queue more than
// once before its first expansion; such duplicates are not purged. Children
// carry Depth = parent Depth + step cost. When every step cost is equal the
// solution has the fewest actions; otherwise no cost-optimality is guaranteed.
//
// Errors are the same as for DFS.
func BFS[S, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	r, err := newRunner(StrategyBFS, p, opts)
	if err != nil {
		return nil, err
	}
	r.begin()

	root := NewRoot[S, A](p.InitialState())
	r.generated(root, r.key(root.State))
	q := newQueue[*Node[S, A]]()
	q.push(root)

	return r.expandAtPop(q, func(parent *Node[S, A], act A, state S, cost float64) *Node[S, A] {
		return NewNode(act, parent, state, cost, nil, nil)
	})
}
