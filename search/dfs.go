package search

// DFS runs depth-first graph search on p.
//
// The frontier is a LIFO stack seeded with the root. A state is marked visited
// when its node is generated (check before push), so no state is ever pushed
// twice and the search terminates on cyclic state graphs. The most recently
// pushed action branch is explored first. The returned solution is not
// guaranteed to be cost-optimal.
//
// Returns ErrNilProblem or ErrOptionViolation for invalid input; otherwise the
// Result, together with ErrExpansionLimit, ErrNegativeStepCost, a context error
// or a wrapped OnExpand error if the run was aborted.
func DFS[S, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	r, err := newRunner(StrategyDFS, p, opts)
	if err != nil {
		return nil, err
	}
	r.begin()

	// Seed stack with the root, marked as generated and visited
	root := NewRoot[S, A](p.InitialState())
	rootKey := r.key(root.State)
	r.mark(rootKey)
	r.generated(root, rootKey)
	st := newStack[*Node[S, A]]()
	st.push(root)

	for !st.empty() {
		if err = r.step(); err != nil {
			return r.finish(err)
		}
		node := st.pop()
		if err = r.expand(node, r.key(node.State)); err != nil {
			return r.finish(err)
		}
		if p.GoalTest(node.State) {
			r.solve(node)
			break
		}
		for _, act := range p.Actions(node.State) {
			state, cost, serr := r.successor(node, act)
			if serr != nil {
				return r.finish(serr)
			}
			key := r.key(state)
			if r.seen(key) || !r.admit(cost) {
				continue
			}
			r.mark(key)
			next := NewNode(act, node, state, cost, nil, nil)
			r.generated(next, key)
			st.push(next)
		}
	}

	return r.finish(nil)
}
