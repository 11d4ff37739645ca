package search

// Node is one point of the search tree. It is never mutated once it has been
// pushed onto a frontier.
//
// Depth is the accumulated path cost from the root (the sum of step costs),
// not an edge count. G and H are nil when a strategy does not use them.
type Node[S, A any] struct {
	State  S
	Parent *Node[S, A] // nil for the root
	Action A           // zero value for the root
	Depth  float64
	G      *float64
	H      *float64
}

// NewNode builds a node without validating any field.
func NewNode[S, A any](action A, parent *Node[S, A], state S, depth float64, g, h *float64) *Node[S, A] {
	return &Node[S, A]{
		State:  state,
		Parent: parent,
		Action: action,
		Depth:  depth,
		G:      g,
		H:      h,
	}
}

// NewRoot builds the root node for state: no parent, no action, zero cost.
func NewRoot[S, A any](state S) *Node[S, A] {
	var none A

	return NewNode[S, A](none, nil, state, 0, nil, nil)
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Len returns the number of actions between the root and n.
func (n *Node[S, A]) Len() int {
	steps := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		steps++
	}

	return steps
}

// Path returns the actions from the root to n, in that order.
// The root yields an empty, non-nil slice. Neither n nor its ancestors are modified.
func (n *Node[S, A]) Path() []A {
	path := make([]A, 0, n.Len())
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		path = append(path, cur.Action)
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// GValue returns *G, or 0 when G is nil.
func (n *Node[S, A]) GValue() float64 { return deref(n.G) }

// HValue returns *H, or 0 when H is nil.
func (n *Node[S, A]) HValue() float64 { return deref(n.H) }

// F returns the A* evaluation g + h (nil fields count as 0).
func (n *Node[S, A]) F() float64 { return deref(n.G) + deref(n.H) }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func ptr(v float64) *float64 { return &v }
