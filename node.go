package bintree

// Direction selects an edge of a node.
type Direction uint8

// Directions, as bit flags. Only Left and Right name child slots.
const (
	NoEdge Direction = 0
	Left   Direction = 1 << 0
	Right  Direction = 1 << 1
	Parent Direction = 1 << 2
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Parent:
		return "parent"
	case NoEdge:
		return "none"
	}
	return "invalid"
}

// Node is a single cell of a tree. Left and right children are owned by the
// node; the parent link is a back-reference and never owns anything.
//
// Nodes are created exclusively by a Tree (Init, Attach). A node released by
// DetachAndDestroy or Destroy is rejected by further tree operations.
type Node[T any] struct {
	left, right *Node[T]
	parent      *Node[T]
	id          uint64 // stable per-tree identity, assigned on creation
	released    bool
	data        T
}

// ID returns the identifier the owning tree assigned on creation.
// IDs start at 1 and are never reused within a tree's lifetime.
func (n *Node[T]) ID() uint64 {
	if n == nil {
		return 0
	}
	return n.id
}

// Data returns the payload of n.
func (n *Node[T]) Data() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.data
}

// SetData replaces the payload of n.
func (n *Node[T]) SetData(data T) {
	if n == nil {
		return
	}
	n.data = data
}

// Left returns the left child or nil.
func (n *Node[T]) Left() *Node[T] {
	return NextNode(n, Left)
}

// Right returns the right child or nil.
func (n *Node[T]) Right() *Node[T] {
	return NextNode(n, Right)
}

// Parent returns the parent node or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return NextNode(n, Parent)
}

// IsLeaf is true for nodes without children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Next is a method variant of NextNode.
func (n *Node[T]) Next(direction Direction) *Node[T] {
	return NextNode(n, direction)
}

// NextNode returns the node reached from n by following direction.
// It returns nil if n is nil, the slot is empty, or direction does not name
// exactly one edge.
func NextNode[T any](n *Node[T], direction Direction) *Node[T] {
	if n == nil {
		return nil
	}
	switch direction {
	case Left:
		return n.left
	case Right:
		return n.right
	case Parent:
		return n.parent
	}
	return nil
}

// slot returns a reference to the child slot for direction, or nil if
// direction is not a child direction.
func (n *Node[T]) slot(direction Direction) **Node[T] {
	switch direction {
	case Left:
		return &n.left
	case Right:
		return &n.right
	}
	return nil
}

// release cuts all links of n and marks it unusable.
func (n *Node[T]) release() {
	n.left, n.right, n.parent = nil, nil, nil
	n.released = true
	var zero T
	n.data = zero
}
