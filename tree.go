package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an unordered binary tree of nodes carrying payloads of type T.
//
// A tree created by New (or the zero value) is uninitialized; Init creates
// its root node. Further nodes are added with Attach and removed, together
// with their subtrees, by DetachAndDestroy. Destroy releases all nodes.
//
//	Uninitialized --Init--> Initialized <--Attach/DetachAndDestroy--> Modified
//	      ^                                                              |
//	      +------------------------Init----------- Destroyed <--Destroy--+
//
// Tree values are not safe for concurrent use.
type Tree[T any] struct {
	root     *Node[T]
	errors   TreeError // sticky, see Errors()
	creation CallData
	alloc    Allocator[T]
	format   Formatter[T]
	nextID   uint64
	live     int
}

// Option configures a tree at creation time.
type Option[T any] func(*Tree[T])

// WithAllocator sets the allocator used for nodes. The default is a
// HeapAllocator.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(t *Tree[T]) {
		t.alloc = a
	}
}

// WithFormatter sets the payload formatter used by Print and the dumper.
// The default is DefaultFormatter.
func WithFormatter[T any](f Formatter[T]) Option[T] {
	return func(t *Tree[T]) {
		t.format = f
	}
}

// New creates an empty, uninitialized tree.
func New[T any](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree[T]) allocator() Allocator[T] {
	if t.alloc == nil {
		t.alloc = HeapAllocator[T]{}
	}
	return t.alloc
}

func (t *Tree[T]) formatter() Formatter[T] {
	if t.format == nil {
		t.format = DefaultFormatter[T]()
	}
	return t.format
}

// Root returns the root node, or nil for an uninitialized or destroyed tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Errors returns the accumulated error mask of t.
//
// Bits are set whenever a structural violation is detected or a recursive
// sweep (teardown, printing, dumping) fails partway. They are never cleared,
// except by re-initializing the tree with Init.
func (t *Tree[T]) Errors() TreeError {
	if t == nil {
		return NullTree
	}
	return t.errors
}

// Provenance returns the call data recorded by Init.
func (t *Tree[T]) Provenance() CallData {
	if t == nil {
		return CallData{}
	}
	return t.creation
}

// Len returns the number of live nodes of t.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.live
}

// IsInitialized reports whether t currently has a root.
func (t *Tree[T]) IsInitialized() bool {
	return t != nil && t.root != nil
}

// record ORs e into the sticky error mask and returns e.
func (t *Tree[T]) record(e TreeError) TreeError {
	t.errors |= e
	return e
}

// --- Lifecycle -------------------------------------------------------------

// Init creates the root node of t, holding a zero payload, and records cd as
// the tree's provenance.
//
// Init on an already initialized tree destroys all existing nodes first.
// Init clears the error mask; it is the only operation to do so. It fails
// with NullRoot if no root node can be allocated. On success it returns the
// result of verifying the fresh tree.
func (t *Tree[T]) Init(cd CallData) error {
	if t == nil {
		return NullTree
	}
	if t.root != nil {
		tracer().P("caller", cd).Infof("re-initializing tree with %d nodes", t.live)
		_ = t.Destroy()
	}
	t.errors = NoErrors
	root, err := t.newNode()
	if err != nil {
		tracer().P("caller", cd).Errorf("cannot allocate root node: %v", err)
		return t.record(NullRoot)
	}
	t.root = root
	t.creation = cd
	tracer().P("caller", cd).Debugf("tree initialized, root is node #%d", root.id)
	return t.Verify().asError()
}

// Attach creates a new node and installs it as the child of leaf in the
// given direction. It returns the new node.
//
// Attach verifies the tree first; a tree known to be unsound is left
// untouched and its error mask is returned. Directions other than Left and
// Right are ignored: Attach returns (nil, nil) without changing anything.
// If the slot is already occupied, Attach fails with NodeAlreadyUsed.
func (t *Tree[T]) Attach(leaf *Node[T], direction Direction, cd CallData) (*Node[T], error) {
	if t == nil {
		return nil, NullTree
	}
	if leaf == nil || leaf.released {
		return nil, NullNode
	}
	if e := t.Verify(); e != NoErrors {
		return nil, e
	}
	if !t.owns(leaf) {
		tracer().P("caller", cd).Errorf("attach: node #%d is not part of this tree", leaf.id)
		return nil, NullNode
	}
	slot := leaf.slot(direction)
	if slot == nil {
		tracer().P("caller", cd).Debugf("attach: ignoring direction %s", direction)
		return nil, nil
	}
	if *slot != nil {
		tracer().P("caller", cd).Debugf("attach: %s slot of node #%d is in use", direction, leaf.id)
		return nil, NodeAlreadyUsed
	}
	node, err := t.newNode()
	if err != nil {
		tracer().P("caller", cd).Errorf("attach: cannot allocate node: %v", err)
		return nil, t.record(NullNode)
	}
	node.parent = leaf
	*slot = node
	tracer().P("caller", cd).Debugf("attached node #%d as %s child of #%d", node.id, direction, leaf.id)
	return node, nil
}

// DetachAndDestroy removes node from its parent's slot and releases node
// together with its complete subtree, children before parents.
//
// If node's parent does not hold node in either slot, the parent link is
// stale: DetachAndDestroy flags InconsistentLink and destroys nothing.
// Detaching the root leaves the tree empty, as Destroy does.
func (t *Tree[T]) DetachAndDestroy(node *Node[T], cd CallData) error {
	if t == nil {
		return NullTree
	}
	if node == nil || node.released {
		return NullNode
	}
	if e := t.Verify(); e != NoErrors {
		return e
	}
	if !t.owns(node) {
		tracer().P("caller", cd).Errorf("detach: node #%d is not part of this tree", node.id)
		return NullNode
	}
	if parent := node.parent; parent != nil {
		switch node {
		case parent.left:
			parent.left = nil
		case parent.right:
			parent.right = nil
		default:
			tracer().P("caller", cd).Errorf("detach: parent #%d does not own node #%d", parent.id, node.id)
			return t.record(InconsistentLink)
		}
	} else {
		t.root = nil
		t.creation = CallData{}
	}
	tracer().P("caller", cd).Debugf("destroying subtree at node #%d", node.id)
	return t.destroySubtree(node).asError()
}

// Destroy releases every node of t, children before parents, left before
// right, and leaves t without a root. Teardown is best effort: a failure to
// free a node is flagged, but all remaining nodes are still released.
// The returned error holds the failures of this teardown only.
func (t *Tree[T]) Destroy() error {
	if t == nil {
		return NullTree
	}
	var errs TreeError
	if t.root != nil {
		errs = t.destroySubtree(t.root)
	}
	t.root = nil
	t.creation = CallData{}
	tracer().Debugf("tree destroyed, %d nodes left", t.live)
	return errs.asError()
}

func (t *Tree[T]) newNode() (*Node[T], error) {
	n, err := t.allocator().Alloc()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrOutOfNodes
	}
	t.nextID++
	n.id = t.nextID
	n.released = false
	t.live++
	return n, nil
}

// destroySubtree frees n and all of its descendants in post-order.
func (t *Tree[T]) destroySubtree(n *Node[T]) TreeError {
	assert(n != nil, "destroySubtree called with nil node")
	var errs TreeError
	if n.left != nil {
		errs |= t.destroySubtree(n.left)
	}
	if n.right != nil {
		errs |= t.destroySubtree(n.right)
	}
	errs |= t.destroyNode(n)
	return t.record(errs)
}

func (t *Tree[T]) destroyNode(n *Node[T]) TreeError {
	id := n.id
	n.release()
	t.live--
	if err := t.allocator().Free(n); err != nil {
		tracer().Errorf("cannot free node #%d: %v", id, err)
		return freeError(err)
	}
	return NoErrors
}

// owns reports whether n hangs below the root of t.
func (t *Tree[T]) owns(n *Node[T]) bool {
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}
