package bintree

// Verify validates the structural invariants of t and returns the tree's
// accumulated error mask.
//
// A tree without a root is flagged with NullRoot. Otherwise every node is
// visited depth-first, checking that each child's parent link points back at
// the node owning it, and that the root has no parent. Violations are
// flagged with InconsistentLink. Verify never clears bits found earlier; a
// non-zero result means the tree has been found unsound at some point of its
// life, not necessarily by this call.
func (t *Tree[T]) Verify() TreeError {
	if t == nil {
		return NullTree
	}
	if t.root == nil {
		tracer().Debugf("verify: tree has no root")
		return t.record(NullRoot) | t.errors
	}
	if t.root.parent != nil {
		tracer().Errorf("verify: root #%d has a parent link", t.root.id)
		t.record(InconsistentLink)
	}
	t.record(t.checkNode(t.root))
	return t.errors
}

func (t *Tree[T]) checkNode(n *Node[T]) TreeError {
	var errs TreeError
	for _, child := range [...]*Node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			tracer().Errorf("verify: node #%d does not link back to parent #%d", child.id, n.id)
			errs |= InconsistentLink
		}
		errs |= t.checkNode(child)
	}
	return errs
}
