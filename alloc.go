package bintree

import (
	"errors"
	"fmt"
)

// Allocator is the facility a tree uses to obtain and return nodes.
//
// Alloc must return a zero-valued node or an error. Free is called exactly
// once for every node the tree gives up, after the tree has cut the node's
// links; children are always freed before their parent.
type Allocator[T any] interface {
	Alloc() (*Node[T], error)
	Free(*Node[T]) error
}

// ErrOutOfNodes is returned by allocators which refuse to hand out a node.
var ErrOutOfNodes = errors.New("bintree: node allocation failed")

// HeapAllocator allocates nodes from the Go heap. It is the default
// allocator of a tree.
type HeapAllocator[T any] struct{}

// Alloc is part of interface Allocator.
func (HeapAllocator[T]) Alloc() (*Node[T], error) {
	return &Node[T]{}, nil
}

// Free is part of interface Allocator. Released nodes are left to the
// garbage collector.
func (HeapAllocator[T]) Free(n *Node[T]) error {
	if n == nil {
		return NullNode
	}
	return nil
}

var _ Allocator[int] = HeapAllocator[int]{}

// --- Instrumentation -------------------------------------------------------

// CountingAllocator wraps another allocator and keeps book of allocations
// and releases. It is meant for instrumentation and for fault injection.
//
// A CountingAllocator created by
//
//	&CountingAllocator[T]{}
//
// is valid and uses a HeapAllocator underneath.
type CountingAllocator[T any] struct {
	Base Allocator[T] // underlying allocator; nil means HeapAllocator

	// FailAllocAt lets the n-th call to Alloc (1-based) and all later calls
	// fail. 0 disables alloc failures.
	FailAllocAt int
	// FailFree, if set, decides for a node about to be freed whether Free
	// should fail.
	FailFree func(*Node[T]) bool

	calls       int
	allocs      int
	frees       int
	doubleFrees int
	freed       map[*Node[T]]bool
}

func (ca *CountingAllocator[T]) base() Allocator[T] {
	if ca.Base == nil {
		return HeapAllocator[T]{}
	}
	return ca.Base
}

// Alloc is part of interface Allocator.
func (ca *CountingAllocator[T]) Alloc() (*Node[T], error) {
	ca.calls++
	if ca.FailAllocAt > 0 && ca.calls >= ca.FailAllocAt {
		return nil, fmt.Errorf("allocation #%d refused: %w", ca.calls, ErrOutOfNodes)
	}
	n, err := ca.base().Alloc()
	if err != nil {
		return nil, err
	}
	ca.allocs++
	return n, nil
}

// Free is part of interface Allocator.
func (ca *CountingAllocator[T]) Free(n *Node[T]) error {
	if n == nil {
		return NullNode
	}
	if ca.FailFree != nil && ca.FailFree(n) {
		return fmt.Errorf("free of node #%d refused", n.ID())
	}
	if ca.freed == nil {
		ca.freed = make(map[*Node[T]]bool)
	}
	if ca.freed[n] {
		ca.doubleFrees++
		return NullNode
	}
	if err := ca.base().Free(n); err != nil {
		return err
	}
	ca.freed[n] = true
	ca.frees++
	return nil
}

// Allocs returns the number of successful allocations.
func (ca *CountingAllocator[T]) Allocs() int { return ca.allocs }

// Frees returns the number of successful releases.
func (ca *CountingAllocator[T]) Frees() int { return ca.frees }

// DoubleFrees returns the number of attempts to free a node twice.
func (ca *CountingAllocator[T]) DoubleFrees() int { return ca.doubleFrees }

// Live returns the number of nodes allocated but not yet freed.
func (ca *CountingAllocator[T]) Live() int { return ca.allocs - ca.frees }

func (ca *CountingAllocator[T]) String() string {
	return fmt.Sprintf("allocs=%d frees=%d live=%d double-frees=%d",
		ca.allocs, ca.frees, ca.Live(), ca.doubleFrees)
}

var _ Allocator[int] = &CountingAllocator[int]{}

// freeError maps an allocator's Free error onto the error mask.
func freeError(err error) TreeError {
	if err == nil {
		return NoErrors
	}
	var te TreeError
	if errors.As(err, &te) {
		return te
	}
	return NullNode
}
