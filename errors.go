package bintree

import "strings"

// TreeError is a bitmask of error kinds. Kinds compose with bitwise OR, and a
// tree accumulates them over its lifetime (see Tree.Errors).
//
// TreeError implements the error interface. Use errors.Is to test for a
// single kind within a composite mask:
//
//	if errors.Is(err, bintree.NodeAlreadyUsed) { … }
type TreeError uint32

// NoErrors is the empty error mask.
const NoErrors TreeError = 0

const (
	// NullTree is flagged for operations on a nil tree handle.
	NullTree TreeError = 1 << iota
	// NullNode is flagged for a missing (or already released) node handle,
	// and when a node cannot be allocated.
	NullNode
	// NullRoot is flagged when an initialized tree is found without a root.
	NullRoot
	// NodeAlreadyUsed is flagged when attaching to an occupied slot.
	NodeAlreadyUsed
	// OutputError is flagged when traversal output cannot be written.
	OutputError
	// LogError is flagged when a diagnostic dump cannot be produced.
	LogError
	// InconsistentLink is flagged when a parent back-reference does not match
	// the slot owning a node.
	InconsistentLink
)

var errorNames = [...]string{
	"null-tree",
	"null-node",
	"null-root",
	"node-already-used",
	"output-error",
	"log-error",
	"inconsistent-link",
}

func (e TreeError) Error() string {
	if e == NoErrors {
		return "bintree: no errors"
	}
	var names []string
	for i, name := range errorNames {
		if e&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if rest := e &^ (1<<len(errorNames) - 1); rest != 0 {
		names = append(names, "unknown")
	}
	return "bintree: " + strings.Join(names, "|")
}

// Has reports whether all bits of flags are set in e.
func (e TreeError) Has(flags TreeError) bool {
	return flags != NoErrors && e&flags == flags
}

// Is lets errors.Is match a single kind inside a composite mask.
func (e TreeError) Is(target error) bool {
	t, ok := target.(TreeError)
	return ok && e.Has(t)
}

// asError converts a mask to an error, mapping NoErrors to nil.
func (e TreeError) asError() error {
	if e == NoErrors {
		return nil
	}
	return e
}
