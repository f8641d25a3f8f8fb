package bintree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestVerifySoundTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, _ := build(t)
	if e := tree.Verify(); e != NoErrors {
		t.Errorf("expected no errors, have %v", e)
	}
}

func TestVerifyUninitializedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New[int]()
	if e := tree.Verify(); e != NullRoot {
		t.Errorf("expected NullRoot, have %v", e)
	}
	if tree.Errors() != NullRoot {
		t.Errorf("expected NullRoot to be recorded, have %v", tree.Errors())
	}
}

func TestVerifyBrokenBackReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, nodes := build(t)
	nodes[5].parent = nodes[1] // #6 is owned by #5
	if e := tree.Verify(); e != InconsistentLink {
		t.Fatalf("expected InconsistentLink, have %v", e)
	}
	nodes[5].parent = nodes[4]
	if e := tree.Verify(); !e.Has(InconsistentLink) {
		t.Errorf("expected repaired tree to keep its history, have %v", e)
	}
	if _, err := tree.Attach(nodes[5], Left, Here()); err == nil {
		t.Errorf("expected unsound tree to refuse attach")
	}
}

func TestVerifyRootWithParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, nodes := build(t)
	tree.Root().parent = nodes[3]
	if e := tree.Verify(); !e.Has(InconsistentLink) {
		t.Errorf("expected InconsistentLink, have %v", e)
	}
}
