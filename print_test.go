package bintree

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrintRootWithLeftChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New[string]()
	_ = tree.Init(Here())
	tree.Root().SetData("R")
	l, err := tree.Attach(tree.Root(), Left, Here())
	if err != nil {
		t.Fatal(err)
	}
	l.SetData("L")
	for _, x := range []struct {
		order PrintOrder
		out   string
	}{
		{Prefix, "( R ( L ) )"},
		{Infix, "( ( L ) R )"},
		{Postfix, "( ( L ) R )"},
	} {
		var b strings.Builder
		if err := tree.Print(x.order, &b, Here()); err != nil {
			t.Fatalf("%s: unexpected error: %v", x.order, err)
		}
		if b.String() != x.out {
			t.Errorf("%s: expected %q, have %q", x.order, x.out, b.String())
		}
	}
}

func TestPrintOrders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, _ := build(t)
	for _, x := range []struct {
		order PrintOrder
		out   string
	}{
		{Prefix, "( 1 ( 2 ( 3 ) ( 4 ) ) ( 5 ( 6 ) ) )"},
		{Infix, "( ( ( 3 ) 2 ( 4 ) ) 1 ( ( 6 ) 5 ) )"},
		{Postfix, "( ( ( 3 ) ( 4 ) 2 ) ( ( 6 ) 5 ) 1 )"},
	} {
		var b strings.Builder
		if err := tree.Print(x.order, &b, Here()); err != nil {
			t.Fatalf("%s: unexpected error: %v", x.order, err)
		}
		if b.String() != x.out {
			t.Errorf("%s: expected %q, have %q", x.order, x.out, b.String())
		}
	}
}

func TestPrintHexFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New(WithFormatter(HexFormatter[int]()))
	_ = tree.Init(Here())
	tree.Root().SetData(255)
	var b strings.Builder
	if err := tree.Print(Prefix, &b, Here()); err != nil {
		t.Fatal(err)
	}
	if b.String() != "( ff )" {
		t.Errorf("expected hex payload, have %q", b.String())
	}
}

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("sink closed")
}

func TestPrintContinuesAfterWriteFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, _ := build(t)
	w := &failingWriter{}
	err := tree.Print(Prefix, w, Here())
	if !errors.Is(err, OutputError) {
		t.Fatalf("expected OutputError, have %v", err)
	}
	// 6 nodes with "(", " ", payload and " )" each, plus 5 child separators
	if w.calls != 29 {
		t.Errorf("expected traversal to continue, have %d writes", w.calls)
	}
	if !tree.Errors().Has(OutputError) {
		t.Errorf("expected OutputError to be recorded")
	}
}

func TestPrintFormatterFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	format := FormatterFunc[int](func(w io.Writer, data int) error {
		if data == 2 {
			return errors.New("cannot format 2")
		}
		return DefaultFormatter[int]().Format(w, data)
	})
	tree, _ := build(t, WithFormatter[int](format))
	var b strings.Builder
	if err := tree.Print(Postfix, &b, Here()); !errors.Is(err, OutputError) {
		t.Fatalf("expected OutputError, have %v", err)
	}
	if b.String() != "( ( ( 3 ) ( 4 ) ) ( ( 6 ) 5 ) 1 )" {
		t.Errorf("expected all other payloads to be printed, have %q", b.String())
	}
}

func TestPrintUnusableSink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree, _ := build(t)
	if err := tree.Print(Prefix, nil, Here()); !errors.Is(err, OutputError) {
		t.Errorf("expected OutputError for nil sink, have %v", err)
	}
	if tree.Errors() != NoErrors {
		t.Errorf("expected nil sink not to be recorded, have %v", tree.Errors())
	}
	if err := New[int]().Print(Prefix, io.Discard, Here()); !errors.Is(err, NullRoot) {
		t.Errorf("expected NullRoot for uninitialized tree, have %v", err)
	}
}

func TestParsePrintOrder(t *testing.T) {
	for s, o := range map[string]PrintOrder{
		"prefix": Prefix, "PreOrder": Prefix, "in": Infix,
		" infix ": Infix, "postfix": Postfix, "post": Postfix,
	} {
		order, err := ParsePrintOrder(s)
		if err != nil || order != o {
			t.Errorf("%q: expected %s, have %s (%v)", s, o, order, err)
		}
	}
	if _, err := ParsePrintOrder("levelorder"); err == nil {
		t.Errorf("expected error for unknown order")
	}
	if Infix.String() != "infix" {
		t.Errorf("unexpected name %q", Infix.String())
	}
}
