package bintree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// PrintOrder selects where a node's payload is visited relative to its
// children.
type PrintOrder uint8

const (
	Prefix  PrintOrder = iota // payload before children
	Infix                     // payload between left and right child
	Postfix                   // payload after children
)

func (o PrintOrder) String() string {
	switch o {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	}
	return fmt.Sprintf("PrintOrder(%d)", uint8(o))
}

// ParsePrintOrder maps a name to a print order. It accepts the names
// returned by PrintOrder.String, their traversal aliases ("preorder",
// "inorder", "postorder") and short forms ("pre", "in", "post"), in any case.
func ParsePrintOrder(s string) (PrintOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix", "preorder", "pre":
		return Prefix, nil
	case "infix", "inorder", "in":
		return Infix, nil
	case "postfix", "postorder", "post":
		return Postfix, nil
	}
	return Prefix, fmt.Errorf("bintree: unknown print order %q", s)
}

// --- Payload formatting ----------------------------------------------------

// Formatter renders a payload to a writer. Printing and dumping use the
// formatter of the tree (see WithFormatter).
type Formatter[T any] interface {
	Format(w io.Writer, data T) error
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc[T any] func(w io.Writer, data T) error

// Format is part of interface Formatter.
func (f FormatterFunc[T]) Format(w io.Writer, data T) error {
	return f(w, data)
}

// DefaultFormatter formats payloads with verb %v.
func DefaultFormatter[T any]() Formatter[T] {
	return verbFormatter[T]("%v")
}

// HexFormatter formats payloads with verb %x.
func HexFormatter[T any]() Formatter[T] {
	return verbFormatter[T]("%x")
}

func verbFormatter[T any](verb string) Formatter[T] {
	return FormatterFunc[T](func(w io.Writer, data T) error {
		_, err := fmt.Fprintf(w, verb, data)
		return err
	})
}

// --- Traversal -------------------------------------------------------------

// Print writes a bracketed traversal of t to w. Every subtree is enclosed in
// "( " and " )", and the payload and child subtrees within a bracket are
// separated by single spaces, in the sequence demanded by order. A root R
// with a single left child L prints as
//
//	( R ( L ) )
//
// for Prefix order. Absent children produce no output.
//
// Print verifies the tree first. A failure to format or write a payload is
// flagged as OutputError, but does not stop the traversal; the returned
// error holds the failures of this call.
func (t *Tree[T]) Print(order PrintOrder, w io.Writer, cd CallData) error {
	if t == nil {
		return NullTree
	}
	if e := t.Verify(); e != NoErrors {
		return e
	}
	if w == nil || order > Postfix {
		tracer().P("caller", cd).Errorf("print: unusable sink or order %s", order)
		return OutputError
	}
	p := printer[T]{w: w, order: order, format: t.formatter()}
	p.subtree(t.root)
	if p.errs != NoErrors {
		tracer().P("caller", cd).Errorf("print: %d write failures", p.failures)
	}
	return t.record(p.errs).asError()
}

type printer[T any] struct {
	w        io.Writer
	order    PrintOrder
	format   Formatter[T]
	scratch  bytes.Buffer
	errs     TreeError
	failures int
}

func (p *printer[T]) subtree(n *Node[T]) {
	p.write("(")
	if p.order == Prefix {
		p.payload(n)
	}
	if n.left != nil {
		p.write(" ")
		p.subtree(n.left)
	}
	if p.order == Infix {
		p.payload(n)
	}
	if n.right != nil {
		p.write(" ")
		p.subtree(n.right)
	}
	if p.order == Postfix {
		p.payload(n)
	}
	p.write(" )")
}

// payload formats the payload of n and, on success, writes it.
func (p *printer[T]) payload(n *Node[T]) {
	p.scratch.Reset()
	if err := p.format.Format(&p.scratch, n.data); err != nil {
		p.fail(err)
		return
	}
	p.write(" ")
	if _, err := p.w.Write(p.scratch.Bytes()); err != nil {
		p.fail(err)
	}
}

func (p *printer[T]) write(s string) {
	if _, err := io.WriteString(p.w, s); err != nil {
		p.fail(err)
	}
}

func (p *printer[T]) fail(err error) {
	if p.failures == 0 {
		tracer().Debugf("print: %v", err)
	}
	p.failures++
	p.errs |= OutputError
}
