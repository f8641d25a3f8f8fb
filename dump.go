package bintree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// DefaultDumpPath is the file Dump writes to.
const DefaultDumpPath = "dump.dot"

// MaxNodeDataSize limits the payload label of a node in a dump. Labels are
// cut to at most MaxNodeDataSize-1 bytes, never splitting a grapheme.
const MaxNodeDataSize = 256

// DumpOptions control the diagnostic dump.
type DumpOptions struct {
	ParentEdges bool // draw an edge from every child back to its parent
}

// Dump writes the shape of t in Graphviz DOT format to DefaultDumpPath.
//
// Use
//
//	dot -Tsvg dump.dot -o tree.svg
//
// to render it.
func (t *Tree[T]) Dump(cd CallData) error {
	return t.DumpFile(DefaultDumpPath, DumpOptions{}, cd)
}

// DumpFile writes the shape of t in Graphviz DOT format to the file at path.
// The file is replaced atomically: either the complete dump becomes visible
// or the previous content (if any) stays untouched. Failures are flagged as
// LogError.
func (t *Tree[T]) DumpFile(path string, opts DumpOptions, cd CallData) error {
	if t == nil {
		return NullTree
	}
	buf, errs := t.dot(opts)
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		tracer().P("caller", cd).Errorf("dump: %v", err)
		errs |= LogError
	} else {
		tracer().P("caller", cd).Infof("dumped %d nodes to %s", t.live, path)
	}
	return t.record(errs).asError()
}

// DumpTo writes the shape of t in Graphviz DOT format to w. The dump is
// assembled in memory and written with a single call to w.
func (t *Tree[T]) DumpTo(w io.Writer, opts DumpOptions) error {
	if t == nil {
		return NullTree
	}
	if w == nil {
		return LogError
	}
	buf, errs := t.dot(opts)
	if _, err := w.Write(buf.Bytes()); err != nil {
		tracer().Errorf("dump: %v", err)
		errs |= LogError
	}
	return t.record(errs).asError()
}

// dot renders the complete dump. Payloads which cannot be formatted are
// labeled "?" and flagged as LogError.
func (t *Tree[T]) dot(opts DumpOptions) (*bytes.Buffer, TreeError) {
	d := dumper[T]{
		buf:    &bytes.Buffer{},
		opts:   opts,
		format: t.formatter(),
	}
	d.buf.Grow(256 + t.live*192)
	fmt.Fprintf(d.buf, "digraph {\n\tbgcolor=%q\n", BackgroundColor)
	if t.root != nil {
		d.node(t.root)
	}
	d.buf.WriteString("}\n")
	return d.buf, d.errs
}

type dumper[T any] struct {
	buf    *bytes.Buffer
	opts   DumpOptions
	format Formatter[T]
	label  bytes.Buffer
	errs   TreeError
}

// node emits the declaration of n and its edges, then descends, in pre-order.
func (d *dumper[T]) node(n *Node[T]) {
	fmt.Fprintf(d.buf,
		"\t%d [style=\"filled,rounded\" fillcolor=%q shape=\"record\" color=%q label=\"{%s | {<left> left | <right> right}}\"];\n",
		n.id, NodeColor, NodeOutlineColor, d.labelFor(n))
	if d.opts.ParentEdges && n.parent != nil {
		fmt.Fprintf(d.buf, "\t%d -> %d [color=%q];\n", n.id, n.parent.id, PrevConnectionColor)
	}
	if n.left != nil {
		fmt.Fprintf(d.buf, "\t%d:left -> %d [color=%q];\n", n.id, n.left.id, NextConnectionColor)
		d.node(n.left)
	}
	if n.right != nil {
		fmt.Fprintf(d.buf, "\t%d:right -> %d [color=%q];\n", n.id, n.right.id, NextConnectionColor)
		d.node(n.right)
	}
}

func (d *dumper[T]) labelFor(n *Node[T]) string {
	d.label.Reset()
	if err := d.format.Format(&d.label, n.data); err != nil {
		tracer().Debugf("dump: cannot format payload of node #%d: %v", n.id, err)
		d.errs |= LogError
		return "?"
	}
	return recordLabel(d.label.String(), MaxNodeDataSize-1)
}

// --- Record labels ---------------------------------------------------------

var setupGraphemes sync.Once

// recordLabel escapes the characters special to DOT record labels and cuts
// the result to at most limit bytes at a grapheme boundary.
func recordLabel(s string, limit int) string {
	if isPlain(s) && len(s) <= limit {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	for i := 0; i < gstr.Len(); i++ {
		g := escapeRecord(gstr.Nth(i))
		if b.Len()+len(g) > limit {
			break
		}
		b.WriteString(g)
	}
	return b.String()
}

const recordSpecials = "{}|<>\"\\"

func isPlain(s string) bool {
	return !strings.ContainsAny(s, recordSpecials+"\n\r")
}

func escapeRecord(g string) string {
	if isPlain(g) {
		return g
	}
	var b strings.Builder
	for _, r := range g {
		switch {
		case r == '\n' || r == '\r':
			b.WriteString(`\n`)
		case strings.ContainsRune(recordSpecials, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// to path.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0o644)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
