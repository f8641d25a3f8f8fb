package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// console writes command output. On a terminal, output is colored and
// tables are fitted to the terminal's width.
type console struct {
	w       io.Writer
	width   int // in fixed-width 'en's
	context *uax11.Context
	palette struct {
		traversal, path, stats, note *color.Color
	}
}

var setupGraphemes sync.Once

func newConsole(w io.Writer) *console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	c := &console{
		w:       w,
		width:   80,
		context: uax11.LatinContext,
	}
	c.palette.traversal = color.New(color.FgCyan)
	c.palette.path = color.New(color.FgYellow)
	c.palette.stats = color.New(color.FgGreen)
	c.palette.note = color.New(color.Faint)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 20 {
			c.width = width
		}
		c.context = uax11.ContextFromEnvironment()
	} else {
		c.palette.traversal.DisableColor()
		c.palette.path.DisableColor()
		c.palette.stats.DisableColor()
		c.palette.note.DisableColor()
	}
	tracer().P("console", "width").Debugf("console is %d en wide", c.width)
	return c
}

func (c *console) traversal(s string) {
	c.palette.traversal.Fprintln(c.w, s)
}

func (c *console) stats(format string, args ...interface{}) {
	c.palette.stats.Fprintf(c.w, format+"\n", args...)
}

func (c *console) note(format string, args ...interface{}) {
	c.palette.note.Fprintf(c.w, format+"\n", args...)
}

// row is a line of the node table.
type row struct {
	path    string
	id      uint64
	payload string
}

// table prints rows aligned in columns. Payloads longer than the remaining
// line width are cut.
func (c *console) table(rows []row) {
	pathWidth, maxID := len("PATH"), uint64(0)
	for _, r := range rows {
		if w := c.stringWidth(r.path); w > pathWidth {
			pathWidth = w
		}
		if r.id > maxID {
			maxID = r.id
		}
	}
	idWidth := len(fmt.Sprint(maxID))
	if idWidth < 2 {
		idWidth = 2
	}
	rest := c.width - pathWidth - idWidth - 4
	if rest < 8 {
		rest = 8
	}
	fmt.Fprintf(c.w, "%s  %*s  %s\n", pad("PATH", pathWidth, 4), idWidth, "ID", "PAYLOAD")
	for _, r := range rows {
		c.palette.path.Fprint(c.w, pad(r.path, pathWidth, c.stringWidth(r.path)))
		fmt.Fprintf(c.w, "  %*d  %s\n", idWidth, r.id, c.fit(r.payload, rest))
	}
}

func (c *console) stringWidth(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), c.context)
}

// fit cuts s to at most width en's, not splitting graphemes.
func (c *console) fit(s string, width int) string {
	if c.stringWidth(s) <= width {
		return s
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := uax11.StringWidth(grapheme.StringFromString(g), c.context)
		if used+w > width-1 {
			break
		}
		used += w
		b.WriteString(g)
	}
	b.WriteString("…")
	return b.String()
}

func pad(s string, width, have int) string {
	if have >= width {
		return s
	}
	return s + strings.Repeat(" ", width-have)
}
