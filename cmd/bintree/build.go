package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/bintree"
	"github.com/spf13/cobra"
)

func newBuildCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] PATH=VALUE...",
		Short: "Build a tree from node specs and print its traversal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(cmd, args)
		},
	}
	flags := cmd.Flags()
	flags.String("order", "prefix", "traversal `order` (prefix, infix or postfix)")
	flags.String("dump", "", "write a Graphviz dump to `file`")
	flags.Bool("parents", false, "draw parent links in the dump")
	flags.Bool("hex", false, "format payloads as hex")
	flags.Bool("list", false, "list the nodes of the tree")
	flags.Bool("stats", false, "report node allocations")
	return cmd
}

func (a *app) build(cmd *cobra.Command, args []string) error {
	order, err := bintree.ParsePrintOrder(a.setting(cmd, "order", "bintree.order"))
	if err != nil {
		return err
	}
	specs := make([]nodeSpec, 0, len(args))
	for _, arg := range args {
		spec, err := parseSpec(arg)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}
	format := bintree.DefaultFormatter[string]()
	if hex, _ := cmd.Flags().GetBool("hex"); hex {
		format = bintree.HexFormatter[string]()
	}
	alloc := &bintree.CountingAllocator[string]{}
	tree, err := buildTree(specs,
		bintree.WithAllocator[string](alloc),
		bintree.WithFormatter(format))
	if err != nil {
		tree.Destroy()
		return err
	}
	con := newConsole(cmd.OutOrStdout())
	var out strings.Builder
	if err = tree.Print(order, &out, bintree.Here()); err != nil {
		tree.Destroy()
		return fmt.Errorf("printing tree: %w", err)
	}
	con.traversal(out.String())
	if list, _ := cmd.Flags().GetBool("list"); list {
		var rows []row
		walk(tree.Root(), "", func(path string, n *bintree.Node[string]) {
			if path == "" {
				path = "."
			}
			var payload strings.Builder
			format.Format(&payload, n.Data())
			rows = append(rows, row{path: path, id: n.ID(), payload: payload.String()})
		})
		con.table(rows)
	}
	if path := a.setting(cmd, "dump", "bintree.dump"); path != "" {
		parents, _ := cmd.Flags().GetBool("parents")
		if err = tree.DumpFile(path, bintree.DumpOptions{ParentEdges: parents}, bintree.Here()); err != nil {
			tree.Destroy()
			return fmt.Errorf("dumping tree: %w", err)
		}
		con.note("wrote %s", path)
	}
	err = tree.Destroy()
	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		con.stats("%s", alloc)
	}
	return err
}

// --- Node specs ------------------------------------------------------------

// nodeSpec denotes a node by its path from the root, and its payload.
type nodeSpec struct {
	path  string // over {L, R}, empty for the root
	value string
}

func parseSpec(arg string) (nodeSpec, error) {
	path, value, ok := strings.Cut(arg, "=")
	if !ok {
		return nodeSpec{}, fmt.Errorf("node spec %q: missing '='", arg)
	}
	path = strings.ToUpper(strings.TrimSpace(path))
	if path == "." {
		path = ""
	}
	for _, r := range path {
		if r != 'L' && r != 'R' {
			return nodeSpec{}, fmt.Errorf("node spec %q: path may contain only L and R", arg)
		}
	}
	return nodeSpec{path: path, value: value}, nil
}

func direction(step byte) bintree.Direction {
	if step == 'L' {
		return bintree.Left
	}
	return bintree.Right
}

// lookup follows path from the root of tree.
func lookup(tree *bintree.Tree[string], path string) *bintree.Node[string] {
	n := tree.Root()
	for i := 0; i < len(path) && n != nil; i++ {
		n = bintree.NextNode(n, direction(path[i]))
	}
	return n
}

// buildTree creates a tree with a node for every spec. Specs for the same
// path overwrite each other, the last one wins.
func buildTree(specs []nodeSpec, opts ...bintree.Option[string]) (*bintree.Tree[string], error) {
	tree := bintree.New(opts...)
	if err := tree.Init(bintree.Here()); err != nil {
		return tree, fmt.Errorf("initializing tree: %w", err)
	}
	sort.SliceStable(specs, func(i, j int) bool {
		return len(specs[i].path) < len(specs[j].path)
	})
	for _, spec := range specs {
		if n := lookup(tree, spec.path); n != nil {
			n.SetData(spec.value)
			continue
		}
		last := len(spec.path) - 1
		parent := lookup(tree, spec.path[:last])
		if parent == nil {
			return tree, fmt.Errorf("node spec %s: parent %q is missing", spec.path, spec.path[:last])
		}
		n, err := tree.Attach(parent, direction(spec.path[last]), bintree.Here())
		if err != nil {
			return tree, fmt.Errorf("node spec %s: %w", spec.path, err)
		}
		n.SetData(spec.value)
		tracer().Debugf("node %s = %q", spec.path, spec.value)
	}
	return tree, nil
}

// walk visits the nodes below n in pre-order, together with their paths.
func walk(n *bintree.Node[string], path string, visit func(string, *bintree.Node[string])) {
	if n == nil {
		return
	}
	visit(path, n)
	walk(n.Left(), path+"L", visit)
	walk(n.Right(), path+"R", visit)
}
