package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/bintree"
	"github.com/spf13/cobra"
)

func newDemoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [--out FILE]",
		Short: "Create a root with a left child and dump it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo(cmd)
		},
	}
	cmd.Flags().String("out", bintree.DefaultDumpPath, "write the dump to `file`")
	return cmd
}

func (a *app) demo(cmd *cobra.Command) error {
	path := a.setting(cmd, "out", "bintree.dump")
	tree := bintree.New[int]()
	defer tree.Destroy()
	if err := tree.Init(bintree.Here()); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	tree.Root().SetData(1)
	left, err := tree.Attach(tree.Root(), bintree.Left, bintree.Here())
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	left.SetData(2)
	if err = tree.DumpFile(path, bintree.DumpOptions{}, bintree.Here()); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	con := newConsole(cmd.OutOrStdout())
	var out strings.Builder
	if err = tree.Print(bintree.Prefix, &out, bintree.Here()); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	con.traversal(out.String())
	con.note("wrote %s", path)
	return nil
}
