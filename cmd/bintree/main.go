/*
Command bintree builds unordered binary trees from path specifications,
prints their traversals and writes diagnostic Graphviz dumps.

	bintree demo --out demo.dot
	bintree build --order infix --dump tree.dot --stats .=R L=left LR=x R=right

A node spec has the form PATH=VALUE, where PATH is a sequence of L and R
steps starting at the root ("." or the empty string denote the root itself).
Specs may be given in any order; a node's parent has to be specified, too,
unless it is the root.

Configuration is read from NestedText files (suffix ".nt") located at the
user's standard configuration directory for application "bintree". Keys are

	bintree.order         default traversal order of build
	bintree.dump          default output file for dumps
	tracelevel.bintree    trace level (Error, Info, Debug)

Command line flags take precedence over configuration values.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// configTag identifies the application's configuration files. An empty tag
// suppresses looking for configuration files.
var configTag = "bintree"

// tracer traces with key 'bintree'.
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bintree: %v\n", err)
		os.Exit(1)
	}
}

// app holds state shared between sub-commands.
type app struct {
	conf       *koanfadapter.KConf
	traceLevel string
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bintree {[flags]|SUBCOMMAND}",
		Short: "Build, print and dump unordered binary trees",

		SilenceErrors: true, // main() reports errors
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure()
		},
	}
	root.PersistentFlags().StringVar(&a.traceLevel, "trace", "",
		"set the trace `level` (Error, Info or Debug)")
	root.AddCommand(newDemoCommand(a), newBuildCommand(a))
	return root
}
