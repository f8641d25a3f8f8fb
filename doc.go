/*
Package bintree implements a generic, unordered binary tree with explicit
lifecycle management.

Trees

A tree is shaped purely by explicit calls: a root node is created by Init,
every further node is attached below an existing node in a given direction
(left or right). There is no ordering and no balancing. Nodes are owned by
exactly one parent slot (or by the tree, for the root) and carry a non-owning
back-reference to their parent.

	tree := bintree.New[string]()
	tree.Init(bintree.Here())
	left, _ := tree.Attach(tree.Root(), bintree.Left, bintree.Here())
	left.SetData("L")

Error mask

Every tree carries a sticky error mask of type TreeError. Structural
violations found by Verify or raised during teardown, printing or dumping are
OR-ed into the mask and stay there until the tree is re-initialized. A
non-zero mask therefore means "this tree's history includes a violation", not
"the last call failed". Mutating operations verify the tree first and refuse
to work on a tree known to be unsound.

Diagnostics

Print emits a bracketed pre-, in- or post-order traversal of the payloads.
DumpTo/DumpFile render the current shape of the tree as a Graphviz DOT
document, using record-shaped nodes with left/right ports.

Every mutating call accepts a CallData describing its origin in client code.
It is used for tracing only and has no effect on the tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
