/*
Package tree implements a general purpose concurrency-safe tree of nodes.

Syntax trees and styled trees of this module are built on top of it. Nodes
carry a payload of a type parameter; the usual pattern is to embed Node[T]
into a struct and let the payload point back to that struct:

    type MyNode struct {
        tree.Node[*MyNode]
        ...
    }
    n := &MyNode{}
    n.Payload = n

Tree operations are carried out by a Walker. A Walker accepts a chain of
operations, which are performed concurrently by a small pipeline of worker
goroutines once the client asks for the result:

    nodes, err := tree.NewWalker(root).TopDown(action).Promise()()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tss.tree")
}
