/*
Package tsadapter makes tree-sitter syntax trees available to the style engine.

Nodes of a tree-sitter tree are wrapped into handles implementing syntax.Node.
Clients may choose to see all nodes of the concrete syntax tree, including
anonymous tokens like "(" or "func", or to see only named nodes:

    tree, err := tsadapter.ParseGo(ctx, src)
    ...
    root := tsadapter.WrapNamed(tree.RootNode())

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tsadapter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("tss.syntax")
}
