/*
Package syntax defines the view the style engine has on syntax trees.

Syntax trees are produced by an external parser. The style engine never
assumes a concrete tree type; it consumes nodes through interface Node, which
exposes a node's kind, its parent and its ordered children. Adapters for
concrete trees live in sub-packages: package syntree has a small in-memory
tree (useful for tests and for trees given as S-expressions), package
tsadapter wraps tree-sitter nodes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("tss.syntax")
}
