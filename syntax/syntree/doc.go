/*
Package syntree implements a simple in-memory syntax tree.

Nodes carry a kind and a byte span and maintain a mutex-protected list of
children, so trees may be built and inspected from concurrent goroutines.
*Node implements syntax.Node.

Trees may be read from S-expressions in the notation tree-sitter uses for
printing its trees:

    (source_file
       (function_declaration name: (identifier)
          (block (comment))))

Field labels ("name:") are accepted and ignored. The span of a node read from
an S-expression is the byte range of its parenthesized expression.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("tss.syntax")
}
