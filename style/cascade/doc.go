/*
Package cascade matches stylesheet selectors against syntax nodes and
resolves the effective style of a node.

Resolution walks the rules of a stylesheet in file order. Every rule with at
least one selector matching the node contributes its declaration, merged on
top of the contributions of earlier rules with style.Merge: later rules win
for colors, attributes accumulate. There is no specificity weighting, a later
single-atom rule overrides an earlier complex one.

Highlight declarations are looked up in a base theme. Groups missing from the
theme do not contribute; this is not an error.

Functions of this package are pure and hold no state. Callers wanting to
cache resolved styles should see package styledtree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("tss.cascade")
}
