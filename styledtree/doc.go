/*
Package styledtree attaches resolved styles to syntax trees.

Overview

The cascade of package cascade is stateless: every call resolves a node from
scratch. Editors re-resolve visible nodes on every redraw, so this package
provides the caching layer in front of it.

A Styler holds a snapshot of stylesheet, base theme and a cache of resolved
styles, keyed by node identity (syntax.Key). Installing a new stylesheet or
theme with Swap replaces the snapshot atomically; resolutions already running
keep working with the snapshot they started with. Node keys are only valid for
one version of a syntax tree, so clients have to call Invalidate after the
tree changed, e.g. after incremental re-parsing.

Build creates a styled tree, a mirror of a syntax tree where every node
carries its resolved style. Styled nodes are built on top of the general
purpose tree of package tree, and styles are resolved concurrently by a
top-down walker of that package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("tss.styledtree")
}
