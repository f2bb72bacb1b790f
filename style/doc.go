/*
Package style implements the value model for syntax highlighting styles.

Overview

A style is a triple of foreground color, background color and a set of
text attributes. Stylesheets (see package tss) declare partial styles for
syntax nodes, and the cascade (see package cascade) merges them into one
resolved Style per node.

Colors are either 24-bit RGB values, indices into the 256-color ANSI palette,
or one of a small set of named terminal colors. Two named colors are virtual:
fg-canvas and bg-canvas denote the terminal's default colors. The zero value
of Color is "unset", which is different from the canvas colors: an unset color
means that no rule has said anything about it.

Attributes are additive flags. Merging two styles replaces colors, but
accumulates attributes:

   Merge({fg:red, attr:italic}, {fg:blue, attr:bold}) = {fg:blue, attr:italic|bold}

Highlight groups are the indirection between stylesheets and a base theme:
a rule may reference a group by name ("comment", "keyword", …) and the
concrete colors are looked up in a HighlightTable at resolution time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.style'.
func tracer() tracing.Trace {
	return tracing.Select("tss.style")
}
