/*
Package tss implements the tss stylesheet language.

A stylesheet is a sequence of rules. Each rule pairs one or more selectors
with a declaration, which is either the name of a highlight group or a list
of properties:

    # tss example
    string: fg:green, attr: bold;
    function + identifier: fg:#ffcc00;
    block > comment: { fg:darkgrey, attr: italic|dim };
    parameter_list identifier, field_identifier: identifier;

Selectors are chains of node kinds joined by combinators:

    a + b     b immediately follows its sibling a
    a ~ b     b is preceded by its sibling a
    a > b     b is a child of a
    a b       b is a descendant of a

Combinators bind equally and are read from left to right. Properties are
"fg" and "bg" (colors) and "attr" (text attributes, synonyms are "attrb" and
"attribute"). Properties may be enclosed in braces. A '#' starts a comment
extending to the end of the line, except where a color value is expected.

Stylesheets are immutable once parsed. Parsing is atomic: it either produces a
complete stylesheet or fails with a *ParseError.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.parse'.
func tracer() tracing.Trace {
	return tracing.Select("tss.parse")
}
