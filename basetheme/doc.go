/*
Package basetheme provides base themes, i.e. tables mapping highlight groups
to concrete styles.

Default returns a theme using the named colors of the terminal only; it looks
reasonable on any terminal palette. FromChroma derives a theme from one of the
styles of the chroma syntax highlighter, which gives access to a large
collection of well-known color schemes (monokai, dracula, solarized-dark, …).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package basetheme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.theme'.
func tracer() tracing.Trace {
	return tracing.Select("tss.theme")
}
