package basetheme

import (
	"fmt"
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/tss/style"
	"github.com/samber/lo"
)

// chroma token types for highlight groups. Groups without a token type are
// derived from the canvas, see FromChroma.
var tokenTypes = map[style.Highlight]chroma.TokenType{
	style.Comment:        chroma.Comment,
	style.Constant:       chroma.NameConstant,
	style.String:         chroma.LiteralString,
	style.EscapeSeq:      chroma.LiteralStringEscape,
	style.Char:           chroma.LiteralStringChar,
	style.Number:         chroma.LiteralNumber,
	style.Boolean:        chroma.KeywordConstant,
	style.Float:          chroma.LiteralNumberFloat,
	style.Identifier:     chroma.Name,
	style.Function:       chroma.NameFunction,
	style.Statement:      chroma.Keyword,
	style.Conditional:    chroma.Keyword,
	style.Repeat:         chroma.Keyword,
	style.Label:          chroma.NameLabel,
	style.Operator:       chroma.Operator,
	style.Keyword:        chroma.Keyword,
	style.Exception:      chroma.NameException,
	style.PreProc:        chroma.CommentPreproc,
	style.Include:        chroma.KeywordNamespace,
	style.Define:         chroma.CommentPreproc,
	style.Macro:          chroma.NameDecorator,
	style.PreCondit:      chroma.CommentPreproc,
	style.Type:           chroma.KeywordType,
	style.StorageClass:   chroma.KeywordDeclaration,
	style.Structure:      chroma.NameClass,
	style.Typedef:        chroma.KeywordType,
	style.Special:        chroma.NameBuiltin,
	style.SpecialChar:    chroma.LiteralStringEscape,
	style.Tag:            chroma.NameTag,
	style.Delimiter:      chroma.Punctuation,
	style.SpecialComment: chroma.CommentSpecial,
	style.Debug:          chroma.GenericTraceback,
	style.Underline:      chroma.GenericUnderline,
	style.Error:          chroma.GenericError,
	style.LineNr:         chroma.LineNumbers,
	style.Prompt:         chroma.GenericPrompt,
}

// Names lists the names of all base themes: the default theme and the styles
// known to chroma.
func Names() []string {
	names := lo.Uniq(append([]string{DefaultName}, styles.Names()...))
	sort.Strings(names)
	return names
}

// Get returns the base theme with a given name, see Names.
func Get(name string) (style.Theme, error) {
	if name == DefaultName || name == "" {
		return Default(), nil
	}
	return FromChroma(name)
}

// FromChroma derives a base theme from a chroma style. Unknown names are an
// error, not a silent fallback.
func FromChroma(name string) (style.Theme, error) {
	cs, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("no base theme named %q", name)
	}
	return fromChromaStyle(cs), nil
}

func fromChromaStyle(cs *chroma.Style) style.Theme {
	bg := cs.Get(chroma.Background)
	canvas := style.Style{Fg: color(bg.Colour), Bg: color(bg.Background)}
	theme := style.Theme{style.Canvas: canvas}
	for h, tt := range tokenTypes {
		e := cs.Get(tt)
		s := style.Style{Fg: color(e.Colour), Attrs: attributes(e)}
		if e.Background != bg.Background { // chroma entries inherit the canvas background
			s.Bg = color(e.Background)
		}
		theme[h] = s
	}
	// UI groups have no chroma counterpart; mix them from the canvas colors
	theme[style.StatusLine] = style.Style{Fg: canvas.Fg, Bg: blend(canvas.Bg, canvas.Fg, 0.3), Attrs: style.Bold}
	theme[style.StatusLineNC] = style.Style{Fg: canvas.Fg, Bg: blend(canvas.Bg, canvas.Fg, 0.15)}
	theme[style.TabLine] = style.Style{Fg: canvas.Fg, Bg: blend(canvas.Bg, canvas.Fg, 0.15)}
	theme[style.TabOption] = theme[style.TabLine]
	theme[style.TabSelect] = style.Style{Fg: canvas.Fg, Bg: canvas.Bg, Attrs: style.Bold}
	theme[style.Ignore] = style.Style{Fg: blend(canvas.Fg, canvas.Bg, 0.6)}
	theme[style.Todo] = style.Style{Fg: canvas.Bg, Bg: theme[style.Keyword].Fg, Attrs: style.Bold}
	tracer().P("theme", cs.Name).Debugf("derived base theme from chroma style")
	return theme
}

func color(c chroma.Colour) style.Color {
	if !c.IsSet() {
		return style.Color{}
	}
	return style.RGB(c.Red(), c.Green(), c.Blue())
}

func attributes(e chroma.StyleEntry) style.Attributes {
	var attrs style.Attributes
	if e.Bold == chroma.Yes {
		attrs |= style.Bold
	}
	if e.Italic == chroma.Yes {
		attrs |= style.Italic
	}
	if e.Underline == chroma.Yes {
		attrs |= style.Underlined
	}
	return attrs
}

// blend mixes two RGB colors in Lab space. If either color is not an RGB
// color, a is returned.
func blend(a, b style.Color, t float64) style.Color {
	ar, ag, ab, ok1 := a.RGB()
	br, bg, bb, ok2 := b.RGB()
	if !ok1 || !ok2 {
		return a
	}
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return style.RGB(r, g, bl)
}
