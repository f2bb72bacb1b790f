package style

import (
	"strings"
)

// Style is a (possibly partial) style: colors and text attributes.
// It is used both for the property set of a stylesheet declaration and for
// the resolved style of a syntax node. Unset colors are zero Colors.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attributes
}

// Merge applies override on top of base. Colors set in override replace
// those in base; attributes are united, i.e. an override never clears an
// attribute that base already has.
func Merge(base, override Style) Style {
	merged := base
	if override.Fg.IsSet() {
		merged.Fg = override.Fg
	}
	if override.Bg.IsSet() {
		merged.Bg = override.Bg
	}
	merged.Attrs = base.Attrs.Union(override.Attrs)
	return merged
}

// IsEmpty is true if s specifies neither colors nor attributes.
func (s Style) IsEmpty() bool {
	return !s.Fg.IsSet() && !s.Bg.IsSet() && s.Attrs.IsEmpty()
}

// String returns s in tss property notation, e.g. "fg:red, attr:bold".
func (s Style) String() string {
	var props []string
	if s.Fg.IsSet() {
		props = append(props, "fg:"+s.Fg.String())
	}
	if s.Bg.IsSet() {
		props = append(props, "bg:"+s.Bg.String())
	}
	if !s.Attrs.IsEmpty() {
		props = append(props, "attr:"+s.Attrs.String())
	}
	return strings.Join(props, ", ")
}

// WithCanvas replaces the virtual canvas colors of s by the colors of the
// canvas style, typically the Canvas entry of a theme. fg-canvas takes the
// canvas foreground, bg-canvas the canvas background. If canvas does not
// set a color, the virtual color is kept.
func (s Style) WithCanvas(canvas Style) Style {
	s.Fg = canvasColor(s.Fg, canvas)
	s.Bg = canvasColor(s.Bg, canvas)
	return s
}

func canvasColor(c Color, canvas Style) Color {
	name, ok := c.Name()
	switch {
	case !ok:
		return c
	case name == FgCanvas && canvas.Fg.IsSet():
		return canvas.Fg
	case name == BgCanvas && canvas.Bg.IsSet():
		return canvas.Bg
	}
	return c
}
