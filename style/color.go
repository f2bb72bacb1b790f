package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind tells which variant a Color holds.
type ColorKind uint8

// Color variants. NoColor is the zero value and means "unset".
const (
	NoColor ColorKind = iota
	RGBColor
	ANSIColor
	NamedColor
)

// ColorName is one of the fixed set of named terminal colors.
type ColorName uint8

// Named colors. FgCanvas and BgCanvas are virtual: they stand for the
// terminal's default foreground/background.
const (
	Reset ColorName = iota
	Black
	DarkGrey
	Red
	DarkRed
	Green
	DarkGreen
	Yellow
	DarkYellow
	Blue
	DarkBlue
	Magenta
	DarkMagenta
	Cyan
	DarkCyan
	White
	Grey
	FgCanvas
	BgCanvas
	numColorNames
)

// canonical spelling for every named color; index is the ColorName.
var colorNames = [numColorNames]string{
	Reset:       "reset",
	Black:       "black",
	DarkGrey:    "darkgrey",
	Red:         "red",
	DarkRed:     "darkred",
	Green:       "green",
	DarkGreen:   "darkgreen",
	Yellow:      "yellow",
	DarkYellow:  "darkyellow",
	Blue:        "blue",
	DarkBlue:    "darkblue",
	Magenta:     "magenta",
	DarkMagenta: "darkmagenta",
	Cyan:        "cyan",
	DarkCyan:    "darkcyan",
	White:       "white",
	Grey:        "grey",
	FgCanvas:    "fg-canvas",
	BgCanvas:    "bg-canvas",
}

// colorSpellings maps every accepted spelling to its named color.
var colorSpellings = func() map[string]ColorName {
	m := make(map[string]ColorName, 2*int(numColorNames))
	for n, s := range colorNames {
		m[s] = ColorName(n)
	}
	for s, n := range map[string]ColorName{
		"gray":         Grey,
		"darkgray":     DarkGrey,
		"dark-grey":    DarkGrey,
		"dark_grey":    DarkGrey,
		"dark-gray":    DarkGrey,
		"dark_gray":    DarkGrey,
		"dark-red":     DarkRed,
		"dark_red":     DarkRed,
		"dark-green":   DarkGreen,
		"dark_green":   DarkGreen,
		"dark-yellow":  DarkYellow,
		"dark_yellow":  DarkYellow,
		"dark-blue":    DarkBlue,
		"dark_blue":    DarkBlue,
		"dark-magenta": DarkMagenta,
		"dark_magenta": DarkMagenta,
		"dark-cyan":    DarkCyan,
		"dark_cyan":    DarkCyan,
		"fg_canvas":    FgCanvas,
		"fgcanvas":     FgCanvas,
		"bg_canvas":    BgCanvas,
		"bgcanvas":     BgCanvas,
	} {
		m[s] = n
	}
	return m
}()

func (n ColorName) String() string {
	if n >= numColorNames {
		return fmt.Sprintf("ColorName(%d)", uint8(n))
	}
	return colorNames[n]
}

// ColorNameFromString looks up a named color by one of its spellings.
// Lookup is case-insensitive.
func ColorNameFromString(s string) (ColorName, bool) {
	n, ok := colorSpellings[strings.ToLower(s)]
	return n, ok
}

// Color is a tagged union of RGB, ANSI-index and named colors.
// Colors are comparable values; the zero Color is unset.
type Color struct {
	kind    ColorKind
	r, g, b uint8 // RGB components, or b holds the ANSI index
	name    ColorName
}

// RGB creates a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: RGBColor, r: r, g: g, b: b}
}

// ANSI creates a color from an index into the 256-color palette.
func ANSI(index uint8) Color {
	return Color{kind: ANSIColor, b: index}
}

// Named creates a named color.
func Named(name ColorName) Color {
	return Color{kind: NamedColor, name: name}
}

// Kind returns the variant of c.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsSet is false for the zero Color.
func (c Color) IsSet() bool {
	return c.kind != NoColor
}

// RGB returns the components of an RGB color. ok is false for other kinds.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if c.kind != RGBColor {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// Index returns the palette index of an ANSI color.
func (c Color) Index() (uint8, bool) {
	if c.kind != ANSIColor {
		return 0, false
	}
	return c.b, true
}

// Name returns the name of a named color.
func (c Color) Name() (ColorName, bool) {
	if c.kind != NamedColor {
		return 0, false
	}
	return c.name, true
}

// IsCanvas is true for the virtual colors fg-canvas and bg-canvas.
func (c Color) IsCanvas() bool {
	return c.kind == NamedColor && (c.name == FgCanvas || c.name == BgCanvas)
}

// String returns c as a tss color literal. Unset colors print as "".
func (c Color) String() string {
	switch c.kind {
	case RGBColor:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case ANSIColor:
		return strconv.Itoa(int(c.b))
	case NamedColor:
		return c.name.String()
	}
	return ""
}

// Errors returned by ParseColor. Package tss maps them to positioned parse errors.
var (
	ErrInvalidColor = errors.New("invalid color literal")
	ErrColorRange   = errors.New("color index out of range 0…255")
)

// ParseColor parses a tss color literal:
//
//     #ffcc00    RGB, exactly six hex digits
//     208        ANSI palette index, decimal
//     0xd0       ANSI palette index, hexadecimal
//     darkgrey   named color
//
func ParseColor(token string) (Color, error) {
	tok := strings.TrimSpace(token)
	switch {
	case tok == "":
		return Color{}, ErrInvalidColor
	case tok[0] == '#':
		return parseHexColor(tok)
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		return parseIndex(tok[2:], 16)
	case tok[0] >= '0' && tok[0] <= '9':
		return parseIndex(tok, 10)
	}
	if n, ok := ColorNameFromString(tok); ok {
		return Named(n), nil
	}
	return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, tok)
}

func parseHexColor(tok string) (Color, error) {
	if len(tok) != 7 {
		return Color{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColor, tok)
	}
	for _, ch := range tok[1:] {
		if !isHexDigit(ch) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, tok)
		}
	}
	c, err := colorful.Hex(tok)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, err.Error())
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

func parseIndex(digits string, base int) (Color, error) {
	if digits == "" {
		return Color{}, ErrInvalidColor
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
			return Color{}, ErrColorRange
		}
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, digits)
	}
	if n > 255 {
		return Color{}, ErrColorRange
	}
	return ANSI(uint8(n)), nil
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
