package style

import (
	"errors"
	"fmt"
	"strings"
)

// Attributes is a set of text attribute flags.
type Attributes uint16

// Attribute flags. The zero value is the empty set.
const (
	Bold Attributes = 1 << iota
	Italic
	Underlined
	Dim
	SlowBlink
	RapidBlink
	CrossedOut
	Framed
	Encircled
	Reverse

	allAttributes = Bold | Italic | Underlined | Dim | SlowBlink | RapidBlink |
		CrossedOut | Framed | Encircled | Reverse
)

// canonical names, in flag order
var attributeNames = []struct {
	flag Attributes
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underlined, "underlined"},
	{Dim, "dim"},
	{SlowBlink, "slow-blink"},
	{RapidBlink, "rapid-blink"},
	{CrossedOut, "crossed-out"},
	{Framed, "framed"},
	{Encircled, "encircled"},
	{Reverse, "reverse"},
}

// attributeSpellings maps every accepted spelling to its flag.
var attributeSpellings = map[string]Attributes{
	"bold":        Bold,
	"italic":      Italic,
	"underline":   Underlined,
	"underlined":  Underlined,
	"dim":         Dim,
	"slow-blink":  SlowBlink,
	"slow_blink":  SlowBlink,
	"slowblink":   SlowBlink,
	"rapid-blink": RapidBlink,
	"rapid_blink": RapidBlink,
	"rapidblink":  RapidBlink,
	"crossed-out": CrossedOut,
	"crossed_out": CrossedOut,
	"crossedout":  CrossedOut,
	"framed":      Framed,
	"encircled":   Encircled,
	"reverse":     Reverse,
}

// ErrInvalidAttribute is returned by ParseAttributes for unknown or repeated
// flag names.
var ErrInvalidAttribute = errors.New("invalid attribute")

// AttributeFromString looks up a single attribute by one of its spellings.
func AttributeFromString(s string) (Attributes, bool) {
	a, ok := attributeSpellings[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// ParseAttributes parses a list of attribute names joined by "|",
// e.g. "italic|dim". The result is the union of the listed flags. Listing a
// flag twice, under any of its spellings, is an error.
func ParseAttributes(token string) (Attributes, error) {
	var attrs Attributes
	for _, part := range strings.Split(token, "|") {
		a, ok := AttributeFromString(part)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAttribute, strings.TrimSpace(part))
		}
		if attrs.Has(a) {
			return 0, fmt.Errorf("%w: %q listed twice", ErrInvalidAttribute, strings.TrimSpace(part))
		}
		attrs |= a
	}
	return attrs, nil
}

// Has is true if all flags of a are set in attrs.
func (attrs Attributes) Has(a Attributes) bool {
	return attrs&a == a
}

// Union returns the flags set in either attrs or other.
func (attrs Attributes) Union(other Attributes) Attributes {
	return (attrs | other) & allAttributes
}

// IsEmpty is true if no flag is set.
func (attrs Attributes) IsEmpty() bool {
	return attrs&allAttributes == 0
}

// List returns the canonical names of the flags in attrs, in flag order.
func (attrs Attributes) List() []string {
	var names []string
	for _, an := range attributeNames {
		if attrs&an.flag != 0 {
			names = append(names, an.name)
		}
	}
	return names
}

// String returns attrs in tss notation, e.g. "italic|dim".
func (attrs Attributes) String() string {
	return strings.Join(attrs.List(), "|")
}
