package tss

import (
	"strings"

	"github.com/npillmayer/tss/style"
)

type declKind uint8

const (
	highlightDecl declKind = iota + 1
	propertiesDecl
)

// Declaration is the right hand side of a rule: either a reference to a
// highlight group or an explicit set of properties.
type Declaration struct {
	kind  declKind
	hl    style.Highlight
	props style.Style
}

// HighlightDeclaration creates a declaration referencing a highlight group.
func HighlightDeclaration(h style.Highlight) Declaration {
	return Declaration{kind: highlightDecl, hl: h}
}

// PropertiesDeclaration creates a declaration with explicit properties.
func PropertiesDeclaration(props style.Style) Declaration {
	return Declaration{kind: propertiesDecl, props: props}
}

// Highlight returns the highlight group of a highlight declaration.
func (d Declaration) Highlight() (style.Highlight, bool) {
	return d.hl, d.kind == highlightDecl
}

// Properties returns the properties of a properties declaration.
func (d Declaration) Properties() (style.Style, bool) {
	return d.props, d.kind == propertiesDecl
}

func (d Declaration) String() string {
	switch d.kind {
	case highlightDecl:
		return d.hl.String()
	case propertiesDecl:
		return d.props.String()
	}
	return "<no declaration>"
}

// Rule pairs selectors with a declaration. A rule with several selectors
// behaves like several rules with the same declaration at the same position
// in a stylesheet.
type Rule struct {
	Selectors   []Selector
	Declaration Declaration
}

func (d Declaration) isEmpty() bool {
	return d.kind == propertiesDecl && d.props.IsEmpty()
}

func (r Rule) clone() Rule {
	sels := make([]Selector, len(r.Selectors))
	copy(sels, r.Selectors)
	return Rule{Selectors: sels, Declaration: r.Declaration}
}

func (r Rule) String() string {
	return joinSelectors(r.Selectors) + ": " + r.Declaration.String() + ";"
}

// Stylesheet is an ordered list of rules. Stylesheets are immutable and may
// be shared between goroutines.
type Stylesheet struct {
	rules []Rule
}

// Empty returns a stylesheet without rules. It is the fallback for clients
// which could not parse a stylesheet.
func Empty() *Stylesheet {
	return &Stylesheet{}
}

// NewStylesheet creates a stylesheet from rules. Rules without selectors or
// without a declaration are dropped, as are rules declaring an empty set of
// properties (there is no source form for them).
func NewStylesheet(rules ...Rule) *Stylesheet {
	sheet := &Stylesheet{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		if len(r.Selectors) == 0 || r.Declaration.kind == 0 || r.Declaration.isEmpty() {
			tracer().Errorf("dropping incomplete rule %v", r)
			continue
		}
		sheet.rules = append(sheet.rules, r.clone())
	}
	return sheet
}

// Len returns the number of rules.
func (sheet *Stylesheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.rules)
}

// Empty is true for a stylesheet without rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet.Len() == 0
}

// Rule returns the i-th rule.
func (sheet *Stylesheet) Rule(i int) Rule {
	return sheet.rules[i].clone()
}

// Rules returns a copy of the rules in stylesheet order.
func (sheet *Stylesheet) Rules() []Rule {
	if sheet == nil {
		return nil
	}
	rules := make([]Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r.clone()
	}
	return rules
}

// Append returns a new stylesheet with the rules of other following the
// rules of sheet. Neither sheet is changed.
func (sheet *Stylesheet) Append(other *Stylesheet) *Stylesheet {
	rules := make([]Rule, 0, sheet.Len()+other.Len())
	rules = append(rules, sheet.Rules()...)
	rules = append(rules, other.Rules()...)
	return &Stylesheet{rules: rules}
}

// String returns the stylesheet as tss source, one rule per line.
func (sheet *Stylesheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Each calls f for every rule in stylesheet order, until f returns false.
// Rules handed to f share storage with the stylesheet and must not be
// modified.
func (sheet *Stylesheet) Each(f func(i int, r Rule) bool) {
	if sheet == nil {
		return
	}
	for i, r := range sheet.rules {
		if !f(i, r) {
			return
		}
	}
}
