package tss

import (
	"fmt"

	"github.com/npillmayer/tss/style"
)

// Parse parses tss source into a stylesheet. Malformed input of any kind
// makes the whole parse fail with a *ParseError; there are no partial
// stylesheets.
func Parse(src string) (*Stylesheet, error) {
	p := newParser(src)
	var rules []Rule
	for p.tok.typ != tokEOF {
		r, err := p.rule()
		if err != nil {
			tracer().Infof("stylesheet rejected: %v", err)
			return nil, err
		}
		tracer().P("rule", len(rules)).Debugf("%s", r)
		rules = append(rules, r)
	}
	tracer().Debugf("parsed stylesheet with %d rules", len(rules))
	return &Stylesheet{rules: rules}, nil
}

// ParseBytes is like Parse, for UTF-8 encoded tss source.
func ParseBytes(src []byte) (*Stylesheet, error) {
	return Parse(string(src))
}

// MustParse is like Parse, but panics if src is malformed. It is intended
// for stylesheets compiled into programs.
func MustParse(src string) *Stylesheet {
	sheet, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return sheet
}

// ParseSelector parses a single selector, e.g. "block > comment".
func ParseSelector(src string) (Selector, error) {
	p := newParser(src)
	sel, err := p.selector()
	if err != nil {
		return Selector{}, err
	}
	if p.tok.typ != tokEOF {
		return Selector{}, p.errorAt(UnexpectedToken, p.tok.offset, "expected end of selector, found %s", p.tok)
	}
	return sel, nil
}

// --- Recursive descent -----------------------------------------------------

type propKey uint8

const (
	propFg propKey = iota
	propBg
	propAttr
	numPropKeys
)

var propertyKeys = map[string]propKey{
	"fg":        propFg,
	"bg":        propBg,
	"attr":      propAttr,
	"attrb":     propAttr,
	"attribute": propAttr,
}

// parser is a recursive descent parser with one token of lookahead.
type parser struct {
	src  string
	scan *scanner
	tok  token // lookahead
}

func newParser(src string) *parser {
	p := &parser{src: src, scan: newScanner(src)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.scan.next(false)
}

// advanceToValue scans the next token as a property value.
func (p *parser) advanceToValue() {
	p.tok = p.scan.next(true)
}

// rule := selectors ':' declaration ';'
func (p *parser) rule() (Rule, error) {
	sels, err := p.selectors()
	if err != nil {
		return Rule{}, err
	}
	if p.tok.typ != tokColon {
		return Rule{}, p.unexpected("':' after selector")
	}
	p.advance()
	decl, err := p.declaration()
	if err != nil {
		return Rule{}, err
	}
	if p.tok.typ != tokSemicolon {
		return Rule{}, p.unexpected("';' at end of rule")
	}
	p.advance()
	return Rule{Selectors: sels, Declaration: decl}, nil
}

// selectors := selector (',' selector)*
func (p *parser) selectors() ([]Selector, error) {
	sel, err := p.selector()
	if err != nil {
		return nil, err
	}
	sels := []Selector{sel}
	for p.tok.typ == tokComma {
		p.advance()
		if sel, err = p.selector(); err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

// selector := kind (combinator? kind)*
func (p *parser) selector() (Selector, error) {
	if p.tok.typ != tokIdent {
		return Selector{}, p.unexpected("node kind")
	}
	sel := Atom(p.tok.text)
	p.advance()
	for {
		var comb Combinator
		switch p.tok.typ {
		case tokIdent:
			comb = Descendant
		case tokPlus:
			comb = Twin
		case tokTilde:
			comb = Sibling
		case tokGreater:
			comb = Child
		default:
			return sel, nil
		}
		if comb != Descendant {
			p.advance()
			if p.tok.typ != tokIdent {
				return Selector{}, p.unexpected(fmt.Sprintf("node kind after '%s'", comb))
			}
		}
		sel = sel.Then(comb, p.tok.text)
		p.advance()
	}
}

// declaration := highlight | properties | '{' properties '}'
func (p *parser) declaration() (Declaration, error) {
	braced := p.tok.typ == tokLBrace
	if braced {
		p.advance()
	}
	if p.tok.typ != tokIdent {
		return Declaration{}, p.unexpected("highlight group or property")
	}
	if _, isProp := propertyKeys[p.tok.text]; !isProp {
		if braced {
			return Declaration{}, p.errorAt(UnexpectedToken, p.tok.offset,
				"expected property fg, bg or attr, found %s", p.tok)
		}
		return p.highlight()
	}
	props, err := p.properties()
	if err != nil {
		return Declaration{}, err
	}
	if braced {
		if p.tok.typ != tokRBrace {
			return Declaration{}, p.unexpected("'}' after properties")
		}
		p.advance()
	}
	return PropertiesDeclaration(props), nil
}

func (p *parser) highlight() (Declaration, error) {
	h, ok := style.HighlightFromString(p.tok.text)
	if !ok {
		return Declaration{}, p.errorAt(UnknownHighlightName, p.tok.offset,
			"%q is not a highlight group", p.tok.text)
	}
	p.advance()
	return HighlightDeclaration(h), nil
}

// properties := property (',' property)*
func (p *parser) properties() (style.Style, error) {
	var props style.Style
	var seen [numPropKeys]bool
	for {
		if p.tok.typ != tokIdent {
			return props, p.unexpected("property fg, bg or attr")
		}
		key, ok := propertyKeys[p.tok.text]
		if !ok {
			return props, p.errorAt(UnexpectedToken, p.tok.offset, "unknown property %q", p.tok.text)
		}
		if seen[key] {
			return props, p.errorAt(DuplicateProperty, p.tok.offset, "property %q set twice", p.tok.text)
		}
		seen[key] = true
		p.advance()
		if p.tok.typ != tokColon {
			return props, p.unexpected("':' after property")
		}
		p.advanceToValue()
		var err error
		switch key {
		case propFg:
			props.Fg, err = p.color()
		case propBg:
			props.Bg, err = p.color()
		case propAttr:
			props.Attrs, err = p.attributes()
		}
		if err != nil {
			return props, err
		}
		if p.tok.typ != tokComma {
			return props, nil
		}
		p.advance()
	}
}

func (p *parser) color() (style.Color, error) {
	if p.tok.typ != tokValue {
		return style.Color{}, p.unexpected("color")
	}
	c, err := style.ParseColor(p.tok.text)
	if err != nil {
		return style.Color{}, p.errorAt(InvalidColorLiteral, p.tok.offset, "%s", err.Error())
	}
	p.advance()
	return c, nil
}

// attributes := attribute ('|' attribute)*
func (p *parser) attributes() (style.Attributes, error) {
	var attrs style.Attributes
	for {
		if p.tok.typ != tokValue {
			return 0, p.unexpected("attribute")
		}
		a, ok := style.AttributeFromString(p.tok.text)
		if !ok {
			return 0, p.errorAt(InvalidAttribute, p.tok.offset, "unknown attribute %q", p.tok.text)
		}
		if attrs.Has(a) { // catches synonyms as well, e.g. underline|underlined
			return 0, p.errorAt(InvalidAttribute, p.tok.offset, "attribute %q listed twice", p.tok.text)
		}
		attrs = attrs.Union(a)
		p.advance()
		if p.tok.typ != tokBar {
			return attrs, nil
		}
		p.advanceToValue()
	}
}

// unexpected reports the lookahead token as not matching what the grammar
// wants. Running out of input in the middle of a rule is UnterminatedRule.
func (p *parser) unexpected(want string) error {
	if p.tok.typ == tokEOF {
		return p.errorAt(UnterminatedRule, p.tok.offset, "expected %s", want)
	}
	return p.errorAt(UnexpectedToken, p.tok.offset, "expected %s, found %s", want, p.tok)
}

func (p *parser) errorAt(kind ErrorKind, offset int, format string, args ...interface{}) error {
	return &ParseError{
		Kind: kind,
		Pos:  positionOf(p.src, offset),
		Msg:  fmt.Sprintf(format, args...),
	}
}
