package tss

import "fmt"

type tokType int8

const (
	tokEOF tokType = iota
	tokIllegal
	tokIdent     // node kinds, highlight names, property keys
	tokValue     // property values; only scanned where a value is expected
	tokColon     // :
	tokSemicolon // ;
	tokComma     // ,
	tokPlus      // +
	tokTilde     // ~
	tokGreater   // >
	tokBar       // |
	tokLBrace    // {
	tokRBrace    // }
)

var tokNames = map[tokType]string{
	tokEOF:       "end of input",
	tokIllegal:   "illegal character",
	tokIdent:     "identifier",
	tokValue:     "value",
	tokColon:     "':'",
	tokSemicolon: "';'",
	tokComma:     "','",
	tokPlus:      "'+'",
	tokTilde:     "'~'",
	tokGreater:   "'>'",
	tokBar:       "'|'",
	tokLBrace:    "'{'",
	tokRBrace:    "'}'",
}

func (t tokType) String() string {
	return tokNames[t]
}

type token struct {
	typ    tokType
	text   string
	offset int
}

func (tok token) String() string {
	switch tok.typ {
	case tokIdent, tokValue, tokIllegal:
		return fmt.Sprintf("%s %q", tok.typ, tok.text)
	}
	return tok.typ.String()
}

// scanner splits tss source into tokens. Whitespace and comments are
// skipped. In value mode, a '#' directly followed by a value character starts
// a color literal instead of a comment.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) next(valueMode bool) token {
	s.skipWhitespaceAndComments(valueMode)
	if s.pos >= len(s.input) {
		return token{typ: tokEOF, offset: len(s.input)}
	}
	start := s.pos
	ch := s.input[s.pos]
	if t, ok := punctuation[ch]; ok {
		s.pos++
		return token{typ: t, text: s.input[start:s.pos], offset: start}
	}
	if valueMode {
		for s.pos < len(s.input) && isValueChar(s.input[s.pos]) {
			s.pos++
		}
		return token{typ: tokValue, text: s.input[start:s.pos], offset: start}
	}
	if isIdentStart(ch) {
		for s.pos < len(s.input) && isIdentChar(s.input[s.pos]) {
			s.pos++
		}
		return token{typ: tokIdent, text: s.input[start:s.pos], offset: start}
	}
	s.pos++
	for s.pos < len(s.input) && s.input[s.pos] >= 0x80 && s.input[s.pos] < 0xc0 {
		s.pos++ // consume rest of a UTF-8 sequence
	}
	return token{typ: tokIllegal, text: s.input[start:s.pos], offset: start}
}

var punctuation = map[byte]tokType{
	':': tokColon,
	';': tokSemicolon,
	',': tokComma,
	'+': tokPlus,
	'~': tokTilde,
	'>': tokGreater,
	'|': tokBar,
	'{': tokLBrace,
	'}': tokRBrace,
}

func (s *scanner) skipWhitespaceAndComments(valueMode bool) {
	for s.pos < len(s.input) {
		switch ch := s.input[s.pos]; {
		case isSpace(ch):
			s.pos++
		case ch == '#' && (!valueMode || !s.startsColor()):
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

// startsColor is true if the '#' at the current position is the first
// character of a color literal like "#ffcc00". Malformed literals such as
// "#zzz" still count as colors, to be rejected by the parser.
func (s *scanner) startsColor() bool {
	return s.pos+1 < len(s.input) && isValueChar(s.input[s.pos+1])
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}

func isValueChar(ch byte) bool {
	if isSpace(ch) {
		return false
	}
	_, isPunct := punctuation[ch]
	return !isPunct
}
