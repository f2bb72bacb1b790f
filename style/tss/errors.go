package tss

import "fmt"

// ErrorKind classifies parse errors.
type ErrorKind uint8

// Kinds of parse errors.
const (
	UnexpectedToken ErrorKind = iota + 1
	UnterminatedRule
	UnknownHighlightName
	InvalidColorLiteral
	InvalidAttribute
	DuplicateProperty
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnterminatedRule:
		return "unterminated rule"
	case UnknownHighlightName:
		return "unknown highlight name"
	case InvalidColorLiteral:
		return "invalid color literal"
	case InvalidAttribute:
		return "invalid attribute"
	case DuplicateProperty:
		return "duplicate property"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Pos is a position in tss source. Line and Column start at 1; Column counts
// runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// positionOf converts a byte offset into a Pos.
func positionOf(src string, offset int) Pos {
	if offset > len(src) {
		offset = len(src)
	}
	pos := Pos{Offset: offset, Line: 1, Column: 1}
	for _, ch := range src[:offset] {
		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// ParseError is the error returned for malformed stylesheets.
type ParseError struct {
	Kind ErrorKind
	Pos  Pos
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("tss:%s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("tss:%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

// Is makes errors.Is match parse errors of the same kind, e.g.
//
//     errors.Is(err, &tss.ParseError{Kind: tss.InvalidColorLiteral})
//
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}
