package style

import (
	"fmt"
	"strings"
)

// Highlight is a semantic highlight group. Stylesheet rules may refer to a
// group instead of spelling out colors; a HighlightTable maps groups to
// concrete styles.
type Highlight uint8

// Highlight groups. The set is closed; adding a group means adding a constant
// here and its name to highlightNames.
const (
	Canvas Highlight = iota
	Comment
	Constant
	String
	EscapeSeq
	Char
	Number
	Boolean
	Float
	Identifier
	Function
	Statement
	Conditional
	Repeat
	Label
	Operator
	Keyword
	Exception
	PreProc
	Include
	Define
	Macro
	PreCondit
	Type
	StorageClass
	Structure
	Typedef
	Special
	SpecialChar
	Tag
	Delimiter
	SpecialComment
	Debug
	Underline
	Ignore
	Error
	Todo
	LineNr
	Prompt
	StatusLine
	StatusLineNC
	TabLine
	TabOption
	TabSelect
	numHighlights
)

var highlightNames = [numHighlights]string{
	Canvas:         "canvas",
	Comment:        "comment",
	Constant:       "constant",
	String:         "string",
	EscapeSeq:      "escape-seq",
	Char:           "char",
	Number:         "number",
	Boolean:        "boolean",
	Float:          "float",
	Identifier:     "identifier",
	Function:       "function",
	Statement:      "statement",
	Conditional:    "conditional",
	Repeat:         "repeat",
	Label:          "label",
	Operator:       "operator",
	Keyword:        "keyword",
	Exception:      "exception",
	PreProc:        "preproc",
	Include:        "include",
	Define:         "define",
	Macro:          "macro",
	PreCondit:      "precondit",
	Type:           "type",
	StorageClass:   "storage-class",
	Structure:      "structure",
	Typedef:        "typedef",
	Special:        "special",
	SpecialChar:    "special-char",
	Tag:            "tag",
	Delimiter:      "delimiter",
	SpecialComment: "special-comment",
	Debug:          "debug",
	Underline:      "underline",
	Ignore:         "ignore",
	Error:          "error",
	Todo:           "todo",
	LineNr:         "line-nr",
	Prompt:         "prompt",
	StatusLine:     "status-line",
	StatusLineNC:   "status-line-nc",
	TabLine:        "tab-line",
	TabOption:      "tab-option",
	TabSelect:      "tab-select",
}

var highlightByName = func() map[string]Highlight {
	m := make(map[string]Highlight, numHighlights)
	for h, s := range highlightNames {
		m[s] = Highlight(h)
	}
	return m
}()

func (h Highlight) String() string {
	if h >= numHighlights {
		return fmt.Sprintf("Highlight(%d)", uint8(h))
	}
	return highlightNames[h]
}

// HighlightFromString looks up a highlight group by name. Names are
// hyphenated lower case; underscores are accepted in place of hyphens.
func HighlightFromString(name string) (Highlight, bool) {
	name = strings.ReplaceAll(strings.ToLower(name), "_", "-")
	h, ok := highlightByName[name]
	return h, ok
}

// Highlights returns all highlight groups in declaration order.
func Highlights() []Highlight {
	hs := make([]Highlight, numHighlights)
	for i := range hs {
		hs[i] = Highlight(i)
	}
	return hs
}
