package cascade

import (
	"github.com/npillmayer/tss/style"
	"github.com/npillmayer/tss/style/tss"
	"github.com/npillmayer/tss/syntax"
)

// Resolve computes the effective style of node. theme is consulted for
// highlight declarations and may be nil.
//
// Resolve never fails. A node matched by no rule gets the empty style.
func Resolve(sheet *tss.Stylesheet, node syntax.Node, theme style.HighlightTable) style.Style {
	var resolved style.Style
	if node == nil {
		return resolved
	}
	sheet.Each(func(i int, r tss.Rule) bool {
		if matchesRule(r, node) {
			resolved = apply(resolved, r.Declaration, theme, i)
		}
		return true
	})
	return resolved
}

// MatchingRules returns the indices of the rules of sheet matching node,
// in stylesheet order.
func MatchingRules(sheet *tss.Stylesheet, node syntax.Node) []int {
	var matching []int
	if node == nil {
		return matching
	}
	sheet.Each(func(i int, r tss.Rule) bool {
		if matchesRule(r, node) {
			matching = append(matching, i)
		}
		return true
	})
	return matching
}

func apply(acc style.Style, decl tss.Declaration, theme style.HighlightTable, inx int) style.Style {
	if h, ok := decl.Highlight(); ok {
		s, err := style.StyleFor(theme, h)
		if err != nil {
			tracer().P("rule", inx).Debugf("rule does not contribute: %v", err)
			return acc
		}
		tracer().P("rule", inx).Debugf("apply highlight %s = {%s}", h, s)
		return style.Merge(acc, s)
	}
	props, _ := decl.Properties()
	tracer().P("rule", inx).Debugf("apply {%s}", props)
	return style.Merge(acc, props)
}
