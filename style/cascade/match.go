package cascade

import (
	"github.com/npillmayer/tss/style/tss"
	"github.com/npillmayer/tss/syntax"
)

// Matches returns true if sel selects node.
//
// Selectors are matched from right to left: node has to be of the kind of
// the last atom, and the remainder of the selector has to match a node
// related to it by the combinator preceding that atom.
func Matches(sel tss.Selector, node syntax.Node) bool {
	if node == nil || sel.Len() == 0 {
		return false
	}
	return matchesStep(sel, node, sel.Len()-1)
}

// matchesStep matches the selector prefix ending at step i against node.
func matchesStep(sel tss.Selector, node syntax.Node, i int) bool {
	step := sel.Step(i)
	if node.Kind() != step.Kind {
		return false
	}
	if i == 0 {
		return true
	}
	switch step.Combinator {
	case tss.Child:
		if parent := node.Parent(); parent != nil {
			return matchesStep(sel, parent, i-1)
		}
	case tss.Twin:
		if prev, ok := syntax.PreviousSibling(node); ok {
			return matchesStep(sel, prev, i-1)
		}
	case tss.Sibling:
		return matchesPrecedingSibling(sel, node, i-1)
	case tss.Descendant:
		return matchesAncestor(sel, node, i-1)
	}
	return false
}

func matchesPrecedingSibling(sel tss.Selector, node syntax.Node, i int) bool {
	for _, sibling := range syntax.PrecedingSiblings(node) {
		if matchesStep(sel, sibling, i) {
			return true
		}
	}
	return false
}

func matchesAncestor(sel tss.Selector, node syntax.Node, i int) bool {
	for ancestor := node.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		if matchesStep(sel, ancestor, i) {
			return true
		}
	}
	return false
}

// matchesRule is true if any of the selectors of r matches node.
func matchesRule(r tss.Rule, node syntax.Node) bool {
	for _, sel := range r.Selectors {
		if Matches(sel, node) {
			return true
		}
	}
	return false
}
