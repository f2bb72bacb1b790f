package tss

import (
	"strings"

	"github.com/samber/lo"
)

// Combinator is a structural relation between two selector atoms.
type Combinator uint8

// Combinators. The first step of a selector has NoCombinator.
const (
	NoCombinator Combinator = iota
	Twin                    // a + b
	Sibling                 // a ~ b
	Child                   // a > b
	Descendant              // a b
)

func (c Combinator) String() string {
	switch c {
	case Twin:
		return "+"
	case Sibling:
		return "~"
	case Child:
		return ">"
	case Descendant:
		return " "
	}
	return ""
}

// Step is one atom of a selector together with the combinator linking it
// to the previous atom.
type Step struct {
	Combinator Combinator
	Kind       string
}

// Selector is a chain of steps. A selector always has at least one step.
// Selectors are values; all operations on them leave the receiver unchanged.
type Selector struct {
	steps []Step
}

// Atom creates a selector consisting of a single node kind.
func Atom(kind string) Selector {
	return Selector{steps: []Step{{Kind: kind}}}
}

// Then returns a new selector with another atom appended.
func (sel Selector) Then(c Combinator, kind string) Selector {
	if len(sel.steps) == 0 {
		return Atom(kind)
	}
	if c == NoCombinator {
		c = Descendant
	}
	steps := make([]Step, len(sel.steps), len(sel.steps)+1)
	copy(steps, sel.steps)
	return Selector{steps: append(steps, Step{Combinator: c, Kind: kind})}
}

// Len returns the number of atoms of sel.
func (sel Selector) Len() int {
	return len(sel.steps)
}

// Step returns the i-th step of sel.
func (sel Selector) Step(i int) Step {
	return sel.steps[i]
}

// Steps returns a copy of the steps of sel.
func (sel Selector) Steps() []Step {
	steps := make([]Step, len(sel.steps))
	copy(steps, sel.steps)
	return steps
}

// Target returns the rightmost atom, i.e. the kind of node sel selects.
func (sel Selector) Target() string {
	if len(sel.steps) == 0 {
		return ""
	}
	return sel.steps[len(sel.steps)-1].Kind
}

func (sel Selector) String() string {
	var b strings.Builder
	for i, st := range sel.steps {
		if i > 0 {
			if st.Combinator == Descendant {
				b.WriteByte(' ')
			} else {
				b.WriteString(" " + st.Combinator.String() + " ")
			}
		}
		b.WriteString(st.Kind)
	}
	return b.String()
}

func joinSelectors(sels []Selector) string {
	return strings.Join(lo.Map(sels, func(sel Selector, _ int) string {
		return sel.String()
	}), ", ")
}
