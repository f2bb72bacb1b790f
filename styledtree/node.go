package styledtree

import (
	"fmt"

	"github.com/npillmayer/tss/style"
	"github.com/npillmayer/tss/syntax"
	"github.com/npillmayer/tss/tree"
	tp "github.com/xlab/treeprint"
)

// StyNode is a style node, the building block of the styled tree.
// It mirrors a syntax node and carries its resolved style.
// Styled trees are not changed after Build returns.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	syntax              syntax.Node
	key                 syntax.Key
	index               int
	computed            style.Style
}

var _ syntax.Node = (*StyNode)(nil)

func newStyNode(n syntax.Node, parent *StyNode, index int) *StyNode {
	sn := &StyNode{syntax: n, index: index}
	sn.Payload = sn
	if parent == nil {
		sn.key = syntax.KeyOf(n)
	} else {
		sn.key = parent.key.ChildKey(n, index)
		parent.AddChild(&sn.Node)
	}
	return sn
}

// SyntaxNode returns the syntax node this styled node mirrors.
func (sn *StyNode) SyntaxNode() syntax.Node {
	return sn.syntax
}

// Key returns the identity key of the mirrored syntax node.
func (sn *StyNode) Key() syntax.Key {
	return sn.key
}

// Style returns the resolved style of the node.
func (sn *StyNode) Style() style.Style {
	return sn.computed
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	if p := sn.Node.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// ChildNodes returns the styled children.
func (sn *StyNode) ChildNodes() []*StyNode {
	chs := sn.Node.Children()
	children := make([]*StyNode, len(chs))
	for i, ch := range chs {
		children[i] = ch.Payload
	}
	return children
}

// Kind is part of interface syntax.Node.
func (sn *StyNode) Kind() string {
	return sn.key.Kind
}

// Span is part of interface syntax.Node.
func (sn *StyNode) Span() (int, int) {
	return sn.key.Start, sn.key.End
}

// Parent is part of interface syntax.Node.
func (sn *StyNode) Parent() syntax.Node {
	if p := sn.ParentNode(); p != nil {
		return p
	}
	return nil
}

// Children is part of interface syntax.Node.
func (sn *StyNode) Children() []syntax.Node {
	chs := sn.Node.Children()
	children := make([]syntax.Node, len(chs))
	for i, ch := range chs {
		children[i] = ch.Payload
	}
	return children
}

// IndexInParent is part of interface syntax.Node.
func (sn *StyNode) IndexInParent() int {
	return sn.index
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("(StyNode %s {%s})", sn.key, sn.computed)
}

// Walk calls f for every node of the styled tree in document order.
func (sn *StyNode) Walk(f func(*StyNode)) {
	f(sn)
	for _, ch := range sn.Node.Children() {
		ch.Payload.Walk(f)
	}
}

// Dump renders a styled tree for debugging.
func Dump(root *StyNode) string {
	if root == nil {
		return "<empty styled tree>\n"
	}
	p := tp.NewWithRoot(label(root))
	for _, ch := range root.ChildNodes() {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, sn *StyNode) {
	if sn.ChildCount() == 0 {
		p.AddNode(label(sn))
		return
	}
	branch := p.AddBranch(label(sn))
	for _, ch := range sn.ChildNodes() {
		ppt(branch, ch)
	}
}

func label(sn *StyNode) string {
	if sn.computed.IsEmpty() {
		return sn.key.Kind
	}
	return fmt.Sprintf("%s {%s}", sn.key.Kind, sn.computed)
}
