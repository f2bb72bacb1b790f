package syntree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tss/syntax"
	"github.com/npillmayer/tss/tree"
)

// Node is the type syntax trees of this package are built of.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             string
	start, end       int
}

var _ syntax.Node = (*Node)(nil)

// New creates a new node of a given kind with an empty span.
func New(kind string) *Node {
	return NewWithSpan(kind, 0, 0)
}

// NewWithSpan creates a new node covering the bytes start…end of a source.
func NewWithSpan(kind string, start, end int) *Node {
	n := &Node{kind: kind, start: start, end: end}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// TreeNode returns the general purpose tree node underlying n.
func (node *Node) TreeNode() *tree.Node[*Node] {
	return &node.Node
}

// Kind is part of interface syntax.Node.
func (node *Node) Kind() string {
	return node.kind
}

// Span is part of interface syntax.Node.
func (node *Node) Span() (int, int) {
	return node.start, node.end
}

// Parent is part of interface syntax.Node. It returns nil for the root.
func (node *Node) Parent() syntax.Node {
	if p := node.ParentNode(); p != nil {
		return p
	}
	return nil
}

// ParentNode returns the parent as a *Node (nil for the root of the tree).
func (node *Node) ParentNode() *Node {
	if p := node.Node.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// Children is part of interface syntax.Node.
func (node *Node) Children() []syntax.Node {
	chs := node.Node.Children()
	children := make([]syntax.Node, len(chs))
	for i, ch := range chs {
		children[i] = ch.Payload
	}
	return children
}

// IndexInParent is part of interface syntax.Node.
func (node *Node) IndexInParent() int {
	p := node.Node.Parent()
	if p == nil {
		return -1
	}
	inx := p.IndexOfChild(&node.Node)
	if inx < 0 {
		tracer().Errorf("node %s not found among children of its parent", node.kind)
	}
	return inx
}

// AddChild appends a child node. The child is connected to this node as its
// parent. AddChild returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		node.Node.AddChild(&ch.Node)
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node) InsertChildAt(i int, ch *Node) *Node {
	if ch != nil {
		node.Node.InsertChildAt(i, &ch.Node)
	}
	return node
}

// Isolate removes a node from its parent and returns it. Later siblings move
// up by one position.
func (node *Node) Isolate() *Node {
	if node != nil {
		node.Node.Isolate()
	}
	return node
}

// Child is a concurrency-safe way to get a child of a node.
func (node *Node) Child(n int) (*Node, bool) {
	if ch, ok := node.Node.Child(n); ok {
		return ch.Payload, true
	}
	return nil, false
}

// String returns the subtree as an S-expression.
func (node *Node) String() string {
	var b strings.Builder
	node.writeSExpr(&b)
	return b.String()
}

func (node *Node) writeSExpr(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(node.kind)
	for _, ch := range node.Node.Children() {
		b.WriteByte(' ')
		ch.Payload.writeSExpr(b)
	}
	b.WriteByte(')')
}

// GoString is used by %#v and includes the span.
func (node *Node) GoString() string {
	return fmt.Sprintf("(Node %s[%d:%d] #ch=%d)", node.kind, node.start, node.end, node.ChildCount())
}
