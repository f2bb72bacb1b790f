package tsadapter

import (
	"context"
	"errors"

	"github.com/npillmayer/tss/syntax"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/toml"
)

const indexUnknown = -2

// Node wraps a tree-sitter node. Tree-sitter hands out a new node value for
// every navigation step, so Nodes are compared with syntax.KeyOf, never by
// pointer.
type Node struct {
	ts        *sitter.Node
	namedOnly bool
	index     int // position in parent, or indexUnknown
}

var _ syntax.Node = (*Node)(nil)

// Wrap returns a handle for a tree-sitter node. The handle and all nodes
// reachable from it include anonymous nodes. Wrap(nil) returns nil.
func Wrap(n *sitter.Node) syntax.Node {
	return wrap(n, false, indexUnknown)
}

// WrapNamed is like Wrap, but navigation skips anonymous nodes.
func WrapNamed(n *sitter.Node) syntax.Node {
	return wrap(n, true, indexUnknown)
}

func wrap(n *sitter.Node, namedOnly bool, index int) syntax.Node {
	if n == nil || n.IsNull() {
		return nil
	}
	return &Node{ts: n, namedOnly: namedOnly, index: index}
}

// TSNode returns the wrapped tree-sitter node.
func (node *Node) TSNode() *sitter.Node {
	return node.ts
}

// Kind is part of interface syntax.Node. It is the tree-sitter node type.
func (node *Node) Kind() string {
	return node.ts.Type()
}

// Span is part of interface syntax.Node.
func (node *Node) Span() (int, int) {
	return int(node.ts.StartByte()), int(node.ts.EndByte())
}

// Parent is part of interface syntax.Node.
func (node *Node) Parent() syntax.Node {
	return wrap(node.ts.Parent(), node.namedOnly, indexUnknown)
}

// Children is part of interface syntax.Node.
func (node *Node) Children() []syntax.Node {
	count := node.childCount()
	children := make([]syntax.Node, 0, count)
	for i := 0; i < count; i++ {
		if ch := wrap(node.child(i), node.namedOnly, i); ch != nil {
			children = append(children, ch)
		}
	}
	return children
}

// IndexInParent is part of interface syntax.Node. Handles created by
// navigating downwards know their index; for others it is searched for.
func (node *Node) IndexInParent() int {
	if node.index != indexUnknown {
		return node.index
	}
	p := node.ts.Parent()
	if p == nil || p.IsNull() {
		node.index = -1
		return -1
	}
	parent := &Node{ts: p, namedOnly: node.namedOnly}
	for i := 0; i < parent.childCount(); i++ {
		if ch := parent.child(i); ch != nil && ch.Equal(node.ts) {
			node.index = i
			return i
		}
	}
	tracer().P("kind", node.Kind()).Errorf("tree-sitter node not found among children of its parent")
	return -1
}

func (node *Node) childCount() int {
	if node.namedOnly {
		return int(node.ts.NamedChildCount())
	}
	return int(node.ts.ChildCount())
}

func (node *Node) child(i int) *sitter.Node {
	if node.namedOnly {
		return node.ts.NamedChild(i)
	}
	return node.ts.Child(i)
}

// Text returns the source text covered by a node.
func Text(n syntax.Node, src []byte) string {
	start, end := n.Span()
	if start < 0 || end > len(src) || start > end {
		return ""
	}
	return string(src[start:end])
}

// ErrNoTree is returned if tree-sitter does not produce a tree.
var ErrNoTree = errors.New("tree-sitter did not produce a syntax tree")

// Parse parses src with a tree-sitter grammar.
// The caller owns the returned tree and should Close it when done.
func Parse(ctx context.Context, lang *sitter.Language, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrNoTree
	}
	tracer().Debugf("parsed %d bytes of source", len(src))
	return tree, nil
}

// ParseGo parses Go source code with the tree-sitter Go grammar.
func ParseGo(ctx context.Context, src []byte) (*sitter.Tree, error) {
	return Parse(ctx, golang.GetLanguage(), src)
}

// ParseTOML parses a TOML document with the tree-sitter TOML grammar.
func ParseTOML(ctx context.Context, src []byte) (*sitter.Tree, error) {
	return Parse(ctx, toml.GetLanguage(), src)
}
