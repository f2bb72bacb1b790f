package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a read-only handle for a node of a syntax tree.
//
// Parent returns nil for the root of a tree. Implementations must return an
// untyped nil in this case, not a typed nil pointer wrapped in the interface.
// IndexInParent is the position of the node within its parent's children,
// or -1 for the root.
type Node interface {
	Kind() string
	Parent() Node
	Children() []Node
	IndexInParent() int
	Span() (start, end int)
}

// Key identifies a node within one version of a syntax tree. Handles for
// the same node may not be pointer-equal (tree-sitter creates a new handle
// for every navigation step), therefore caches use keys instead of handles.
//
// Path lists the child positions leading from the root to the node, e.g.
// "/0/3/1"; it is empty for the root. Path alone identifies a node, Kind and
// Span guard against handing a key to a changed tree.
// Keys are only stable as long as the tree does not change.
type Key struct {
	Kind       string
	Start, End int
	Path       string
}

// KeyOf returns the identity key for a node.
func KeyOf(n Node) Key {
	if n == nil {
		return Key{}
	}
	var positions []int
	for m := n; m.Parent() != nil; m = m.Parent() {
		positions = append(positions, m.IndexInParent())
	}
	var b strings.Builder
	for i := len(positions) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(positions[i]))
	}
	start, end := n.Span()
	return Key{Kind: n.Kind(), Start: start, End: end, Path: b.String()}
}

// ChildKey returns the key of n, which is child number index of the node
// identified by k. It saves walking up to the root for every node of a tree.
func (k Key) ChildKey(n Node, index int) Key {
	start, end := n.Span()
	return Key{Kind: n.Kind(), Start: start, End: end, Path: k.Path + "/" + strconv.Itoa(index)}
}

// Depth returns the number of ancestors of the node identified by k.
func (k Key) Depth() int {
	return strings.Count(k.Path, "/")
}

func (k Key) String() string {
	path := k.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s[%d:%d]@%s", k.Kind, k.Start, k.End, path)
}

// Depth returns the number of ancestors of n.
func Depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// PreviousSibling returns the sibling immediately preceding n, if any.
func PreviousSibling(n Node) (Node, bool) {
	inx := n.IndexInParent()
	if inx <= 0 {
		return nil, false
	}
	parent := n.Parent()
	if parent == nil {
		return nil, false
	}
	siblings := parent.Children()
	if inx > len(siblings) {
		tracer().P("kind", n.Kind()).Errorf("index %d out of range of parent's children", inx)
		return nil, false
	}
	return siblings[inx-1], true
}

// PrecedingSiblings returns all siblings before n, nearest first.
func PrecedingSiblings(n Node) []Node {
	inx := n.IndexInParent()
	parent := n.Parent()
	if inx <= 0 || parent == nil {
		return nil
	}
	siblings := parent.Children()
	if inx > len(siblings) {
		inx = len(siblings)
	}
	preceding := make([]Node, 0, inx)
	for i := inx - 1; i >= 0; i-- {
		preceding = append(preceding, siblings[i])
	}
	return preceding
}

// Walk calls f for every node of the tree rooted at root, in document order
// (parents before children). If f returns false, the children of the
// current node are skipped.
func Walk(root Node, f func(Node) bool) {
	if root == nil {
		return
	}
	if !f(root) {
		return
	}
	for _, ch := range root.Children() {
		Walk(ch, f)
	}
}

// Collect returns all nodes of the tree rooted at root in document order.
func Collect(root Node) []Node {
	var nodes []Node
	Walk(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
