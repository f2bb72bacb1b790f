package syntree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tss/syntax"
	tp "github.com/xlab/treeprint"
)

// ErrSExpr is the error class for malformed S-expressions.
var ErrSExpr = errors.New("malformed S-expression")

// Parse reads a syntax tree from an S-expression.
func Parse(src string) (*Node, error) {
	r := &sexprReader{src: src}
	r.skipSpace()
	root, err := r.node()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if r.pos < len(r.src) {
		return nil, r.errorf("trailing input after root node")
	}
	tracer().Debugf("read syntax tree with root %s", root.kind)
	return root, nil
}

// MustParse is like Parse, but panics on malformed input. It is intended for
// trees in tests and package-level variables.
func MustParse(src string) *Node {
	root, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return root
}

type sexprReader struct {
	src string
	pos int
}

func (r *sexprReader) node() (*Node, error) {
	if r.pos >= len(r.src) || r.src[r.pos] != '(' {
		return nil, r.errorf("expected '('")
	}
	start := r.pos
	r.pos++
	r.skipSpace()
	kind := r.word()
	if kind == "" {
		return nil, r.errorf("missing node kind")
	}
	n := New(kind)
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			return nil, r.errorf("unterminated node %q", kind)
		}
		switch r.src[r.pos] {
		case ')':
			r.pos++
			n.start, n.end = start, r.pos
			return n, nil
		case '(':
			ch, err := r.node()
			if err != nil {
				return nil, err
			}
			n.AddChild(ch)
		default:
			w := r.word()
			if len(w) < 2 || w[len(w)-1] != ':' { // only field labels may appear here
				return nil, r.errorf("unexpected atom %q in node %q", w, kind)
			}
		}
	}
}

func (r *sexprReader) word() string {
	start := r.pos
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case ' ', '\t', '\n', '\r', '(', ')':
			return r.src[start:r.pos]
		}
		r.pos++
	}
	return r.src[start:r.pos]
}

func (r *sexprReader) skipSpace() {
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case ' ', '\t', '\n', '\r':
			r.pos++
		default:
			return
		}
	}
}

func (r *sexprReader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSExpr, r.pos, fmt.Sprintf(format, args...))
}

// --- Printing --------------------------------------------------------------

// Dump renders a syntax tree, given by any syntax.Node, as an indented
// tree for debugging.
func Dump(root syntax.Node) string {
	if root == nil {
		return "<empty tree>\n"
	}
	p := tp.NewWithRoot(label(root))
	for _, ch := range root.Children() {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, node syntax.Node) {
	children := node.Children()
	if len(children) == 0 {
		p.AddNode(label(node))
		return
	}
	branch := p.AddBranch(label(node))
	for _, ch := range children {
		ppt(branch, ch)
	}
}

func label(node syntax.Node) string {
	start, end := node.Span()
	return fmt.Sprintf("%s [%d…%d]", node.Kind(), start, end)
}
