package styledtree

import (
	"context"

	"github.com/npillmayer/tss/style"
	"github.com/npillmayer/tss/style/cascade"
	"github.com/npillmayer/tss/style/tss"
	"github.com/npillmayer/tss/syntax"
	"github.com/npillmayer/tss/tree"
)

// Build creates a styled tree for the syntax tree rooted at root, resolving
// every node against sheet and theme. Build returns early with the context's
// error if ctx is cancelled.
func Build(ctx context.Context, root syntax.Node, sheet *tss.Stylesheet, theme style.HighlightTable) (*StyNode, error) {
	return build(ctx, root, func(n syntax.Node, _ syntax.Key) style.Style {
		return cascade.Resolve(sheet, n, theme)
	})
}

type resolver func(syntax.Node, syntax.Key) style.Style

func build(ctx context.Context, root syntax.Node, resolve resolver) (*StyNode, error) {
	if root == nil {
		return nil, nil
	}
	sroot := mirror(root)
	action := func(n, _ *tree.Node[*StyNode], _ int) (*tree.Node[*StyNode], error) {
		if err := ctx.Err(); err != nil {
			return nil, err // stop descending
		}
		sn := n.Payload
		sn.computed = resolve(sn.syntax, sn.key)
		return n, nil
	}
	future := tree.NewWalker(&sroot.Node).TopDown(action).Promise()
	styled, err := future()
	if err != nil {
		tracer().Infof("styling cancelled: %v", err)
		return nil, err
	}
	tracer().Debugf("styled %d nodes", len(styled))
	return sroot, nil
}

// mirror creates the unstyled mirror tree.
func mirror(root syntax.Node) *StyNode {
	sroot := newStyNode(root, nil, -1)
	var descend func(sn *StyNode)
	descend = func(sn *StyNode) {
		for i, ch := range sn.syntax.Children() {
			descend(newStyNode(ch, sn, i))
		}
	}
	descend(sroot)
	return sroot
}
