package styledtree_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/style"
	"github.com/npillmayer/tss/style/cascade"
	"github.com/npillmayer/tss/style/tss"
	"github.com/npillmayer/tss/styledtree"
	"github.com/npillmayer/tss/syntax"
	"github.com/npillmayer/tss/syntax/syntree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetSrc = `
comment: comment;
block > comment: attr: bold;
function + identifier: fg:#ffcc00;
identifier ~ block: bg: 236;
`

var theme = style.Theme{
	style.Comment: {Fg: style.Named(style.DarkGrey), Attrs: style.Italic},
}

func sampleTree() *syntree.Node {
	return syntree.MustParse(`(source_file
		(comment)
		(function_declaration (function) (identifier) (parameter_list)
			(block (comment) (call (function) (identifier)))))`)
}

func TestBuildMirrorsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	root := sampleTree()
	sheet := tss.MustParse(sheetSrc)
	sroot, err := styledtree.Build(context.Background(), root, sheet, theme)
	require.NoError(t, err)
	t.Logf("\n%s", styledtree.Dump(sroot))

	var count int
	sroot.Walk(func(sn *styledtree.StyNode) {
		count++
		assert.Equal(t, cascade.Resolve(sheet, sn.SyntaxNode(), theme), sn.Style(), sn.Kind())
		assert.Equal(t, syntax.KeyOf(sn.SyntaxNode()), sn.Key())
	})
	assert.Equal(t, len(syntax.Collect(root)), count)

	fn := sroot.ChildNodes()[1]
	block := fn.ChildNodes()[3]
	assert.Equal(t, "block", block.Kind())
	assert.Equal(t, style.ANSI(236), block.Style().Bg)
	comment := block.ChildNodes()[0]
	assert.Equal(t, style.Italic|style.Bold, comment.Style().Attrs)
	assert.True(t, strings.Contains(styledtree.Dump(sroot), "comment {fg:darkgrey, attr:bold|italic}"))
}

func TestStyledTreeIsSyntaxTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	sheet := tss.MustParse(sheetSrc)
	sroot, err := styledtree.Build(context.Background(), sampleTree(), sheet, theme)
	require.NoError(t, err)
	assert.Nil(t, sroot.Parent())
	// matching on the styled tree gives the same results as on the syntax tree
	sroot.Walk(func(sn *styledtree.StyNode) {
		assert.Equal(t, sn.Style(), cascade.Resolve(sheet, sn, theme), sn.Kind())
	})
}

func TestBuildCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root := syntree.New("root")
	for i := 0; i < 1000; i++ {
		root.AddChild(syntree.NewWithSpan("leaf", i, i+1))
	}
	_, err := styledtree.Build(ctx, root, tss.MustParse(sheetSrc), theme)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildNil(t *testing.T) {
	sroot, err := styledtree.Build(context.Background(), nil, tss.Empty(), nil)
	assert.NoError(t, err)
	assert.Nil(t, sroot)
	assert.Equal(t, "<empty styled tree>\n", styledtree.Dump(nil))
}

func TestStylerCaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	root := sampleTree()
	st := styledtree.NewStyler(tss.MustParse(sheetSrc), theme)
	comment, _ := root.Child(0)
	s := st.StyleOf(comment)
	assert.Equal(t, style.Named(style.DarkGrey), s.Fg)
	assert.Equal(t, 1, st.CacheSize())
	assert.Equal(t, s, st.StyleOf(comment))
	assert.Equal(t, 1, st.CacheSize())

	_, err := st.Build(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, len(syntax.Collect(root)), st.CacheSize())
}

func TestStylerSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	node := syntree.New("A")
	st := styledtree.NewStyler(tss.MustParse("A: fg:red;"), nil)
	v1 := st.Version()
	assert.Equal(t, style.Named(style.Red), st.StyleOf(node).Fg)
	v2 := st.Swap(tss.MustParse("A: fg:blue;"), nil)
	assert.Greater(t, v2, v1)
	assert.Equal(t, 0, st.CacheSize())
	assert.Equal(t, style.Named(style.Blue), st.StyleOf(node).Fg)
	st.Swap(nil, nil)
	assert.True(t, st.Stylesheet().Empty())
	assert.True(t, st.StyleOf(node).IsEmpty())
}

func TestStylerEmptySiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	root := syntree.New("call")
	first, second := syntree.New("identifier"), syntree.New("identifier")
	root.AddChild(first)
	root.AddChild(second)
	st := styledtree.NewStyler(tss.MustParse("identifier + identifier: fg:red;"), nil)
	assert.True(t, st.StyleOf(first).IsEmpty())
	assert.Equal(t, style.Named(style.Red), st.StyleOf(second).Fg)
	assert.Equal(t, 2, st.CacheSize())

	sroot, err := styledtree.Build(context.Background(), root, st.Stylesheet(), nil)
	require.NoError(t, err)
	children := sroot.ChildNodes()
	require.Len(t, children, 2)
	assert.NotEqual(t, children[0].Key(), children[1].Key())
	assert.Equal(t, style.Named(style.Red), children[1].Style().Fg)
}

func TestStylerInvalidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	root := syntree.MustParse("(p (a) (b))")
	st := styledtree.NewStyler(tss.MustParse("a + b: fg:green;"), nil)
	b, _ := root.Child(1)
	assert.Equal(t, style.Named(style.Green), st.StyleOf(b).Fg)
	// mutate the tree: b no longer follows a
	a, _ := root.Child(0)
	a.Isolate()
	root.AddChild(a)
	v := st.Version()
	st.Invalidate()
	assert.Equal(t, v, st.Version())
	assert.Equal(t, 0, st.CacheSize())
	assert.False(t, st.StyleOf(b).Fg.IsSet())
}

func TestStylerConcurrentUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.styledtree")
	defer teardown()
	//
	root := sampleTree()
	nodes := syntax.Collect(root)
	sheets := []*tss.Stylesheet{tss.MustParse(sheetSrc), tss.MustParse("comment: fg:red;")}
	st := styledtree.NewStyler(sheets[0], theme)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, n := range nodes {
					st.StyleOf(n)
				}
				if i == 0 && j%10 == 0 {
					st.Swap(sheets[j%20/10], theme)
				}
				if i == 1 && j%7 == 0 {
					st.Invalidate()
				}
			}
		}(i)
	}
	wg.Wait()
	for _, n := range nodes {
		assert.Equal(t, cascade.Resolve(st.Stylesheet(), n, theme), st.StyleOf(n))
	}
}
