package syntree_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/syntax"
	"github.com/npillmayer/tss/syntax/syntree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.syntax")
	defer teardown()
	//
	root, err := syntree.Parse(`(source_file
		(function_declaration name: (identifier) (block (comment))))`)
	require.NoError(t, err)
	t.Logf("\n%s", syntree.Dump(root))
	assert.Equal(t, "source_file", root.Kind())
	assert.Nil(t, root.Parent(), "root must have an untyped nil parent")
	assert.Equal(t, -1, root.IndexInParent())
	assert.Equal(t, "(source_file (function_declaration (identifier) (block (comment))))", root.String())

	fn, ok := root.Child(0)
	require.True(t, ok)
	assert.Equal(t, 2, fn.ChildCount())
	block, _ := fn.Child(1)
	assert.Equal(t, 1, block.IndexInParent())
	assert.True(t, fn == block.ParentNode())
	comment, _ := block.Child(0)
	assert.Equal(t, 3, syntax.Depth(comment))
	assert.Equal(t, "/0/1/0", syntax.KeyOf(comment).Path)
	assert.Equal(t, 3, syntax.KeyOf(comment).Depth())
}

func TestParseSExprSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.syntax")
	defer teardown()
	//
	src := "(a (b) (c))"
	root := syntree.MustParse(src)
	start, end := root.Span()
	assert.Equal(t, 0, start)
	assert.Equal(t, len(src), end)
	c, _ := root.Child(1)
	start, end = c.Span()
	assert.Equal(t, "(c)", src[start:end])
}

func TestParseSExprErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.syntax")
	defer teardown()
	//
	for _, src := range []string{"", "a", "()", "(a (b)", "(a) (b)", "(a b)"} {
		_, err := syntree.Parse(src)
		assert.True(t, errors.Is(err, syntree.ErrSExpr), "expected %q to be rejected", src)
	}
}

func TestIsolateAndInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.syntax")
	defer teardown()
	//
	root := syntree.MustParse("(p (a) (b) (c))")
	b, _ := root.Child(1)
	b.Isolate()
	assert.Nil(t, b.Parent())
	assert.Equal(t, "(p (a) (c))", root.String())
	c, _ := root.Child(1)
	assert.Equal(t, 1, c.IndexInParent())

	root.InsertChildAt(0, syntree.New("x"))
	assert.Equal(t, "(p (x) (a) (c))", root.String())
	assert.Equal(t, 2, c.IndexInParent())
	root.InsertChildAt(17, b)
	assert.Equal(t, "(p (x) (a) (c) (b))", root.String())
}

func TestConcurrentAddChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.syntax")
	defer teardown()
	//
	root := syntree.New("root")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			root.AddChild(syntree.New("leaf"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, root.ChildCount())
	for i, ch := range root.Children() {
		assert.Equal(t, i, ch.IndexInParent())
	}
}
