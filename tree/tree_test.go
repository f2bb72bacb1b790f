package tree

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates a root with fanout children, each with fanout children.
func buildTree(fanout int) *Node[string] {
	root := NewNode("root")
	for i := 0; i < fanout; i++ {
		ch := NewNode(fmt.Sprintf("n%d", i))
		root.AddChild(ch)
		for j := 0; j < fanout; j++ {
			ch.AddChild(NewNode(fmt.Sprintf("n%d.%d", i, j)))
		}
	}
	return root
}

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.tree")
	defer teardown()
	//
	root := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c).InsertChildAt(1, b)
	assert.Equal(t, 3, root.ChildCount())
	assert.Equal(t, 1, root.IndexOfChild(b))
	assert.True(t, b.Parent() == root)
	b.Isolate()
	assert.Nil(t, b.Parent())
	assert.Equal(t, -1, root.IndexOfChild(b))
	assert.Equal(t, 1, root.IndexOfChild(c))
	root.InsertChildAt(-5, b)
	ch, ok := root.Child(0)
	require.True(t, ok)
	assert.Equal(t, "b", ch.Payload)
	_, ok = root.Child(3)
	assert.False(t, ok)
}

func TestTopDownVisitsParentsFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.tree")
	defer teardown()
	//
	root := buildTree(6)
	var mx sync.Mutex
	order := make(map[*Node[string]]int)
	positions := make(map[*Node[string]]int)
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		mx.Lock()
		defer mx.Unlock()
		order[n] = len(order)
		positions[n] = position
		if parent != nil && n.Parent() != parent {
			return nil, fmt.Errorf("node %s handed wrong parent", n.Payload)
		}
		return n, nil
	}
	nodes, err := NewWalker(root).TopDown(action).Promise()()
	require.NoError(t, err)
	assert.Len(t, nodes, 1+6+36)
	assert.Len(t, order, 1+6+36)
	for n, i := range order {
		if p := n.Parent(); p != nil {
			assert.Less(t, order[p], i, "parent of %s must be processed first", n.Payload)
			assert.Equal(t, p.IndexOfChild(n), positions[n])
		}
	}
}

func TestTopDownErrorStopsDescent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.tree")
	defer teardown()
	//
	root := buildTree(3)
	errStop := errors.New("stop")
	var mx sync.Mutex
	var visited []string
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		mx.Lock()
		visited = append(visited, n.Payload)
		mx.Unlock()
		if n.Payload == "n1" {
			return nil, errStop
		}
		return n, nil
	}
	nodes, err := NewWalker(root).TopDown(action).Promise()()
	assert.ErrorIs(t, err, errStop)
	assert.Len(t, nodes, 1+3+9-1-3)
	assert.NotContains(t, visited, "n1.0")
	assert.Contains(t, visited, "n2.2")
}

func TestChainedTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.tree")
	defer teardown()
	//
	root := buildTree(4)
	leafs := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		if n.ChildCount() == 0 {
			return n, nil
		}
		return nil, nil
	}
	var mx sync.Mutex
	count := 0
	counting := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		mx.Lock()
		count++
		mx.Unlock()
		return n, nil
	}
	nodes, err := NewWalker(root).TopDown(leafs).TopDown(counting).Promise()()
	require.NoError(t, err)
	assert.Len(t, nodes, 16)
	assert.Equal(t, 16, count)
}

func TestWalkerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.tree")
	defer teardown()
	//
	var action Action[string] = func(n *Node[string], _ *Node[string], _ int) (*Node[string], error) {
		return n, nil
	}
	_, err := NewWalker[string](nil).TopDown(action).Promise()()
	assert.ErrorIs(t, err, ErrEmptyTree)

	_, err = NewWalker(NewNode("x")).TopDown(nil).Promise()()
	assert.ErrorIs(t, err, ErrInvalidFilter)

	w := NewWalker(NewNode("x")).TopDown(action)
	nodes, err := w.Promise()()
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
	_, err = w.Promise()()
	assert.ErrorIs(t, err, ErrNoMoreFiltersAccepted)
}
