package tree

import (
	"errors"
)

// ErrInvalidFilter is reported if a pipeline filter step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is reported if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is reported if a client already called Promise(),
// but tried to re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients create a Walker for a (sub-)tree, chain
// operations on it and finally call Promise():
//
//    w := NewWalker(node)
//    futureResult := w.TopDown(action).Promise()
//    nodes, err := futureResult()
//
// Processing starts with the call to Promise(). Calling the promise blocks
// until all concurrent work on the tree has finished. Clients must call
// Promise() as the final link of the chain, even if they do not expect a
// result, to learn about errors.
type Walker[T comparable] struct {
	initial   *Node[T]     // initial node of (sub-)tree
	pipe      *pipeline[T] // pipeline of filters to perform work on tree nodes
	promising bool         // client has called Promise()
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first operation will have this initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-pipeline of operations, an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial, pipe: newPipeline[T]()}
}

func (w *Walker[T]) appendFilterForTask(task workerTask[T], filterdata interface{}) *Walker[T] {
	if w.promising {
		tracer().Errorf(ErrNoMoreFiltersAccepted.Error())
		w.pipe.reportError(ErrNoMoreFiltersAccepted)
		return w
	}
	w.pipe.appendFilter(newFilter(task, filterdata))
	return w
}

// Promise is a future synchronisation point. It starts processing of all
// operations of the walker and returns a function, which clients call to
// receive the resulting nodes and the last error that occurred. Calling the
// promise blocks until all concurrent operations on the tree nodes have
// finished. The resulting nodes are a set; their order is unspecified.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	if w.promising {
		return func() ([]*Node[T], error) {
			return nil, ErrNoMoreFiltersAccepted
		}
	}
	w.promising = true // will block calls to establish new filters
	signal := make(chan struct{})
	var selection []*Node[T]
	var lasterror error
	results, done := w.pipe.startProcessing(w.initial)
	go func() {
		defer close(signal)
		selection = waitForCompletion(results, done, &w.pipe.queuecount)
		lasterror = w.pipe.lastError()
	}()
	return func() ([]*Node[T], error) {
		<-signal
		return selection, lasterror
	}
}

// ----------------------------------------------------------------------

// Action is a function type to operate on tree nodes.
// Resulting nodes will be pushed to the next pipeline stage, if
// no error occurred.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) each input node.
// The traversal guarantees that parents are always processed before
// their children; siblings are processed concurrently.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		w.pipe.reportError(ErrInvalidFilter)
		return w
	}
	return w.appendFilterForTask(topDown[T], action)
}

// ad-hoc container
type parentAndPosition[T comparable] struct {
	parent   *Node[T]
	position int
}

func topDown[T comparable](node *Node[T], isBuffered bool, udata userdata,
	push func(*Node[T]), pushBuf func(*Node[T], interface{})) error {
	//
	if !isBuffered {
		pushBuf(node, nil) // simply move incoming nodes over to buffer queue
		return nil
	}
	action := udata.filterdata.(Action[T])
	var parent *Node[T]
	var position int
	if pp, ok := udata.nodelocal.(parentAndPosition[T]); ok {
		parent, position = pp.parent, pp.position
	} else if parent = node.Parent(); parent != nil {
		position = parent.IndexOfChild(node)
	}
	result, err := action(node, parent, position)
	if err != nil {
		return err // do not descend further
	}
	if result != nil {
		push(result) // result -> next pipeline stage
	}
	for position, ch := range node.Children() { // hand over node as parent
		pushBuf(ch, parentAndPosition[T]{node, position})
	}
	return nil
}
