package tree

import (
	"runtime"
	"sync"
)

// Tree operations are carried out by concurrent worker goroutines.
// As tree operations may be chained, a pipeline of filter stages is
// constructed. Every chained operation is reflected by a filter stage.
// Filters read Nodes from an input channel and put processed Nodes on
// an output channel. This way we create a little pipes&filter design.
//
// Every filter launches a small pool of workers. An overall counter
// tracks the number of work packages (i.e. Nodes) in the pipeline, whether
// they sit in a channel or are being worked on. As soon as the counter drops
// to zero, the done channel is closed and the workers terminate.
//
// Every filter performs a specific task, reflected by a workerTask function.
// Filter tasks may use additional data, provided as an untyped filterdata
// argument. Filter task functions are responsible for decoding it.

// Minimum and maximum number of concurrent workers for a tree operation
// (filter).
const (
	minWorkerCount int = 3
	maxWorkerCount int = 10
)

// Length of the channels connecting stages and of a filter's buffer queue.
const (
	resultsLength   int = 16
	maxBufferLength int = 128
)

func workerCount() int {
	n := runtime.NumCPU()
	if n > maxWorkerCount {
		n = maxWorkerCount
	} else if n < minWorkerCount {
		n = minWorkerCount
	}
	return n
}

// Workers will be tasked a series of workerTasks.
//
// node: input tree node
// isbuffered: is the input node from this stage's buffer queue?
// udata: filter data and node-local data
// emit: function to emit a result node to the next stage
// buffer: function to queue a node in the local buffer
type workerTask[T comparable] func(node *Node[T], isbuffered bool, udata userdata,
	emit func(*Node[T]), buffer func(*Node[T], interface{})) error

// nodePackage is the type which is transported in a pipeline.
//
// 'nodelocal' lets filters store arbitrary data together with the node
// in their buffer queue. It is dropped when the node moves on to the
// next stage.
type nodePackage[T comparable] struct {
	node      *Node[T]
	nodelocal interface{}
}

// userdata is handed to a task: data global to a filter (filterdata)
// and data accompanying a single node (nodelocal).
type userdata struct {
	filterdata interface{}
	nodelocal  interface{}
}

// filter is a stage of a pipeline.
type filter[T comparable] struct {
	input      <-chan nodePackage[T] // connected to predecessor
	results    chan nodePackage[T]   // results of this stage
	queue      chan nodePackage[T]   // buffer queue to re-schedule nodes
	task       workerTask[T]         // the task this filter performs
	filterdata interface{}           // information needed to perform task
	pipe       *pipeline[T]          // error destination and work counter
}

func newFilter[T comparable](task workerTask[T], filterdata interface{}) *filter[T] {
	return &filter[T]{
		results:    make(chan nodePackage[T], resultsLength),
		queue:      make(chan nodePackage[T], maxBufferLength),
		task:       task,
		filterdata: filterdata,
	}
}

func (f *filter[T]) start() {
	n := workerCount()
	for i := 0; i < n; i++ {
		go f.worker(i + 1) // startup worker no. #wno
	}
}

// worker receives upstream and buffered work packages until the pipeline
// is done.
func (f *filter[T]) worker(wno int) {
	push := func(node *Node[T]) {
		f.pushResult(node)
	}
	pushBuf := func(node *Node[T], nodelocal interface{}) {
		f.pushBuffer(node, nodelocal)
	}
	var pkg nodePackage[T]
	var buffered bool
	for {
		select {
		case pkg = <-f.input:
			buffered = false
		case pkg = <-f.queue:
			buffered = true
		case <-f.pipe.done:
			return
		}
		udata := userdata{filterdata: f.filterdata, nodelocal: pkg.nodelocal}
		if err := f.task(pkg.node, buffered, udata, push, pushBuf); err != nil {
			f.pipe.reportError(err)
		}
		tracer().Debugf("filter worker #%d finished task for %v", wno, pkg.node)
		f.pipe.queuecount.Done() // worker has finished a work package
	}
}

// pushResult puts a node on the results channel of a filter stage
// (non-blocking).
func (f *filter[T]) pushResult(node *Node[T]) {
	f.pipe.queuecount.Add(1)
	select { // try to send it synchronously without blocking
	case f.results <- nodePackage[T]{node: node}:
	default: // nope, we'll have to go async
		go func() {
			f.results <- nodePackage[T]{node: node}
		}()
	}
}

// pushBuffer puts a node on the buffer queue of a filter (non-blocking).
func (f *filter[T]) pushBuffer(node *Node[T], nodelocal interface{}) {
	pkg := nodePackage[T]{node, nodelocal}
	f.pipe.queuecount.Add(1) // overall workload increases
	select {
	case f.queue <- pkg:
	default:
		go func() {
			f.queue <- pkg
		}()
	}
}

// pipeline is a chain of filters to perform tasks on Nodes.
// Filters, i.e., pipeline stages, are connected by channels.
type pipeline[T comparable] struct {
	sync.Mutex                     // guards stages and lasterror
	queuecount sync.WaitGroup      // overall count of work packages
	lasterror  error               // last error reported by a filter
	stages     []*filter[T]        // chain of stages/filters
	input      chan nodePackage[T] // initial workload
	results    chan nodePackage[T] // where final output of this pipeline goes to
	done       chan struct{}       // closed when no more work is left
	running    bool
}

func newPipeline[T comparable]() *pipeline[T] {
	pipe := &pipeline[T]{
		input: make(chan nodePackage[T], 1),
		done:  make(chan struct{}),
	}
	pipe.results = pipe.input // short-circuit, will be extended with filters
	return pipe
}

// appendFilter appends a filter as the last stage of the pipeline.
func (pipe *pipeline[T]) appendFilter(f *filter[T]) {
	pipe.Lock()
	defer pipe.Unlock()
	f.input = pipe.results // current output is input to new filter stage
	f.pipe = pipe
	pipe.stages = append(pipe.stages, f)
	pipe.results = f.results
}

// startProcessing puts the initial node on the input channel and starts
// the workers of all stages, plus a watchdog waiting for the overall number
// of work packages to drop to zero. It returns the final results channel
// and the done channel.
func (pipe *pipeline[T]) startProcessing(initial *Node[T]) (<-chan nodePackage[T], <-chan struct{}) {
	pipe.Lock()
	defer pipe.Unlock()
	if !pipe.running {
		pipe.running = true
		pipe.queuecount.Add(1)
		pipe.input <- nodePackage[T]{node: initial} // input is buffered
		for _, f := range pipe.stages {
			f.start()
		}
		go func() {
			pipe.queuecount.Wait() // wait for empty queues
			tracer().Debugf("tree pipeline with %d stages done", len(pipe.stages))
			close(pipe.done)
		}()
	}
	return pipe.results, pipe.done
}

func (pipe *pipeline[T]) reportError(err error) {
	pipe.Lock()
	defer pipe.Unlock()
	pipe.lasterror = err
}

func (pipe *pipeline[T]) lastError() error {
	pipe.Lock()
	defer pipe.Unlock()
	return pipe.lasterror
}

// waitForCompletion blocks until all work packages of a pipeline are done.
// It receives the results of the final filter stage of the pipeline and
// collects them into a slice of Nodes without duplicates.
func waitForCompletion[T comparable](results <-chan nodePackage[T], done <-chan struct{},
	counter *sync.WaitGroup) []*Node[T] {
	//
	var selection []*Node[T]
	seen := make(map[*Node[T]]bool)
	for {
		select {
		case pkg := <-results:
			if !seen[pkg.node] {
				seen[pkg.node] = true
				selection = append(selection, pkg.node)
			}
			counter.Done() // we removed a value => count down
		case <-done:
			return selection
		}
	}
}
