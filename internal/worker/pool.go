// Package worker replays move scripts on a pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// WorkItem is one script queued for replay.
type WorkItem struct {
	Script notation.Script
	Index  int // position in the input stream
}

// ProcessResult is what replaying a script produced, plus the decisions the
// caller makes about it.
type ProcessResult struct {
	Script    notation.Script
	Index     int
	Board     *chess.Board // final position, nil if never replayed
	Status    engine.Status
	Signature hashing.GameSignature
	Plies     int // player moves played before any error
	Error     error

	Matched      bool // passed the caller's filters
	ShouldOutput bool
	OutputToDup  bool // seen before; goes to the duplicate file
}

// ProcessFunc turns a work item into a result. It must be safe to call from
// several goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds submitted items to a fixed number of goroutines. Results come
// back in completion order, not submission order.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result queues. Values
// below one are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// New returns a pool running process. By default it has one worker and
// queues of ten.
func New(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, buffer: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.work {
		// Once stopped, queued items are drained unprocessed.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the queue is full. It returns false
// without queueing once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.work <- item
	return true
}

// Stop tells the workers to skip everything still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
// Only the submitting goroutine may call it.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one result per processed item.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
