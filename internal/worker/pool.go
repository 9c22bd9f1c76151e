// Package worker analyses batches of positions on a fixed set of goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Moves []string // UCI moves played from FEN before analysis
	Index int      // position in the input, used to restore order
}

// ProcessResult is what a worker found for one item.
type ProcessResult struct {
	Index   int
	FEN     string // position after Moves were played
	Legal   []string
	InCheck bool
	Perft   uint64
	Err     error
}

// ProcessFunc analyses a single item. It must be safe to call from several
// goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to numWorkers goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults to one worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues item, blocking while the buffer is full. It returns
// ctx.Err() if ctx is done before the item is queued.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.workChan <- item:
		return nil
	}
}

// Stop makes workers drain the queue without processing it.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the queue, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items and returns their results in input order. If ctx is
// cancelled the pool is stopped and the results gathered so far are
// returned with ctx.Err().
func Run(ctx context.Context, items []WorkItem, fn ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	p := NewPool(fn, opts...)
	p.Start()

	go func() {
		defer p.Close()
		for _, item := range items {
			if err := p.Submit(ctx, item); err != nil {
				p.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, ctx.Err()
}
