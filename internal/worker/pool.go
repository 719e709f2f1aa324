// Package worker provides an ordered worker pool for fanning out search
// branches.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// Item is one unit of work tagged with its position in the input.
type Item[T any] struct {
	Value T
	Index int
}

// Result is the processed form of an Item.
type Result[R any] struct {
	Value R
	Index int
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Pool manages a pool of workers. Results arrive in completion order; Map
// restores input order.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Item[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

type poolSettings struct {
	workers int
	buffer  int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.buffer = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 10.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	s := poolSettings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		numWorkers:  s.workers,
		bufferSize:  s.buffer,
		workChan:    make(chan Item[T], s.buffer),
		resultChan:  make(chan Result[R], s.buffer),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- Result[R]{Index: item.Index, Err: err}
			continue
		}
		v, err := p.processFunc(ctx, item.Value)
		p.resultChan <- Result[R]{Value: v, Index: item.Index, Err: err}
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item Item[T]) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}

// Map processes items on n workers and returns the results in input order.
// The first error stops the pool; items not yet started are skipped. With
// n <= 1 the items are processed on the calling goroutine.
func Map[T, R any](ctx context.Context, n int, items []T, fn ProcessFunc[T, R]) ([]R, error) {
	out := make([]R, len(items))
	if n <= 1 || len(items) <= 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := fn(ctx, item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	pool := NewPool(fn, WithWorkers(min(n, len(items))), WithBufferSize(len(items)))
	pool.Start(ctx)
	for i, item := range items {
		pool.Submit(Item[T]{Value: item, Index: i})
	}
	go pool.Close()

	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			pool.Stop()
			continue
		}
		out[r.Index] = r.Value
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
