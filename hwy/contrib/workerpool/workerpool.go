// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running
// independent blocks of work in parallel, such as the voices of a
// voice.Bank. Workers are spawned once and reused for every call.
//
// Dispatch itself does not allocate: work items are plain values carrying
// the caller's function and index range, and the completion barrier lives
// in the Pool. Callers that want an allocation-free ParallelFor should pass
// a function value created once (for example a method value stored at
// construction) rather than a fresh closure.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	process := bank.processRange // created once
//	for block := range blocks {
//	    pool.ParallelFor(numVoices, process)
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// ParallelFor calls on the same Pool are serialized.
type Pool struct {
	numWorkers int
	workC      chan workItem

	mu        sync.Mutex // held for the duration of a ParallelFor
	barrier   sync.WaitGroup
	closeOnce sync.Once
	closed    atomic.Bool
}

// workItem is one contiguous range of a ParallelFor.
type workItem struct {
	fn         func(start, end int)
	start, end int
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn(item.start, item.end)
		p.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool after any running ParallelFor returns.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker, and blocks until all ranges complete.
//
// fn receives (start, end) indices where work should process [start, end).
// A closed pool, or one range worth of work, runs fn on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	chunks := (n + chunkSize - 1) / chunkSize

	p.barrier.Add(chunks)
	for start := 0; start < n; start += chunkSize {
		p.workC <- workItem{fn: fn, start: start, end: min(start+chunkSize, n)}
	}
	p.barrier.Wait()
}
