// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 100} {
		pool := New(4)

		results := make([]int, n)
		var calls atomic.Int32
		pool.ParallelFor(n, func(start, end int) {
			calls.Add(1)
			for i := start; i < end; i++ {
				results[i] = i * 2
			}
		})
		pool.Close()

		for i := range n {
			if results[i] != i*2 {
				t.Errorf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
		if got := int(calls.Load()); got > min(n, 4) {
			t.Errorf("n=%d: fn called %d times, want at most %d", n, got, min(n, 4))
		}
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn should not be called for n=0")
	}
}

func TestParallelForReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var total atomic.Int64
	fn := func(start, end int) {
		for i := start; i < end; i++ {
			total.Add(int64(i))
		}
	}
	for range 50 {
		pool.ParallelFor(10, fn)
	}
	if got := total.Load(); got != 50*45 {
		t.Errorf("total = %d, want %d", got, 50*45)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	fn := func(start, end int) {
		for j := start; j < end; j++ {
			_ = j * j
		}
	}
	b.ReportAllocs()
	for b.Loop() {
		pool.ParallelFor(1000, fn)
	}
}
