// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
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

func TestSubmitRowsCoversEveryRowExactlyOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	chunk := 25

	fn := func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		wg.Add(1)
		pool.SubmitRows(start, end, fn, &wg)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestSubmitRowsRunsEveryRangeExactlyOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var count atomic.Int32
	countRange := func(start, end int) { count.Add(int32(end - start)) }

	var wg sync.WaitGroup
	const ranges, rowsPerRange = 37, 3
	wg.Add(ranges)
	for r := 0; r < ranges; r++ {
		start := r * rowsPerRange
		pool.SubmitRows(start, start+rowsPerRange, countRange, &wg)
	}
	wg.Wait()

	if want := int32(ranges * rowsPerRange); count.Load() != want {
		t.Errorf("count = %d, want %d", count.Load(), want)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolRunsSynchronously(t *testing.T) {
	pool := New(4)
	pool.Close()

	var ran bool
	var wg sync.WaitGroup
	wg.Add(1)
	pool.SubmitRows(0, 10, func(start, end int) { ran = true }, &wg)
	wg.Wait()

	if !ran {
		t.Error("SubmitRows on a closed pool did not run fn")
	}
}
