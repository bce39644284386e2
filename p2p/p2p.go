// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package p2p is the local, dense block evaluator every schedule calls:
// one rank's kernel-weighted sum over a block of sources against a block
// of targets. The four forms are named distinctly rather than overloaded
// (overload resolution is a source-language artifact, not a design
// property) and each accumulates additively into a caller-zeroed output
// slice.
package p2p

import (
	"sync"

	"github.com/nbodygrid/nbodygrid/internal/workerpool"
	"github.com/nbodygrid/nbodygrid/kernel"
)

// ParallelThreshold is the row count above which EvalSymDiag and
// EvalSymPair hand rows off to a workerpool.Pool instead of running the
// loop on the calling goroutine directly. Below it, pool dispatch
// overhead would dominate the O(B) row cost.
const ParallelThreshold = 256

// EvalSymDiag computes the symmetric diagonal block: for every unordered
// pair (i,j), i<=j within xJ, accumulate both directions into rI with
// exactly one kernel evaluation per unordered pair. Callers must zero rI
// first; xJ, cJ and rI must be the same length.
func EvalSymDiag(pool *workerpool.Pool, k kernel.Kernel, xJ []kernel.Point, cJ []kernel.Charge, rI []kernel.Result) {
	n := len(xJ)
	// A row range also writes rows j beyond its own, so a range that is
	// not the whole block accumulates into a private slice, summed into
	// rI in row order once every range is done.
	parts := make([][]kernel.Result, n+1)
	run := func(start, end int) {
		acc := rI
		if start != 0 || end != n {
			acc = make([]kernel.Result, n)
			parts[start] = acc
		}
		for i := start; i < end; i++ {
			acc[i] += k.Weighted(xJ[i], xJ[i], cJ[i])
			for j := i + 1; j < n; j++ {
				v := k.Eval(xJ[i], xJ[j])
				acc[i] += v * kernel.Result(cJ[j])
				acc[j] += v * kernel.Result(cJ[i])
			}
		}
	}
	parallelRows(pool, n, run)
	for _, part := range parts {
		for i, v := range part {
			rI[i] += v
		}
	}
}

// EvalSymPair computes the symmetric off-diagonal block: for every pair
// (i in I, j in J), the single scalar K(xI_i,xJ_j) == K(xJ_j,xI_i) (the
// kernel is symmetric) is computed once via Eval and multiplied by each
// side's own charge, accumulating into rI_i and rJ_j — exactly one
// kernel evaluation per pair, per spec.md §4.2. Callers must zero rI and
// rJ first.
func EvalSymPair(pool *workerpool.Pool, k kernel.Kernel, xJ []kernel.Point, cJ []kernel.Charge, rJ []kernel.Result, xI []kernel.Point, cI []kernel.Charge, rI []kernel.Result) {
	n := len(xI)
	// Every row range writes all of rJ, so a range that is not the whole
	// block accumulates its rJ share into a private slice, summed into rJ
	// in row order once every range is done.
	parts := make([][]kernel.Result, n+1)
	run := func(start, end int) {
		accJ := rJ
		if start != 0 || end != n {
			accJ = make([]kernel.Result, len(xJ))
			parts[start] = accJ
		}
		for i := start; i < end; i++ {
			for j := range xJ {
				v := k.Eval(xI[i], xJ[j])
				rI[i] += v * kernel.Result(cJ[j])
				accJ[j] += v * kernel.Result(cI[i])
			}
		}
	}
	parallelRows(pool, n, run)
	for _, part := range parts {
		for j, v := range part {
			rJ[j] += v
		}
	}
}

// EvalAsym computes the asymmetric off-diagonal block: for every pair
// (i,j), accumulate only into rI. Used on boundary iterations or when
// the partner block's contribution is not needed. Callers must zero rI
// first.
func EvalAsym(pool *workerpool.Pool, k kernel.Kernel, xJ []kernel.Point, cJ []kernel.Charge, xI []kernel.Point, rI []kernel.Result) {
	n := len(xI)
	run := func(start, end int) {
		for i := start; i < end; i++ {
			for j := range xJ {
				rI[i] += k.Weighted(xI[i], xJ[j], cJ[j])
			}
		}
	}
	parallelRows(pool, n, run)
}

// EvalAsymDistinct is EvalAsym for the case where targets and sources
// live in entirely separate arrays (Source != Target): for every pair
// (i,j), accumulate K(tI_i, xJ_j)*cJ_j into rI_i. Callers must zero rI
// first.
func EvalAsymDistinct(pool *workerpool.Pool, k kernel.Kernel, xJ []kernel.Point, cJ []kernel.Charge, tI []kernel.Point, rI []kernel.Result) {
	EvalAsym(pool, k, xJ, cJ, tI, rI)
}

// parallelRows runs run(0,n) directly when n is below ParallelThreshold
// or pool is nil, and otherwise splits the block's n target rows into
// pool.NumWorkers() contiguous row ranges and hands one to each worker.
// The chunk-size math lives here, against this package's own row-range
// shape, rather than in a generic collection-partitioning helper: a
// "row range of a kernel accumulation block" is exactly what every
// caller in this package (EvalSymDiag, EvalSymPair, EvalAsym) needs
// split, and nothing else in the module partitions work this way.
func parallelRows(pool *workerpool.Pool, n int, run func(start, end int)) {
	if pool == nil || n < ParallelThreshold {
		run(0, n)
		return
	}

	workers := min(pool.NumWorkers(), n)
	if workers <= 1 {
		run(0, n)
		return
	}

	rowsPerWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			wg.Done()
			continue
		}
		pool.SubmitRows(start, end, run, &wg)
	}
	wg.Wait()
}
