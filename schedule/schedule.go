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

// Package schedule implements the four distributable evaluation
// schedules: Serial, Ring, TeamScatter, Symmetric. Each is a pure
// function of (world, kernel, sources, charges, options) run identically
// on every rank — the "distributed evaluation engine" that is the
// subject of this module.
package schedule

import (
	"time"

	"github.com/samber/lo"

	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/grid"
	"github.com/nbodygrid/nbodygrid/internal/vecmath"
	"github.com/nbodygrid/nbodygrid/internal/workerpool"
	"github.com/nbodygrid/nbodygrid/kernel"
	"github.com/nbodygrid/nbodygrid/profile"
)

// Options configures a schedule run. Teamsize is ignored by Serial and
// Ring (which behave as if Teamsize=1). Pool, if non-nil, is handed to
// every p2p call for intra-rank row parallelism; Profiler, if non-nil,
// records phase timings for profile.Recorder.Report.
type Options struct {
	Teamsize int
	Pool     *workerpool.Pool
	Profiler *profile.Recorder
}

// block is one rank's current source/charge pair, the unit that rotates
// through ring and row shifts. xJ and cJ are always the same length.
type block struct {
	X []kernel.Point
	C []kernel.Charge
}

// validateGrid checks the process-grid invariants and, on failure, aborts
// every rank uniformly rather than letting only the noticing rank fail.
func validateGrid(world *comm.World, p, teamsize, n int) error {
	if err := grid.Validate(p, teamsize, n); err != nil {
		return world.Abort(1, "invalid process grid: %v", err)
	}
	return nil
}

// scatterBlocks splits sources/charges (non-nil only at the caller
// holding rank 0 in g) into len(g.Size())-many contiguous chunks and
// distributes one to each member, returning the caller's own chunk.
func scatterBlocks(g *comm.Group, sources []kernel.Point, charges []kernel.Charge) (block, error) {
	var chunks []block
	if sources != nil {
		n := g.Size()
		xChunks := lo.Chunk(sources, len(sources)/n)
		cChunks := lo.Chunk(charges, len(charges)/n)
		chunks = make([]block, n)
		for i := range chunks {
			chunks[i] = block{X: xChunks[i], C: cChunks[i]}
		}
	}
	return comm.Scatter(g, 0, chunks)
}

// rowShift sends this rank's block to the row-channel position `team -
// step` and receives from `team + step` (mod numTeams), the single
// long-distance send/recv that realizes "shift by step hops" without an
// explicit hop-by-hop chain — see the ordering guarantees in §5.
func rowShift(world *comm.World, row *comm.Group, team, numTeams, step int, b block) (block, error) {
	dstPos := mod(team-step, numTeams)
	srcPos := mod(team+step, numTeams)
	dst := row.WorldRank(dstPos)
	src := row.WorldRank(srcPos)
	return comm.SendRecvReplace(world, dst, b, src)
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func zeroResults(n int) []kernel.Result {
	return make([]kernel.Result, n)
}

func addInto(dst, src []kernel.Result) {
	vecmath.SumInto(dst, src)
}

// timed runs fn and, if opts.Profiler is set, records its duration under
// phase. A nil Profiler makes this a plain fn() call: no time.Now or
// time.Since is taken.
func timed(opts Options, phase profile.Phase, fn func()) {
	if opts.Profiler == nil {
		fn()
		return
	}
	start := time.Now()
	fn()
	opts.Profiler.Add(phase, time.Since(start))
}
