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

package schedule

import (
	"context"

	"github.com/nbodygrid/nbodygrid/assemble"
	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/grid"
	"github.com/nbodygrid/nbodygrid/kernel"
	"github.com/nbodygrid/nbodygrid/p2p"
	"github.com/nbodygrid/nbodygrid/profile"
	"github.com/nbodygrid/nbodygrid/transform"
)

// Symmetric is the symmetric team-scatter schedule, the intellectual
// heart of the engine: each off-diagonal block pair is computed once and
// its transpose result exchanged with the partner team, per spec.md
// §4.5.3. k must be Symmetric() and sources must equal the target set
// (the kernel plug-in contract's additional requirement for this
// schedule, per spec.md §4.1).
func Symmetric(ctx context.Context, world *comm.World, k kernel.Kernel, sources []kernel.Point, charges []kernel.Charge, opts Options) ([]kernel.Result, error) {
	if !k.Symmetric() {
		return nil, world.Abort(1, "Symmetric requires a symmetric kernel")
	}

	n, err := comm.Bcast(comm.WorldGroup(world), 0, len(sources))
	if err != nil {
		return nil, err
	}
	if err := validateGrid(world, world.Size(), opts.Teamsize, n); err != nil {
		return nil, err
	}

	info := grid.Setup(int(world.Rank()), world.Size(), opts.Teamsize)
	team, row, err := grid.Channels(world, info)
	if err != nil {
		return nil, err
	}

	b, err := setupTeamBlock(world, team, row, info, sources, charges)
	if err != nil {
		return nil, err
	}

	// b already carries this member's initial offset shift; the team's own
	// target block is the leader's copy, whose shift is zero.
	own, err := comm.Bcast(team, 0, b)
	if err != nil {
		return nil, err
	}
	xI := append([]kernel.Point{}, own.X...)
	cI := append([]kernel.Charge{}, own.C...)
	rI := zeroResults(len(b.X))
	rJ := zeroResults(len(b.X))

	T, C := info.NumTeams, info.Teamsize
	lastIter := transform.LastIter(T, C)
	selfRank := comm.Rank(info.Team*C + info.TeamRank)

	dst := comm.NoRank
	timed(opts, profile.Compute, func() {
		if info.TeamRank == 0 {
			p2p.EvalSymDiag(opts.Pool, k, b.X, b.C, rI)
			return
		}
		iDst, dstRank := transform.Partner(0, info.Team, info.TeamRank, T, C)
		if iDst != lastIter {
			p2p.EvalSymPair(opts.Pool, k, b.X, b.C, rJ, xI, cI, rI)
			dst = comm.Rank(dstRank)
		} else {
			p2p.EvalAsym(opts.Pool, k, b.X, b.C, xI, rI)
		}
	})

	iPrimeOffset := 1
	if info.TeamRank == 0 {
		iPrimeOffset = 0
	}
	ratio := T / C

	for currIter := 1; currIter <= lastIter; currIter++ {
		iSrc := ratio - (currIter - 1) - iPrimeOffset
		_, srcRank := transform.Partner(iSrc, info.Team, info.TeamRank, T, C)
		src := comm.Rank(srcRank)
		if iSrc == lastIter || src == selfRank {
			src = comm.NoRank
		}

		var tempRI []kernel.Result
		timed(opts, profile.SendRecv, func() {
			tempRI, err = comm.SendRecv(world, dst, rJ, src)
		})
		if err != nil {
			return nil, err
		}
		if src != comm.NoRank {
			addInto(rI, tempRI)
		}

		var next block
		timed(opts, profile.Shift, func() {
			next, err = rowShift(world, row, info.Team, info.NumTeams, info.Teamsize, b)
		})
		if err != nil {
			return nil, err
		}
		b = next

		timed(opts, profile.Compute, func() {
			iDst, dstRank := transform.Partner(currIter, info.Team, info.TeamRank, T, C)
			if iDst != lastIter {
				rJ = zeroResults(len(rJ))
				p2p.EvalSymPair(opts.Pool, k, b.X, b.C, rJ, xI, cI, rI)
				dst = comm.Rank(dstRank)
			} else {
				p2p.EvalAsym(opts.Pool, k, b.X, b.C, xI, rI)
				dst = comm.NoRank
			}
		})
	}

	var leaderRI []kernel.Result
	timed(opts, profile.Reduce, func() {
		leaderRI, err = assemble.Reduce(team, rI)
	})
	if err != nil {
		return nil, err
	}

	if info.TeamRank != 0 {
		return nil, nil
	}

	var result []kernel.Result
	timed(opts, profile.Reduce, func() {
		result, err = assemble.Gather(row, leaderRI, len(rI))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
