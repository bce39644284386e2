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

// TeamScatter is the 2-D grid schedule with no symmetry exploitation,
// per spec.md §4.5.2.
func TeamScatter(ctx context.Context, world *comm.World, k kernel.Kernel, sources []kernel.Point, charges []kernel.Charge, opts Options) ([]kernel.Result, error) {
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
	rI := zeroResults(len(b.X))

	teamLastIter := transform.TeamLastIter(info.P, info.Teamsize)
	boundaryTeamRank := 0
	if info.NumTeams%info.Teamsize != 0 {
		boundaryTeamRank = info.NumTeams % info.Teamsize
	}

	timed(opts, profile.Compute, func() {
		if info.TeamRank == 0 {
			p2p.EvalSymDiag(opts.Pool, k, b.X, b.C, rI)
		} else {
			p2p.EvalAsym(opts.Pool, k, b.X, b.C, xI, rI)
		}
	})

	for currIter := 1; currIter <= teamLastIter; currIter++ {
		if currIter == teamLastIter && boundaryTeamRank != 0 && info.TeamRank >= boundaryTeamRank {
			continue
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
			p2p.EvalAsym(opts.Pool, k, b.X, b.C, xI, rI)
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

// setupTeamBlock scatters the initial per-team block over the row
// channel of team_rank=0 leaders, broadcasts it within each team, and
// applies the per-team_rank initial offset shift, per spec.md §4.5.2
// steps 1-3.
func setupTeamBlock(world *comm.World, team, row *comm.Group, info grid.Info, sources []kernel.Point, charges []kernel.Charge) (block, error) {
	var leaderBlock block
	var err error
	if info.TeamRank == 0 {
		leaderBlock, err = scatterBlocks(row, sources, charges)
		if err != nil {
			return block{}, err
		}
	}

	b, err := comm.Bcast(team, 0, leaderBlock)
	if err != nil {
		return block{}, err
	}

	return rowShift(world, row, info.Team, info.NumTeams, info.TeamRank, b)
}
