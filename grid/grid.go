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

// Package grid derives the 2-D team/row process-grid coordinates of a
// rank and builds the two subgroup channels every team schedule
// (TeamScatter, Symmetric) communicates over.
package grid

import (
	"github.com/nbodygrid/nbodygrid/comm"
)

// Info is one rank's coordinates within the process grid.
type Info struct {
	P, Teamsize, NumTeams int
	Team, TeamRank        int
}

// Validate checks the process-grid divisibility invariants spec.md §3
// names: teamsize | P, teamsize² ≤ P, and numTeams | N. It returns a
// descriptive error (never a panic) so callers can route it through
// comm.World.Abort.
func Validate(p, teamsize, n int) error {
	if teamsize <= 0 || p <= 0 {
		return &invariantError{msg: "P and teamsize must be positive"}
	}
	if p%teamsize != 0 {
		return &invariantError{msg: "teamsize must divide P"}
	}
	if teamsize*teamsize > p {
		return &invariantError{msg: "teamsize² must be ≤ P"}
	}
	numTeams := p / teamsize
	if n%numTeams != 0 {
		return &invariantError{msg: "N must be divisible by num_teams (P/teamsize)"}
	}
	return nil
}

type invariantError struct{ msg string }

func (e *invariantError) Error() string { return e.msg }

// Setup derives a rank's grid coordinates from (rank, P, teamsize). It
// does not itself validate the grid — callers call Validate first and
// route any failure through comm.World.Abort, since a bad grid must kill
// every rank uniformly, not just the one that notices.
func Setup(rank, p, teamsize int) Info {
	return Info{
		P:        p,
		Teamsize: teamsize,
		NumTeams: p / teamsize,
		Team:     rank / teamsize,
		TeamRank: rank % teamsize,
	}
}

// Channels splits world's group into the team channel (rank's teammates,
// ordered by rank) and the row channel (ranks sharing rank's team_rank
// across teams, ordered by rank — so position in the row channel equals
// team).
func Channels(world *comm.World, info Info) (team, row *comm.Group, err error) {
	wg := comm.WorldGroup(world)
	rank := int(world.Rank())

	team, err = comm.Split(wg, info.Team, rank)
	if err != nil {
		return nil, nil, err
	}
	row, err = comm.Split(wg, info.TeamRank, rank)
	if err != nil {
		return nil, nil, err
	}
	return team, row, nil
}
