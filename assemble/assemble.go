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

// Package assemble consolidates per-rank accumulators into the
// length-N result every schedule ultimately returns on master: a
// team-local reduction followed by a row-ordered gather.
package assemble

import (
	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/internal/vecmath"
	"github.com/nbodygrid/nbodygrid/kernel"
)

// Reduce sums rI element-wise across every member of team, returning the
// team-local sum at the team leader (position 0) and nil at every other
// position.
func Reduce(team *comm.Group, rI []kernel.Result) ([]kernel.Result, error) {
	return comm.Reduce(team, 0, rI, sumInto)
}

// Gather concatenates each row position's leaderRI, B elements at a
// time, into the full-length result at master (position 0 of row); every
// other position gets nil. B is the block size every position
// contributes.
func Gather(row *comm.Group, leaderRI []kernel.Result, b int) ([]kernel.Result, error) {
	blocks, err := comm.Gather(row, 0, leaderRI)
	if err != nil {
		return nil, err
	}
	if blocks == nil {
		return nil, nil
	}
	out := make([]kernel.Result, 0, len(blocks)*b)
	for _, block := range blocks {
		out = append(out, block...)
	}
	return out, nil
}

// GatherRing is the ring schedule's assembly step: a world-channel
// gather with no team dimension, since teamsize=1 means every rank is
// its own team of one.
func GatherRing(world *comm.World, rI []kernel.Result) ([]kernel.Result, error) {
	g := comm.WorldGroup(world)
	blocks, err := comm.Gather(g, 0, rI)
	if err != nil {
		return nil, err
	}
	if blocks == nil {
		return nil, nil
	}
	total := 0
	for _, block := range blocks {
		total += len(block)
	}
	out := make([]kernel.Result, 0, total)
	for _, block := range blocks {
		out = append(out, block...)
	}
	return out, nil
}

// sumInto returns the element-wise sum of a and b, the combine function
// every Reduce call in this package uses.
func sumInto(a, b []kernel.Result) []kernel.Result {
	out := make([]kernel.Result, len(a))
	copy(out, a)
	vecmath.SumInto(out, b)
	return out
}
