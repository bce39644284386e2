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
	"github.com/nbodygrid/nbodygrid/kernel"
	"github.com/nbodygrid/nbodygrid/p2p"
	"github.com/nbodygrid/nbodygrid/profile"
)

// Ring is the teamsize=1 baseline schedule: every rank's block of
// sources rotates once around the full world ring, with no symmetry
// exploitation, per spec.md §4.5.1.
func Ring(ctx context.Context, world *comm.World, k kernel.Kernel, sources []kernel.Point, charges []kernel.Charge, opts Options) ([]kernel.Result, error) {
	p := world.Size()
	// Only rank 0 knows N up front; broadcast it so every rank can
	// validate the grid before the scatter that depends on it.
	n, err := comm.Bcast(comm.WorldGroup(world), 0, len(sources))
	if err != nil {
		return nil, err
	}

	if err := validateGrid(world, p, 1, n); err != nil {
		return nil, err
	}

	wg := comm.WorldGroup(world)

	var b block
	timed(opts, profile.Split, func() {
		b, err = scatterBlocks(wg, sources, charges)
	})
	if err != nil {
		return nil, err
	}

	xI := append([]kernel.Point{}, b.X...)
	rI := zeroResults(len(b.X))

	timed(opts, profile.Compute, func() {
		p2p.EvalSymDiag(opts.Pool, k, b.X, b.C, rI)
	})

	rank := int(world.Rank())
	for step := 1; step < p; step++ {
		dst := comm.Rank((rank + 1) % p)
		src := comm.Rank((rank - 1 + p) % p)

		var next block
		timed(opts, profile.SendRecv, func() {
			next, err = comm.SendRecvReplace(world, dst, b, src)
		})
		if err != nil {
			return nil, err
		}
		b = next

		timed(opts, profile.Compute, func() {
			p2p.EvalAsym(opts.Pool, k, b.X, b.C, xI, rI)
		})
	}

	var result []kernel.Result
	timed(opts, profile.Reduce, func() {
		result, err = assemble.GatherRing(world, rI)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
