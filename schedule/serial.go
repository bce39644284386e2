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

	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/kernel"
	"github.com/nbodygrid/nbodygrid/p2p"
	"github.com/nbodygrid/nbodygrid/profile"
)

// Serial is the P=1 reference baseline: a single diagonal symmetric
// block evaluation over the whole input, with no communication at all.
// It requires world.Size() == 1 and aborts otherwise.
func Serial(ctx context.Context, world *comm.World, k kernel.Kernel, sources []kernel.Point, charges []kernel.Charge, opts Options) ([]kernel.Result, error) {
	if world.Size() != 1 {
		return nil, world.Abort(1, "Serial requires world size 1, got %d", world.Size())
	}

	rI := zeroResults(len(sources))
	timed(opts, profile.Compute, func() {
		p2p.EvalSymDiag(opts.Pool, k, sources, charges, rI)
	})
	return rI, nil
}
