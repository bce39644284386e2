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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/kernel"
	"github.com/nbodygrid/nbodygrid/profile"
	"github.com/nbodygrid/nbodygrid/schedule"
)

// scheduleFunc is the common shape every schedule.* function has.
type scheduleFunc func(ctx context.Context, world *comm.World, k kernel.Kernel, sources []kernel.Point, charges []kernel.Charge, opts schedule.Options) ([]kernel.Result, error)

// runDistributed launches p ranks, scatters sources/charges from rank 0,
// runs fn on every rank, and returns rank 0's assembled result plus the
// averaged phase profile.
func runDistributed(p int, fn scheduleFunc, k kernel.Kernel, sources []kernel.Point, charges []kernel.Charge, opts schedule.Options) ([]kernel.Result, map[profile.Phase]time.Duration, error) {
	var result []kernel.Result
	var averages map[profile.Phase]time.Duration
	var recorder profile.Recorder
	opts.Profiler = &recorder

	err := comm.Launch(context.Background(), p, func(w *comm.World) error {
		var s []kernel.Point
		var c []kernel.Charge
		if w.Rank() == 0 {
			s, c = sources, charges
		}
		out, err := fn(context.Background(), w, k, s, c, opts)
		if err != nil {
			return err
		}
		if out != nil {
			result = out
		}
		report, err := recorder.Report(w)
		if err != nil {
			return err
		}
		if report != nil {
			averages = report
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result, averages, nil
}

// verifyAgainstReference loads data/invsq_n{N}_s{seed}.txt and reports
// the L2-relative error against got; a missing reference file is not an
// error (verification is opportunistic, per spec.md §7: numerical
// divergence is reported, never fatal).
func verifyAgainstReference(got []kernel.Result, n int, seed int64) {
	path := referenceFile(n, seed)
	want, err := readScalars(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: no cached reference at %s, skipping\n", path)
		return
	}
	wantResults := make([]kernel.Result, len(want))
	for i, v := range want {
		wantResults[i] = kernel.Result(v)
	}
	relErr := l2RelativeError(got, wantResults)
	fmt.Fprintf(os.Stderr, "L2 relative error vs %s: %.3e\n", path, relErr)
}
