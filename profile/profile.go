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

// Package profile times each schedule phase with Go's monotonic clock
// and reduces the per-rank totals to an average at master, matching
// spec.md §4.7.
package profile

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nbodygrid/nbodygrid/comm"
)

// Phase names one stage of a schedule's inner loop.
type Phase int

const (
	Compute Phase = iota
	Split
	Shift
	SendRecv
	Reduce
	numPhases
)

func (p Phase) String() string {
	switch p {
	case Compute:
		return "compute"
	case Split:
		return "split"
	case Shift:
		return "shift"
	case SendRecv:
		return "send-recv"
	case Reduce:
		return "reduce"
	default:
		return "unknown"
	}
}

// Clock is a monotonic stopwatch; time.Now is already monotonic in Go, so
// this exists only to give callers a start()/elapsed() pair to mirror
// spec.md §4.7's vocabulary.
type Clock struct {
	start time.Time
}

// Start begins (or restarts) the clock.
func (c *Clock) Start() { c.start = time.Now() }

// Elapsed returns the time since the last Start call.
func (c *Clock) Elapsed() time.Duration { return time.Since(c.start) }

// Recorder accumulates wall-clock totals per Phase for one rank.
type Recorder struct {
	totals [numPhases]time.Duration
}

// Add accumulates d into phase's running total.
func (r *Recorder) Add(phase Phase, d time.Duration) {
	r.totals[phase] += d
}

// Total returns this rank's accumulated duration for phase, without
// involving any collective communication.
func (r *Recorder) Total(phase Phase) time.Duration {
	return r.totals[phase]
}

// Report reduces every phase's total across world to rank 0 with a sum
// and divides by world.Size(), returning the per-phase average. Every
// rank must call Report; non-root ranks get a nil map.
func (r *Recorder) Report(world *comm.World) (map[Phase]time.Duration, error) {
	g := comm.WorldGroup(world)
	totals, err := comm.Reduce(g, 0, r.totals, sumTotals)
	if err != nil {
		return nil, err
	}
	if world.Rank() != 0 {
		return nil, nil
	}
	out := make(map[Phase]time.Duration, numPhases)
	for p := Phase(0); p < numPhases; p++ {
		out[p] = totals[p] / time.Duration(world.Size())
	}
	return out, nil
}

func sumTotals(a, b [numPhases]time.Duration) [numPhases]time.Duration {
	var sum [numPhases]time.Duration
	for i := range sum {
		sum[i] = a[i] + b[i]
	}
	return sum
}

// WriteReport prints averages, one phase per line, through a
// golang.org/x/text/message printer. Each duration is printed with %v,
// that is in time.Duration's own String form, without digit grouping.
func WriteReport(w io.Writer, averages map[Phase]time.Duration) {
	p := message.NewPrinter(language.English)
	for phase := Phase(0); phase < numPhases; phase++ {
		d := averages[phase]
		p.Fprintf(w, "%-10s %v\n", phase, d)
	}
}
