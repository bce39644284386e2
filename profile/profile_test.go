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

package profile

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nbodygrid/nbodygrid/comm"
)

func TestRecorderReportAveragesAcrossRanks(t *testing.T) {
	const p = 4
	var avg map[Phase]time.Duration

	err := comm.Launch(context.Background(), p, func(w *comm.World) error {
		var r Recorder
		r.Add(Compute, time.Duration(int(w.Rank())+1)*time.Millisecond)
		r.Add(Reduce, 10*time.Millisecond)

		out, err := r.Report(w)
		if err != nil {
			return err
		}
		if out != nil {
			avg = out
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	wantCompute := (1 + 2 + 3 + 4) * time.Millisecond / p
	if avg[Compute] != wantCompute {
		t.Errorf("avg[Compute] = %v, want %v", avg[Compute], wantCompute)
	}
	if avg[Reduce] != 10*time.Millisecond {
		t.Errorf("avg[Reduce] = %v, want %v", avg[Reduce], 10*time.Millisecond)
	}
	if avg[Split] != 0 {
		t.Errorf("avg[Split] = %v, want 0", avg[Split])
	}
}

func TestClockElapsedIsPositive(t *testing.T) {
	var c Clock
	c.Start()
	time.Sleep(time.Millisecond)
	if c.Elapsed() <= 0 {
		t.Errorf("Elapsed() = %v, want > 0", c.Elapsed())
	}
}

func TestWriteReportIncludesEveryPhase(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, map[Phase]time.Duration{
		Compute:  5 * time.Millisecond,
		SendRecv: 2 * time.Millisecond,
	})
	out := buf.String()
	for _, phase := range []string{"compute", "split", "shift", "send-recv", "reduce"} {
		if !strings.Contains(out, phase) {
			t.Errorf("report missing phase %q:\n%s", phase, out)
		}
	}
}
