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

package assemble

import (
	"context"
	"testing"

	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/grid"
	"github.com/nbodygrid/nbodygrid/kernel"
)

func TestReduceSumsAcrossTeam(t *testing.T) {
	const p, teamsize, b = 4, 2, 3
	results := make([][]kernel.Result, p)

	err := comm.Launch(context.Background(), p, func(w *comm.World) error {
		info := grid.Setup(int(w.Rank()), p, teamsize)
		team, _, err := grid.Channels(w, info)
		if err != nil {
			return err
		}
		rI := make([]kernel.Result, b)
		for i := range rI {
			rI[i] = kernel.Result(w.Rank()) + kernel.Result(i)
		}
		out, err := Reduce(team, rI)
		if err != nil {
			return err
		}
		results[w.Rank()] = out
		return nil
	})
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	// Team 0 = ranks {0,1}, team 1 = ranks {2,3}.
	wantTeam0 := []kernel.Result{1, 3, 5} // (0+0,0+1,0+2) + (1+0,1+1,1+2)
	wantTeam1 := []kernel.Result{5, 7, 9}

	if got := results[0]; !equalResults(got, wantTeam0) {
		t.Errorf("team 0 leader (rank 0) = %v, want %v", got, wantTeam0)
	}
	if results[1] != nil {
		t.Errorf("team 0 non-leader (rank 1) = %v, want nil", results[1])
	}
	if got := results[2]; !equalResults(got, wantTeam1) {
		t.Errorf("team 1 leader (rank 2) = %v, want %v", got, wantTeam1)
	}
	if results[3] != nil {
		t.Errorf("team 1 non-leader (rank 3) = %v, want nil", results[3])
	}
}

func TestGatherConcatenatesInRowOrder(t *testing.T) {
	const p, teamsize, b = 4, 2, 2
	numTeams := p / teamsize
	var master []kernel.Result

	err := comm.Launch(context.Background(), p, func(w *comm.World) error {
		info := grid.Setup(int(w.Rank()), p, teamsize)
		_, row, err := grid.Channels(w, info)
		if err != nil {
			return err
		}
		if info.TeamRank != 0 {
			return nil
		}
		leaderRI := make([]kernel.Result, b)
		for i := range leaderRI {
			leaderRI[i] = kernel.Result(info.Team*10 + i)
		}
		out, err := Gather(row, leaderRI, b)
		if err != nil {
			return err
		}
		if out != nil {
			master = out
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	want := make([]kernel.Result, numTeams*b)
	for team := 0; team < numTeams; team++ {
		for i := 0; i < b; i++ {
			want[team*b+i] = kernel.Result(team*10 + i)
		}
	}
	if !equalResults(master, want) {
		t.Errorf("master = %v, want %v", master, want)
	}
}

func TestGatherRingConcatenatesAllRanks(t *testing.T) {
	const p, b = 4, 2
	var master []kernel.Result

	err := comm.Launch(context.Background(), p, func(w *comm.World) error {
		rI := make([]kernel.Result, b)
		for i := range rI {
			rI[i] = kernel.Result(int(w.Rank())*10 + i)
		}
		out, err := GatherRing(w, rI)
		if err != nil {
			return err
		}
		if out != nil {
			master = out
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	want := make([]kernel.Result, p*b)
	for rank := 0; rank < p; rank++ {
		for i := 0; i < b; i++ {
			want[rank*b+i] = kernel.Result(rank*10 + i)
		}
	}
	if !equalResults(master, want) {
		t.Errorf("master = %v, want %v", master, want)
	}
}

func equalResults(a, b []kernel.Result) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
