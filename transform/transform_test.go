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

package transform

import "testing"

// TestPartnerInvolution verifies the closed-form identity spec.md §9 asks
// for: applying Partner to its own image recovers the original
// (iteration, rank), for every (T, C) combination and every iteration in
// the valid range i*C+c < T (the domain on which the symmetric schedule
// acts on Partner's result; its one call outside it, on the receive side
// of the first iteration for team_rank 0, maps back to the caller and is
// discarded).
func TestPartnerInvolution(t *testing.T) {
	for _, tc := range []struct{ T, C int }{
		{1, 1}, {2, 1}, {4, 1}, {4, 2}, {8, 2}, {8, 4}, {9, 3}, {16, 4}, {5, 1}, {6, 2},
	} {
		T, C := tc.T, tc.C
		last := LastIter(T, C)
		for i := 0; i <= last; i++ {
			for team := 0; team < T; team++ {
				for c := 0; c < C; c++ {
					if i*C+c >= T {
						continue // outside the domain whose result the schedule uses
					}
					dstIter, dstRank := Partner(i, team, c, T, C)
					dstTeam, dstTeamRank := dstRank/C, dstRank%C
					backIter, backRank := Partner(dstIter, dstTeam, dstTeamRank, T, C)
					wantRank := team*C + c
					if backIter != i || backRank != wantRank {
						t.Errorf("T=%d C=%d i=%d team=%d c=%d: Partner(Partner(...)) = (%d,%d), want (%d,%d)",
							T, C, i, team, c, backIter, backRank, i, wantRank)
					}
				}
			}
		}
	}
}

func TestPartnerRanksWithinGrid(t *testing.T) {
	for _, tc := range []struct{ T, C int }{
		{4, 1}, {8, 2}, {9, 3}, {16, 4},
	} {
		T, C := tc.T, tc.C
		last := LastIter(T, C)
		for i := 0; i <= last; i++ {
			for team := 0; team < T; team++ {
				for c := 0; c < C; c++ {
					_, dstRank := Partner(i, team, c, T, C)
					if dstRank < 0 || dstRank >= T*C {
						t.Errorf("T=%d C=%d i=%d team=%d c=%d: dstRank=%d out of [0,%d)", T, C, i, team, c, dstRank, T*C)
					}
				}
			}
		}
	}
}

func TestLastIterMatchesSpecFormula(t *testing.T) {
	cases := []struct {
		T, C, want int
	}{
		{4, 1, 2},
		{8, 2, 2},
		{8, 4, 1},
		{9, 3, 1},
		{16, 4, 2},
	}
	for _, c := range cases {
		if got := LastIter(c.T, c.C); got != c.want {
			t.Errorf("LastIter(%d,%d) = %d, want %d", c.T, c.C, got, c.want)
		}
	}
}

func TestTeamLastIterMatchesSpecFormula(t *testing.T) {
	cases := []struct {
		P, teamsize, want int
	}{
		{16, 4, 0},
		{8, 2, 1},
		{16, 2, 3},
	}
	for _, c := range cases {
		if got := TeamLastIter(c.P, c.teamsize); got != c.want {
			t.Errorf("TeamLastIter(%d,%d) = %d, want %d", c.P, c.teamsize, got, c.want)
		}
	}
}

func TestModEuclidean(t *testing.T) {
	cases := []struct {
		a, m, want int
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-4, 3, 2},
		{0, 5, 0},
		{7, 7, 0},
	}
	for _, c := range cases {
		if got := mod(c.a, c.m); got != c.want {
			t.Errorf("mod(%d,%d) = %d, want %d", c.a, c.m, got, c.want)
		}
	}
}
