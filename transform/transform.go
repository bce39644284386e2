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

// Package transform implements the index transformer: the pure,
// closed-form mapping that names the transpose partner of a block in the
// symmetric team-scatter schedule. It has no dependency on comm, kernel,
// or any other package — it operates entirely on integers and is the one
// piece of the engine unit-testable in complete isolation.
package transform

// Partner maps the block a process is computing at iteration i to the
// (iteration, rank) of its transpose partner.
//
// T is num_teams, C is teamsize. t is the computing process's team, c its
// team_rank. The mapping:
//
//	Y = (t + c + i*C) mod T
//	D = (t - Y + T) mod T
//	(dstIter, dstRank) = (D / C, Y*C + (D mod C))
//
// Partner is an involution over the schedule: applying it to its own
// image recovers (i, t*C+c) modulo which of the pair is "computing" at
// that iteration — see TestPartnerInvolution.
func Partner(i, t, c, T, C int) (dstIter, dstRank int) {
	y := mod(t+c+i*C, T)
	d := mod(t-y, T)
	dstIter = d / C
	dstRank = y*C + mod(d, C)
	return dstIter, dstRank
}

// LastIter returns the symmetric schedule's horizon: the final value of
// curr_iter, at which the transpose is suppressed to avoid double
// counting when a block would pair with itself.
func LastIter(T, C int) int {
	return ceilDiv(T+1, 2*C) - 1
}

// TeamLastIter returns the non-symmetric team schedule's horizon.
func TeamLastIter(P, teamsize int) int {
	return ceilDiv(P, teamsize*teamsize) - 1
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// mod is Euclidean mod: always in [0, m) for m > 0, unlike Go's %, which
// can be negative for negative a.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
