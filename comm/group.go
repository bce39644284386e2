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

package comm

import "sort"

// Group is an ordered subgroup of world ranks: a team channel, a row
// channel, or the implicit group containing every rank in the world.
// Position within the group (not world rank) is what root indices and
// Scatter/Gather orderings refer to.
type Group struct {
	world   *World
	members []Rank // members[pos] is the world rank holding position pos
	rankOf  map[Rank]int
}

// WorldGroup returns the group containing every rank in w, ordered by
// world rank. It is the group every Split call below splits from.
func WorldGroup(w *World) *Group {
	members := make([]Rank, w.size)
	rankOf := make(map[Rank]int, w.size)
	for i := range members {
		members[i] = Rank(i)
		rankOf[Rank(i)] = i
	}
	return &Group{world: w, members: members, rankOf: rankOf}
}

// Size returns the number of ranks in the group.
func (g *Group) Size() int { return len(g.members) }

// Rank returns w's position within g (not its world rank).
func (g *Group) Rank(w *World) int { return g.rankOf[w.rank] }

// WorldRank maps a position within the group back to a world rank.
func (g *Group) WorldRank(pos int) Rank { return g.members[pos] }

type splitKey struct {
	Rank  Rank
	Color int
	Key   int
}

// Split partitions g into subgroups sharing the same color, ordered within
// each subgroup by key (ties broken by world rank). It is a collective
// call: every rank that is a member of g must call Split with its own
// (color, key) in the same logical step, mirroring MPI_Comm_split. The
// process-grid's team channel and row channel (spec.md §4.4) are both
// built by splitting the world group this way.
func Split(g *Group, color, key int) (*Group, error) {
	mine := splitKey{Rank: g.world.rank, Color: color, Key: key}
	all, err := AllGather(g, mine)
	if err != nil {
		return nil, err
	}

	var peers []splitKey
	for _, sk := range all {
		if sk.Color == color {
			peers = append(peers, sk)
		}
	}
	sort.Slice(peers, func(i, j int) bool {
		if peers[i].Key != peers[j].Key {
			return peers[i].Key < peers[j].Key
		}
		return peers[i].Rank < peers[j].Rank
	})

	members := make([]Rank, len(peers))
	rankOf := make(map[Rank]int, len(peers))
	for i, sk := range peers {
		members[i] = sk.Rank
		rankOf[sk.Rank] = i
	}
	return &Group{world: g.world, members: members, rankOf: rankOf}, nil
}
