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

// Gather collects one value per group member at root (a position within
// g, conventionally 0), ordered by position. Non-root callers get a nil
// slice. Every member of g must call Gather with the same root.
func Gather[T any](g *Group, root int, v T) ([]T, error) {
	w := g.world
	rootRank := g.members[root]

	if w.rank != rootRank {
		return nil, Send(w, rootRank, v)
	}

	out := make([]T, len(g.members))
	for pos, member := range g.members {
		if member == w.rank {
			out[pos] = v
			continue
		}
		val, err := Recv[T](w, member)
		if err != nil {
			return nil, err
		}
		out[pos] = val
	}
	return out, nil
}

// Bcast sends v from root to every member of g and returns the value every
// caller (including root) should use. Non-root callers' v is ignored.
func Bcast[T any](g *Group, root int, v T) (T, error) {
	w := g.world
	rootRank := g.members[root]

	if w.rank == rootRank {
		for _, member := range g.members {
			if member == w.rank {
				continue
			}
			if err := Send(w, member, v); err != nil {
				var zero T
				return zero, err
			}
		}
		return v, nil
	}
	return Recv[T](w, rootRank)
}

// AllGather collects one value per member and returns the full,
// position-ordered slice to every member: a Gather to position 0 followed
// by a Bcast of the assembled slice.
func AllGather[T any](g *Group, v T) ([]T, error) {
	gathered, err := Gather(g, 0, v)
	if err != nil {
		return nil, err
	}
	return Bcast(g, 0, gathered)
}

// Scatter distributes values[pos] to the member at position pos, called by
// root with the full, position-ordered slice (len(values) == g.Size()) and
// by everyone else with a nil slice; every caller gets back its own shard.
func Scatter[T any](g *Group, root int, values []T) (T, error) {
	w := g.world
	rootRank := g.members[root]

	if w.rank != rootRank {
		return Recv[T](w, rootRank)
	}

	var mine T
	for pos, member := range g.members {
		if member == w.rank {
			mine = values[pos]
			continue
		}
		if err := Send(w, member, values[pos]); err != nil {
			var zero T
			return zero, err
		}
	}
	return mine, nil
}

// Reduce combines every member's value with combine, in position order,
// and returns the result at root; non-root callers get the zero value.
// combine must be associative; spec.md §4.6/§4.7 only ever reduce via
// element-wise sum, so this package does not need it to be commutative
// beyond that.
func Reduce[T any](g *Group, root int, v T, combine func(a, b T) T) (T, error) {
	all, err := Gather(g, root, v)
	if err != nil {
		var zero T
		return zero, err
	}
	if all == nil {
		var zero T
		return zero, nil
	}
	acc := all[0]
	for _, x := range all[1:] {
		acc = combine(acc, x)
	}
	return acc, nil
}
