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

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Launch starts size ranks, each running fn with its own *World, and blocks
// until every rank returns or one rank's error (including one produced by
// Abort) cancels the rest via ctx. It is the in-process equivalent of the
// process bootstrapping spec.md §1 places out of scope: by the time fn
// runs, every rank already knows its Rank and the world's Size.
func Launch(ctx context.Context, size int, fn func(w *World) error) error {
	g, gctx := errgroup.WithContext(ctx)
	worlds := NewWorld(gctx, size)

	for _, w := range worlds {
		g.Go(func() error {
			return fn(w)
		})
	}
	return g.Wait()
}
