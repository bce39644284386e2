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

// Package comm is an in-process, goroutine-backed stand-in for a
// distributed message-passing runtime. There is no real MPI binding
// available to a pure Go program, so each "process" is a goroutine
// identified by a Rank, and the only way for two ranks to exchange state is
// through a channel owned by a shared World — exactly the "no shared
// memory, explicit send/recv" model spec.md §5 calls for. Nothing in this
// package, nor any package built on it, touches a rank's private state
// from another rank's goroutine.
//
// A World is created once for P ranks and handed out as P per-rank views
// via Launch. Every collective (Split, Bcast, Scatter, Gather, Reduce) and
// every point-to-point call (Send, Recv, SendRecv, SendRecvReplace) blocks
// until its matching partner(s) arrive, matching spec.md §5's synchronous
// step model.
package comm

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Rank identifies one simulated process within a World.
type Rank int

// NoRank is the sentinel "no partner" rank, the local stand-in for
// MPI_PROC_NULL: a send or receive naming NoRank is a no-op.
const NoRank Rank = -1

// topology is the shared state behind every per-rank *World view: the full
// point-to-point link matrix plus the abort machinery. It is never touched
// directly by user code.
type topology struct {
	size  int
	links [][]chan any // links[src][dst] carries one message at a time from src to dst

	ctx    context.Context
	cancel context.CancelFunc
	reason atomic.Pointer[AbortError] // set once, by the first Abort caller
}

// World is one rank's view of a shared communication topology.
type World struct {
	*topology
	rank Rank
}

// AbortError is returned by every blocked comm call once any rank calls
// Abort; it carries the aborting rank's message so the driver can report
// why the whole job was torn down.
type AbortError struct {
	Code    int
	Message string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("job aborted (code %d): %s", e.Code, e.Message)
}

// NewWorld builds a topology for size ranks and returns one *World per rank,
// indexed by rank. ctx bounds the whole run; canceling it (or calling Abort
// on any returned World) unblocks every pending comm call across all ranks.
func NewWorld(ctx context.Context, size int) []*World {
	if size <= 0 {
		panic("comm: world size must be positive")
	}

	runCtx, cancel := context.WithCancel(ctx)
	links := make([][]chan any, size)
	for i := range links {
		links[i] = make([]chan any, size)
		for j := range links[i] {
			links[i][j] = make(chan any)
		}
	}

	topo := &topology{
		size:   size,
		links:  links,
		ctx:    runCtx,
		cancel: cancel,
	}

	worlds := make([]*World, size)
	for r := range worlds {
		worlds[r] = &World{topology: topo, rank: Rank(r)}
	}
	return worlds
}

// Rank returns this view's rank.
func (w *World) Rank() Rank { return w.rank }

// Size returns the total number of ranks in the world.
func (w *World) Size() int { return w.size }

// Done returns a channel closed when the world has been aborted or its
// root context canceled.
func (w *World) Done() <-chan struct{} { return w.ctx.Done() }

// Abort tears down the whole job: every rank's pending or future comm call
// returns an *AbortError built from code and msg. Abort is idempotent; only
// the first call's message is kept, mirroring MPI_Abort semantics where one
// rank's abort terminates the whole communicator.
func (w *World) Abort(code int, format string, args ...any) error {
	abortErr := &AbortError{Code: code, Message: fmt.Sprintf(format, args...)}
	w.reason.CompareAndSwap(nil, abortErr)
	w.cancel()
	return w.reason.Load()
}

// abortErr reports the abort reason, if any, as an *AbortError.
func (w *World) abortErr() error {
	if err := w.reason.Load(); err != nil {
		return err
	}
	return &AbortError{Message: "context canceled"}
}

func (w *World) checkAbort() error {
	select {
	case <-w.ctx.Done():
		return w.abortErr()
	default:
		return nil
	}
}
