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

// Send transmits v to dst and blocks until the matching Recv takes it.
// Sending to NoRank is a no-op.
func Send[T any](w *World, dst Rank, v T) error {
	if dst == NoRank {
		return nil
	}
	if err := w.checkAbort(); err != nil {
		return err
	}
	select {
	case w.links[w.rank][dst] <- v:
		return nil
	case <-w.ctx.Done():
		return w.abortErr()
	}
}

// Recv blocks until src sends a value and returns it. Receiving from
// NoRank immediately returns the zero value of T and a nil error.
func Recv[T any](w *World, src Rank) (T, error) {
	var zero T
	if src == NoRank {
		return zero, nil
	}
	if err := w.checkAbort(); err != nil {
		return zero, err
	}
	select {
	case v := <-w.links[src][w.rank]:
		return v.(T), nil
	case <-w.ctx.Done():
		return zero, w.abortErr()
	}
}

// SendRecv concurrently sends sendVal to dst and receives from src,
// avoiding the deadlock a sequential Send-then-Recv would risk when two
// ranks exchange with each other at the same logical step. NoRank on
// either side makes that half of the exchange a no-op, matching
// MPI_Sendrecv's treatment of MPI_PROC_NULL.
func SendRecv[T any](w *World, dst Rank, sendVal T, src Rank) (T, error) {
	sendErr := make(chan error, 1)
	go func() { sendErr <- Send(w, dst, sendVal) }()

	recvVal, recvErr := Recv[T](w, src)

	if err := <-sendErr; err != nil {
		var zero T
		return zero, err
	}
	return recvVal, recvErr
}

// SendRecvReplace sends buf to dst and returns whatever was received from
// src, the in-place "rotate the current block" primitive the ring and team
// schedules use to shift source blocks around a channel.
func SendRecvReplace[T any](w *World, dst Rank, buf T, src Rank) (T, error) {
	return SendRecv(w, dst, buf, src)
}
