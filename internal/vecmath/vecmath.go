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

// Package vecmath provides small generic numeric helpers used by the
// assemble and schedule packages: dot products, squared Euclidean
// distance, and fused accumulate-into-slice. Every function is generic
// over Floats so that callers can be written once for float32 and float64
// values without duplicating loops.
//
// Unlike a SIMD library, there is no vector-register abstraction here: the
// accumulation pattern (multiple independent running sums unrolled by four)
// is kept because it is the shape a vectorizing compiler or a real SIMD
// backend would want, but the loop itself is plain Go.
package vecmath

// Floats is a constraint for the floating-point types kernels operate on.
type Floats interface {
	~float32 | ~float64
}

// Dot computes the inner product Σ a[i]*b[i] over the shorter of a, b.
func Dot[T Floats](a, b []T) T {
	n := min(len(a), len(b))
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// L2SquaredDistance computes Σ (a[i]-b[i])² over the shorter of a, b.
func L2SquaredDistance[T Floats](a, b []T) T {
	n := min(len(a), len(b))
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= n; i += 4 {
		d0, d1, d2, d3 := a[i]-b[i], a[i+1]-b[i+1], a[i+2]-b[i+2], a[i+3]-b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	sum := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// AxpyInto computes dst[i] += alpha*x[i] for i in [0, min(len(dst),len(x))).
func AxpyInto[T Floats](dst []T, alpha T, x []T) {
	n := min(len(dst), len(x))
	for i := 0; i < n; i++ {
		dst[i] += alpha * x[i]
	}
}

// SumInto computes dst[i] += src[i] for i in [0, min(len(dst),len(src))).
func SumInto[T Floats](dst, src []T) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}
