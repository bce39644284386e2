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

// Package kernel defines the pairwise kernel plug-in boundary: the value
// types every schedule moves around (Point, Charge, Result) and the
// Kernel interface the block evaluator in package p2p consumes. Nothing
// outside this package and p2p inspects a kernel's internals.
package kernel

import (
	"math"

	"github.com/samber/lo"
)

// Point is a source or target location. Target is the same Go type as
// Source; the symmetric schedules additionally require the caller to pass
// the same slice for both roles.
type Point struct {
	X, Y, Z float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Norm2 returns the squared Euclidean length of p.
func (p Point) Norm2() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Charge weights a source's contribution to every target it interacts
// with.
type Charge float64

// Result accumulates a target's kernel-weighted sum. The zero value is a
// valid starting accumulator; Go's native += on float64 is the "+="
// entities table.2 calls for.
type Result float64

// Kernel is the pairwise operation the scheduling core calls through
// p2p; the core never inspects a Kernel's concrete type beyond this
// interface.
type Kernel interface {
	// Eval returns K(t, s).
	Eval(t, s Point) Result
	// Weighted returns K(t, s) * c, the form every p2p accumulation loop
	// actually needs; every kernel implements it, and one that can fuse
	// the multiply may do so for speed.
	Weighted(t, s Point, c Charge) Result
	// Symmetric reports whether K(a,b) == K(b,a) for all a, b. Only
	// symmetric kernels may be passed to schedule.Symmetric, which
	// additionally requires Source == Target at the call site.
	Symmetric() bool
}

// Laplace is the 1/(4π·r) potential kernel, singular at r=0. Eval returns
// 0 for coincident points, so the self pair that EvalSymDiag evaluates on
// the diagonal (i=i) contributes nothing.
type Laplace struct{}

const fourPi = 4 * math.Pi

func (Laplace) Eval(t, s Point) Result {
	d := t.Sub(s)
	r2 := d.Norm2()
	if r2 == 0 {
		return 0
	}
	return Result(1 / (fourPi * math.Sqrt(r2)))
}

func (l Laplace) Weighted(t, s Point, c Charge) Result {
	return l.Eval(t, s) * Result(c)
}

func (Laplace) Symmetric() bool { return true }

// InvSq is the inverse-square kernel K(s,t) = c/(‖s−t‖²+η), the kernel
// used in every end-to-end scenario in the testable-properties section.
// Eta guards the self-pair singularity; the zero value of InvSq uses the
// default 1e-6.
type InvSq struct {
	Eta float64
}

// DefaultEta is InvSq's eta when the zero-value InvSq{} is used.
const DefaultEta = 1e-6

func (k InvSq) eta() float64 {
	return lo.Ternary(k.Eta != 0, k.Eta, DefaultEta)
}

func (k InvSq) Eval(t, s Point) Result {
	d := t.Sub(s)
	return Result(1 / (d.Norm2() + k.eta()))
}

func (k InvSq) Weighted(t, s Point, c Charge) Result {
	d := t.Sub(s)
	return Result(float64(c) / (d.Norm2() + k.eta()))
}

func (InvSq) Symmetric() bool { return true }

// Bayes is a non-parametric Bayesian kernel: a squared-exponential
// (RBF) Gaussian-process covariance σ²·exp(-‖s−t‖²/(2ℓ²)), the standard
// non-parametric-Bayesian kernel sum. Sigma and Length default to 1 and 1
// respectively when zero.
type Bayes struct {
	Sigma  float64
	Length float64
}

func (k Bayes) sigma() float64 {
	return lo.Ternary(k.Sigma != 0, k.Sigma, 1)
}

func (k Bayes) length() float64 {
	return lo.Ternary(k.Length != 0, k.Length, 1)
}

func (k Bayes) Eval(t, s Point) Result {
	d := t.Sub(s)
	sigma, length := k.sigma(), k.length()
	return Result(sigma * sigma * math.Exp(-d.Norm2()/(2*length*length)))
}

func (k Bayes) Weighted(t, s Point, c Charge) Result {
	return k.Eval(t, s) * Result(c)
}

func (Bayes) Symmetric() bool { return true }
