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

package vecmath

import (
	"math"
	"testing"
)

const epsilon64 = 1e-12

func approxEqual64(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"empty", nil, nil, 0},
		{"single", []float64{3}, []float64{4}, 12},
		{"four-wide", []float64{1, 2, 3, 4}, []float64{4, 3, 2, 1}, 20},
		{"remainder", []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1}, 15},
		{"uneven length uses shorter", []float64{1, 2, 3}, []float64{1, 1}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dot(tc.a, tc.b)
			if !approxEqual64(got, tc.want, epsilon64) {
				t.Errorf("Dot(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestL2SquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"unit offset", []float64{0, 0, 0}, []float64{1, 1, 1}, 3},
		{"four-wide plus remainder", []float64{0, 0, 0, 0, 0}, []float64{1, 1, 1, 1, 1}, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := L2SquaredDistance(tc.a, tc.b)
			if !approxEqual64(got, tc.want, epsilon64) {
				t.Errorf("L2SquaredDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAxpyInto(t *testing.T) {
	dst := []float64{1, 2, 3}
	AxpyInto(dst, 2, []float64{10, 10, 10})
	want := []float64{21, 22, 23}
	for i := range want {
		if !approxEqual64(dst[i], want[i], epsilon64) {
			t.Errorf("AxpyInto result[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAxpyIntoStopsAtShorterSlice(t *testing.T) {
	dst := []float64{1, 2, 3, 4}
	AxpyInto(dst, 1, []float64{100, 100})
	want := []float64{101, 102, 3, 4}
	for i := range want {
		if !approxEqual64(dst[i], want[i], epsilon64) {
			t.Errorf("AxpyInto result[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSumInto(t *testing.T) {
	dst := []float64{1, 2, 3, 4, 5}
	SumInto(dst, []float64{5, 4, 3, 2, 1})
	for i, v := range dst {
		if !approxEqual64(v, 6, epsilon64) {
			t.Errorf("SumInto result[%d] = %v, want 6", i, v)
		}
	}
}

func TestDotMatchesNaiveLoop(t *testing.T) {
	a := make([]float64, 17)
	b := make([]float64, 17)
	for i := range a {
		a[i] = math.Sin(float64(i))
		b[i] = math.Cos(float64(i))
	}
	var want float64
	for i := range a {
		want += a[i] * b[i]
	}
	got := Dot(a, b)
	if !approxEqual64(got, want, 1e-9) {
		t.Errorf("Dot unrolled result = %v, want naive-loop result %v", got, want)
	}
}
