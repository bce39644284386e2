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

package main

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/nbodygrid/nbodygrid/kernel"
)

// readPoints reads a whitespace-separated sequence of (x y z) records,
// one per line, per spec.md §6's source file format.
func readPoints(path string) ([]kernel.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []kernel.Point
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var p kernel.Point
		line := scanner.Text()
		if line == "" {
			continue
		}
		if _, err := fmt.Sscanf(line, "%g %g %g", &p.X, &p.Y, &p.Z); err != nil {
			return nil, fmt.Errorf("readPoints %s: %w", path, err)
		}
		pts = append(pts, p)
	}
	return pts, scanner.Err()
}

// readScalars reads one decimal float per line, the charge/result file
// format per spec.md §6.
func readScalars(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vals []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var v float64
		if _, err := fmt.Sscanf(line, "%g", &v); err != nil {
			return nil, fmt.Errorf("readScalars %s: %w", path, err)
		}
		vals = append(vals, v)
	}
	return vals, scanner.Err()
}

func readCharges(path string) ([]kernel.Charge, error) {
	vals, err := readScalars(path)
	if err != nil {
		return nil, err
	}
	charges := make([]kernel.Charge, len(vals))
	for i, v := range vals {
		charges[i] = kernel.Charge(v)
	}
	return charges, nil
}

func writePoints(path string, pts []kernel.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range pts {
		if _, err := fmt.Fprintf(w, "%.17g %.17g %.17g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeScalars[T ~float64](path string, vals []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range vals {
		if _, err := fmt.Fprintf(w, "%.17g\n", float64(v)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// generateInput deterministically fills n source points and charges from
// seed, the same "generate PHI_FILE SIGMA_FILE N" input spec.md §6 calls
// for.
func generateInput(n int, seed int64) ([]kernel.Point, []kernel.Charge) {
	r := rand.New(rand.NewSource(seed))
	pts := make([]kernel.Point, n)
	chg := make([]kernel.Charge, n)
	for i := range pts {
		pts[i] = kernel.Point{
			X: r.Float64()*2 - 1,
			Y: r.Float64()*2 - 1,
			Z: r.Float64()*2 - 1,
		}
		chg[i] = kernel.Charge(r.Float64()*2 - 1)
	}
	return pts, chg
}

// referenceFile names the cached exact-reference file for (n, seed), per
// spec.md §6.
func referenceFile(n int, seed int64) string {
	return fmt.Sprintf("data/invsq_n%d_s%d.txt", n, seed)
}

// l2RelativeError computes ‖got-want‖/‖want‖, the non-fatal numerical
// divergence metric spec.md §7 reports for verification runs.
func l2RelativeError(got, want []kernel.Result) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}
	var num, den float64
	for i := range want {
		d := float64(got[i] - want[i])
		num += d * d
		den += float64(want[i]) * float64(want[i])
	}
	if den == 0 {
		return math.Sqrt(num)
	}
	return math.Sqrt(num / den)
}
