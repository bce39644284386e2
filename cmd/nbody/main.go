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

// Command nbody drives the distributed N-body kernel evaluation engine:
// generate random input, evaluate it with the serial baseline or one of
// the three distributed schedules, and optionally verify the result
// against a cached reference.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbodygrid/nbodygrid/kernel"
)

var kernelName string

func kernelByName(name string) (kernel.Kernel, error) {
	switch name {
	case "", "invsq":
		return kernel.InvSq{}, nil
	case "laplace":
		return kernel.Laplace{}, nil
	case "bayes":
		return kernel.Bayes{}, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q (want invsq, laplace, or bayes)", name)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nbody",
		Short: "Distributed all-pairs N-body kernel evaluation engine",
	}
	root.PersistentFlags().StringVar(&kernelName, "kernel", "invsq", "pairwise kernel: invsq, laplace, or bayes")

	root.AddCommand(
		generateCmd(),
		serialCmd(),
		scatterCmd(),
		teamScatterCmd(),
		symmetricCmd(),
	)
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
