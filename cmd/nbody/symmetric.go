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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nbodygrid/nbodygrid/profile"
	"github.com/nbodygrid/nbodygrid/schedule"
)

func symmetricCmd() *cobra.Command {
	var numProcs, teamsize int
	var seed int64
	var nocheck bool

	cmd := &cobra.Command{
		Use:   "symmetric NUMPOINTS",
		Short: "Evaluate with the symmetric team scatter schedule on generated input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("NUMPOINTS must be a positive integer, got %q", args[0])
			}
			k, err := kernelByName(kernelName)
			if err != nil {
				return err
			}
			if !k.Symmetric() {
				return fmt.Errorf("kernel %q is not symmetric; the symmetric schedule requires K(a,b)=K(b,a)", kernelName)
			}
			sources, charges := generateInput(n, seed)

			result, averages, err := runDistributed(numProcs, schedule.Symmetric, k, sources, charges, schedule.Options{Teamsize: teamsize})
			if err != nil {
				return err
			}
			if averages != nil {
				profile.WriteReport(cmd.OutOrStderr(), averages)
			}
			if !nocheck {
				verifyAgainstReference(result, n, seed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&numProcs, "procs", "p", 16, "number of rank-goroutines to launch")
	cmd.Flags().IntVarP(&teamsize, "teamsize", "c", 4, "team size (process-grid column height)")
	cmd.Flags().Int64Var(&seed, "seed", 1337, "RNG seed for generated input")
	cmd.Flags().BoolVar(&nocheck, "nocheck", false, "skip verification against the cached reference")
	return cmd
}
