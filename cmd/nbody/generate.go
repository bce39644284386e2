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
)

func generateCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate PHI_FILE SIGMA_FILE N",
		Short: "Write N random source points and charges to two files",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[2])
			if err != nil || n <= 0 {
				return fmt.Errorf("N must be a positive integer, got %q", args[2])
			}
			sources, charges := generateInput(n, seed)
			if err := writePoints(args[0], sources); err != nil {
				return err
			}
			return writeScalars(args[1], charges)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1337, "RNG seed")
	return cmd
}
