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
	"context"

	"github.com/spf13/cobra"

	"github.com/nbodygrid/nbodygrid/comm"
	"github.com/nbodygrid/nbodygrid/kernel"
	"github.com/nbodygrid/nbodygrid/schedule"
)

func serialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serial PHI_FILE SIGMA_FILE",
		Short: "Evaluate the serial (P=1) baseline and write data/phi.txt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kernelByName(kernelName)
			if err != nil {
				return err
			}
			sources, err := readPoints(args[0])
			if err != nil {
				return err
			}
			charges, err := readCharges(args[1])
			if err != nil {
				return err
			}

			var result []kernel.Result
			err = comm.Launch(context.Background(), 1, func(w *comm.World) error {
				out, err := schedule.Serial(context.Background(), w, k, sources, charges, schedule.Options{})
				if err != nil {
					return err
				}
				result = out
				return nil
			})
			if err != nil {
				return err
			}
			return writeScalars("data/phi.txt", result)
		},
	}
}
