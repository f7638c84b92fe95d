// Copyright 2025 Florian Zenker (flo@znkr.io)
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

	"github.com/spf13/cobra"
	"znkr.io/seqdiff/internal/patch"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check OLD NEW PATCH",
		Short: "Check that applying PATCH to OLD results in NEW",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readFiles(cmd.Context(), a.logger(), args...)
			if err != nil {
				return err
			}
			if err := patch.Check(inputs[0], inputs[1], inputs[2]); err != nil {
				return fmt.Errorf("checking %s: %w", args[2], err)
			}
			a.logger().Debug("patch applies", "old", args[0], "new", args[1], "patch", args[2])
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[2])
			return nil
		},
	}
}
