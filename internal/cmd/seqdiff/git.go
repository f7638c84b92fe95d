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
	"strings"

	"github.com/spf13/cobra"
	"znkr.io/seqdiff/textdiff"
)

// gitCmd implements the GIT_EXTERNAL_DIFF protocol. git calls the external diff program with seven
// arguments for every modified file.
func (a *app) gitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "git PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Print a diff in git's format, for use with GIT_EXTERNAL_DIFF",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, oldFile, oldHex, oldMode, newFile, newHex, newMode := args[0], args[1], args[2], args[3], args[4], args[5], args[6]

			opts, err := a.options()
			if err != nil {
				return err
			}
			out, err := newOutput(cmd.OutOrStdout(), a.color)
			if err != nil {
				return err
			}
			inputs, err := readFiles(cmd.Context(), a.logger(), oldFile, newFile)
			if err != nil {
				return err
			}

			diff := textdiff.Unified(inputs[0], inputs[1], opts...)
			if len(diff) == 0 && oldMode == newMode {
				return nil
			}

			var header strings.Builder
			fmt.Fprintf(&header, "diff --git a/%s b/%s\n", path, path)
			oldName, newName := "a/"+path, "b/"+path
			switch {
			case oldFile == devNull:
				fmt.Fprintf(&header, "new file mode %s\n", newMode)
				fmt.Fprintf(&header, "index %s..%s\n", abbrev(oldHex), abbrev(newHex))
				oldName = devNull
			case newFile == devNull:
				fmt.Fprintf(&header, "deleted file mode %s\n", oldMode)
				fmt.Fprintf(&header, "index %s..%s\n", abbrev(oldHex), abbrev(newHex))
				newName = devNull
			case oldMode != newMode:
				fmt.Fprintf(&header, "old mode %s\nnew mode %s\n", oldMode, newMode)
				if len(diff) > 0 {
					fmt.Fprintf(&header, "index %s..%s\n", abbrev(oldHex), abbrev(newHex))
				}
			default:
				fmt.Fprintf(&header, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
			}
			// Like git, a change without content differences only gets the extended header.
			if len(diff) > 0 {
				fmt.Fprintf(&header, "--- %s\n+++ %s\n", oldName, newName)
			}

			// git stops when an external diff program fails, differences are not an error here.
			if err := writeUnified(out, header.String(), diff); err != nil {
				return fmt.Errorf("writing diff: %w", err)
			}
			return nil
		},
	}
}

func abbrev(hex string) string {
	return hex[:min(len(hex), 7)]
}
