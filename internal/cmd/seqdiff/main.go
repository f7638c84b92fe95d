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

// seqdiff prints the differences between two files in unified format.
//
// Usage:
//
//	seqdiff [flags] OLD NEW
//	seqdiff git PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE
//	seqdiff check OLD NEW PATCH
//
// The exit status is 0 if the files are equal, 1 if they are different and 2 if an error occurred.
// The git subcommand can be used with git by setting GIT_EXTERNAL_DIFF to a script that calls it.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/seqdiff"
	"znkr.io/seqdiff/textdiff"
)

// errDifferent signals that the compared files are different. It's not logged.
var errDifferent = errors.New("files are different")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line with args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := &app{stdout: stdout, stderr: stderr}
	cmd := app.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDifferent):
		return 1
	default:
		app.logger().Error("seqdiff failed", "err", err)
		return 2
	}
}

type app struct {
	stdout, stderr io.Writer
	log            *slog.Logger

	// Flags
	context int
	optimal bool
	color   string
	verbose bool
}

func (a *app) logger() *slog.Logger {
	if a.log == nil {
		level := slog.LevelInfo
		if a.verbose {
			level = slog.LevelDebug
		}
		a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	}
	return a.log
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seqdiff [flags] OLD NEW",
		Short:         "Compare two files line by line",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.diff(cmd, args[0], args[1])
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVarP(&a.context, "context", "U", 3, "number of context lines")
	flags.BoolVar(&a.optimal, "optimal", false, "find a minimal diff, even if it takes a long time")
	flags.StringVar(&a.color, "color", "auto", "colorize the output: auto, always or never")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(a.gitCmd(), a.checkCmd())
	return cmd
}

func (a *app) options() ([]seqdiff.Option, error) {
	if a.context < 0 {
		return nil, fmt.Errorf("invalid --context=%d: %w", a.context, seqdiff.ErrNegativeContext)
	}
	opts := []seqdiff.Option{seqdiff.Context(a.context)}
	if a.optimal {
		opts = append(opts, seqdiff.Optimal())
	}
	return opts, nil
}

func (a *app) diff(cmd *cobra.Command, oldFile, newFile string) error {
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
	if len(diff) == 0 {
		a.logger().Debug("files are equal", "old", oldFile, "new", newFile)
		return nil
	}

	header := fmt.Sprintf("--- %s\n+++ %s\n", oldFile, newFile)
	if err := writeUnified(out, header, diff); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	return errDifferent
}
