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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"znkr.io/seqdiff/internal/byteview"
)

const devNull = "/dev/null"

var errStdinTwice = errors.New("stdin (-) can only be read once")

// readFiles reads all files concurrently. /dev/null is read as an empty file and - is stdin.
func readFiles(ctx context.Context, log *slog.Logger, names ...string) ([][]byte, error) {
	stdin := 0
	for _, name := range names {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, errStdinTwice
	}

	data := make([][]byte, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := readFile(name)
			if err != nil {
				return err
			}
			lines, missingNewline := byteview.SplitLines(byteview.From(b))
			log.Debug("read input", "file", name, "bytes", len(b), "lines", len(lines))
			if missingNewline >= 0 {
				log.Debug("last line has no newline", "file", name, "line", missingNewline)
			}
			data[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func readFile(name string) ([]byte, error) {
	switch name {
	case devNull:
		return nil, nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return b, nil
}
