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

// Package patch applies unified diffs in-process.
//
// It's used to check that a unified diff of x and y turns x back into y. Diffs must not contain
// a "\ No newline at end of file" marker, which means that the last line of both inputs must end
// in a newline character unless it's unchanged.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

var (
	// ErrMultipleFiles is returned if a diff describes changes to more than one file.
	ErrMultipleFiles = errors.New("diff contains more than one file")

	// ErrNoHunks is returned if a non-empty diff doesn't contain any hunks.
	ErrNoHunks = errors.New("diff doesn't contain any hunks")
)

// header replaces the file header of a diff. The parser requires one, but the file names don't
// matter here.
const header = "--- a/file\n+++ b/file\n"

// Apply applies diff to orig and returns the result. The diff must describe changes to a single
// file. Anything before the first hunk is ignored.
func Apply(orig, diff []byte) ([]byte, error) {
	if len(diff) == 0 {
		return orig, nil
	}
	var found bool
	for i := 0; i < len(diff); {
		if bytes.HasPrefix(diff[i:], []byte("@@ ")) {
			diff = append([]byte(header), diff[i:]...)
			found = true
			break
		}
		eol := bytes.IndexByte(diff[i:], '\n')
		if eol < 0 {
			break
		}
		i += eol + 1
	}
	if !found {
		return nil, ErrNoHunks
	}

	files, _, err := gitdiff.Parse(bytes.NewReader(diff))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}
	switch len(files) {
	case 0:
		return orig, nil
	case 1:
		// ok
	default:
		return nil, fmt.Errorf("%w: found %d files", ErrMultipleFiles, len(files))
	}

	var out bytes.Buffer
	if err := gitdiff.Apply(&out, bytes.NewReader(orig), files[0]); err != nil {
		return nil, fmt.Errorf("failed to apply diff: %w", err)
	}
	return out.Bytes(), nil
}

// Check applies diff to x and reports an error if the result is different from y.
func Check(x, y, diff []byte) error {
	got, err := Apply(x, diff)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, y) {
		return fmt.Errorf("patched file is different from the expected result:\ngot:\n%s\nwant:\n%s", got, y)
	}
	return nil
}
