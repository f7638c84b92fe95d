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

// Package benchmarks compares seqdiff with other diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/seqdiff"
	"znkr.io/seqdiff/textdiff"
)

type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "seqdiff",
		Diff: func(x, y []byte) []byte {
			return textdiff.Unified(x, y)
		},
	},
	{
		Name: "seqdiff-optimal",
		Diff: func(x, y []byte) []byte {
			return textdiff.Unified(x, y, seqdiff.Optimal())
		},
	},
	{
		// Uses the generic API without the preprocessing step for comparable types.
		Name: "seqdiff-func",
		Diff: func(x, y []byte) []byte {
			xlines, ylines := splitLines(x), splitLines(y)
			var buf bytes.Buffer
			for _, h := range seqdiff.HunksFunc(xlines, ylines, bytes.Equal) {
				for _, e := range h.Edits {
					switch e.Op {
					case seqdiff.Match:
						buf.WriteByte(' ')
						buf.Write(e.X)
					case seqdiff.Delete:
						buf.WriteByte('-')
						buf.Write(e.X)
					case seqdiff.Insert:
						buf.WriteByte('+')
						buf.Write(e.Y)
					}
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but close enough to be comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, d := range diffs {
				var prefix string
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(d.Text, "\n") {
					if line == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but close enough to be comparable.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but close enough to be comparable.
			d := mb0lines{x: splitLines(x), y: splitLines(y)}
			var buf bytes.Buffer
			a := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				for ; a < ch.A; a++ {
					buf.WriteByte(' ')
					buf.Write(d.x[a])
				}
				for i := range ch.Del {
					buf.WriteByte('-')
					buf.Write(d.x[ch.A+i])
				}
				a += ch.Del
				for i := range ch.Ins {
					buf.WriteByte('+')
					buf.Write(d.y[ch.B+i])
				}
			}
			for ; a < len(d.x); a++ {
				buf.WriteByte(' ')
				buf.Write(d.x[a])
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

// splitLines splits after every newline, dropping the empty element after a trailing newline.
func splitLines(b []byte) [][]byte {
	lines := bytes.SplitAfter(b, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
