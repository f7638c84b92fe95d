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

// Package textdiff compares text line by line.
//
// Lines keep their newline character, a line without one can only appear at the end of an input.
// All functions accept and return either strings or byte slices without copying the inputs. The
// options of [znkr.io/seqdiff] apply.
package textdiff

import (
	"fmt"
	"slices"

	"znkr.io/seqdiff"
	"znkr.io/seqdiff/internal/byteview"
	"znkr.io/seqdiff/internal/config"
	"znkr.io/seqdiff/internal/impl"
	"znkr.io/seqdiff/internal/rvecs"
)

const (
	prefixMatch  = ' '
	prefixDelete = '-'
	prefixInsert = '+'
)

// lines holds the inputs split into lines and their result vectors.
type lines struct {
	x, y   []byteview.ByteView
	rx, ry []bool
}

func diffLines[T string | []byte](x, y T, cfg config.Config) lines {
	xlines, _ := byteview.SplitLines(byteview.From(x))
	ylines, _ := byteview.SplitLines(byteview.From(y))
	rx, ry := impl.Diff(xlines, ylines, cfg)
	return lines{xlines, ylines, rx, ry}
}

// Hunks compares the lines in x and y and returns the changes necessary to convert from one to
// the other.
//
// Hunk positions are line indices starting at 0. Every edit holds a single line including its
// newline character. If x and y are identical, the output is nil.
//
// The following options are supported: [seqdiff.Context], [seqdiff.Optimal]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Hunks[T string | []byte](x, y T, opts ...seqdiff.Option) []seqdiff.Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Optimal)
	l := diffLines(x, y, cfg)

	var nhunks, nedits int
	for h := range rvecs.Hunks(l.rx, l.ry, cfg.Context) {
		nhunks++
		nedits += h.Edits
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]seqdiff.Edit[T], 0, nedits)
	hout := make([]seqdiff.Hunk[T], 0, nhunks)
	for h := range rvecs.Hunks(l.rx, l.ry, cfg.Context) {
		n := len(eout)
		eout = appendEdits(eout, l, h.S0, h.S1, h.T0, h.T1)
		hout = append(hout, seqdiff.Hunk[T]{
			PosX:  h.S0,
			EndX:  h.S1,
			PosY:  h.T0,
			EndY:  h.T1,
			Edits: slices.Clip(eout[n:]),
		})
	}
	return hout
}

// Edits compares the lines in x and y and returns the changes necessary to convert from one to the
// other.
//
// Edits returns one edit for every line in x and y. If both are empty, the output is nil.
//
// The following option is supported: [seqdiff.Optimal]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Edits[T string | []byte](x, y T, opts ...seqdiff.Option) []seqdiff.Edit[T] {
	cfg := config.FromOptions(opts, config.Optimal)
	l := diffLines(x, y, cfg)

	nedits := len(l.x) + len(l.y)
	for s := range l.x {
		if !l.rx[s] {
			nedits--
		}
	}
	if nedits == 0 {
		return nil
	}
	return appendEdits(make([]seqdiff.Edit[T], 0, nedits), l, 0, len(l.x), 0, len(l.y))
}

func appendEdits[T string | []byte](dst []seqdiff.Edit[T], l lines, s0, s1, t0, t1 int) []seqdiff.Edit[T] {
	s, t := s0, t0
	for s < s1 || t < t1 {
		for s < s1 && l.rx[s] {
			dst = append(dst, seqdiff.Edit[T]{Op: seqdiff.Delete, X: byteview.To[T](l.x[s])})
			s++
		}
		for t < t1 && l.ry[t] {
			dst = append(dst, seqdiff.Edit[T]{Op: seqdiff.Insert, Y: byteview.To[T](l.y[t])})
			t++
		}
		for s < s1 && t < t1 && !l.rx[s] && !l.ry[t] {
			dst = append(dst, seqdiff.Edit[T]{
				Op: seqdiff.Match,
				X:  byteview.To[T](l.x[s]),
				Y:  byteview.To[T](l.y[t]),
			})
			s++
			t++
		}
	}
	return dst
}

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// Every hunk starts with a header of the form "@@ -l,n +l,n @@", followed by the lines of the hunk
// prefixed with ' ', '-' or '+'. Lines are copied verbatim. A last line without a newline character
// is written as is, there's no "\ No newline at end of file" marker. If x and y are identical, the
// output is empty.
//
// The following options are supported: [seqdiff.Context], [seqdiff.Optimal]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified[T string | []byte](x, y T, opts ...seqdiff.Option) T {
	cfg := config.FromOptions(opts, config.Context|config.Optimal)
	l := diffLines(x, y, cfg)

	var b byteview.Builder[T]
	for h := range rvecs.Hunks(l.rx, l.ry, cfg.Context) {
		if b.Len() == 0 {
			// Good enough estimate to avoid most reallocations.
			b.Grow(len(x) / 2)
		}
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && l.rx[s] {
				b.WriteByte(prefixDelete)
				b.WriteByteView(l.x[s])
				s++
			}
			for t < h.T1 && l.ry[t] {
				b.WriteByte(prefixInsert)
				b.WriteByteView(l.y[t])
				t++
			}
			for s < h.S1 && t < h.T1 && !l.rx[s] && !l.ry[t] {
				b.WriteByte(prefixMatch)
				b.WriteByteView(l.x[s])
				s++
				t++
			}
		}
	}
	return b.Build()
}
