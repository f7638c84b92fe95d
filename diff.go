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

package seqdiff

import (
	"slices"

	"znkr.io/seqdiff/internal/config"
	"znkr.io/seqdiff/internal/impl"
	"znkr.io/seqdiff/internal/rvecs"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Two elements match
	Delete           // An element of x is deleted
	Insert           // An element of y is inserted
)

// Edit describes a single edit of a diff.
//
//   - For Match, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding context. The amount of context can be configured using
// [Context]. Hunks that are separated by no more than twice the context are merged.
//
// If x and y are identical, the output is nil.
//
// The following options are supported: [Context], [Optimal]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Optimal)
	rx, ry := impl.Diff(x, y, cfg)
	return hunks(x, y, rx, ry, cfg.Context)
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
//
// See [Hunks] for a description of the output. HunksFunc panics with an error wrapping
// [ErrNilEqual] if eq is nil.
//
// The following options are supported: [Context], [Optimal]
//
// Note that this function has generally worse performance than [Hunks] for diffs with many changes.
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Optimal)
	rx, ry := impl.DiffFunc(x, y, eq, cfg)
	return hunks(x, y, rx, ry, cfg.Context)
}

func hunks[T any](x, y []T, rx, ry []bool, context int) []Hunk[T] {
	// Counting hunks and edits first is cheap and allows us to preallocate the output.
	var nhunks, nedits int
	for h := range rvecs.Hunks(rx, ry, context) {
		nhunks++
		nedits += h.Edits
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for h := range rvecs.Hunks(rx, ry, context) {
		n := len(eout)
		eout = appendEdits(eout, x, y, rx, ry, h.S0, h.S1, h.T0, h.T1)
		hout = append(hout, Hunk[T]{
			PosX:  h.S0,
			EndX:  h.S1,
			PosY:  h.T0,
			EndY:  h.T1,
			Edits: slices.Clip(eout[n:]),
		})
	}
	return hout
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Edits returns one edit for every element in the input slices. If x and y are identical, the
// output will consist of a match edit for every input element. If both are empty, the output is
// nil.
//
// The following option is supported: [Optimal]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Edits[T comparable](x, y []T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := impl.Diff(x, y, cfg)
	return edits(x, y, rx, ry)
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
//
// See [Edits] for a description of the output. EditsFunc panics with an error wrapping
// [ErrNilEqual] if eq is nil.
//
// The following option is supported: [Optimal]
//
// Note that this function has generally worse performance than [Edits] for diffs with many changes.
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := impl.DiffFunc(x, y, eq, cfg)
	return edits(x, y, rx, ry)
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Every deletion and insertion is one edit, every match consumes one element of each side.
	nedits := len(x) + len(y)
	for s := range x {
		if !rx[s] {
			nedits--
		}
	}
	if nedits == 0 {
		return nil
	}
	return appendEdits(make([]Edit[T], 0, nedits), x, y, rx, ry, 0, len(x), 0, len(y))
}

// appendEdits appends the edits that transform x[s0:s1] into y[t0:t1] to dst. Deletions come
// before insertions.
func appendEdits[T any](dst []Edit[T], x, y []T, rx, ry []bool, s0, s1, t0, t1 int) []Edit[T] {
	s, t := s0, t0
	for s < s1 || t < t1 {
		for s < s1 && rx[s] {
			dst = append(dst, Edit[T]{Op: Delete, X: x[s]})
			s++
		}
		for t < t1 && ry[t] {
			dst = append(dst, Edit[T]{Op: Insert, Y: y[t]})
			t++
		}
		for s < s1 && t < t1 && !rx[s] && !ry[t] {
			dst = append(dst, Edit[T]{Op: Match, X: x[s], Y: y[t]})
			s++
			t++
		}
	}
	return dst
}

// Matches compares the contents of x and y and reports which elements are part of the longest
// common subsequence found: mx[s] is true if x[s] is kept, and my[t] is true if y[t] is kept.
// Everything else is deleted from x or inserted from y respectively.
//
// The following option is supported: [Optimal]
func Matches[T comparable](x, y []T, opts ...Option) (mx, my []bool) {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := impl.Diff(x, y, cfg)
	return rvecs.Kept(rx), rvecs.Kept(ry)
}

// MatchesFunc is like [Matches], but uses the provided equality comparison. It panics with an error
// wrapping [ErrNilEqual] if eq is nil.
//
// The following option is supported: [Optimal]
func MatchesFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) (mx, my []bool) {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := impl.DiffFunc(x, y, eq, cfg)
	return rvecs.Kept(rx), rvecs.Kept(ry)
}

// ChangeBounds returns the portion of x and y that differs: x[:smin] and y[:tmin] is the longest
// common prefix, x[smax:] and y[tmax:] the longest common suffix that doesn't overlap with it.
//
// If x and y are identical, smin == smax == len(x) and tmin == tmax == len(y).
func ChangeBounds[T comparable](x, y []T) (smin, smax, tmin, tmax int) {
	return impl.FindChangeBounds(x, y)
}

// ChangeBoundsFunc is like [ChangeBounds], but uses the provided equality comparison. It panics with
// an error wrapping [ErrNilEqual] if eq is nil.
func ChangeBoundsFunc[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	return impl.FindChangeBoundsFunc(x, y, eq)
}
