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

package impl

import (
	"znkr.io/seqdiff/internal/config"
	"znkr.io/seqdiff/internal/rvecs"
)

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other as result vectors (see [rvecs]).
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := FindChangeBounds(x, y)
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return
	}

	// Preprocess x and y to reduce the problem size and to work with integer IDs instead of Ts.
	// This is only possible for comparable types, because mapping from T to an ID requires a map.
	x0, y0, xidx, yidx := preprocess(rx, ry, smin, smax, tmin, tmax, x, y)

	var m myers[int]
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	smin0, smax0, tmin0, tmax0 := m.init(x0, y0, func(a, b int) bool { return a == b })
	m.compare(smin0, smax0, tmin0, tmax0, cfg.Optimal)
	return rx, ry
}

// DiffFunc compares the contents of x and y using eq for comparisons and returns the changes
// necessary to convert from one to the other as result vectors (see [rvecs]).
//
// Note that this function has generally worse performance than [Diff] for diffs with many changes.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool) {
	if eq == nil {
		panic(config.ErrNilEqual)
	}
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := FindChangeBoundsFunc(x, y, eq)
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return
	}

	var m myers[T]
	m.rx, m.ry = rx, ry
	smin, smax, tmin, tmax = m.init(x, y, eq)
	m.compare(smin, smax, tmin, tmax, cfg.Optimal)
	return rx, ry
}

// FindChangeBounds returns the bounds of the portion of the inputs that differs, that is x[:smin]
// and y[:tmin] is the longest common prefix and x[smax:] and y[tmax:] is the longest common suffix
// that doesn't overlap with the prefix.
func FindChangeBounds[T comparable](x, y []T) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	return
}

// FindChangeBoundsFunc is like [FindChangeBounds] but uses eq for comparisons.
func FindChangeBoundsFunc[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	if eq == nil {
		panic(config.ErrNilEqual)
	}
	return findChangeBoundsFunc(x, y, eq)
}

func findChangeBoundsFunc[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}
	return
}

// handleTrivialBounds fills the result vectors if one of the bounded inputs is empty. It returns
// true if the bounds were trivial.
func handleTrivialBounds(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}

// preprocess reduces the problem size before running Myers' algorithm.
//
// Every element in x[smin:smax] and y[tmin:tmax] gets a dense integer ID. Elements that only
// appear in one of the two inputs can never match, they are marked as deletions or insertions
// right away and dropped.
//
// The results are:
//   - x0:   IDs of the remaining elements of x[smin:smax]
//   - y0:   IDs of the remaining elements of y[tmin:tmax]
//   - xidx: mapping from x0 to x, x0[s] corresponds to x[xidx[s]]
//   - yidx: mapping from y0 to y, y0[t] corresponds to y[yidx[t]]
func preprocess[T comparable](rx, ry []bool, smin, smax, tmin, tmax int, x, y []T) (x0, y0, xidx, yidx []int) {
	n, m := smax-smin, tmax-tmin
	ids := make(map[T]int, n)
	buf := make([]int, 2*n+2*m)
	x0, buf = buf[:0:n], buf[n:]
	xidx, buf = buf[:0:n], buf[n:]
	y0, buf = buf[:0:m], buf[m:]
	yidx = buf[:0:m]

	// inY[id] is set for every ID in x that also appears in y.
	for _, e := range x[smin:smax] {
		id, ok := ids[e]
		if !ok {
			id = len(ids)
			ids[e] = id
		}
		x0 = append(x0, id)
	}
	inY := make([]bool, len(ids))
	for i, e := range y[tmin:tmax] {
		id, ok := ids[e]
		if !ok {
			// Not in x, this is always an insertion.
			ry[tmin+i] = true
			continue
		}
		inY[id] = true
		yidx = append(yidx, tmin+i)
		y0 = append(y0, id)
	}

	// Drop everything from x0 that's not in y.
	j := 0
	for i, id := range x0 {
		if !inY[id] {
			rx[smin+i] = true // always a deletion
			continue
		}
		x0[j] = id
		xidx = append(xidx, smin+i)
		j++
	}
	x0 = x0[:j]
	return
}
