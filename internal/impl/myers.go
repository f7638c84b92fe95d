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
	"errors"
	"math"
)

// ErrNoBestPath is the panic value used if the TOO_EXPENSIVE heuristic can't find any path to
// split at. This is never supposed to happen and indicates a bug.
var ErrNoBestPath = errors.New("no best path found")

// vvec is a v-array: It stores the s-coordinate of the furthest reaching endpoint of a path for
// every diagonal k. Diagonals can be negative, v0 is the offset that maps k to an index.
type vvec struct {
	v  []int
	v0 int
}

func (v vvec) at(k int) int { return v.v[v.v0+k] }

func (v vvec) set(k, s int) { v.v[v.v0+k] = s }

type myers[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for forwards and backwards iteration respectively.
	vf, vb vvec

	// The cost at which the TOO_EXPENSIVE heuristic gives up on finding an optimal split.
	costLimit int

	// Mapping of s, t indices the location in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

// init prepares m to compare x and y and returns the bounds of the region that differs.
//
// If m.xidx and m.yidx are not set, s and t are used as indices into the result vectors directly.
func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smin, smax, tmin, tmax = findChangeBoundsFunc(x, y, eq)

	N, M := smax-smin, tmax-tmin
	diagonals := N + M
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.x, m.y = x, y
	m.eq = eq
	m.vf = vvec{buf[:vlen], diagonals + 1}
	m.vb = vvec{buf[vlen:], diagonals + 1}

	// Approximate the square root of the number of diagonals with a power of two.
	costLimit := 1
	for i := diagonals; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	m.costLimit = max(minCostLimit, costLimit)

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}

	if m.rx == nil || m.ry == nil {
		m.rx, m.ry = make([]bool, len(x)+1), make([]bool, len(y)+1)
	}
	return
}

// compare finds a path from (smin, tmin) to (smax, tmax) and records the deletions and insertions
// along that path in the result vectors. The path is optimal if optimal is set.
func (m *myers[T]) compare(smin, smax, tmin, tmax int, optimal bool) {
	x, y, eq := m.x, m.y, m.eq

	// split requires that there's no common prefix or suffix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		// Nothing left in x, everything in y is an insertion.
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		// Nothing left in y, everything in x is a deletion.
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// Divide the rectangle into a part before the middle diagonal (smin, tmin) to (s0, t0), the
		// diagonal (s0, t0) to (s1, t1) itself and the part after (s1, t1) to (smax, tmax). Both
		// parts are strictly smaller than the input rectangle.
		s0, s1, t0, t1, opt0, opt1 := m.split(smin, smax, tmin, tmax, optimal)
		m.compare(smin, s0, tmin, t0, opt0)
		m.compare(s1, smax, t1, tmax, opt1)
	}
}

// split finds the endpoints of a, potentially empty, middle diagonal of a path from (smin, tmin)
// to (smax, tmax). The returned flags report if the path from (smin, tmin) to (s0, t0) and from
// (s1, t1) to (smax, tmax) respectively still need to be optimal.
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (m *myers[T]) split(smin, smax, tmin, tmax int, optimal bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	N, M := smax-smin, tmax-tmin
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb

	// Diagonals outside of [kmin, kmax] are outside of the rectangle.
	kmin, kmax := smin-tmax, smax-tmin

	// The forward search starts on diagonal fmid and the backward search on bmid. Using the same
	// numbering for both searches means overlap checks compare values for the same k.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The parity of the cost of an optimal path is the parity of N-M. An overlap can therefore only
	// be found in the forward search if it's odd and in the backward search if it's even.
	odd := (N-M)%2 != 0

	// There's no common prefix or suffix, so the 0-paths are just the starting points and the
	// search starts with d=1. The loop terminates, at the latest once d reaches ⌈(N+M)/2⌉.
	vf.set(fmid, smin)
	vb.set(bmid, smax)
	for d := 1; ; d++ {
		longestDiag := 0 // longest diagonal found for this d

		// Forwards search.
		//
		// Diagonals in [fmid-d, fmid+d] that leave the rectangle are not searched. Once we hit a
		// border, the range shrinks by one to stay on diagonals with the same parity as d. When
		// it grows, we put a sentinel next to the new outermost diagonal, this way the border is
		// handled by the same comparison as every other diagonal.
		if fmin > kmin {
			fmin--
			vf.set(fmin-1, math.MinInt)
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf.set(fmax+1, math.MinInt)
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			// Extend the better of the two (d-1)-paths on the neighboring diagonals. On a tie, the
			// horizontal edge wins to prefer deletions over insertions.
			var s int
			if vf.at(k-1) < vf.at(k+1) {
				s = vf.at(k + 1) // vertical edge, t = s - k moves down
			} else {
				s = vf.at(k-1) + 1 // horizontal edge
			}
			t := s - k

			// Follow the diagonal as far as possible.
			s0, t0 := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			longestDiag = max(longestDiag, s-s0)
			vf.set(k, s)

			if odd && bmin <= k && k <= bmax && s >= vb.at(k) {
				return s0, s, t0, t, true, true
			}
		}

		// Backwards search, mirrors the forwards search.
		if bmin > kmin {
			bmin--
			vb.set(bmin-1, math.MaxInt)
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb.set(bmax+1, math.MaxInt)
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			var s int
			if vb.at(k-1) < vb.at(k+1) {
				s = vb.at(k - 1) // vertical edge
			} else {
				s = vb.at(k+1) - 1 // horizontal edge
			}
			t := s - k

			s1, t1 := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			longestDiag = max(longestDiag, s1-s)
			vb.set(k, s)

			if !odd && fmin <= k && k <= fmax && s <= vf.at(k) {
				return s, s1, t, t1, true, true
			}
		}

		if optimal {
			continue
		}

		// Heuristic (GOOD_DIAGONAL): Split at a long diagonal that's far from its corner and not
		// too far off the middle diagonal.
		if longestDiag >= goodDiagMinLen && d >= goodDiagCostLimit {
			var best struct {
				v              int
				s0, s1, t0, t1 int
				opt0, opt1     bool
			}
			for k := fmin; k <= fmax; k += 2 {
				s := vf.at(k)
				t := s - k
				if s < smin || smax <= s || t < tmin || tmax <= t {
					continue
				}
				v := (s - smin) + (t - tmin) - max(fmid-k, k-fmid)
				if v <= goodDiagMagic*d || v < best.v {
					continue
				}
				if s0, s1, t0, t1 := m.forwardDiag(k); s1-s0 >= goodDiagMinLen {
					best.v = v
					best.s0, best.s1, best.t0, best.t1 = s0, s1, t0, t1
					best.opt0, best.opt1 = true, false
				}
			}
			for k := bmin; k <= bmax; k += 2 {
				s := vb.at(k)
				t := s - k
				if s <= smin || smax < s || t <= tmin || tmax < t {
					continue
				}
				v := (smax - s) + (tmax - t) - max(bmid-k, k-bmid)
				if v <= goodDiagMagic*d || v < best.v {
					continue
				}
				if s0, s1, t0, t1 := m.backwardDiag(k); s1-s0 >= goodDiagMinLen {
					best.v = v
					best.s0, best.s1, best.t0, best.t1 = s0, s1, t0, t1
					best.opt0, best.opt1 = false, true
				}
			}
			if best.v > 0 {
				return best.s0, best.s1, best.t0, best.t1, best.opt0, best.opt1
			}
		}

		// Heuristic (TOO_EXPENSIVE): Give up on an optimal split once we're over the cost limit
		// and use the diagonal leading to the furthest reaching endpoint instead.
		if d >= m.costLimit {
			// Forward endpoint that maximizes s+t.
			fbest, fbestk := math.MinInt, 0
			for k := fmin; k <= fmax; k += 2 {
				s := vf.at(k)
				t := s - k
				if smin <= s && s < smax && tmin <= t && t < tmax && fbest < s+t {
					fbest, fbestk = s+t, k
				}
			}

			// Backward endpoint that minimizes s+t.
			bbest, bbestk := math.MaxInt, 0
			for k := bmin; k <= bmax; k += 2 {
				s := vb.at(k)
				t := s - k
				if smin < s && s <= smax && tmin < t && t <= tmax && s+t < bbest {
					bbest, bbestk = s+t, k
				}
			}

			// Use the endpoint that made more progress.
			switch {
			case fbest != math.MinInt && (bbest == math.MaxInt || (smax+tmax)-bbest < fbest-(smin+tmin)):
				s0, s1, t0, t1 := m.forwardDiag(fbestk)
				return s0, s1, t0, t1, true, false
			case bbest != math.MaxInt:
				s0, s1, t0, t1 := m.backwardDiag(bbestk)
				return s0, s1, t0, t1, false, true
			default:
				panic(ErrNoBestPath)
			}
		}
	}
}

// forwardDiag returns the diagonal at the end of the furthest reaching forward path on diagonal k.
//
// It repeats the decision made in the forward search to find the previous diagonal. By
// construction, the path from there to the endpoint is a single horizontal or vertical edge
// followed by the diagonal.
func (m *myers[T]) forwardDiag(k int) (s0, s1, t0, t1 int) {
	vf := m.vf
	pk := k - 1
	if vf.at(k-1) < vf.at(k+1) {
		pk = k + 1
	}
	s := vf.at(k)
	t := s - k
	ps := vf.at(pk)
	pt := ps - pk
	diag := min(s-ps, t-pt)
	return s - diag, s, t - diag, t
}

// backwardDiag is the backward search counterpart of forwardDiag.
func (m *myers[T]) backwardDiag(k int) (s0, s1, t0, t1 int) {
	vb := m.vb
	pk := k + 1
	if vb.at(k-1) < vb.at(k+1) {
		pk = k - 1
	}
	s := vb.at(k)
	t := s - k
	ps := vb.at(pk)
	pt := ps - pk
	diag := min(ps-s, pt-t)
	return s, s + diag, t, t + diag
}
