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

// Package rvecs contains helpers for result vectors.
//
// A pair of result vectors rx, ry describes a diff between x and y: rx[s] is true if x[s] is
// deleted and ry[t] is true if y[t] is inserted. Everything else is a match. Both vectors are one
// element longer than their input. The last element is always false, it allows iterating over the
// vectors without additional bounds checks.
package rvecs

// Make allocates a pair of result vectors for x and y with a single allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Kept returns the complement of a result vector without the trailing border element, that is
// kept[i] is true if the i-th element is part of the common subsequence.
func Kept(r []bool) []bool {
	kept := make([]bool, len(r)-1)
	for i := range kept {
		kept[i] = !r[i]
	}
	return kept
}
