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

// Package impl contains the implementation of the diff algorithm.
//
// The core is Myers' algorithm in its linear space variant (section 4.2 of the paper): A search for
// a shortest path through the edit graph that is split recursively at a "middle diagonal". Two
// heuristics bound the runtime for large inputs with many differences.
//
// # Edit graph
//
// For x = "ABCABBA" and y = "CBABAC" the edit graph looks like this:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A point (s,t) in the graph is the state after consuming x[:s] and y[:t]. A horizontal edge
// deletes x[s], a vertical edge inserts y[t], and a diagonal edge exists wherever x[s] == y[t] and
// represents a match. Horizontal and vertical edges cost 1, diagonal edges are free. A shortest
// path from (0,0) to (N,M) is a minimal diff.
//
// The points with s-t = k form the diagonal k. A d-path is a path with exactly d non-diagonal
// edges. The results from the paper the code below depends on are:
//
//   - A d-path ends on a diagonal in {-d, -d+2, ..., d-2, d}, consequently the parity of the
//     diagonal is the parity of d.
//   - The furthest reaching d-path on diagonal k is the furthest reaching (d-1)-path on k-1 plus a
//     horizontal edge or the one on k+1 plus a vertical edge, whichever gets further, followed by
//     as many diagonal edges as possible.
//   - If there's a D-path from (0,0) to (N,M), there's a ⌈D/2⌉-path from (0,0) and a ⌊D/2⌋-path
//     from (N,M) in the reverse direction that end on the same diagonal and overlap. The
//     diagonal edges of the last step that made them overlap are the middle diagonal of a
//     shortest path.
//
// We store only the s-coordinate of the furthest reaching endpoint per diagonal, since t = s - k.
//
// ## References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// # Heuristics
//
// GOOD_DIAGONAL: Once the search is expensive enough, accept a long diagonal that made a lot of
// progress towards the opposite corner as the split point instead of searching for the middle
// diagonal of an optimal path.
//
// TOO_EXPENSIVE: A heuristic by Paul Eggert. If the cost of the search exceeds a limit of roughly
// sqrt(N+M), the search is aborted and the furthest reaching path found so far determines the split.
// With it, the worst case runtime drops to O(N^1.5 log N) at the cost of non-minimal diffs.
//
// Both heuristics only apply to the side of a split that was not found by an exact search, the
// other side keeps being searched for an optimal path.
package impl
