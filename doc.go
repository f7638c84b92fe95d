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

// Package seqdiff compares two sequences and reports the differences between them, similar to the
// Unix diff command line tool.
//
// The comparison finds a shortest edit script with the linear space variant of Myers' algorithm.
// The result is available in three shapes:
//
//   - [Hunks] groups changes into blocks with some surrounding context, like a unified diff.
//   - [Edits] returns one edit for every element of both inputs.
//   - [Matches] marks the elements of both inputs that are part of the common subsequence.
//
// Every function has a ...Func variant for element types that are not comparable or that need a
// custom notion of equality.
//
// For large inputs with many differences, the search applies heuristics that bound the cost at the
// expense of a diff that may be slightly longer than the shortest one. Use [Optimal] to disable
// them. With heuristics, the runtime is roughly O(N^1.5 log N); without them it's O(ND) where
// N = len(x) + len(y) and D is the number of edits. Memory use is O(N) in both cases.
//
// All functions are safe for concurrent use. Misuse of the API, like a negative [Context] or a nil
// equality function, panics with an error that can be inspected with [errors.Is].
//
// For a line-by-line diff of text, see [znkr.io/seqdiff/textdiff].
//
// [znkr.io/seqdiff/textdiff]: https://pkg.go.dev/znkr.io/seqdiff/textdiff
package seqdiff
