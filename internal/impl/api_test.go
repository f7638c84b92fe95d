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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/seqdiff/internal/config"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DIMDMMDMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "unique-elements",
			x:    strings.Split("aXbYc", ""),
			y:    strings.Split("aZbc", ""),
			want: "MDIMDM",
		},
		{
			name: "largish",
			x:    strings.Split("xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay", ""),
			y:    strings.Split("waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaait", ""),
			want: "DIMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMDII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, optimal := range []bool{false, true} {
				cfg := config.Default
				cfg.Optimal = optimal

				rx, ry := Diff(tt.x, tt.y, cfg)
				got := render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Diff(..., optimal=%v) differs [-want,+got]:\n%s", optimal, diff)
				}

				rx, ry = DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b }, cfg)
				got = render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("DiffFunc(..., optimal=%v) differs [-want,+got]:\n%s", optimal, diff)
				}
			}
		})
	}
}

func TestDiffFuncNilEqual(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, config.ErrNilEqual) {
			t.Errorf("DiffFunc(..., nil, ...) panicked with %v, want %v", err, config.ErrNilEqual)
		}
	}()
	DiffFunc([]int{1}, []int{2}, nil, config.Default)
}

func TestDiffFuncPanicPropagates(t *testing.T) {
	errBoom := errors.New("boom")
	defer func() {
		if r := recover(); r != errBoom {
			t.Errorf("DiffFunc(...) panicked with %v, want %v", r, errBoom)
		}
	}()
	DiffFunc([]int{1, 2}, []int{3, 4}, func(a, b int) bool { panic(errBoom) }, config.Default)
}

func TestFindChangeBounds(t *testing.T) {
	tests := []struct {
		name                   string
		x, y                   string
		smin, smax, tmin, tmax int
	}{
		{"empty", "", "", 0, 0, 0, 0},
		{"identical", "abc", "abc", 3, 3, 3, 3},
		{"different-ends", "abc", "xbz", 0, 3, 0, 3},
		{"prefix", "abcd", "abxy", 2, 4, 2, 4},
		{"suffix", "abcd", "xycd", 0, 2, 0, 2},
		{"middle", "abXcd", "abYYcd", 2, 3, 2, 4},
		{"insertion", "abcd", "abXcd", 2, 2, 2, 3},
		{"overlapping-prefix-and-suffix", "aaa", "aaaa", 3, 3, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := []byte(tt.x), []byte(tt.y)
			want := []int{tt.smin, tt.smax, tt.tmin, tt.tmax}

			smin, smax, tmin, tmax := FindChangeBounds(x, y)
			if diff := cmp.Diff(want, []int{smin, smax, tmin, tmax}); diff != "" {
				t.Errorf("FindChangeBounds(%q, %q) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}

			smin, smax, tmin, tmax = FindChangeBoundsFunc(x, y, func(a, b byte) bool { return a == b })
			if diff := cmp.Diff(want, []int{smin, smax, tmin, tmax}); diff != "" {
				t.Errorf("FindChangeBoundsFunc(%q, %q) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func render(rx, ry []bool, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		if rx[s] {
			sb.WriteRune('D')
			s++
		} else if ry[t] {
			sb.WriteRune('I')
			t++
		} else {
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}
