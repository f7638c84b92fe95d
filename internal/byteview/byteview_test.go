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

package byteview

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestFromString(t *testing.T) {
	str := "my string"

	got := From(str)
	if unsafe.StringData(got.data) != unsafe.StringData(str) {
		t.Errorf("From(str) points to different memory")
	}
	if got.Len() != len(str) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(str))
	}
	if got.At(3) != 's' {
		t.Errorf("got.At(3) = %q, want 's'", got.At(3))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(str)
		})
		if allocs > 0 {
			t.Errorf("From[string](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestFromBytes(t *testing.T) {
	b := []byte("my byte slice")

	got := From(b)
	if unsafe.StringData(got.data) != unsafe.SliceData(b) {
		t.Errorf("From(b) points to different memory")
	}
	if got.String() != "my byte slice" {
		t.Errorf("got.String() = %q, want %q", got.String(), "my byte slice")
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(b)
		})
		if allocs > 0 {
			t.Errorf("From[[]byte](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestTo(t *testing.T) {
	b := []byte("round trip")

	gotBytes := To[[]byte](From(b))
	if unsafe.SliceData(gotBytes) != unsafe.SliceData(b) || len(gotBytes) != len(b) {
		t.Errorf("To[[]byte](From(b)) doesn't point to the original memory")
	}
	if got := To[string](From(b)); got != "round trip" {
		t.Errorf("To[string](From(b)) = %q, want %q", got, "round trip")
	}
	if got := To[[]byte](From("")); got != nil {
		t.Errorf("To[[]byte](From(\"\")) = %q, want nil", got)
	}
}

func TestHasSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"\n", true},
		{"a\n", true},
		{"a", false},
	}
	for _, tt := range tests {
		if got := From(tt.in).HasSuffix('\n'); got != tt.want {
			t.Errorf("From(%q).HasSuffix('\\n') = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name               string
		input              string
		wantLines          []string
		wantMissingNewline int
	}{
		{
			name:               "empty",
			input:              "",
			wantLines:          []string{},
			wantMissingNewline: -1,
		},
		{
			name:               "newline-only",
			input:              "\n",
			wantLines:          []string{"\n"},
			wantMissingNewline: -1,
		},
		{
			name:               "empty-lines",
			input:              "\n\n\n",
			wantLines:          []string{"\n", "\n", "\n"},
			wantMissingNewline: -1,
		},
		{
			name:               "missing-newline",
			input:              "foo\nbar",
			wantLines:          []string{"foo\n", "bar"},
			wantMissingNewline: 2,
		},
		{
			name:               "missing-newline-in-first-line",
			input:              "foo",
			wantLines:          []string{"foo"},
			wantMissingNewline: 1,
		},
		{
			name:               "no-missing-newline",
			input:              "foo\nbar\nbaz\n",
			wantLines:          []string{"foo\n", "bar\n", "baz\n"},
			wantMissingNewline: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, gotMissingNewline := SplitLines(From(tt.input))
			gotLines := make([]string, len(lines))
			for i, l := range lines {
				gotLines[i] = l.String()
			}
			if diff := cmp.Diff(tt.wantLines, gotLines); diff != "" {
				t.Errorf("SplitLines(...) result difference [-want, +got]:\n%s", diff)
			}
			if gotMissingNewline != tt.wantMissingNewline {
				t.Errorf("SplitLines(...) returned missing newline at %v, want %v", gotMissingNewline, tt.wantMissingNewline)
			}
		})
	}
}

func TestSplitLinesAllocs(t *testing.T) {
	in := From("foo\nbar\nbaz")
	allocs := testing.AllocsPerRun(10, func() {
		_, _ = SplitLines(in)
	})
	if allocs > 1 {
		t.Errorf("SplitLines(...) allocated %v times, want <= 1", allocs)
	}
}

func TestBuilder(t *testing.T) {
	var b Builder[[]byte]
	b.WriteString("a")
	b.WriteByteView(From("b"))
	b.Write([]byte{'c'})
	b.WriteByte('d')

	if b.Len() != 4 {
		t.Errorf("b.Len() = %v, want 4", b.Len())
	}

	got, want := b.Build(), []byte("abcd")
	if !cmp.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got, want = b.Build(), nil
	if !cmp.Equal(got, want) {
		t.Errorf("second call to Build: got %q, want %q", got, want)
	}
}

func TestBuilderBuildStringAlloc(t *testing.T) {
	var b Builder[string]
	allocs := testing.AllocsPerRun(10, func() {
		b.Grow(3)
		b.WriteString("a")
		b.WriteByteView(From("b"))
		b.Write([]byte{'c'})
		_ = b.Build()
	})
	if allocs > 1 {
		t.Errorf("Builder[...].Build() allocated %v times, want <= 1", allocs)
	}
}
