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

package seqdiff_test

import (
	"fmt"
	"strings"

	"znkr.io/seqdiff"
)

// Compare two lists of words and print the hunks in a format similar to a unified diff.
func ExampleHunks() {
	x := strings.Fields("the quick brown fox jumps over the lazy dog")
	y := strings.Fields("the quick red fox jumps over the lazy cat")

	for _, h := range seqdiff.Hunks(x, y, seqdiff.Context(1)) {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosX+1, h.EndX-h.PosX, h.PosY+1, h.EndY-h.PosY)
		for _, edit := range h.Edits {
			switch edit.Op {
			case seqdiff.Match:
				fmt.Printf(" %s\n", edit.X)
			case seqdiff.Delete:
				fmt.Printf("-%s\n", edit.X)
			case seqdiff.Insert:
				fmt.Printf("+%s\n", edit.Y)
			}
		}
	}
	// Output:
	// @@ -2,3 +2,3 @@
	//  quick
	// -brown
	// +red
	//  fox
	// @@ -8,2 +8,2 @@
	//  lazy
	// -dog
	// +cat
}

// Compare two strings rune by rune.
func ExampleEdits() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	for _, edit := range seqdiff.Edits(x, y) {
		switch edit.Op {
		case seqdiff.Match:
			fmt.Printf("%c", edit.X)
		case seqdiff.Delete:
			fmt.Printf("-%c", edit.X)
		case seqdiff.Insert:
			fmt.Printf("+%c", edit.Y)
		}
	}
	fmt.Println()
	// Output:
	// Hello, -W-o-r-l-d+世+界
}

// Compare records by a key and ignore the rest.
func ExampleEditsFunc() {
	type user struct {
		ID   int
		Name string
	}
	x := []user{{1, "ada"}, {2, "bob"}, {3, "cy"}}
	y := []user{{1, "Ada"}, {3, "cy"}, {4, "dee"}}

	edits := seqdiff.EditsFunc(x, y, func(a, b user) bool { return a.ID == b.ID })
	for _, edit := range edits {
		fmt.Println(edit.Op, edit.X, edit.Y)
	}
	// Output:
	// Match {1 ada} {1 Ada}
	// Delete {2 bob} {0 }
	// Match {3 cy} {3 cy}
	// Insert {0 } {4 dee}
}

func ExampleChangeBounds() {
	x := []byte("prefix-old-suffix")
	y := []byte("prefix-new-suffix")
	smin, smax, tmin, tmax := seqdiff.ChangeBounds(x, y)
	fmt.Printf("%s -> %s\n", x[smin:smax], y[tmin:tmax])
	// Output:
	// old -> new
}
