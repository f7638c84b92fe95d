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

package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"znkr.io/seqdiff/internal/byteview"
)

func newOutput(w io.Writer, mode string) (*termenv.Output, error) {
	switch mode {
	case "auto":
		return termenv.NewOutput(w), nil
	case "always":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI)), nil
	case "never":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)), nil
	default:
		return nil, fmt.Errorf("invalid --color=%q, want auto, always or never", mode)
	}
}

// writeUnified writes a file header and a unified diff to out. Lines are colorized if the output
// supports it.
func writeUnified(out *termenv.Output, header string, diff []byte) error {
	var b byteview.Builder[[]byte]
	b.Grow(len(header) + len(diff))

	headers, _ := byteview.SplitLines(byteview.From(header))
	for _, l := range headers {
		writeLine(&b, out.String(trimNewline(l)).Bold(), l)
	}

	lines, _ := byteview.SplitLines(byteview.From(diff))
	for _, l := range lines {
		style := out.String(trimNewline(l))
		switch l.At(0) {
		case '@':
			style = style.Foreground(out.Color("6"))
		case '-':
			style = style.Foreground(out.Color("1"))
		case '+':
			style = style.Foreground(out.Color("2"))
		}
		writeLine(&b, style, l)
	}

	_, err := out.Write(b.Build())
	return err
}

func trimNewline(l byteview.ByteView) string {
	s := l.String()
	if l.HasSuffix('\n') {
		s = s[:len(s)-1]
	}
	return s
}

func writeLine(b *byteview.Builder[[]byte], style termenv.Style, l byteview.ByteView) {
	b.WriteString(style.String())
	if l.HasSuffix('\n') {
		b.WriteByte('\n')
	}
}
