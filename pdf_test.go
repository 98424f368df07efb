// seehuhn.de/go/signature - render hand-drawn signatures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package signature

import (
	"bytes"
	"testing"
)

func TestWritePDF(t *testing.T) {
	drawings := map[string]Drawing{
		"empty": nil,
		"strokes": {
			{{X: 0, Y: 0, Color: "#1e90ff"}, {X: 100, Y: 0}, {X: 100, Y: 50}},
			{{X: 10, Y: 10}},
			{},
		},
	}
	for name, d := range drawings {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := WritePDF(buf, d, Options{Width: 300, Height: 100}); err != nil {
				t.Fatal(err)
			}
			out := buf.Bytes()
			if !bytes.HasPrefix(out, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 16)])
			}
			if !bytes.Contains(out, []byte("/MediaBox [0 0 300")) {
				t.Error("page size does not match the canvas")
			}
		})
	}
}

func TestWritePDFBadColour(t *testing.T) {
	d := Drawing{{{X: 0, Y: 0, Color: "not-a-colour"}, {X: 1, Y: 1}}}
	buf := &bytes.Buffer{}
	if err := WritePDF(buf, d, Options{}); err == nil {
		t.Error("missing error for invalid colour")
	}
}
