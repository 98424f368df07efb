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
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestValidatePoints(t *testing.T) {
	decode := func(s string) any {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			t.Fatal(err)
		}
		return v
	}

	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"json drawing", decode(`[[{"x":0,"y":0,"time":17},{"x":1.5,"y":-2,"color":"#f00"}],[]]`), true},
		{"json empty", decode(`[]`), true},
		{"json empty strokes", decode(`[[],[]]`), true},
		{"json flat", decode(`[{"x":0,"y":0}]`), false},
		{"json missing y", decode(`[[{"x":0}]]`), false},
		{"json string coordinate", decode(`[[{"x":"0","y":0}]]`), false},
		{"json null coordinate", decode(`[[{"x":null,"y":0}]]`), false},
		{"json point array", decode(`[[[0,0]]]`), false},
		{"json object", decode(`{"strokes":[]}`), false},
		{"json number", decode(`42`), false},
		{"nil", nil, false},
		{"drawing", Drawing{{{X: 1, Y: 2}}}, true},
		{"nil drawing", Drawing(nil), true},
		{"strokes", []Stroke{{{X: 1, Y: 2}}}, true},
		{"NaN", Drawing{{{X: math.NaN(), Y: 2}}}, false},
		{"Inf map", [][]map[string]float64{{{"x": math.Inf(1), "y": 0}}}, false},
		{"typed maps", [][]map[string]any{{{"x": 1, "y": int64(2)}}}, true},
		{"point slices", [][]Point{{{X: 1}}}, true},
		{"pointer points", [][]*Point{{{X: 1}}}, true},
		{"nil pointer point", [][]*Point{{nil}}, false},
		{"arrays", [1][2]map[string]float64{{{"x": 1, "y": 1}, {"x": 2, "y": 2}}}, true},
		{"string", "[[]]", false},
		{"wrong struct", [][]struct{ X, Y float64 }{{{1, 2}}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ValidatePoints(c.in); got != c.want {
				t.Errorf("ValidatePoints = %t, want %t", got, c.want)
			}
		})
	}
}

func TestParseDrawing(t *testing.T) {
	d, err := ParseDrawing([]byte(`[[{"x":0,"y":0,"time":1700000000000},{"x":100,"y":0,"color":"#1e90ff"}],[]]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 2 || len(d[0]) != 2 || len(d[1]) != 0 {
		t.Fatalf("unexpected drawing %v", d)
	}
	if d[0][0].Time == nil || *d[0][0].Time != 1700000000000 {
		t.Errorf("time stamp lost: %v", d[0][0].Time)
	}
	if d[0][1].X != 100 || d[0][1].Color != "#1e90ff" {
		t.Errorf("second point = %+v", d[0][1])
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	const want = `[[{"x":0,"y":0,"time":1700000000000},{"x":100,"y":0,"color":"#1e90ff"}],[]]`
	if string(out) != want {
		t.Errorf("round trip gives %s", out)
	}
}

func TestParseDrawingNull(t *testing.T) {
	d, err := ParseDrawing([]byte(" null "))
	if err != nil || d != nil {
		t.Errorf("ParseDrawing(null) = %v, %v", d, err)
	}
}

func TestParseDrawingErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`[[{"x":0,"y":0}]`,
		`[{"x":0,"y":0}]`,
		`[[{"x":0}]]`,
		`[[{"x":"1","y":2}]]`,
		`{"x":0,"y":0}`,
		`[[{"x":0,"y":0,"time":"yesterday"}]]`,
		`[[{"x":0,"y":0,"color":7}]]`,
	} {
		_, err := ParseDrawing([]byte(in))
		if !errors.Is(err, ErrInvalidDrawing) {
			t.Errorf("%q: err = %v, want ErrInvalidDrawing", in, err)
		}
	}
}
