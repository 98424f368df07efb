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
	"encoding/base64"
	"math"
	"strings"
	"testing"
)

func TestFitCorner(t *testing.T) {
	d := Drawing{{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}}}
	tr := Fit(d, 300, 100)
	if tr != (Transform{Scale: 1, OffsetX: 100, OffsetY: 25}) {
		t.Fatalf("Fit = %+v, want scale 1, offset (100, 25)", tr)
	}

	want := [][2]float64{{100, 25}, {200, 25}, {200, 75}}
	for i, p := range d[0] {
		x, y := tr.Apply(p)
		if x != want[i][0] || y != want[i][1] {
			t.Errorf("point %d maps to (%g, %g), want (%g, %g)", i, x, y, want[i][0], want[i][1])
		}
	}

	svg := RenderSVG(d, Options{})
	if !strings.Contains(svg, `d="M 100 25 L 200 25 L 200 75"`) {
		t.Errorf("path data missing from\n%s", svg)
	}
}

func TestFitNoUpscale(t *testing.T) {
	cases := []Drawing{
		{{{X: 0, Y: 0}}},
		{{{X: 5, Y: 5}, {X: 6, Y: 7}}},
		{{{X: -40, Y: 3}, {X: 239, Y: 82}}},
		{{{X: 1, Y: 1}, {X: 1, Y: 50}}},
	}
	for _, d := range cases {
		if tr := Fit(d, 300, 100); tr.Scale != 1 {
			t.Errorf("Fit(%v).Scale = %g, want 1", d, tr.Scale)
		}
	}
}

func TestFitInvariant(t *testing.T) {
	drawings := []Drawing{
		{{{X: 0, Y: 0}, {X: 10000, Y: 1}}},
		{{{X: -500, Y: -500}, {X: 500, Y: 500}}, {{X: 0, Y: 0}}},
		{{{X: 3, Y: 0}, {X: 3, Y: 900}}},
		{{{X: 0.001, Y: 0.002}, {X: 0.003, Y: 0.001}}},
		{{}, {{X: 1e6, Y: -1e6}, {X: -1e6, Y: 1e6}}, {}},
	}
	sizes := [][2]float64{{300, 100}, {200, 80}, {600, 200}, {21, 21}}

	const eps = 1e-9
	for _, d := range drawings {
		for _, size := range sizes {
			w, h := size[0], size[1]
			tr := Fit(d, w, h)
			if tr.Scale > 1 {
				t.Errorf("%v on %gx%g: scale %g > 1", d, w, h, tr.Scale)
			}
			for _, s := range d {
				for _, p := range s {
					x, y := tr.Apply(p)
					if x < Padding-eps || x > w-Padding+eps || y < Padding-eps || y > h-Padding+eps {
						t.Errorf("%v on %gx%g: point %v maps to (%g, %g)", d, w, h, p, x, y)
					}
				}
			}
		}
	}
}

func TestFitCentred(t *testing.T) {
	d := Drawing{{{X: 0, Y: 0}, {X: 1000, Y: 100}}}
	tr := Fit(d, 300, 100)
	b, _ := Bounds(d)
	x0, y0 := tr.Apply(Point{X: b.MinX, Y: b.MinY})
	x1, y1 := tr.Apply(Point{X: b.MaxX, Y: b.MaxY})
	if math.Abs((x0+x1)/2-150) > 1e-9 || math.Abs((y0+y1)/2-50) > 1e-9 {
		t.Errorf("centre maps to (%g, %g), want (150, 50)", (x0+x1)/2, (y0+y1)/2)
	}
	if math.Abs(x0-Padding) > 1e-9 || math.Abs(x1-(300-Padding)) > 1e-9 {
		t.Errorf("x range [%g, %g], want [%g, %g]", x0, x1, Padding, 300-Padding)
	}
}

func TestFitTinyCanvas(t *testing.T) {
	d := Drawing{{{X: 0, Y: 0}, {X: 10, Y: 10}}}
	tr := Fit(d, 12, 12)
	if tr.Scale != 0 {
		t.Errorf("scale = %g, want 0", tr.Scale)
	}
	x, y := tr.Apply(Point{X: 10, Y: 10})
	if x != 6 || y != 6 {
		t.Errorf("point maps to (%g, %g), want canvas centre", x, y)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("nil drawing has bounds")
	}
	if _, ok := Bounds(Drawing{{}, {}}); ok {
		t.Error("drawing without points has bounds")
	}
	b, ok := Bounds(Drawing{{{X: 3, Y: -1}}, {}, {{X: -2, Y: 4}, {X: 0, Y: 0}}})
	if !ok || b != (Box{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}) {
		t.Errorf("Bounds = %+v, %t", b, ok)
	}
	if b.Dx() != 5 || b.Dy() != 5 {
		t.Errorf("extent = %g x %g, want 5 x 5", b.Dx(), b.Dy())
	}
}

func TestRenderSVGPlaceholder(t *testing.T) {
	for _, d := range []Drawing{nil, {}} {
		svg := RenderSVG(d, Options{})
		if !strings.Contains(svg, ">"+Placeholder+"</text>") {
			t.Errorf("placeholder missing from\n%s", svg)
		}
		if strings.Contains(svg, "<path") {
			t.Errorf("placeholder image contains a path:\n%s", svg)
		}
		if !strings.Contains(svg, `fill="#999999"`) {
			t.Error("placeholder is not grey")
		}
	}
}

func TestRenderSVGHeader(t *testing.T) {
	svg := RenderSVG(Drawing{{{X: 1, Y: 1}, {X: 2, Y: 2}}}, Options{
		Width:           640,
		Height:          120,
		BackgroundColor: "#fafad2",
	})
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="120" viewBox="0 0 640 120">` + "\n" +
		`  <rect width="100%" height="100%" fill="#fafad2"/>` + "\n"
	if !strings.HasPrefix(svg, want) {
		t.Errorf("unexpected start of document:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("document is not terminated")
	}
}

func TestRenderSVGDefaults(t *testing.T) {
	for _, opts := range []Options{{}, {Width: -5, Height: -1, StrokeWidth: -2}} {
		svg := RenderSVG(Drawing{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, opts)
		for _, want := range []string{
			`width="300" height="100" viewBox="0 0 300 100"`,
			`fill="#ffffff"`,
			`stroke="#000000" stroke-width="2"`,
		} {
			if !strings.Contains(svg, want) {
				t.Errorf("%+v: %q missing from\n%s", opts, want, svg)
			}
		}
	}
}

func TestRenderSVGStrokeCount(t *testing.T) {
	d := Drawing{
		{},
		{{X: 0, Y: 0}, {X: 10, Y: 10}},
		{{X: 5, Y: 5}},
		{},
		{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
	}
	svg := RenderSVG(d, Options{})
	if n := strings.Count(svg, "<path "); n != 3 {
		t.Errorf("got %d paths, want 3", n)
	}

	// the single point becomes a lone moveto
	if !strings.Contains(svg, `<path d="M `) || strings.Contains(svg, `d=""`) {
		t.Errorf("unexpected path data in\n%s", svg)
	}
}

func TestRenderSVGOnlyEmptyStrokes(t *testing.T) {
	svg := RenderSVG(Drawing{{}, {}}, Options{})
	if strings.Contains(svg, "<path") || strings.Contains(svg, Placeholder) {
		t.Errorf("unexpected content in\n%s", svg)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	tm := int64(1700000000000)
	d := Drawing{
		{{X: 0.1, Y: 0.2, Time: &tm}, {X: 33.3, Y: 12.7}, {X: 1e-7, Y: -4}},
		{{X: 5, Y: 5, Color: "navy"}, {X: 8, Y: 1, Color: "navy"}},
	}
	a := RenderSVG(d, Options{Width: 250, Height: 90})
	b := RenderSVG(d, Options{Width: 250, Height: 90})
	if a != b {
		t.Errorf("output differs:\n%s\n%s", a, b)
	}
	if strings.Contains(a, "1700000000000") {
		t.Error("time stamps leak into the output")
	}
}

func TestRenderSVGStrokeColour(t *testing.T) {
	d := Drawing{
		{{X: 0, Y: 0, Color: "#ff0000"}, {X: 10, Y: 0}},
		{{X: 0, Y: 5, Color: "#00ff00"}, {X: 10, Y: 5, Color: "#0000ff"}},
		{{X: 0, Y: 9}, {X: 10, Y: 9, Color: "#123456"}},
		{{X: 0, Y: 9, Color: `"/><script>`}, {X: 10, Y: 9}},
		{{X: 0, Y: 1, Color: "navy"}, {X: 5, Y: 1}, {X: 10, Y: 1, Color: "navy"}},
	}
	svg := RenderSVG(d, Options{StrokeColor: "#333333"})
	paths := strings.Split(svg, "<path ")[1:]
	if len(paths) != 5 {
		t.Fatalf("got %d paths, want 5", len(paths))
	}
	want := []string{
		`stroke="#ff0000"`,
		`stroke="#333333"`,
		`stroke="#333333"`,
		`stroke="&quot;/&gt;&lt;script&gt;"`,
		`stroke="navy"`,
	}
	for i, w := range want {
		if !strings.Contains(paths[i], w) {
			t.Errorf("path %d: %q missing from %s", i, w, paths[i])
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{100, "100"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
	}
	for _, c := range cases {
		if got := formatNumber(c.in); got != c.want {
			t.Errorf("formatNumber(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDataURL(t *testing.T) {
	const prefix = "data:image/svg+xml;base64,"
	d := Drawing{{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	url := RenderDataURL(d, Options{})
	enc, ok := strings.CutPrefix(url, prefix)
	if !ok {
		t.Fatalf("url %q lacks prefix %q", url, prefix)
	}
	dec, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		t.Fatal(err)
	}
	if string(dec) != RenderSVG(d, Options{}) {
		t.Error("data URL does not decode to the SVG markup")
	}
}
