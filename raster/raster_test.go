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

package raster

import (
	"image"
	"image/color"
	"math"
	"sort"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The diagonal edge is y = x/10, so pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	got := render(r, 10, 1, func(emit EmitFunc) { r.Fill(triangle, NonZero, emit) })

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(got[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: got %.4f, want %.4f", x, got[x], want)
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 8}).
		LineTo(vec.Vec2{X: 0, Y: 8}).
		Close().
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 6}).
		LineTo(vec.Vec2{X: 2, Y: 6}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	nonZero := render(r, 8, 8, func(emit EmitFunc) { r.Fill(p, NonZero, emit) })
	evenOdd := render(r, 8, 8, func(emit EmitFunc) { r.Fill(p, EvenOdd, emit) })

	centre := 4*8 + 4
	if nonZero[centre] != 1 {
		t.Errorf("nonzero centre coverage: got %v, want 1", nonZero[centre])
	}
	if evenOdd[centre] != 0 {
		t.Errorf("even-odd centre coverage: got %v, want 0", evenOdd[centre])
	}
	if evenOdd[0] != 1 {
		t.Errorf("even-odd corner coverage: got %v, want 1", evenOdd[0])
	}
}

func TestStrokeButt(t *testing.T) {
	// a horizontal line from x=2 to x=14 at y=8, 4 units wide
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 8}).
		LineTo(vec.Vec2{X: 14, Y: 8})

	r := NewRasterizer(rect.Rect{URx: 16, URy: 16})
	r.Width = 4
	r.Cap = graphics.LineCapButt
	got := render(r, 16, 16, func(emit EmitFunc) { r.Stroke(p, emit) })

	for y := range 16 {
		for x := range 16 {
			want := float32(0)
			if x >= 2 && x < 14 && y >= 6 && y < 10 {
				want = 1
			}
			if c := got[y*16+x]; math.Abs(float64(c-want)) > 1e-5 {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestStrokeDot(t *testing.T) {
	// a zero-length segment with round caps paints a disc
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10})

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 8
	got := render(r, 20, 20, func(emit EmitFunc) { r.Stroke(p, emit) })

	var total float64
	for _, c := range got {
		total += float64(c)
	}
	want := math.Pi * 16
	if math.Abs(total-want) > 0.02*want {
		t.Errorf("disc area: got %.3f, want %.3f", total, want)
	}

	// the same dot with butt caps leaves no mark
	r.Cap = graphics.LineCapButt
	got = render(r, 20, 20, func(emit EmitFunc) { r.Stroke(p, emit) })
	for i, c := range got {
		if c != 0 {
			t.Fatalf("butt cap dot: pixel %d has coverage %v", i, c)
		}
	}
}

func TestStrokeLoneMoveTo(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5})

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 4
	called := false
	r.Stroke(p, func(int, int, []float32) { called = true })
	if called {
		t.Error("a lone MoveTo must not paint anything")
	}
}

func TestStrokeJoins(t *testing.T) {
	// a right-angle corner; the miter join fills the outer corner square,
	// the bevel join only half of it
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 4})

	area := func(join graphics.LineJoinStyle) float64 {
		r := NewRasterizer(rect.Rect{URx: 32, URy: 32})
		r.Width = 6
		r.Cap = graphics.LineCapButt
		r.Join = join
		var total float64
		for _, c := range render(r, 32, 32, func(emit EmitFunc) { r.Stroke(p, emit) }) {
			total += float64(c)
		}
		return total
	}

	// two 16x6 rectangles overlapping in a 3x3 square
	base := 2*16*6.0 - 9
	cases := []struct {
		join graphics.LineJoinStyle
		want float64
	}{
		{graphics.LineJoinMiter, base + 9},
		{graphics.LineJoinBevel, base + 4.5},
		{graphics.LineJoinRound, base + 9*math.Pi/4},
	}
	for _, c := range cases {
		if got := area(c.join); math.Abs(got-c.want) > 0.1 {
			t.Errorf("join %v: got area %.3f, want %.3f", c.join, got, c.want)
		}
	}
}

func TestCTM(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	r.CTM = matrix.Matrix{4, 0, 0, 4, 2, 2}
	got := render(r, 8, 8, func(emit EmitFunc) { r.Fill(square, NonZero, emit) })

	var total float32
	for _, c := range got {
		total += c
	}
	if math.Abs(float64(total-16)) > 1e-4 {
		t.Errorf("scaled square area: got %v, want 16", total)
	}
	if got[2*8+2] != 1 || got[1*8+1] != 0 {
		t.Error("scaled square is misplaced")
	}
}

// TestAgainstVector compares filled shapes with golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	shapes := map[string][]vec.Vec2{
		"triangle": {{X: 5.5, Y: 3.25}, {X: 60, Y: 30}, {X: 12, Y: 58.75}},
		"diamond":  {{X: 32, Y: 2}, {X: 62, Y: 32}, {X: 32, Y: 62}, {X: 2, Y: 32}},
		"star": {
			{X: 32, Y: 2}, {X: 39, Y: 24}, {X: 62, Y: 24}, {X: 43, Y: 38},
			{X: 50, Y: 61}, {X: 32, Y: 47}, {X: 14, Y: 61}, {X: 21, Y: 38},
			{X: 2, Y: 24}, {X: 25, Y: 24},
		},
	}

	for name, poly := range shapes {
		t.Run(name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: size, URy: size})
			ours := render(r, size, size, func(emit EmitFunc) {
				r.FillPolygons([][]vec.Vec2{poly}, NonZero, emit)
			})

			z := vector.NewRasterizer(size, size)
			z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
			for _, p := range poly[1:] {
				z.LineTo(float32(p.X), float32(p.Y))
			}
			z.ClosePath()
			ref := image.NewAlpha(image.Rect(0, 0, size, size))
			z.Draw(ref, ref.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

			diffs := make([]int, size*size)
			for i, c := range ours {
				d := int(ref.Pix[i]) - int(toByte(c))
				if d < 0 {
					d = -d
				}
				diffs[i] = d
			}
			sort.Ints(diffs)
			if p95 := diffs[len(diffs)*95/100]; p95 > 2 {
				t.Errorf("95th percentile diff is %d (want <=2)", p95)
			}
			if worst := diffs[len(diffs)-1]; worst > 8 {
				t.Errorf("max diff is %d (want <=8)", worst)
			}
		})
	}
}

// render runs draw against a fresh coverage buffer of the given size.
func render(r *Rasterizer, w, h int, draw func(EmitFunc)) []float32 {
	buf := make([]float32, w*h)
	draw(func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func toByte(c float32) uint8 {
	return uint8(max(0, min(255, int(c*255+0.5))))
}
