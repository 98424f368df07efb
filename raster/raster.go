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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is reported row by row through an emit callback, so that the
// caller decides how coverage is composited into an image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// Coverage values lie in [0, 1]. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// FillRule selects how the winding number is turned into coverage.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer scan-converts paths. Create one instance per image and reuse it
// for all paths drawn into that image; buffers grow but are never released.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels above this ratio.
	MiterLimit float64

	// scan conversion buffers
	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // part of cover right of the edge, per pixel
	edges     []edge
	activeIdx []int

	// device-space bounding box of edges
	bboxEmpty        bool
	devXMin, devXMax float64
	devYMin, devYMax float64

	// flattened subpaths, contiguous
	points         []vec.Vec2
	subpathOffsets []int
	subpathClosed  []bool

	// stroke outline polygons, contiguous
	outline        []vec.Vec2
	outlineOffsets []int
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity CTM, a unit stroke width and round caps and joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill fills the path using the given fill rule.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	r.resetEdges()

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// filling implicitly closes every subpath
	if current != start {
		r.addEdge(current, start)
	}

	r.scan(rule, emit)
}

// FillPolygons fills a set of closed polygons given in user space.
func (r *Rasterizer) FillPolygons(polys [][]vec.Vec2, rule FillRule, emit EmitFunc) {
	r.resetEdges()
	for _, poly := range polys {
		r.addPolygon(poly)
	}
	r.scan(rule, emit)
}

func (r *Rasterizer) addPolygon(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	for i := range poly {
		r.addEdge(poly[i], poly[(i+1)%len(poly)])
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// apply maps a user-space point to device space.
func (r *Rasterizer) apply(p vec.Vec2) (float64, float64) {
	m := r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

// deviceScale returns how much user-space distances grow in device space.
func (r *Rasterizer) deviceScale() float64 {
	m := r.CTM
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// addEdge records the device-space image of the user-space segment a-b.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0, y0 := r.apply(a)
	x1, y1 := r.apply(b)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// flattenQuadratic approximates the quadratic Bézier p0-p1-p2 by line
// segments whose deviation stays below Flatness in device space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length() * r.deviceScale()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier p0-p1-p2-p3 by line segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	dev := 0.75 * max(d1, d2) * r.deviceScale()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// scan converts the collected edges into coverage, one scanline at a time,
// using an active edge list.
//
// For each pixel two values are accumulated: cover, the signed vertical
// extent of all edge pieces inside the pixel column, and area, the part of
// that extent lying to the right of the edge within the pixel. Integrating
// from left to right gives the signed area of the path inside each pixel.
func (r *Rasterizer) scan(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yTop {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			if accumulate(e, yTop, yBot, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside the scanline [yTop, yBot) to the
// cover and area buffers, which are indexed by x-xMin. Pieces left of the
// buffer are folded into the first pixel; pieces right of it are dropped.
func accumulate(e *edge, yTop, yBot float64, cover, area []float32, xMin, xMax int) bool {
	yTop = max(yTop, min(e.y0, e.y1))
	yBot = min(yBot, max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	colLeft := int(math.Floor(min(xTop, xBot)))
	colRight := int(math.Floor(max(xTop, xBot)))

	add := func(col int, ya, yb float64) {
		c := sign * (yb - ya)
		if col < xMin {
			cover[0] += float32(c)
			area[0] += float32(c)
			return
		}
		if col >= xMax {
			return
		}
		xm := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		cover[col-xMin] += float32(c)
		area[col-xMin] += float32(c * (1 - (xm - float64(col))))
	}

	if colLeft == colRight {
		add(colLeft, yTop, yBot)
		return true
	}

	// the edge crosses several pixel columns
	dydx := 1 / e.dxdy
	for col := colLeft; col <= colRight; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			add(col, lo, hi)
		}
	}
	return true
}

// integrate turns accumulated cover/area values into coverage in place.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == EvenOdd {
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trimZeros returns the part of row between the first and last non-zero
// value, together with its offset. It returns nil if the row is all zero.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF/PostScript default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// arcSegmentLength bounds the chord length used for round caps and
	// joins, in device pixels.
	arcSegmentLength = 0.5
)
