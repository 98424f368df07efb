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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is built as a union of simple polygons: one quadrilateral per
// segment plus join and cap pieces. All polygons are given the same
// orientation, so that filling them together with the nonzero rule paints
// every covered pixel exactly once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]

	d := r.Width / 2
	for i := range r.subpathOffsets {
		pts := r.subpathPoints(i)
		closed := r.subpathClosed[i]

		if len(pts) == 1 {
			// zero-length subpath: only a round cap leaves a mark
			if r.Cap == graphics.LineCapRound {
				r.addCircle(pts[0], d)
			}
			continue
		}
		if closed && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}

		n := len(pts)
		last := n - 1
		if closed {
			last = n
		}
		for j := range last {
			r.addSegment(pts[j], pts[(j+1)%n], d)
		}

		if closed {
			for j := range n {
				r.addJoin(pts[(j+n-1)%n], pts[j], pts[(j+1)%n], d)
			}
			continue
		}
		for j := 1; j < n-1; j++ {
			r.addJoin(pts[j-1], pts[j], pts[j+1], d)
		}
		r.addCap(pts[0], pts[1], d)
		r.addCap(pts[n-1], pts[n-2], d)
	}

	r.resetEdges()
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		r.addPolygon(r.outline[start:end])
	}
	r.scan(NonZero, emit)
}

// flatten splits p into polylines, one per subpath. Consecutive duplicate
// points are dropped. A subpath consisting of a lone MoveTo is discarded.
func (r *Rasterizer) flatten(p *path.Data) {
	r.points = r.points[:0]
	r.subpathOffsets = r.subpathOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]

	start := 0
	drawn := false
	finish := func(closed bool) {
		if drawn && len(r.points) > start {
			r.subpathOffsets = append(r.subpathOffsets, start)
			r.subpathClosed = append(r.subpathClosed, closed)
		} else {
			r.points = r.points[:start]
		}
		start = len(r.points)
		drawn = false
	}
	addPoint := func(pt vec.Vec2) {
		if len(r.points) > start && r.points[len(r.points)-1].Sub(pt).Length() < zeroLengthThreshold {
			return
		}
		r.points = append(r.points, pt)
	}
	addLine := func(_, b vec.Vec2) { addPoint(b) }

	var current, first vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			first = current
			addPoint(current)
			k++
		case path.CmdLineTo:
			drawn = true
			addPoint(p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			drawn = true
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], addLine)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			drawn = true
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], addLine)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			addPoint(first)
			drawn = true
			finish(true)
			addPoint(first)
			current = first
		}
	}
	finish(false)
}

// subpathPoints returns the polyline of subpath i.
func (r *Rasterizer) subpathPoints(i int) []vec.Vec2 {
	end := len(r.points)
	if i+1 < len(r.subpathOffsets) {
		end = r.subpathOffsets[i+1]
	}
	return r.points[r.subpathOffsets[i]:end]
}

// addSegment adds the rectangle swept by the segment a-b.
func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	t := b.Sub(a)
	t = t.Mul(1 / t.Length())
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
	r.addOutline(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin adds the join geometry at b, where segment a-b meets b-c.
func (r *Rasterizer) addJoin(a, b, c vec.Vec2, d float64) {
	t1 := b.Sub(a)
	t1 = t1.Mul(1 / t1.Length())
	t2 := c.Sub(b)
	t2 = t2.Mul(1 / t2.Length())

	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(b, d)
		return
	}

	// the join is needed on the outer side of the turn only
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)

	if r.Join == graphics.LineJoinMiter {
		cosPhi := n1.X*n2.X + n1.Y*n2.Y
		if 1+cosPhi > 1e-12 && math.Sqrt(2/(1+cosPhi)) <= r.MiterLimit {
			tip := b.Add(n1.Add(n2).Mul(d / (1 + cosPhi)))
			r.addOutline(b, b.Add(n1.Mul(d)), tip, b.Add(n2.Mul(d)))
			return
		}
	}
	r.addOutline(b, b.Add(n1.Mul(d)), b.Add(n2.Mul(d)))
}

// addCap adds the cap at the open end p of a segment coming from q.
func (r *Rasterizer) addCap(p, q vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		t := p.Sub(q)
		t = t.Mul(d / t.Length())
		n := vec.Vec2{X: -t.Y, Y: t.X}
		r.addOutline(p.Add(n), p.Add(n).Add(t), p.Sub(n).Add(t), p.Sub(n))
	}
}

// addCircle adds a polygonal circle of radius d around c. The number of
// vertices keeps the chord length below arcSegmentLength device pixels.
func (r *Rasterizer) addCircle(c vec.Vec2, d float64) {
	circumference := 2 * math.Pi * d * r.deviceScale()
	n := int(math.Ceil(circumference / arcSegmentLength))
	n = min(max(n, 8), 512)

	start := len(r.outline)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + d*math.Cos(phi),
			Y: c.Y + d*math.Sin(phi),
		})
	}
	r.finishOutline(start)
}

// addOutline adds one polygon to the stroke outline.
func (r *Rasterizer) addOutline(pts ...vec.Vec2) {
	start := len(r.outline)
	r.outline = append(r.outline, pts...)
	r.finishOutline(start)
}

// finishOutline gives the polygon starting at start a positive orientation
// and records it. Polygons with no area are discarded.
func (r *Rasterizer) finishOutline(start int) {
	poly := r.outline[start:]
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(a) < zeroLengthThreshold {
		r.outline = r.outline[:start]
		return
	}
	if a < 0 {
		slices.Reverse(poly)
	}
	r.outlineOffsets = append(r.outlineOffsets, start)
}

// collinearityThreshold detects consecutive segments that need no join.
const collinearityThreshold = 1e-9
