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

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dx returns the horizontal extent of b.
func (b Box) Dx() float64 { return b.MaxX - b.MinX }

// Dy returns the vertical extent of b.
func (b Box) Dy() float64 { return b.MaxY - b.MinY }

// Bounds returns the bounding box of all points in d.
// The second return value is false if d contains no points at all.
func Bounds(d Drawing) (Box, bool) {
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, s := range d {
		for _, p := range s {
			b.MinX = min(b.MinX, p.X)
			b.MinY = min(b.MinY, p.Y)
			b.MaxX = max(b.MaxX, p.X)
			b.MaxY = max(b.MaxY, p.Y)
		}
	}
	if math.IsInf(b.MinX, 1) {
		return Box{}, false
	}
	return b, true
}

// Transform maps drawing coordinates to canvas coordinates:
// x' = x*Scale + OffsetX and y' = y*Scale + OffsetY.
type Transform struct {
	Scale, OffsetX, OffsetY float64
}

// Identity leaves all points unchanged.
var Identity = Transform{Scale: 1}

// Apply maps p to canvas coordinates.
func (t Transform) Apply(p Point) (x, y float64) {
	return p.X*t.Scale + t.OffsetX, p.Y*t.Scale + t.OffsetY
}

// Fit computes the transform which centres d on a width×height canvas.
// The drawing is shrunk uniformly until it fits into the canvas minus
// [Padding] on every side; it is never enlarged.
//
// If d contains no points, Fit returns the transform of an empty bounding
// box at the origin, which centres the origin on the canvas.
func Fit(d Drawing, width, height float64) Transform {
	b, _ := Bounds(d)
	dx, dy := b.Dx(), b.Dy()

	scaleX := 1.0
	if dx != 0 {
		scaleX = (width - 2*Padding) / dx
	}
	scaleY := 1.0
	if dy != 0 {
		scaleY = (height - 2*Padding) / dy
	}
	// canvases smaller than the padding collapse the drawing to a point
	scale := max(min(scaleX, scaleY, 1), 0)

	return Transform{
		Scale:   scale,
		OffsetX: (width-dx*scale)/2 - b.MinX*scale,
		OffsetY: (height-dy*scale)/2 - b.MinY*scale,
	}
}
