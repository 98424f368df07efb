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

// Package testcases holds a catalogue of signature drawings used by the
// tests and by the reference generators.
package testcases

import (
	"seehuhn.de/go/signature"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string            // lowercase a-z and _ only
	Drawing signature.Drawing // the strokes to render
	Options signature.Options // zero value means defaults
}

// pt is a helper to create a point without time stamp or colour.
func pt(x, y float64) signature.Point {
	return signature.Point{X: x, Y: y}
}

// coloured returns a copy of s with every point set to colour c.
func coloured(c string, s signature.Stroke) signature.Stroke {
	res := make(signature.Stroke, len(s))
	for i, p := range s {
		p.Color = c
		res[i] = p
	}
	return res
}

// timed assigns capture times to the points of s, starting at t0 and
// advancing by dt milliseconds per point.
func timed(t0, dt int64, s signature.Stroke) signature.Stroke {
	res := make(signature.Stroke, len(s))
	for i, p := range s {
		t := t0 + int64(i)*dt
		p.Time = &t
		res[i] = p
	}
	return res
}
