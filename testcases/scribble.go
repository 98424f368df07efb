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

package testcases

import (
	"math"

	"seehuhn.de/go/signature"
)

var scribbleCases = []TestCase{
	{
		Name:    "loops",
		Drawing: signature.Drawing{loops(5, 200)},
	},
	{
		Name: "name_and_underline",
		Drawing: signature.Drawing{
			loops(3, 120),
			wave(0, 70, 260, 4, 60),
		},
	},
	{
		Name:    "dense",
		Drawing: signature.Drawing{loops(12, 2000)},
		Options: signature.Options{Width: 400, Height: 120, StrokeWidth: 1.5},
	},
}

// loops returns a cursive-like stroke consisting of n loops, sampled at
// the given number of points, as produced by a steady hand.
func loops(n, samples int) signature.Stroke {
	s := make(signature.Stroke, samples)
	for i := range s {
		t := float64(i) / float64(samples-1) * float64(n) * 2 * math.Pi
		x := 12*t + 18*math.Cos(t+math.Pi/2)
		y := 30 - 22*math.Sin(t+math.Pi/2) + 4*math.Sin(t/3)
		s[i] = pt(x, y)
	}
	return timed(1700000000000, 8, s)
}

// wave returns a flat sine wave from x0 to x1 at height y.
func wave(x0, y, x1, amplitude float64, samples int) signature.Stroke {
	s := make(signature.Stroke, samples)
	for i := range s {
		u := float64(i) / float64(samples-1)
		x := x0 + u*(x1-x0)
		s[i] = pt(x, y+amplitude*math.Sin(u*6*math.Pi))
	}
	return s
}
