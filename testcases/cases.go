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

import "seehuhn.de/go/signature"

var basicCases = []TestCase{
	{
		Name:    "empty",
		Drawing: nil,
	},
	{
		Name:    "only_empty_strokes",
		Drawing: signature.Drawing{{}, {}},
	},
	{
		// the drawing fits without scaling and is centred:
		// points map to (100,25), (200,25), (200,75)
		Name: "corner",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(100, 0), pt(100, 50)},
		},
	},
	{
		Name: "single_point",
		Drawing: signature.Drawing{
			{pt(0, 0)},
		},
	},
	{
		Name: "two_strokes",
		Drawing: signature.Drawing{
			timed(1700000000000, 16, signature.Stroke{pt(10, 40), pt(30, 10), pt(50, 40), pt(70, 10)}),
			timed(1700000000500, 16, signature.Stroke{pt(20, 30), pt(60, 30)}),
		},
	},
	{
		Name: "with_empty_strokes",
		Drawing: signature.Drawing{
			{},
			{pt(5, 5), pt(60, 20)},
			{},
			{pt(5, 20), pt(60, 5)},
		},
	},
	{
		Name: "large_canvas",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(100, 0), pt(100, 50)},
		},
		Options: signature.Options{Width: 600, Height: 200, StrokeWidth: 4},
	},
}

var colourCases = []TestCase{
	{
		Name: "per_stroke",
		Drawing: signature.Drawing{
			coloured("#1e90ff", signature.Stroke{pt(0, 0), pt(40, 30), pt(80, 0)}),
			coloured("#ff0000", signature.Stroke{pt(0, 30), pt(80, 30)}),
			{pt(40, 0), pt(40, 40)},
		},
	},
	{
		Name: "named_and_rgb",
		Drawing: signature.Drawing{
			coloured("navy", signature.Stroke{pt(0, 0), pt(100, 40)}),
			coloured("rgb(0, 128, 0)", signature.Stroke{pt(0, 40), pt(100, 0)}),
		},
	},
	{
		// points disagree on the colour, so the default is used
		Name: "mixed_within_stroke",
		Drawing: signature.Drawing{
			{
				{X: 0, Y: 0, Color: "#ff0000"},
				{X: 50, Y: 20, Color: "#00ff00"},
				{X: 100, Y: 0},
			},
		},
	},
	{
		Name: "custom_defaults",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(30, 30), pt(60, 0), pt(90, 30)},
		},
		Options: signature.Options{
			StrokeColor:     "#333366",
			StrokeWidth:     3,
			BackgroundColor: "#fafad2",
		},
	},
}

var rangeCases = []TestCase{
	{
		Name: "negative",
		Drawing: signature.Drawing{
			{pt(-50, -20), pt(-10, -40), pt(-30, -5)},
		},
	},
	{
		// scaled down to fit the padded canvas
		Name: "huge",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(5000, 1000), pt(10000, 0)},
			{pt(2000, 1500), pt(8000, 1500)},
		},
	},
	{
		Name: "tall",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(10, 400), pt(20, 0)},
		},
	},
	{
		Name: "fractional",
		Drawing: signature.Drawing{
			{pt(0.125, 0.25), pt(33.3, 12.7), pt(66.6, 0.5), pt(99.9, 24.75)},
		},
	},
	{
		Name: "small_canvas",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(100, 50), pt(200, 0)},
		},
		Options: signature.Options{Width: 120, Height: 40},
	},
}

var degenerateCases = []TestCase{
	{
		Name: "identical_points",
		Drawing: signature.Drawing{
			{pt(7, 7), pt(7, 7), pt(7, 7)},
		},
	},
	{
		Name: "horizontal_line",
		Drawing: signature.Drawing{
			{pt(0, 10), pt(500, 10)},
		},
	},
	{
		Name: "vertical_line",
		Drawing: signature.Drawing{
			{pt(10, 0), pt(10, 500)},
		},
	},
	{
		Name: "back_and_forth",
		Drawing: signature.Drawing{
			{pt(0, 0), pt(80, 0), pt(0, 0), pt(80, 0)},
		},
	},
}
