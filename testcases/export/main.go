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

// Command export writes the signature test cases to JSON, together with
// the SVG markup rendered for each case. The fixtures are used by the
// front-end tests to check that both sides agree on the wire format.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/signature"
	"seehuhn.de/go/signature/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name            string            `json:"name"`
	Width           int               `json:"width,omitempty"`
	Height          int               `json:"height,omitempty"`
	StrokeColor     string            `json:"strokeColor,omitempty"`
	StrokeWidth     float64           `json:"strokeWidth,omitempty"`
	BackgroundColor string            `json:"backgroundColor,omitempty"`
	Strokes         signature.Drawing `json:"strokes"`
	SVG             string            `json:"svg"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	strokes := tc.Drawing
	if strokes == nil {
		strokes = signature.Drawing{}
	}
	return jsonTestCase{
		Name:            category + "_" + tc.Name,
		Width:           tc.Options.Width,
		Height:          tc.Options.Height,
		StrokeColor:     tc.Options.StrokeColor,
		StrokeWidth:     tc.Options.StrokeWidth,
		BackgroundColor: tc.Options.BackgroundColor,
		Strokes:         strokes,
		SVG:             signature.RenderSVG(tc.Drawing, tc.Options),
	}
}
