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

// Package signature renders signatures captured on a signing canvas.
//
// A [Drawing] is the list of pen strokes recorded by the browser. It is
// fitted into a fixed-size canvas (scaled down if necessary, never up, and
// centred) and turned into self-contained SVG markup by [RenderSVG]. The
// markup can be embedded as a data URL ([SVGToDataURL]), placed into an
// e-mail ([RenderEmailHTML]), rasterized to PNG ([Rasterize]) or exported
// as PDF ([WritePDF]). Typed signatures, where the signer enters their name
// instead of drawing, are rendered by [RenderTypedSVG].
//
// All functions are safe for concurrent use.
package signature

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref

// Point is one sample of a pen stroke, in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Time is the capture timestamp in milliseconds, if known.
	// It is not used for rendering.
	Time *int64 `json:"time,omitempty"`

	// Color is the colour of the stroke this point belongs to.
	// The empty string means that no colour was recorded. Points without
	// a colour do not affect the colour of their stroke.
	Color string `json:"color,omitempty"`
}

// Stroke is the sequence of points of one pen-down to pen-up motion.
type Stroke []Point

// Drawing is a complete hand-drawn signature. Strokes are painted in order.
// A nil or empty Drawing means that the document has not been signed.
type Drawing []Stroke

// IsEmpty reports whether d contains no strokes.
func (d Drawing) IsEmpty() bool {
	return len(d) == 0
}

// color returns the colour recorded for s, or "" if the points of s do not
// agree on a single colour. The first point must carry the colour; later
// points without a colour are ignored.
func (s Stroke) color() string {
	if len(s) == 0 || s[0].Color == "" {
		return ""
	}
	c := s[0].Color
	for _, p := range s[1:] {
		if p.Color != "" && p.Color != c {
			return ""
		}
	}
	return c
}
