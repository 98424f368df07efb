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

// Package svgdoc reads the subset of SVG produced by the signature
// renderers and paints it into an RGBA image.
//
// Supported are the elements svg, g, rect, path and text, solid colours,
// and the presentation attributes needed to draw strokes and text. Unknown
// elements are skipped together with their content.
package svgdoc

import (
	"errors"
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// ErrMalformed is wrapped by all errors caused by invalid markup.
var ErrMalformed = errors.New("malformed SVG")

// SyntaxError describes invalid markup.
type SyntaxError struct {
	Element string // the element being processed, if known
	Attr    string // the offending attribute, if any
	Err     error
}

func (e *SyntaxError) Error() string {
	msg := "svg"
	if e.Element != "" {
		msg += ": <" + e.Element + ">"
	}
	if e.Attr != "" {
		msg += " attribute " + e.Attr
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

// Document is a parsed SVG image.
type Document struct {
	// Width and Height give the image size in pixels.
	Width, Height int

	// ViewBox maps user space to the pixel grid.
	ViewBox matrix.Matrix

	// Elements lists the shapes in painting order.
	Elements []Element
}

// Element is a shape to be painted.
type Element interface {
	isElement()
}

// Paint is a solid colour, or no paint at all.
type Paint struct {
	Color color.NRGBA
	None  bool
}

// Shape is a filled and/or stroked path. Rectangles are converted to
// shapes while parsing.
type Shape struct {
	Path *path.Data

	Fill     Paint
	EvenOdd  bool
	Stroke   Paint
	Width    float64
	Cap      graphics.LineCapStyle
	Join     graphics.LineJoinStyle
	MiterLim float64
}

func (*Shape) isElement() {}

// TextAnchor is the horizontal alignment of a text element.
type TextAnchor int

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// Text is a single line of text.
type Text struct {
	X, Y     float64
	Content  string
	Anchor   TextAnchor
	Baseline string // value of dominant-baseline
	Family   string
	Size     float64
	Italic   bool
	Bold     bool
	Fill     Paint
}

func (*Text) isElement() {}
