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

import (
	"errors"

	"seehuhn.de/go/signature/internal/svgdoc"
)

var (
	// ErrInvalidDrawing is returned by [ParseDrawing] when the input does
	// not describe a drawing.
	ErrInvalidDrawing = errors.New("signature: invalid drawing")

	// ErrMalformedSVG is wrapped by all errors which [Rasterize] returns
	// for markup it cannot read.
	ErrMalformedSVG = svgdoc.ErrMalformed
)

// SyntaxError gives details about malformed SVG markup. Errors of this type
// wrap [ErrMalformedSVG].
type SyntaxError = svgdoc.SyntaxError
