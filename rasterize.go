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
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"
	"time"

	"seehuhn.de/go/signature/internal/svgdoc"
)

// Rasterize converts SVG markup into a PNG image of the size declared by
// the svg element.
//
// Markup which cannot be read fails with an error wrapping
// [ErrMalformedSVG]. Only the subset of SVG written by this package is
// guaranteed to be understood: the elements svg, g, rect, path and text,
// solid colours, and the stroke and font attributes used by [RenderSVG]
// and [RenderTypedSVG].
//
// The context is checked between elements. On cancellation the context's
// error is returned and no image data.
func Rasterize(ctx context.Context, svg string) ([]byte, error) {
	start := time.Now()

	doc, err := svgdoc.Parse(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	img, err := svgdoc.Render(ctx, doc)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}

	Logger().Debug("signature: rasterized",
		"width", doc.Width,
		"height", doc.Height,
		"elements", len(doc.Elements),
		"bytes", buf.Len(),
		"elapsed", time.Since(start))
	return buf.Bytes(), nil
}

// RasterizeDrawing renders d as a PNG image.
func RasterizeDrawing(ctx context.Context, d Drawing, opts Options) ([]byte, error) {
	return Rasterize(ctx, RenderSVG(d, opts))
}

// RasterizeTyped renders a typed signature as a PNG image.
//
// The font family list only chooses between the faces of the built-in Go
// fonts: cursive and script families are drawn in Go Italic.
func RasterizeTyped(ctx context.Context, text string, opts TypedOptions) ([]byte, error) {
	return Rasterize(ctx, RenderTypedSVG(text, opts))
}
