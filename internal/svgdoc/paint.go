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

package svgdoc

import (
	"context"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/signature/raster"
)

// Render paints the document into a new image. Pixels not covered by any
// element stay transparent.
//
// The context is checked before each element is painted. If it is
// cancelled, Render returns the context's error and no image.
func Render(ctx context.Context, doc *Document) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, doc.Width, doc.Height))
	r := raster.NewRasterizer(rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(doc.Width),
		URy: float64(doc.Height),
	})

	for _, e := range doc.Elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.CTM = doc.ViewBox
		switch e := e.(type) {
		case *Shape:
			paintShape(img, r, e)
		case *Text:
			if e.Fill.None || e.Size <= 0 {
				continue
			}
			outline, err := textOutline(e)
			if err != nil {
				return nil, err
			}
			r.Fill(outline, raster.NonZero, compositor(img, e.Fill.Color))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

func paintShape(img *image.RGBA, r *raster.Rasterizer, s *Shape) {
	if !s.Fill.None {
		rule := raster.NonZero
		if s.EvenOdd {
			rule = raster.EvenOdd
		}
		r.Fill(s.Path, rule, compositor(img, s.Fill.Color))
	}
	if !s.Stroke.None && s.Width > 0 {
		r.Width = s.Width
		r.Cap = s.Cap
		r.Join = s.Join
		r.MiterLimit = s.MiterLim
		r.Stroke(s.Path, compositor(img, s.Stroke.Color))
	}
}

// compositor returns an emit function which paints c over img, weighted
// by the coverage (source-over compositing).
func compositor(img *image.RGBA, c color.NRGBA) raster.EmitFunc {
	alpha := float32(c.A) / 255
	sr := float32(c.R) / 255 * alpha
	sg := float32(c.G) / 255 * alpha
	sb := float32(c.B) / 255 * alpha

	return func(y, xMin int, coverage []float32) {
		if y < 0 || y >= img.Rect.Dy() {
			return
		}
		row := img.Pix[y*img.Stride:]
		for i, cov := range coverage {
			x := xMin + i
			if cov <= 0 || x < 0 || x >= img.Rect.Dx() {
				continue
			}
			a := min(cov, 1) * alpha
			pix := row[4*x : 4*x+4 : 4*x+4]
			pix[0] = blend(pix[0], sr*min(cov, 1), a)
			pix[1] = blend(pix[1], sg*min(cov, 1), a)
			pix[2] = blend(pix[2], sb*min(cov, 1), a)
			pix[3] = blend(pix[3], a, a)
		}
	}
}

// blend computes src + dst*(1-a) for premultiplied channel values.
func blend(dst uint8, src, a float32) uint8 {
	v := src*255 + float32(dst)*(1-a)
	return uint8(min(max(v+0.5, 0), 255))
}
