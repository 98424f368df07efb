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
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/signature/internal/svgdoc"
)

// WritePDF writes d as a single-page PDF document to w. The page has the
// size of the canvas, with one canvas pixel mapped to one PDF point, and
// shows the same content as [RenderSVG].
//
// Colours must be given in a form understood by [Rasterize].
func WritePDF(w io.Writer, d Drawing, opts Options) error {
	opts = opts.withDefaults()
	width, height := float64(opts.Width), float64(opts.Height)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	bg, err := pdfColor(opts.BackgroundColor)
	if err != nil {
		return err
	}
	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.Rect(0, 0, width, height, "F")

	if d.IsEmpty() {
		pdf.AddUTF8FontFromBytes("goregular", "", goregular.TTF)
		pdf.SetFont("goregular", "", placeholderFontSize)
		pdf.SetTextColor(0x99, 0x99, 0x99)
		tw := pdf.GetStringWidth(Placeholder)
		// baseline placed so that lower case letters are centred
		pdf.Text((width-tw)/2, height/2+placeholderFontSize*0.27, Placeholder)
	} else {
		tr := Fit(d, width, height)
		pdf.SetLineWidth(opts.StrokeWidth)
		pdf.SetLineCapStyle("round")
		pdf.SetLineJoinStyle("round")
		for _, s := range d {
			if len(s) < 2 {
				continue
			}
			c, err := pdfColor(strokeColor(s, opts))
			if err != nil {
				return err
			}
			pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
			pdf.SetAlpha(float64(c.A)/255, "Normal")
			for i, p := range s {
				x, y := tr.Apply(p)
				if i == 0 {
					pdf.MoveTo(x, y)
				} else {
					pdf.LineTo(x, y)
				}
			}
			pdf.DrawPath("D")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("signature: writing PDF: %w", err)
	}
	return nil
}

func pdfColor(s string) (color.NRGBA, error) {
	c, err := svgdoc.ParseColor(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("signature: %w", err)
	}
	return c, nil
}
