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

// Command genref generates reference files for the signature test cases.
//
// For every case it writes the SVG markup, the PNG produced by the built-in
// rasterizer and the PDF export. With -gs, it also writes an independent
// coverage reference for the rasterizer: the strokes are drawn white on
// black into a PDF file, which Ghostscript renders to PNG.
// Run from the module root directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/signature"
	"seehuhn.de/go/signature/testcases"
)

const refDir = "testdata/reference"

func main() {
	useGS := flag.Bool("gs", false, "render coverage references with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(ctx, name, tc); err != nil {
				log.Fatalf("%s: %v", name, err)
			}

			if !*useGS || tc.Drawing.IsEmpty() {
				continue
			}
			pdfPath := filepath.Join(refDir, name+"_ref.pdf")
			pngPath := filepath.Join(refDir, name+"_ref.png")
			if err := generateCoveragePDF(tc, pdfPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}
}

// generate writes the SVG, PNG and PDF output for one test case.
func generate(ctx context.Context, name string, tc testcases.TestCase) error {
	svg := signature.RenderSVG(tc.Drawing, tc.Options)
	if err := os.WriteFile(filepath.Join(refDir, name+".svg"), []byte(svg), 0644); err != nil {
		return err
	}

	img, err := signature.Rasterize(ctx, svg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(refDir, name+".png"), img, 0644); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(refDir, name+".pdf"))
	if err != nil {
		return err
	}
	err = signature.WritePDF(f, tc.Drawing, tc.Options)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// generateCoveragePDF draws the strokes of tc white on black, using the
// same geometry as the SVG output.
func generateCoveragePDF(tc testcases.TestCase, pdfPath string) error {
	opts := tc.Options
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = signature.DefaultWidth
	}
	if height <= 0 {
		height = signature.DefaultHeight
	}
	lineWidth := opts.StrokeWidth
	if lineWidth <= 0 {
		lineWidth = signature.DefaultStrokeWidth
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left, the canvas origin is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(lineWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	tr := signature.Fit(tc.Drawing, float64(width), float64(height))
	for _, s := range tc.Drawing {
		if len(s) == 0 {
			continue
		}
		for i, p := range s {
			x, y := tr.Apply(p)
			if i == 0 {
				page.MoveTo(x, y)
			} else {
				page.LineTo(x, y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript: %w", err)
	}
	return nil
}
