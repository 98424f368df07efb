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

// Command sigrender renders a signature to SVG, PNG, PDF, a data URL or an
// e-mail HTML fragment.
//
// The drawing is read as JSON from the file given on the command line, or
// from standard input. With -text, a typed signature is rendered instead.
//
//	sigrender -format png -o signature.png drawing.json
//	sigrender -text "Nguyễn Văn A" -format svg
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"seehuhn.de/go/signature"
)

func main() {
	var (
		format      = flag.String("format", "svg", "output format: svg, png, pdf, dataurl or html")
		output      = flag.String("o", "-", "output file, - for standard output")
		text        = flag.String("text", "", "render this text as a typed signature")
		width       = flag.Int("width", signature.DefaultWidth, "canvas width")
		height      = flag.Int("height", signature.DefaultHeight, "canvas height")
		strokeColor = flag.String("color", signature.DefaultStrokeColor, "stroke colour")
		strokeWidth = flag.Float64("stroke-width", signature.DefaultStrokeWidth, "stroke width")
		background  = flag.String("background", signature.DefaultBackgroundColor, "background colour")
		fontFamily  = flag.String("font", signature.DefaultFontFamily, "font family for typed signatures")
		fontSize    = flag.Float64("font-size", signature.DefaultFontSize, "font size for typed signatures")
		label       = flag.String("label", "Signature", "field label for html output")
		name        = flag.String("name", "", "signer's name for html output")
		timeout     = flag.Duration("timeout", 30*time.Second, "rasterization timeout")
		verbose     = flag.Bool("v", false, "log debug information to standard error")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sigrender: ")

	if *verbose {
		signature.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := signature.Options{
		Width:           *width,
		Height:          *height,
		StrokeColor:     *strokeColor,
		StrokeWidth:     *strokeWidth,
		BackgroundColor: *background,
	}
	typed := signature.TypedOptions{
		Options:    opts,
		FontFamily: *fontFamily,
		FontSize:   *fontSize,
	}

	j := &job{
		format: *format,
		text:   *text,
		opts:   opts,
		typed:  typed,
		label:  *label,
		name:   *name,
	}
	if *text == "" {
		var err error
		j.drawing, err = readDrawing(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	data, err := j.render(ctx)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	err = writeOutput(*output, data)
	if err != nil {
		log.Fatal(err)
	}
}

// job describes one rendering request.
type job struct {
	format  string
	drawing signature.Drawing
	text    string // typed signature, used instead of drawing if non-empty
	opts    signature.Options
	typed   signature.TypedOptions
	label   string
	name    string
}

// render produces the complete output in memory. Nothing is returned if
// rendering fails.
func (j *job) render(ctx context.Context) ([]byte, error) {
	typed := j.text != ""
	out := &bytes.Buffer{}

	var err error
	switch j.format {
	case "svg":
		svg := signature.RenderSVG(j.drawing, j.opts)
		if typed {
			svg = signature.RenderTypedSVG(j.text, j.typed)
		}
		_, err = io.WriteString(out, svg+"\n")
	case "dataurl":
		url := signature.RenderDataURL(j.drawing, j.opts)
		if typed {
			url = signature.RenderTypedDataURL(j.text, j.typed)
		}
		_, err = io.WriteString(out, url+"\n")
	case "png":
		var img []byte
		if typed {
			img, err = signature.RasterizeTyped(ctx, j.text, j.typed)
		} else {
			img, err = signature.RasterizeDrawing(ctx, j.drawing, j.opts)
		}
		if err == nil {
			_, err = out.Write(img)
		}
	case "pdf":
		if typed {
			return nil, errors.New("pdf output is not available for typed signatures")
		}
		err = signature.WritePDF(out, j.drawing, j.opts)
	case "html":
		if typed {
			return nil, errors.New("html output is not available for typed signatures")
		}
		_, err = io.WriteString(out, signature.RenderEmailHTML(j.drawing, j.label, j.name)+"\n")
	default:
		return nil, fmt.Errorf("unknown format %q", j.format)
	}
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// writeOutput writes data to the named file, or to standard output if name
// is "-".
func writeOutput(name string, data []byte) error {
	if name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

// readDrawing reads a JSON drawing from the named file, or from standard
// input if name is empty or "-".
func readDrawing(name string) (signature.Drawing, error) {
	var data []byte
	var err error
	if name == "" || name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return signature.ParseDrawing(data)
}
