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
	"encoding/base64"
	"strconv"
	"strings"
)

// Placeholder is the label shown instead of an empty signature.
const Placeholder = "Chưa ký"

// placeholderColor is the neutral grey used for Placeholder.
const placeholderColor = "#999999"

const placeholderFontSize = 14.0

// RenderSVG renders d as a self-contained SVG image of the size given in
// opts. If d is empty, the image shows [Placeholder] instead.
//
// The output only depends on d and opts; rendering the same drawing twice
// gives identical markup.
func RenderSVG(d Drawing, opts Options) string {
	opts = opts.withDefaults()

	b := &strings.Builder{}
	writeSVGStart(b, opts)
	if d.IsEmpty() {
		b.WriteString(`  <text x="50%" y="50%" text-anchor="middle" dominant-baseline="middle" fill="`)
		b.WriteString(placeholderColor)
		b.WriteString(`" font-family="sans-serif" font-size="`)
		b.WriteString(formatNumber(placeholderFontSize))
		b.WriteString(`">`)
		b.WriteString(escapeXML(Placeholder))
		b.WriteString("</text>\n")
	} else {
		tr := Fit(d, float64(opts.Width), float64(opts.Height))
		for _, s := range d {
			writePath(b, s, tr, opts)
		}
	}
	b.WriteString("</svg>")
	return b.String()
}

// writeSVGStart writes the <svg> start tag and the background rectangle.
func writeSVGStart(b *strings.Builder, opts Options) {
	w, h := strconv.Itoa(opts.Width), strconv.Itoa(opts.Height)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	b.WriteString(w)
	b.WriteString(`" height="`)
	b.WriteString(h)
	b.WriteString(`" viewBox="0 0 `)
	b.WriteString(w)
	b.WriteString(" ")
	b.WriteString(h)
	b.WriteString("\">\n")
	b.WriteString(`  <rect width="100%" height="100%" fill="`)
	b.WriteString(escapeXML(opts.BackgroundColor))
	b.WriteString("\"/>\n")
}

// writePath writes one <path> element for s. Empty strokes are skipped.
func writePath(b *strings.Builder, s Stroke, tr Transform, opts Options) {
	if len(s) == 0 {
		return
	}
	b.WriteString(`  <path d="`)
	b.WriteString(pathData(s, tr))
	b.WriteString(`" stroke="`)
	b.WriteString(escapeXML(strokeColor(s, opts)))
	b.WriteString(`" stroke-width="`)
	b.WriteString(formatNumber(opts.StrokeWidth))
	b.WriteString("\" fill=\"none\" stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n")
}

// pathData returns the SVG path commands for s: a move to the first point
// followed by a line to each further point.
func pathData(s Stroke, tr Transform) string {
	b := &strings.Builder{}
	for i, p := range s {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		x, y := tr.Apply(p)
		b.WriteString(formatNumber(x))
		b.WriteByte(' ')
		b.WriteString(formatNumber(y))
	}
	return b.String()
}

// strokeColor resolves the colour used to paint s.
func strokeColor(s Stroke, opts Options) string {
	if c := s.color(); c != "" {
		return c
	}
	return opts.StrokeColor
}

// formatNumber formats x in the shortest form which parses back to x.
func formatNumber(x float64) string {
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// SVGToDataURL wraps SVG markup into a base64 data URL, which can be used
// wherever an image URL is expected.
func SVGToDataURL(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// RenderDataURL renders d as SVG and returns it as a data URL.
func RenderDataURL(d Drawing, opts Options) string {
	return SVGToDataURL(RenderSVG(d, opts))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeXML escapes the characters with a special meaning in XML and HTML
// text and attribute values. Invalid UTF-8 is replaced by U+FFFD and
// characters which XML does not allow are dropped.
func escapeXML(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
	return xmlEscaper.Replace(s)
}

// isXMLChar reports whether r matches the Char production of XML 1.0.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20:
		return false
	case r <= 0xD7FF:
		return true
	case r < 0xE000:
		return false
	case r <= 0xFFFD:
		return true
	case r < 0x10000:
		return false
	}
	return r <= 0x10FFFF
}
