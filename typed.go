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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RenderTypedSVG renders a typed signature: text is centred on the canvas
// in the given font. The font size is fixed; text which is too long for the
// canvas overflows it.
func RenderTypedSVG(text string, opts TypedOptions) string {
	opts = opts.withDefaults()

	b := &strings.Builder{}
	writeSVGStart(b, opts.Options)
	b.WriteString(`  <text x="50%" y="50%" text-anchor="middle" dominant-baseline="middle" font-family="`)
	b.WriteString(escapeXML(opts.FontFamily))
	b.WriteString(`" font-size="`)
	b.WriteString(formatNumber(opts.FontSize))
	b.WriteString(`" fill="`)
	b.WriteString(escapeXML(opts.StrokeColor))
	b.WriteString(`">`)
	b.WriteString(escapeXML(norm.NFC.String(text)))
	b.WriteString("</text>\n")
	b.WriteString("</svg>")
	return b.String()
}

// RenderTypedDataURL renders a typed signature and returns it as a data URL.
func RenderTypedDataURL(text string, opts TypedOptions) string {
	return SVGToDataURL(RenderTypedSVG(text, opts))
}
