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
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var black = color.NRGBA{A: 0xff}

// ParsePaint parses a paint value. Supported are "none", "transparent",
// "#rgb", "#rrggbb", "rgb(r, g, b)" and "rgba(r, g, b, a)" with integer or
// percentage components, and the SVG colour keywords.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "none", "transparent":
		return Paint{None: true}, nil
	}

	c, err := ParseColor(s)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Color: c}, nil
}

// ParseColor parses a CSS colour value.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}

	lower := strings.ToLower(s)
	for _, fn := range []string{"rgb(", "rgba("} {
		if args, ok := strings.CutPrefix(lower, fn); ok {
			args, ok = strings.CutSuffix(args, ")")
			if !ok {
				return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
			}
			return parseRGB(args)
		}
	}

	if c, ok := colornames.Map[lower]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
}

func parseHex(hex string) (color.NRGBA, error) {
	var v uint64
	var err error
	if len(hex) == 3 || len(hex) == 6 {
		v, err = strconv.ParseUint(hex, 16, 32)
	}
	if err != nil || (len(hex) != 3 && len(hex) != 6) {
		return color.NRGBA{}, fmt.Errorf("invalid colour #%s", hex)
	}

	if len(hex) == 3 {
		r, g, b := uint8(v>>8)&0xf, uint8(v>>4)&0xf, uint8(v)&0xf
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func parseRGB(args string) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid colour rgb(%s)", args)
	}

	alpha := uint8(0xff)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a != a {
			return color.NRGBA{}, fmt.Errorf("invalid colour rgba(%s)", args)
		}
		alpha = uint8(min(max(a, 0), 1)*255 + 0.5)
		parts = parts[:3]
	}

	var c [3]uint8
	for i, part := range parts {
		part = strings.TrimSpace(part)
		var x float64
		var err error
		if pct, ok := strings.CutSuffix(part, "%"); ok {
			x, err = strconv.ParseFloat(pct, 64)
			x = x * 255 / 100
		} else {
			x, err = strconv.ParseFloat(part, 64)
		}
		if err != nil || x != x {
			return color.NRGBA{}, fmt.Errorf("invalid colour rgb(%s)", args)
		}
		c[i] = uint8(min(max(x+0.5, 0), 255))
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: alpha}, nil
}
