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
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Only the Go font family is available. Font family names select between
// its faces: "monospace" and "mono" families use Go Mono, "cursive" and
// "script" families use the italic face.
var (
	goRegular    = loadFont(goregular.TTF)
	goItalic     = loadFont(goitalic.TTF)
	goBold       = loadFont(gobold.TTF)
	goBoldItalic = loadFont(gobolditalic.TTF)
	goMono       = loadFont(gomono.TTF)
)

func loadFont(data []byte) func() (*opentype.Font, error) {
	return sync.OnceValues(func() (*opentype.Font, error) {
		return opentype.Parse(data)
	})
}

// selectFont returns the face used for a text element.
func selectFont(t *Text) (*opentype.Font, error) {
	family := strings.ToLower(t.Family)
	italic := t.Italic || strings.Contains(family, "cursive") || strings.Contains(family, "script")
	switch {
	case strings.Contains(family, "mono"):
		return goMono()
	case t.Bold && italic:
		return goBoldItalic()
	case t.Bold:
		return goBold()
	case italic:
		return goItalic()
	default:
		return goRegular()
	}
}

// textOutline returns the glyph outlines of t in user space.
func textOutline(t *Text) (*path.Data, error) {
	f, err := selectFont(t)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(t.Size*64 + 0.5)

	type glyph struct {
		idx sfnt.GlyphIndex
		x   fixed.Int26_6
	}
	var glyphs []glyph
	var x fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	for i, r := range t.Content {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			if k, err := f.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				x += k
			}
		}
		glyphs = append(glyphs, glyph{idx: idx, x: x})
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		x += adv
		prev = idx
	}
	width := fix(x)

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}

	x0 := t.X
	switch t.Anchor {
	case AnchorMiddle:
		x0 -= width / 2
	case AnchorEnd:
		x0 -= width
	}
	y0 := t.Y + baselineShift(t.Baseline, m)

	res := &path.Data{}
	for _, g := range glyphs {
		segs, err := f.LoadGlyph(&buf, g.idx, ppem, nil)
		if err != nil {
			return nil, err
		}
		origin := vec.Vec2{X: x0 + fix(g.x), Y: y0}
		pt := func(p fixed.Point26_6) vec.Vec2 {
			return origin.Add(vec.Vec2{X: fix(p.X), Y: fix(p.Y)})
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				res.MoveTo(pt(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				res.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				res.Cmds = append(res.Cmds, path.CmdQuadTo)
				res.Coords = append(res.Coords, pt(seg.Args[0]), pt(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				res.Cmds = append(res.Cmds, path.CmdCubeTo)
				res.Coords = append(res.Coords, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
			}
		}
	}
	return res, nil
}

// baselineShift returns the distance from the y position of a text element
// down to its alphabetic baseline.
func baselineShift(baseline string, m font.Metrics) float64 {
	ascent, descent := fix(m.Ascent), fix(m.Descent)
	switch baseline {
	case "middle":
		if m.XHeight > 0 {
			return fix(m.XHeight) / 2
		}
		return (ascent - descent) / 2
	case "central":
		return (ascent - descent) / 2
	case "hanging", "text-before-edge", "text-top":
		return ascent
	case "text-after-edge", "ideographic", "text-bottom":
		return -descent
	}
	return 0
}

func fix(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
