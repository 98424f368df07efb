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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// MaxPixels limits the image size accepted by [Parse].
const MaxPixels = 1 << 26

// style holds the inherited presentation attributes.
type style struct {
	fill       Paint
	evenOdd    bool
	stroke     Paint
	width      float64
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64

	family   string
	size     float64
	italic   bool
	bold     bool
	anchor   TextAnchor
	baseline string
}

// initialStyle gives the SVG initial values.
var initialStyle = style{
	fill:       Paint{Color: black},
	stroke:     Paint{None: true},
	width:      1,
	cap:        graphics.LineCapButt,
	join:       graphics.LineJoinMiter,
	miterLimit: 4,
	family:     "serif",
	size:       16,
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{dec: xml.NewDecoder(r)}
	return p.document()
}

type parser struct {
	dec *xml.Decoder
	doc *Document
}

func (p *parser) document() (*Document, error) {
	var root *xml.StartElement
	for root == nil {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil, &SyntaxError{Err: errors.New("no root element")}
		} else if err != nil {
			return nil, &SyntaxError{Err: err}
		}
		if se, ok := tok.(xml.StartElement); ok {
			root = &se
		}
	}
	if root.Name.Local != "svg" {
		return nil, &SyntaxError{Element: root.Name.Local, Err: errors.New("root element is not <svg>")}
	}

	doc, err := p.viewport(root)
	if err != nil {
		return nil, err
	}
	p.doc = doc

	st, err := p.applyStyle(initialStyle, root)
	if err != nil {
		return nil, err
	}
	if err := p.children("svg", st); err != nil {
		return nil, err
	}

	// reject trailing garbage
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &SyntaxError{Err: err}
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			return nil, &SyntaxError{Element: tok.Name.Local, Err: errors.New("content after root element")}
		case xml.CharData:
			if len(strings.TrimSpace(string(tok))) > 0 {
				return nil, &SyntaxError{Err: errors.New("text after root element")}
			}
		}
	}
	return doc, nil
}

// viewport reads the size and viewBox of the root element.
func (p *parser) viewport(root *xml.StartElement) (*Document, error) {
	var vb []float64
	if s, ok := attr(root, "viewBox"); ok {
		var err error
		vb, err = parseNumberList(s)
		if err == nil && len(vb) != 4 {
			err = fmt.Errorf("expected 4 numbers, got %d", len(vb))
		}
		if err == nil && (vb[2] <= 0 || vb[3] <= 0) {
			err = errors.New("non-positive size")
		}
		if err != nil {
			return nil, &SyntaxError{Element: "svg", Attr: "viewBox", Err: err}
		}
	}

	size := func(name string, vbIdx int) (float64, error) {
		s, ok := attr(root, name)
		if !ok || strings.HasSuffix(strings.TrimSpace(s), "%") {
			if vb != nil {
				return vb[vbIdx], nil
			}
			return 0, &SyntaxError{Element: "svg", Attr: name, Err: errors.New("missing")}
		}
		v, err := parseLength(s)
		if err != nil {
			return 0, &SyntaxError{Element: "svg", Attr: name, Err: err}
		}
		if v <= 0 {
			return 0, &SyntaxError{Element: "svg", Attr: name, Err: errors.New("non-positive size")}
		}
		return v, nil
	}
	w, err := size("width", 2)
	if err != nil {
		return nil, err
	}
	h, err := size("height", 3)
	if err != nil {
		return nil, err
	}

	// check before converting, so that huge sizes cannot overflow int
	if w > MaxPixels || h > MaxPixels || math.Ceil(w)*math.Ceil(h) > MaxPixels {
		return nil, &SyntaxError{Element: "svg", Err: fmt.Errorf("image too large (%gx%g)", w, h)}
	}
	doc := &Document{
		Width:   int(math.Ceil(w)),
		Height:  int(math.Ceil(h)),
		ViewBox: matrix.Identity,
	}
	if vb != nil {
		// preserveAspectRatio="xMidYMid meet"
		s := min(w/vb[2], h/vb[3])
		tx := (w-vb[2]*s)/2 - vb[0]*s
		ty := (h-vb[3]*s)/2 - vb[1]*s
		doc.ViewBox = matrix.Matrix{s, 0, 0, s, tx, ty}
	}
	return doc, nil
}

// viewportSize returns the user-space size of the viewport, which is the
// reference for percentage lengths.
func (p *parser) viewportSize() (float64, float64) {
	m := p.doc.ViewBox
	return float64(p.doc.Width) / m[0], float64(p.doc.Height) / m[3]
}

// children processes the content of the element name, up to and including
// its end tag.
func (p *parser) children(name string, st style) error {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return &SyntaxError{Element: name, Err: errors.New("unexpected end of document")}
		} else if err != nil {
			return &SyntaxError{Element: name, Err: err}
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			if err := p.element(&tok, st); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (p *parser) element(se *xml.StartElement, parent style) error {
	name := se.Name.Local
	if se.Name.Space != "" && se.Name.Space != "http://www.w3.org/2000/svg" {
		return p.dec.Skip()
	}

	switch name {
	case "g", "svg", "rect", "path", "text":
		// pass
	default:
		return p.dec.Skip()
	}

	st, err := p.applyStyle(parent, se)
	if err != nil {
		return err
	}

	switch name {
	case "g", "svg":
		return p.children(name, st)
	case "rect":
		if err := p.rect(se, st); err != nil {
			return err
		}
		return p.dec.Skip()
	case "path":
		if err := p.path(se, st); err != nil {
			return err
		}
		return p.dec.Skip()
	default: // "text"
		return p.text(se, st)
	}
}

func (p *parser) rect(se *xml.StartElement, st style) error {
	vw, vh := p.viewportSize()
	var v [4]float64
	for i, name := range []string{"x", "y", "width", "height"} {
		ref := vw
		if i%2 == 1 {
			ref = vh
		}
		s, ok := attr(se, name)
		if !ok {
			continue
		}
		x, err := parseCoordinate(s, ref)
		if err != nil {
			return &SyntaxError{Element: "rect", Attr: name, Err: err}
		}
		v[i] = x
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	if w < 0 || h < 0 {
		return &SyntaxError{Element: "rect", Err: errors.New("negative size")}
	}
	if w == 0 || h == 0 {
		return nil
	}

	data := &path.Data{}
	data.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
	p.doc.Elements = append(p.doc.Elements, st.shape(data))
	return nil
}

func (p *parser) path(se *xml.StartElement, st style) error {
	d, _ := attr(se, "d")
	data, err := ParsePathData(d)
	if err != nil {
		return &SyntaxError{Element: "path", Attr: "d", Err: err}
	}
	if len(data.Cmds) > 0 {
		p.doc.Elements = append(p.doc.Elements, st.shape(data))
	}
	return nil
}

func (p *parser) text(se *xml.StartElement, st style) error {
	vw, vh := p.viewportSize()
	var pos [2]float64
	for i, name := range []string{"x", "y"} {
		ref := vw
		if i == 1 {
			ref = vh
		}
		s, ok := attr(se, name)
		if !ok {
			continue
		}
		// x and y may hold lists; only the first value is used
		if fields := strings.FieldsFunc(s, isListSep); len(fields) > 0 {
			s = fields[0]
		}
		x, err := parseCoordinate(s, ref)
		if err != nil {
			return &SyntaxError{Element: "text", Attr: name, Err: err}
		}
		pos[i] = x
	}

	content, err := p.textContent()
	if err != nil {
		return err
	}
	content = strings.Join(strings.Fields(content), " ")
	if content == "" {
		return nil
	}

	p.doc.Elements = append(p.doc.Elements, &Text{
		X:        pos[0],
		Y:        pos[1],
		Content:  content,
		Anchor:   st.anchor,
		Baseline: st.baseline,
		Family:   st.family,
		Size:     st.size,
		Italic:   st.italic,
		Bold:     st.bold,
		Fill:     st.fill,
	})
	return nil
}

// textContent collects the character data of a text element, including
// that of nested elements such as <tspan>.
func (p *parser) textContent() (string, error) {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return "", &SyntaxError{Element: "text", Err: errors.New("unexpected end of document")}
		} else if err != nil {
			return "", &SyntaxError{Element: "text", Err: err}
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(tok)
		}
	}
	return b.String(), nil
}

func (st style) shape(data *path.Data) *Shape {
	return &Shape{
		Path:     data,
		Fill:     st.fill,
		EvenOdd:  st.evenOdd,
		Stroke:   st.stroke,
		Width:    st.width,
		Cap:      st.cap,
		Join:     st.join,
		MiterLim: st.miterLimit,
	}
}

// applyStyle returns the style of se, given the style of its parent.
// Declarations in the style attribute take precedence over presentation
// attributes.
func (p *parser) applyStyle(st style, se *xml.StartElement) (style, error) {
	for _, a := range se.Attr {
		if a.Name.Space != "" || a.Name.Local == "style" {
			continue
		}
		if err := st.set(a.Name.Local, a.Value); err != nil {
			return st, &SyntaxError{Element: se.Name.Local, Attr: a.Name.Local, Err: err}
		}
	}
	if s, ok := attr(se, "style"); ok {
		for _, decl := range strings.Split(s, ";") {
			key, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			if err := st.set(key, strings.TrimSpace(val)); err != nil {
				return st, &SyntaxError{Element: se.Name.Local, Attr: key, Err: err}
			}
		}
	}
	return st, nil
}

// set applies one presentation attribute. Attributes which do not affect
// painting are ignored.
func (st *style) set(name, value string) error {
	value = strings.TrimSpace(value)
	if value == "inherit" {
		return nil
	}

	var err error
	switch name {
	case "fill":
		st.fill, err = ParsePaint(value)
	case "stroke":
		st.stroke, err = ParsePaint(value)
	case "fill-rule":
		switch value {
		case "nonzero":
			st.evenOdd = false
		case "evenodd":
			st.evenOdd = true
		default:
			err = fmt.Errorf("invalid fill rule %q", value)
		}
	case "stroke-width":
		var w float64
		w, err = parseLength(value)
		if err == nil && w < 0 {
			err = errors.New("negative stroke width")
		}
		st.width = w
	case "stroke-linecap":
		switch value {
		case "butt":
			st.cap = graphics.LineCapButt
		case "round":
			st.cap = graphics.LineCapRound
		case "square":
			st.cap = graphics.LineCapSquare
		default:
			err = fmt.Errorf("invalid line cap %q", value)
		}
	case "stroke-linejoin":
		switch value {
		case "miter", "miter-clip", "arcs":
			st.join = graphics.LineJoinMiter
		case "round":
			st.join = graphics.LineJoinRound
		case "bevel":
			st.join = graphics.LineJoinBevel
		default:
			err = fmt.Errorf("invalid line join %q", value)
		}
	case "stroke-miterlimit":
		var m float64
		m, err = strconv.ParseFloat(value, 64)
		if err == nil && m < 1 {
			err = errors.New("miter limit below 1")
		}
		st.miterLimit = m
	case "font-family":
		st.family = value
	case "font-size":
		var s float64
		s, err = parseLength(value)
		if err == nil && s < 0 {
			err = errors.New("negative font size")
		}
		st.size = s
	case "font-style":
		st.italic = value == "italic" || value == "oblique"
	case "font-weight":
		switch value {
		case "bold", "bolder", "600", "700", "800", "900":
			st.bold = true
		default:
			st.bold = false
		}
	case "text-anchor":
		switch value {
		case "start":
			st.anchor = AnchorStart
		case "middle":
			st.anchor = AnchorMiddle
		case "end":
			st.anchor = AnchorEnd
		default:
			err = fmt.Errorf("invalid text anchor %q", value)
		}
	case "dominant-baseline", "alignment-baseline":
		st.baseline = value
	}
	return err
}

func attr(se *xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// parseLength parses a number with an optional "px" unit.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return x, nil
}

// parseCoordinate parses a length which may be given as a percentage of ref.
func parseCoordinate(s string, ref float64) (float64, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		x, err := parseLength(pct)
		if err != nil {
			return 0, err
		}
		return x / 100 * ref, nil
	}
	return parseLength(s)
}

func parseNumberList(s string) ([]float64, error) {
	var res []float64
	for _, f := range strings.FieldsFunc(s, isListSep) {
		x, err := parseLength(f)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

func isListSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
