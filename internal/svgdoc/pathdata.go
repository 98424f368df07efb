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
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ParsePathData converts the value of a path's "d" attribute.
//
// The commands M, L, H, V, C, S, Q, T and Z are supported, in absolute and
// relative form. Elliptical arcs are not.
func ParsePathData(d string) (*path.Data, error) {
	s := &pathScanner{src: d}
	res := &path.Data{}

	var cur, start, lastCtrl vec.Vec2
	var prevCmd byte
	var cmd byte
	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		if c := s.src[s.pos]; isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("path must start with a command, found %q", c)
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("unexpected number after %c", cmd)
		}
		// After a moveto, further coordinate pairs are implicit linetos.

		rel := cmd >= 'a'
		var base vec.Vec2
		if rel {
			base = cur
		}
		if len(res.Cmds) == 0 && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("path must start with a moveto, found %c", cmd)
		}

		switch cmd {
		case 'M', 'm':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			cur = base.Add(p)
			start = cur
			res.MoveTo(cur)
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			cur = base.Add(p)
			res.LineTo(cur)
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = vec.Vec2{X: x, Y: cur.Y}
			res.LineTo(cur)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = vec.Vec2{X: cur.X, Y: y}
			res.LineTo(cur)
		case 'C', 'c', 'S', 's':
			var pts []vec.Vec2
			n := 3
			if cmd == 'S' || cmd == 's' {
				n = 2
				c1 := cur
				if isCubic(prevCmd) {
					c1 = cur.Add(cur.Sub(lastCtrl))
				}
				pts = append(pts, c1)
			}
			for range n {
				p, err := s.point()
				if err != nil {
					return nil, err
				}
				pts = append(pts, base.Add(p))
			}
			res.Cmds = append(res.Cmds, path.CmdCubeTo)
			res.Coords = append(res.Coords, pts...)
			lastCtrl = pts[1]
			cur = pts[2]
		case 'Q', 'q', 'T', 't':
			var pts []vec.Vec2
			if cmd == 'T' || cmd == 't' {
				c := cur
				if isQuadratic(prevCmd) {
					c = cur.Add(cur.Sub(lastCtrl))
				}
				pts = append(pts, c)
			} else {
				p, err := s.point()
				if err != nil {
					return nil, err
				}
				pts = append(pts, base.Add(p))
			}
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			pts = append(pts, base.Add(p))
			res.Cmds = append(res.Cmds, path.CmdQuadTo)
			res.Coords = append(res.Coords, pts...)
			lastCtrl = pts[0]
			cur = pts[1]
		case 'Z', 'z':
			res.Close()
			cur = start
		default:
			return nil, fmt.Errorf("unsupported path command %c", cmd)
		}
		prevCmd = cmd
	}
	return res, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'Z', 'z', 'A', 'a':
		return true
	}
	return false
}

func isCubic(c byte) bool {
	return c == 'C' || c == 'c' || c == 'S' || c == 's'
}

func isQuadratic(c byte) bool {
	return c == 'Q' || c == 'q' || c == 'T' || c == 't'
}

// pathScanner splits path data into numbers.
type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *pathScanner) skipSpace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			s.pos++
		default:
			return
		}
	}
}

// skipSeparator skips white space and at most one comma.
func (s *pathScanner) skipSeparator() {
	s.skipSpace()
	if !s.eof() && s.src[s.pos] == ',' {
		s.pos++
		s.skipSpace()
	}
}

func (s *pathScanner) point() (vec.Vec2, error) {
	x, err := s.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := s.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

// number reads the next number. Numbers may directly follow each other
// without a separator when the second one starts with a sign or a second
// decimal point, as in "1-2" or "0.5.5".
func (s *pathScanner) number() (float64, error) {
	s.skipSeparator()
	start := s.pos
	i := s.pos
	if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
		i++
	}
	digits := false
	for i < len(s.src) && isDigit(s.src[i]) {
		i++
		digits = true
	}
	if i < len(s.src) && s.src[i] == '.' {
		i++
		for i < len(s.src) && isDigit(s.src[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		if s.eof() {
			return 0, fmt.Errorf("unexpected end of path data")
		}
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	if i < len(s.src) && (s.src[i] == 'e' || s.src[i] == 'E') {
		j := i + 1
		if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
			j++
		}
		if j < len(s.src) && isDigit(s.src[j]) {
			for j < len(s.src) && isDigit(s.src[j]) {
				j++
			}
			i = j
		}
	}

	x, err := strconv.ParseFloat(s.src[start:i], 64)
	if err != nil || math.IsInf(x, 0) {
		return 0, fmt.Errorf("invalid number %q", s.src[start:i])
	}
	s.pos = i
	return x, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
