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

// Default values for [Options] and [TypedOptions].
const (
	DefaultWidth           = 300
	DefaultHeight          = 100
	DefaultStrokeColor     = "#000000"
	DefaultStrokeWidth     = 2.0
	DefaultBackgroundColor = "#ffffff"
	DefaultFontFamily      = "'Dancing Script', 'Brush Script MT', cursive"
	DefaultFontSize        = 36.0
)

// Padding is the minimum distance between a fitted drawing and the canvas
// border.
const Padding = 10.0

// Options control how a drawing is turned into an image.
// Zero values select the defaults.
type Options struct {
	// Width and Height give the canvas size in pixels.
	// Values <= 0 select DefaultWidth and DefaultHeight.
	Width, Height int

	// StrokeColor is used for strokes which carry no colour of their own.
	StrokeColor string

	// StrokeWidth is the line width of all strokes.
	// Values <= 0 select DefaultStrokeWidth.
	StrokeWidth float64

	// BackgroundColor fills the whole canvas.
	BackgroundColor string
}

// withDefaults returns a copy of o with all unset fields filled in.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		if o.Width < 0 {
			Logger().Warn("signature: negative canvas width, using default", "width", o.Width)
		}
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		if o.Height < 0 {
			Logger().Warn("signature: negative canvas height, using default", "height", o.Height)
		}
		o.Height = DefaultHeight
	}
	if o.StrokeColor == "" {
		o.StrokeColor = DefaultStrokeColor
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = DefaultBackgroundColor
	}
	return o
}

// TypedOptions control how a typed signature is rendered.
type TypedOptions struct {
	Options

	// FontFamily is a CSS font-family list.
	FontFamily string

	// FontSize is the font size in pixels.
	// Values <= 0 select DefaultFontSize.
	FontSize float64
}

func (o TypedOptions) withDefaults() TypedOptions {
	o.Options = o.Options.withDefaults()
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	return o
}
