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
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// ValidatePoints reports whether v has the shape of a drawing: a sequence
// of sequences of objects, each with numeric "x" and "y" fields. Other
// fields are not checked. Non-finite coordinates are rejected.
//
// v is typically the result of decoding untrusted JSON into an any value.
// The rendering functions assume valid input, so externally supplied data
// must pass this check first.
func ValidatePoints(v any) bool {
	switch v := v.(type) {
	case Drawing:
		return validDrawing(v)
	case []Stroke:
		return validDrawing(v)
	}
	return validSequence(reflect.ValueOf(v), validStroke)
}

func validDrawing(d Drawing) bool {
	for _, s := range d {
		for _, p := range s {
			if !isFinite(p.X) || !isFinite(p.Y) {
				return false
			}
		}
	}
	return true
}

func validStroke(v reflect.Value) bool {
	return validSequence(v, validPoint)
}

// validSequence reports whether v is a slice or array all of whose elements
// satisfy elem.
func validSequence(v reflect.Value, elem func(reflect.Value) bool) bool {
	v = indirect(v)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return false
	}
	for i := range v.Len() {
		if !elem(v.Index(i)) {
			return false
		}
	}
	return true
}

func validPoint(v reflect.Value) bool {
	v = indirect(v)
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false
		}
		x := v.MapIndex(reflect.ValueOf("x").Convert(v.Type().Key()))
		y := v.MapIndex(reflect.ValueOf("y").Convert(v.Type().Key()))
		return isNumber(x) && isNumber(y)
	case reflect.Struct:
		if !v.CanInterface() {
			return false
		}
		if p, ok := v.Interface().(Point); ok {
			return isFinite(p.X) && isFinite(p.Y)
		}
	}
	return false
}

// isNumber reports whether v holds a finite number.
func isNumber(v reflect.Value) bool {
	v = indirect(v)
	if !v.IsValid() {
		return false
	}
	if v.Type() == reflect.TypeFor[json.Number]() {
		f, err := json.Number(v.String()).Float64()
		return err == nil && isFinite(f)
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		return isFinite(v.Float())
	}
	return false
}

// indirect strips interfaces and pointers from v.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ParseDrawing decodes a drawing from JSON, as sent by the signing canvas:
// an array of strokes, each an array of {"x", "y", "time", "color"} objects.
// Input which does not have this shape fails with [ErrInvalidDrawing].
// The JSON value null gives an empty drawing.
func ParseDrawing(data []byte) (Drawing, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDrawing, err)
	}
	if raw == nil {
		return nil, nil
	}
	if !ValidatePoints(raw) {
		return nil, fmt.Errorf("%w: expected an array of arrays of points", ErrInvalidDrawing)
	}

	var d Drawing
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDrawing, err)
	}
	return d, nil
}
