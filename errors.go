// seehuhn.de/go/outline - glyph outlines to vector paths
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

package outline

import (
	"errors"
	"fmt"
)

// ErrMalformedContour is wrapped by all errors which report a point sequence
// violating the contour state machine.
var ErrMalformedContour = errors.New("malformed contour")

// ContourError describes where compilation of a contour failed.
type ContourError struct {
	Index   int       // index of the offending point
	Type    PointType // type of the offending point
	Pending int       // number of pending off-curve points
	Reason  string
}

func (e *ContourError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: point %d (%s, %d pending): %s",
		ErrMalformedContour, e.Index, e.Type, e.Pending, e.Reason)
}

func (e *ContourError) Unwrap() error {
	return ErrMalformedContour
}

// LayerError reports which contour or component of a layer failed to compile.
type LayerError struct {
	Layer string // layer name, may be empty
	Kind  string // "contour" or "component"
	Index int
	Err   error
}

func (e *LayerError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s %d", e.Kind, e.Index)
	if e.Layer != "" {
		base = fmt.Sprintf("layer %q: %s", e.Layer, base)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *LayerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
