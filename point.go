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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// PointType classifies a point of a contour.
//
// The zero value, OffCurve, marks a Bézier control point.  All other values
// mark an on-curve point and name the kind of segment which ends there.
type PointType uint8

const (
	OffCurve PointType = iota // control point, not on the outline
	Move                      // start of an open contour
	Line                      // end of a straight segment
	Curve                     // end of a cubic Bézier segment
	QCurve                    // end of a run of quadratic Bézier segments
)

func (t PointType) String() string {
	switch t {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	default:
		return fmt.Sprintf("PointType(%d)", uint8(t))
	}
}

// ParsePointType converts a UFO point type name to a PointType.
// The empty string denotes an off-curve point.
func ParsePointType(s string) (PointType, error) {
	switch s {
	case "", "offcurve":
		return OffCurve, nil
	case "move":
		return Move, nil
	case "line":
		return Line, nil
	case "curve":
		return Curve, nil
	case "qcurve":
		return QCurve, nil
	}
	return 0, fmt.Errorf("unknown point type %q", s)
}

// Point is a point of a glyph contour.
type Point struct {
	X, Y float64
	Type PointType
}

// Pt returns an off-curve point at (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// OnCurve reports whether p lies on the outline.
func (p Point) OnCurve() bool {
	return p.Type != OffCurve
}

// Vec returns the coordinates of p.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Contour is one sub-outline of a glyph, given as an ordered point sequence.
//
// A non-empty contour is open if and only if its first point has type Move.
// A closed contour implicitly starts at its last point.
type Contour struct {
	Points []Point
}

// IsOpen reports whether the contour is open.
func (c *Contour) IsOpen() bool {
	return len(c.Points) > 0 && c.Points[0].Type == Move
}

// Path compiles the contour into a new path.
// On error, no path is returned.
func (c *Contour) Path() (*Path, error) {
	p := NewPath()
	if err := CompileContour(p, c.Points); err != nil {
		Logger().Debug("malformed contour", "points", len(c.Points), "error", err)
		return nil, err
	}
	return p, nil
}
