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

import "seehuhn.de/go/geom/vec"

// CompileContour converts the points of one contour into drawing
// instructions for b.
//
// An open contour, whose first point has type Move, starts at its first
// point and is left open.  A closed contour starts at its last point; every
// point, including the last, then ends a segment and the subpath is closed.
//
// Off-curve points are collected until the next on-curve point.  A Curve
// point consumes exactly two of them as cubic control points.  A QCurve
// point, or the final point of the contour if it is off-curve, turns the
// collected points into a chain of quadratic segments, with an implied
// on-curve point halfway between each pair of consecutive control points.
// If the final point is off-curve, it serves as both the last control point
// and the end point of the chain.
//
// The point sequence is checked before anything is sent to b.  If it is
// malformed, a *ContourError is returned and b is left untouched.
func CompileContour(b Builder, pts []Point) error {
	if err := checkContour(pts); err != nil {
		return err
	}
	n := len(pts)
	if n == 0 {
		return nil
	}

	open := pts[0].Type == Move
	start := 0
	if open {
		b.MoveTo(pts[0].Vec())
		start = 1
	} else {
		b.MoveTo(pts[n-1].Vec())
	}

	pending := make([]vec.Vec2, 0, 4)
	for i := start; i < n; i++ {
		pt := pts[i]
		switch pt.Type {
		case Line:
			b.LineTo(pt.Vec())
		case Curve:
			b.CubeTo(pending[0], pending[1], pt.Vec())
			pending = pending[:0]
		case QCurve:
			quadChain(b, pending, pt.Vec())
			pending = pending[:0]
		case OffCurve:
			pending = append(pending, pt.Vec())
			if i == n-1 {
				quadChain(b, pending, pt.Vec())
				pending = pending[:0]
			}
		}
	}

	if !open {
		b.Close()
	}
	return nil
}

// quadChain emits the quadratic segments through the control points ctrl,
// ending at end.  Consecutive control points are joined by implied on-curve
// points at their midpoints.  Without control points, this is a line.
func quadChain(b Builder, ctrl []vec.Vec2, end vec.Vec2) {
	if len(ctrl) == 0 {
		b.LineTo(end)
		return
	}
	for i := range len(ctrl) - 1 {
		c0, c1 := ctrl[i], ctrl[i+1]
		b.QuadTo(c0, vec.Vec2{X: (c0.X + c1.X) / 2, Y: (c0.Y + c1.Y) / 2})
	}
	b.QuadTo(ctrl[len(ctrl)-1], end)
}

// checkContour runs the point type state machine without emitting anything.
func checkContour(pts []Point) error {
	n := len(pts)
	if n == 1 && pts[0].Type == OffCurve {
		return &ContourError{
			Index:  0,
			Type:   OffCurve,
			Reason: "closed contour with a single off-curve point",
		}
	}

	pending := 0
	for i, pt := range pts {
		switch pt.Type {
		case Move:
			if i != 0 {
				return &ContourError{Index: i, Type: pt.Type, Pending: pending,
					Reason: "move point after the start of the contour"}
			}
		case Line:
			if pending > 0 {
				return &ContourError{Index: i, Type: pt.Type, Pending: pending,
					Reason: "line point after off-curve points"}
			}
		case Curve:
			if pending != 2 {
				return &ContourError{Index: i, Type: pt.Type, Pending: pending,
					Reason: "cubic segment needs exactly two control points"}
			}
			pending = 0
		case QCurve:
			pending = 0
		case OffCurve:
			pending++
			if i == n-1 {
				pending = 0
			}
		default:
			return &ContourError{Index: i, Type: pt.Type, Pending: pending,
				Reason: "unknown point type"}
		}
	}
	return nil
}
