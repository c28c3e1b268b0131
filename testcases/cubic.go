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

package testcases

import "seehuhn.de/go/outline"

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498

var cubicCases = []TestCase{
	glyph("circle", layer("circle", ellipse(500, 500, 400, 400, false))),
	glyph("letter_o", layer("o",
		ellipse(500, 500, 400, 450, false),
		ellipse(500, 500, 250, 320, true))),
	glyph("teardrop", layer("teardrop", contour(
		line(500, 50),
		off(900, 50), off(900, 500), curve(500, 950),
		off(100, 500), off(100, 50), curve(500, 50),
	))),
}

// ellipse returns a closed contour of four cubic arcs.  The contour
// starts implicitly at its last point, which lies on the positive x-axis.
func ellipse(cx, cy, rx, ry float64, clockwise bool) outline.Contour {
	kx, ky := kappa*rx, kappa*ry
	if clockwise {
		ry, ky = -ry, -ky
	}
	return contour(
		off(cx+rx, cy+ky), off(cx+kx, cy+ry), curve(cx, cy+ry),
		off(cx-kx, cy+ry), off(cx-rx, cy+ky), curve(cx-rx, cy),
		off(cx-rx, cy-ky), off(cx-kx, cy-ry), curve(cx, cy-ry),
		off(cx+kx, cy-ry), off(cx+rx, cy-ky), curve(cx+rx, cy),
	)
}
