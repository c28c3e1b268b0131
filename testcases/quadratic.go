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

import (
	"math"

	"seehuhn.de/go/outline"
)

var quadraticCases = []TestCase{
	// a run of four off-curve points with implied on-curve points between
	glyph("implied", layer("implied", contour(
		off(375, 39), off(349, 137), off(320, 238), off(292, 332),
		qcurve(534, 291),
		line(385, 0),
	))),
	glyph("single_quad", layer("single_quad", contour(
		line(100, 100), off(500, 1100), qcurve(900, 100),
	))),
	glyph("all_off_curve", layer("all_off_curve", octagon(500, 500, 420))),
	glyph("rounded_square", layer("rounded_square", contour(
		line(250, 100), line(750, 100), off(900, 100), qcurve(900, 250),
		line(900, 750), off(900, 900), qcurve(750, 900),
		line(250, 900), off(100, 900), qcurve(100, 750),
		line(100, 250), off(100, 100), qcurve(250, 100),
	))),
}

// octagon returns eight off-curve points on a circle.  Compiled, they give
// a closed curve made of eight quadratic segments.
func octagon(cx, cy, r float64) outline.Contour {
	var pts []outline.Point
	for i := range 8 {
		angle := float64(i) * math.Pi / 4
		pts = append(pts, off(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return outline.Contour{Points: pts}
}
