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

var lineCases = []TestCase{
	glyph("square", layer("square", box(100, 100, 900, 900))),
	glyph("triangle", layer("triangle",
		contour(line(100, 100), line(500, 900), line(900, 100)))),
	glyph("counter", layer("counter",
		box(100, 100, 900, 900),
		reversed(box(300, 300, 700, 700)))),
	glyph("star_nonzero", layer("star", star(500, 500, 450))),
	withRule(glyph("star_evenodd", layer("star", star(500, 500, 450))), EvenOdd),
}

// box returns a closed rectangle, counter-clockwise in a y-up system.
func box(x0, y0, x1, y1 float64) outline.Contour {
	return contour(line(x0, y0), line(x1, y0), line(x1, y1), line(x0, y1))
}

// reversed returns a closed line contour with the opposite orientation.
func reversed(c outline.Contour) outline.Contour {
	n := len(c.Points)
	pts := make([]outline.Point, n)
	for i, p := range c.Points {
		pts[n-1-i] = p
	}
	return outline.Contour{Points: pts}
}

// star returns a self-intersecting five-pointed star.
func star(cx, cy, r float64) outline.Contour {
	var pts []outline.Point
	for i := range 5 {
		angle := math.Pi/2 + float64(2*i)*2*math.Pi/5
		pts = append(pts, line(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return outline.Contour{Points: pts}
}

func withRule(tc TestCase, rule FillRule) TestCase {
	tc.Rule = rule
	return tc
}
