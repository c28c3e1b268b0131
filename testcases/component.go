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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/outline"
)

var (
	dot   = layer("dot", ellipse(0, 0, 80, 80, false))
	acute = layer("acute", contour(
		line(-60, 0), line(40, 0), line(160, 200), line(60, 200),
	))
	stem = layer("stem", box(0, 0, 120, 600))
)

var componentCases = []TestCase{
	glyph("accented", &outline.Layer{
		Name:     "accented",
		Contours: []outline.Contour{box(250, 100, 750, 600)},
		Components: []*outline.Component{
			{Layer: acute, Transform: shift(450, 700)},
		},
	}),
	glyph("colon", &outline.Layer{
		Name: "colon",
		Components: []*outline.Component{
			{Layer: dot, Transform: shift(500, 200)},
			{Layer: dot, Transform: shift(500, 700)},
		},
	}),
	glyph("mirrored", &outline.Layer{
		Name: "mirrored",
		Components: []*outline.Component{
			{Layer: stem, Transform: shift(200, 200)},
			{Layer: stem, Transform: matrix.Matrix{-1, 0, 0, 1, 800, 200}},
		},
	}),
	glyph("scaled", &outline.Layer{
		Name: "scaled",
		Components: []*outline.Component{
			{Layer: dot, Transform: matrix.Matrix{5, 0, 0, 2, 500, 500}},
		},
	}),
	glyph("rotated", &outline.Layer{
		Name: "rotated",
		Components: []*outline.Component{
			{Layer: stem, Transform: matrix.Matrix{0, 1, -1, 0, 800, 440}},
		},
	}),
}

func shift(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}
