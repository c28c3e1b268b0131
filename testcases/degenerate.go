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

var degenerateCases = []TestCase{
	glyph("empty", layer("empty")),
	glyph("empty_contour", layer("empty_contour",
		contour(),
		box(300, 300, 700, 700),
	)),
	glyph("zero_area", layer("zero_area",
		contour(line(100, 100), line(900, 900)),
	)),
	glyph("qcurve_as_line", layer("qcurve_as_line",
		contour(line(100, 100), qcurve(900, 100), qcurve(500, 900)),
	)),
	glyph("lonely_move", layer("lonely_move",
		contour(move(500, 500)),
	)),
	glyph("missing_component", &outline.Layer{
		Name:       "missing_component",
		Contours:   []outline.Contour{box(300, 300, 700, 700)},
		Components: []*outline.Component{{}},
	}),
}
