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

var openCases = []TestCase{
	glyph("stroke", layer("stroke", contour(
		move(100, 100), line(500, 900), line(900, 100),
	))),
	glyph("hook", layer("hook", contour(
		move(200, 900), line(200, 300),
		off(200, 50), off(800, 50), curve(800, 300),
	))),
	glyph("mixed", layer("mixed",
		box(100, 100, 500, 500),
		contour(move(600, 100), off(900, 500), qcurve(600, 900)),
	)),
}
