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

// Package testcases contains glyph layers used to exercise the outline
// compiler and the renderers.
package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/outline"
)

// TestCase defines a single glyph drawing.
type TestCase struct {
	Name   string         // lowercase a-z and _ only
	Layer  *outline.Layer // the glyph to draw
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
	Rule   FillRule       // fill rule for the closed contours

	// LineWidth is the pen width for open contours, in glyph units.
	LineWidth float64

	// CTM maps glyph coordinates to canvas coordinates, with the y-axis
	// pointing up.  The zero value means that glyph units are pixels.
	CTM matrix.Matrix
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// DeviceCTM returns the transformation from glyph coordinates to device
// pixels, with the y-axis pointing down.
func (tc *TestCase) DeviceCTM() matrix.Matrix {
	m := tc.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	return matrix.Matrix{m[0], -m[1], m[2], -m[3], m[4], float64(tc.Height) - m[5]}
}

// glyphCTM places a 1000 unit em square on a 64x64 pixel canvas.
var glyphCTM = matrix.Matrix{0.05, 0, 0, 0.05, 7, 7}

func move(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y, Type: outline.Move}
}

func line(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y, Type: outline.Line}
}

func curve(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y, Type: outline.Curve}
}

func qcurve(x, y float64) outline.Point {
	return outline.Point{X: x, Y: y, Type: outline.QCurve}
}

func off(x, y float64) outline.Point {
	return outline.Pt(x, y)
}

func contour(pts ...outline.Point) outline.Contour {
	return outline.Contour{Points: pts}
}

func layer(name string, contours ...outline.Contour) *outline.Layer {
	return &outline.Layer{Name: name, Contours: contours}
}

// glyph is a test case on the standard 64x64 canvas.
func glyph(name string, l *outline.Layer) TestCase {
	return TestCase{
		Name:      name,
		Layer:     l,
		Width:     64,
		Height:    64,
		CTM:       glyphCTM,
		LineWidth: 40,
	}
}
