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

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

// polyline builds an open path through the given points.
func polyline(xy ...float64) *outline.Path {
	p := outline.NewPath()
	p.MoveTo(vec.Vec2{X: xy[0], Y: xy[1]})
	for i := 2; i+1 < len(xy); i += 2 {
		p.LineTo(vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return p
}

// strokeArea returns the total coverage of the stroked path.
func strokeArea(r *Rasteriser, p *outline.Path) float64 {
	var total float64
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			total += float64(c)
		}
	})
	return total
}

func TestStrokeLine(t *testing.T) {
	r := NewRasteriser(canvas(10, 10))
	r.Width = 2
	img := image10(r, polyline(2, 5, 8, 5))

	for y := range 10 {
		for x := range 10 {
			want := uint8(0)
			if x >= 2 && x < 8 && y >= 4 && y < 6 {
				want = 255
			}
			assert.Equal(t, want, img[y*10+x], "pixel (%d,%d)", x, y)
		}
	}
}

// image10 strokes p into a 10x10 buffer.
func image10(r *Rasteriser, p *outline.Path) []uint8 {
	buf := make([]uint8, 100)
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			buf[y*10+xMin+i] = uint8(max(0, min(255, int(c*255+0.5))))
		}
	})
	return buf
}

func TestStrokeCaps(t *testing.T) {
	tests := []struct {
		name string
		cap  graphics.LineCapStyle
		area float64
	}{
		{"butt", graphics.LineCapButt, 6 * 2},
		{"square", graphics.LineCapSquare, 8 * 2},
		{"round", graphics.LineCapRound, 6*2 + math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasteriser(canvas(12, 12))
			r.Flatness = 0.001
			r.Width = 2
			r.Cap = tt.cap
			assert.InDelta(t, tt.area, strokeArea(r, polyline(3, 5, 9, 5)), 0.01)
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// An L-shaped polyline.  Both legs cover 6x2 pixels, sharing one
	// pixel at the inner corner.  The outer corner square is filled by
	// the miter, half filled by the bevel and a quarter disc by the
	// round join.
	tests := []struct {
		name string
		join graphics.LineJoinStyle
		area float64
	}{
		{"miter", graphics.LineJoinMiter, 24},
		{"bevel", graphics.LineJoinBevel, 23.5},
		{"round", graphics.LineJoinRound, 23 + math.Pi/4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasteriser(canvas(12, 12))
			r.Flatness = 0.001
			r.Width = 2
			r.Join = tt.join
			assert.InDelta(t, tt.area, strokeArea(r, polyline(2, 2, 8, 2, 8, 8)), 0.01)
		})
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// a right angle needs a miter limit of sqrt(2)
	r := NewRasteriser(canvas(12, 12))
	r.Width = 2
	r.MiterLimit = 1.4
	assert.InDelta(t, 23.5, strokeArea(r, polyline(2, 2, 8, 2, 8, 8)), 1e-3)
}

func TestStrokeClosed(t *testing.T) {
	square := polygon(t, 2, 2, 8, 2, 8, 8, 2, 8)
	r := NewRasteriser(canvas(10, 10))
	r.Width = 2
	r.Cap = graphics.LineCapRound // caps must not appear on closed subpaths

	// the ring between the squares 1..9 and 3..7
	assert.InDelta(t, 64-16, strokeArea(r, square), 1e-3)
}

func TestStrokeDot(t *testing.T) {
	dot := polyline(5, 5, 5, 5)

	r := NewRasteriser(canvas(10, 10))
	r.Flatness = 0.001
	r.Width = 4
	assert.Zero(t, strokeArea(r, dot))

	r.Cap = graphics.LineCapRound
	assert.InDelta(t, 4*math.Pi, strokeArea(r, dot), 0.02)

	// a lone move point is not drawn
	lone := outline.NewPath()
	lone.MoveTo(vec.Vec2{X: 5, Y: 5})
	assert.Zero(t, strokeArea(r, lone))
}

func TestStrokeCTM(t *testing.T) {
	r := NewRasteriser(canvas(20, 20))
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Width = 1
	assert.InDelta(t, 12*2, strokeArea(r, polyline(2, 5, 8, 5)), 1e-3)
}

func TestStrokeCurve(t *testing.T) {
	// a quarter circle of radius 5, stroked with width 1, covers about
	// a quarter of the annulus between radii 4.5 and 5.5
	p := outline.NewPath()
	k := 5 * 0.5522847498
	p.MoveTo(vec.Vec2{X: 6, Y: 1})
	p.CubeTo(vec.Vec2{X: 6 + k, Y: 1}, vec.Vec2{X: 11, Y: 6 - k}, vec.Vec2{X: 11, Y: 6})

	r := NewRasteriser(canvas(12, 12))
	r.Flatness = 0.01
	want := math.Pi * (5.5*5.5 - 4.5*4.5) / 4
	assert.InDelta(t, want, strokeArea(r, p), 0.05)
}

func TestDrawOpenContours(t *testing.T) {
	for _, tc := range testcases.All["open"] {
		t.Run(tc.Name, func(t *testing.T) {
			s, err := LayerShape(tc.Layer)
			require.NoError(t, err)
			require.False(t, s.Stroke.IsEmpty())

			r := NewRasteriser(canvas(tc.Width, tc.Height))
			r.CTM = tc.DeviceCTM()
			r.Width = tc.LineWidth
			drawn := r.Draw(s, NonZero)
			filled := r.Mask(s.Fill, NonZero)

			extra := 0
			for i, a := range drawn.Pix {
				require.GreaterOrEqual(t, a, filled.Pix[i])
				if a > filled.Pix[i] {
					extra++
				}
			}
			assert.Positive(t, extra, "open contours left no marks")
		})
	}
}
