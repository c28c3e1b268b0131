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
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

// polygon compiles a closed contour of line points.
func polygon(t testing.TB, xy ...float64) *outline.Path {
	t.Helper()
	var c outline.Contour
	for i := 0; i+1 < len(xy); i += 2 {
		c.Points = append(c.Points, outline.Point{X: xy[i], Y: xy[i+1], Type: outline.Line})
	}
	p, err := c.Path()
	require.NoError(t, err)
	return p
}

func canvas(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

func TestSquareCoverage(t *testing.T) {
	p := polygon(t, 2, 2, 6, 2, 6, 6, 2, 6)
	r := NewRasteriser(canvas(8, 8))
	img := r.Mask(p, NonZero)

	for y := range 8 {
		for x := range 8 {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 255
			}
			assert.Equal(t, want, img.AlphaAt(x, y).A, "pixel (%d,%d)", x, y)
		}
	}
}

func TestPartialCoverage(t *testing.T) {
	p := polygon(t, 1.5, 0, 3, 0, 3, 2, 1.5, 2)
	r := NewRasteriser(canvas(4, 2))
	img := r.Mask(p, NonZero)

	for y := range 2 {
		assert.Equal(t, uint8(0), img.AlphaAt(0, y).A)
		assert.Equal(t, uint8(128), img.AlphaAt(1, y).A)
		assert.Equal(t, uint8(255), img.AlphaAt(2, y).A)
		assert.Equal(t, uint8(0), img.AlphaAt(3, y).A)
	}
}

// TestTriangleCoverage checks that the total coverage of a triangle
// matches its area.
func TestTriangleCoverage(t *testing.T) {
	p := polygon(t, 2, 2, 18, 4, 7, 15)
	r := NewRasteriser(canvas(20, 20))

	var total float64
	r.Fill(p, NonZero, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			total += float64(c)
		}
	})

	// shoelace formula
	area := math.Abs((18-2)*(15-2)-(7-2)*(4-2)) / 2
	assert.InDelta(t, area, total, 1e-3)
}

func TestFillRules(t *testing.T) {
	// two overlapping squares with the same orientation
	p := polygon(t, 0, 0, 4, 0, 4, 4, 0, 4)
	p.Append(polygon(t, 2, 2, 6, 2, 6, 6, 2, 6))

	r := NewRasteriser(canvas(6, 6))
	nonZero := r.Mask(p, NonZero)
	evenOdd := r.Mask(p, EvenOdd)

	assert.Equal(t, uint8(255), nonZero.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(255), nonZero.AlphaAt(3, 3).A)
	assert.Equal(t, uint8(255), evenOdd.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(0), evenOdd.AlphaAt(3, 3).A)
	assert.Equal(t, uint8(255), evenOdd.AlphaAt(5, 5).A)
}

func TestClip(t *testing.T) {
	p := polygon(t, -10, -10, 20, -10, 20, 20, -10, 20)
	r := NewRasteriser(rect.Rect{LLx: 2, LLy: 3, URx: 6, URy: 5})
	img := r.Mask(p, NonZero)

	assert.Equal(t, image.Rect(2, 3, 6, 5), img.Bounds())
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			assert.Equal(t, uint8(255), img.AlphaAt(x, y).A)
		}
	}
}

func TestOpenSubpathClosedImplicitly(t *testing.T) {
	closed := polygon(t, 1, 1, 7, 1, 7, 7, 1, 7)

	open := outline.NewPath()
	open.MoveTo(vec.Vec2{X: 1, Y: 1})
	open.LineTo(vec.Vec2{X: 7, Y: 1})
	open.LineTo(vec.Vec2{X: 7, Y: 7})
	open.LineTo(vec.Vec2{X: 1, Y: 7})

	r := NewRasteriser(canvas(8, 8))
	assert.Equal(t, r.Mask(closed, NonZero).Pix, r.Mask(open, NonZero).Pix)
}

func TestEmptyPath(t *testing.T) {
	r := NewRasteriser(canvas(4, 4))
	called := false
	r.Fill(outline.NewPath(), NonZero, func(int, int, []float32) { called = true })
	assert.False(t, called)
}

func TestContains(t *testing.T) {
	square := polygon(t, 0, 0, 10, 0, 10, 10, 0, 10)
	r := NewRasteriser(canvas(10, 10))

	assert.True(t, r.Contains(square, vec.Vec2{X: 5, Y: 5}, NonZero))
	assert.False(t, r.Contains(square, vec.Vec2{X: 15, Y: 5}, NonZero))
	assert.False(t, r.Contains(square, vec.Vec2{X: 5, Y: -1}, NonZero))

	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	assert.True(t, r.Contains(square, vec.Vec2{X: 15, Y: 5}, NonZero))
}

func TestContainsCounter(t *testing.T) {
	for _, tc := range testcases.All["line"] {
		if tc.Name != "counter" {
			continue
		}
		p, err := tc.Layer.Outline()
		require.NoError(t, err)

		r := NewRasteriser(canvas(tc.Width, tc.Height))
		r.CTM = tc.DeviceCTM()
		assert.False(t, r.Contains(p, vec.Vec2{X: 32, Y: 32}, NonZero), "inside the counter")
		assert.True(t, r.Contains(p, vec.Vec2{X: 17, Y: 32}, NonZero), "on the stem")
		assert.False(t, r.Contains(p, vec.Vec2{X: 2, Y: 32}, NonZero), "outside")
		return
	}
	t.Fatal("test case line_counter not found")
}

// TestAgainstVector compares the rasteriser output for all nonzero test
// cases to the output of golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rule != testcases.NonZero {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p, err := tc.Layer.Outline()
				require.NoError(t, err)

				r := NewRasteriser(canvas(tc.Width, tc.Height))
				r.CTM = tc.DeviceCTM()
				got := r.Mask(p, NonZero)
				want := VectorMask(p, tc.Width, tc.Height, tc.DeviceCTM())

				compareMasks(t, want, got)
			})
		}
	}
}

func TestVectorMaskEmpty(t *testing.T) {
	img := VectorMask(outline.NewPath(), 3, 2, matrix.Identity)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, make([]uint8, 6), img.Pix)
}

// compareMasks allows small differences along edges, which come from
// different curve flattening and rounding.
func compareMasks(t *testing.T, want, got *image.Alpha) {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())

	b := want.Bounds()
	bad := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := int(want.AlphaAt(x, y).A) - int(got.AlphaAt(x, y).A)
			if d < 0 {
				d = -d
			}
			if d > 128 {
				t.Errorf("pixel (%d,%d): want %d, got %d",
					x, y, want.AlphaAt(x, y).A, got.AlphaAt(x, y).A)
				return
			}
			if d > 32 {
				bad++
			}
		}
	}
	assert.LessOrEqual(t, bad, b.Dx()*b.Dy()/50, "too many differing pixels")
}

// TestThinTriangle checks exact coverage along a shallow edge.  The
// triangle (0,0), (10,0), (10,1) has the diagonal y = x/10, so pixel x
// has coverage (2x+1)/20.
func TestThinTriangle(t *testing.T) {
	p := polygon(t, 0, 0, 10, 0, 10, 1)
	r := NewRasteriser(canvas(10, 1))

	rows := 0
	r.Fill(p, NonZero, func(y, xMin int, coverage []float32) {
		rows++
		require.Equal(t, 0, y)
		require.Equal(t, 0, xMin)
		require.Len(t, coverage, 10)
		for x, c := range coverage {
			assert.InDelta(t, float64(2*x+1)/20, c, 1e-6, "pixel %d", x)
		}
	})
	assert.Equal(t, 1, rows)
}
