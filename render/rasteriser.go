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
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline"
)

// FillRule identifies which fill rule to apply.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts compiled glyph paths to pixel coverage values.
// A Rasteriser can be reused for many paths; its internal buffers grow as
// needed and are kept between calls.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// Must have integer-aligned coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	// Width is the stroke width in path coordinates.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used at the corners of stroked subpaths.
	Join graphics.LineJoinStyle

	// MiterLimit turns miter joins into bevel joins for sharp corners.
	// Must be at least 1.
	MiterLimit float64

	cover     []float32 // signed vertical extent per pixel
	area      []float32 // cover weighted by the position inside the pixel
	edges     []edge
	active    []int
	crossings []float64

	segs          []strokeSegment // flattened subpaths, contiguous
	segsOffsets   []int           // start of each subpath in segs
	subpathClosed []bool
	dots          []vec.Vec2 // subpaths without a direction
	stroke        []vec.Vec2 // stroke outline polygons, contiguous
	strokeOffsets []int      // start of each polygon in stroke

	haveBBox         bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity CTM and the PDF default values for the stroke parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset restores the default parameters for a new clip rectangle,
// keeping the capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// Fill rasterises p using the given fill rule.  Open subpaths are closed
// implicitly.  Coverage is delivered row by row; the slice passed to emit
// is only valid for the duration of the call.
func (r *Rasteriser) Fill(p *outline.Path, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.collectEdges(p)
	r.sweep(rule, emit)
}

// sweep converts the current edge list into coverage values.
func (r *Rasteriser) sweep(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yNext := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yNext {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			e := &r.edges[i]
			return max(e.y0, e.y1) <= yf
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Mask rasterises p into an alpha mask covering the clip rectangle.
func (r *Rasteriser) Mask(p *outline.Path, rule FillRule) *image.Alpha {
	img := image.NewAlpha(image.Rect(
		int(r.Clip.LLx), int(r.Clip.LLy), int(r.Clip.URx), int(r.Clip.URy)))
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(max(0, min(255, int(c*255+0.5))))
		}
	})
	return img
}

// Contains reports whether the device space point pt lies inside p.
// Curves are flattened with the current CTM and Flatness.
func (r *Rasteriser) Contains(p *outline.Path, pt vec.Vec2, rule FillRule) bool {
	r.collectEdges(p)

	winding := 0
	for i := range r.edges {
		e := &r.edges[i]
		if (e.y0 <= pt.Y) == (e.y1 <= pt.Y) {
			continue
		}
		x := e.x0 + e.dxdy*(pt.Y-e.y0)
		if x <= pt.X {
			continue
		}
		if e.y1 > e.y0 {
			winding++
		} else {
			winding--
		}
	}

	if rule == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// Draw renders s into an alpha mask covering the clip rectangle.  The
// fill path uses the given rule, the stroke path uses the stroke
// parameters of r.  Where both overlap, the larger coverage wins.
func (r *Rasteriser) Draw(s *Shape, rule FillRule) *image.Alpha {
	img := image.NewAlpha(image.Rect(
		int(r.Clip.LLx), int(r.Clip.LLy), int(r.Clip.URx), int(r.Clip.URy)))
	paint := func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = max(row[i], uint8(max(0, min(255, int(c*255+0.5)))))
		}
	}
	if s.Fill != nil {
		r.Fill(s.Fill, rule, paint)
	}
	if s.Stroke != nil {
		r.Stroke(s.Stroke, paint)
	}
	return img
}

// collectEdges walks the path, transforms to device space and fills the
// edge list.
func (r *Rasteriser) collectEdges(p *outline.Path) {
	r.edges = r.edges[:0]
	r.haveBBox = false

	d := p.Data()
	var current, start vec.Vec2
	needClose := false
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if needClose && current != start {
				r.addEdge(current, start)
			}
			current = d.Coords[k]
			start = current
			needClose = false
			k++

		case path.CmdLineTo:
			r.addEdge(current, d.Coords[k])
			current = d.Coords[k]
			needClose = true
			k++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, d.Coords[k], d.Coords[k+1], r.addEdge)
			current = d.Coords[k+1]
			needClose = true
			k += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, d.Coords[k], d.Coords[k+1], d.Coords[k+2], r.addEdge)
			current = d.Coords[k+2]
			needClose = true
			k += 3

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			needClose = false
		}
	}
	if needClose && current != start {
		r.addEdge(current, start)
	}
}

// edgeBounds returns the bounding box of the edge list in device pixels,
// clamped to the clip rectangle.
func (r *Rasteriser) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge adds the user space segment p0-p1 to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.haveBBox {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.haveBBox = true
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// transformLinear applies the 2×2 part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic splits the quadratic Bézier p0, p1, p2 into line
// segments which stay within Flatness of the curve in device space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance between curve and chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	dist := r.transformLinear(e).Length()

	n := 1
	if dist > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dist / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits the cubic Bézier p0, ..., p3 into line segments,
// choosing the number of segments by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage model: for each pixel of a scanline, cover holds the signed
// vertical extent of the edges crossing the pixel and area holds the same
// amount weighted by the fraction of the pixel to the right of the edge.
// Summing cover from the left and adding area gives the signed coverage.

// accumulate adds the contribution of e within scanline y.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	if left == right {
		r.deposit(e, yTop, yBot, sign, left, xMin, xMax)
		return
	}

	// split at the pixel boundaries crossed by the edge
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		a, b := r.crossings[i], r.crossings[i+1]
		if b <= a {
			continue
		}
		xMid := e.x0 + e.dxdy*((a+b)/2-e.y0)
		r.deposit(e, a, b, sign, int(math.Floor(xMid)), xMin, xMax)
	}
}

// deposit records the part of e between yTop and yBot, which lies inside
// pixel column pix.
func (r *Rasteriser) deposit(e *edge, yTop, yBot float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix >= xMax:
		// right of the clip rectangle, no contribution
	default:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero turns cover and area into coverage values, in place.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns cover and area into coverage values, in place.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	// Flatter edges do not contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// defaultMiterLimit is the PDF default.  Corners sharper than about
	// 11.5 degrees get a bevel join.
	defaultMiterLimit = 10.0

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest sine of the turning angle
	// which is treated as a straight continuation.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects subpaths doubling back on themselves.
	cuspCosineThreshold = -0.9999
)
