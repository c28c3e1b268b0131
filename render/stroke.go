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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/outline"
)

// strokeSegment is a flattened piece of a subpath, in path coordinates.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by +90 degrees
}

// Stroke rasterises the outline of p, drawn with a pen of the current
// Width, Cap, Join and MiterLimit.  Open contours of a glyph are drawn
// this way.  Coverage is delivered as for [Rasteriser.Fill].
//
// The stroke outline of every subpath is built as a polygon in path
// coordinates; all polygons are then filled together with the nonzero
// rule, so that self-overlapping strokes are painted once.
func (r *Rasteriser) Stroke(p *outline.Path, emit func(y, xMin int, coverage []float32)) {
	r.flattenSubpaths(p)

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// a subpath without direction only leaves a mark with round caps
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			start := len(r.stroke)
			r.addArc(pt, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
	}

	for i, start := range r.segsOffsets {
		end := len(r.segs)
		if i+1 < len(r.segsOffsets) {
			end = r.segsOffsets[i+1]
		}
		first := len(r.stroke)
		r.strokeSubpath(r.segs[start:end], r.subpathClosed[i])
		if len(r.stroke)-first >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, first)
		} else {
			r.stroke = r.stroke[:first]
		}
	}

	r.edges = r.edges[:0]
	r.haveBBox = false
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.sweep(NonZero, emit)
}

// flattenSubpaths splits p into subpaths of straight segments.
func (r *Rasteriser) flattenSubpaths(p *outline.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0     // index in segs where the current subpath starts
	open := false  // inside a subpath
	drawn := false // the current subpath has a drawing command

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open = false
		drawn = false
	}

	d := p.Data()
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = d.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addStrokeSegment(current, d.Coords[k])
			current = d.Coords[k]
			drawn = true
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, d.Coords[k], d.Coords[k+1], r.addStrokeSegment)
			current = d.Coords[k+1]
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, d.Coords[k], d.Coords[k+1], d.Coords[k+2], r.addStrokeSegment)
			current = d.Coords[k+2]
			drawn = true
			k += 3
		case path.CmdClose:
			if !open {
				continue
			}
			if current != start {
				r.addStrokeSegment(current, start)
			}
			current = start
			finish(true)
			open = true // drawing may continue from the start point
		}
	}
	if open {
		finish(false)
	}
}

func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// cross returns the sine of the turning angle from t1 to t2.
func cross(t1, t2 vec.Vec2) float64 {
	return t1.X*t2.Y - t1.Y*t2.X
}

// strokeSubpath appends the outline polygon of one subpath to r.stroke.
// The polygon runs forward along the +N side and back along the -N side.
// Joins are added on the outer side of each corner; on the inner side the
// two offset lines are cut at their intersection.
func (r *Rasteriser) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2
	first, last := &segs[0], &segs[len(segs)-1]

	if closed {
		// forward along +N, starting at the closing corner
		r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			if i+1 < len(segs) {
				next = &segs[i+1]
			}
			r.corner(seg, next, d)
		}

		// back along -N, again starting at the closing corner
		r.cornerReverse(last, first, d)
		for i := len(segs) - 1; i > 0; i-- {
			r.cornerReverse(&segs[i-1], &segs[i], d)
		}
		r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	r.addCap(first.A, first.T.Mul(-1), d)
	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i+1 < len(segs) {
			skip = r.openCorner(seg, &segs[i+1], d, true)
		} else {
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		}
	}

	r.addCap(last.B, last.T, d)
	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i > 0 {
			skip = r.openCorner(&segs[i-1], seg, d, false)
		} else {
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		}
	}
}

// corner adds the +N side of the corner between seg and next of a closed
// subpath: seg's end offset, the join and next's start offset.
func (r *Rasteriser) corner(seg, next *strokeSegment, d float64) {
	sin := cross(seg.T, next.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
	case sin > 0:
		r.addInner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
	default:
		r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		r.addJoin(seg.B, seg.T, next.T, d, true)
		r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
	}
}

// cornerReverse adds the -N side of the corner between prev and seg of a
// closed subpath, walking backwards: seg's start offset, the join and
// prev's end offset.
func (r *Rasteriser) cornerReverse(prev, seg *strokeSegment, d float64) {
	sin := cross(prev.T, seg.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
	case sin > 0:
		r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		r.addJoin(seg.A, prev.T, seg.T, d, false)
		r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
	default:
		r.addInner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
	}
}

// openCorner adds the corner between seg and next of an open subpath on
// the given side.  The start offset of the following segment is added by
// the caller, unless openCorner returns true.
func (r *Rasteriser) openCorner(seg, next *strokeSegment, d float64, positive bool) bool {
	sin := cross(seg.T, next.T)
	if positive {
		switch {
		case math.Abs(sin) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		case sin > 0:
			return r.addInner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
		return false
	}

	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, next.A.Sub(next.N.Mul(d)))
	case sin > 0:
		r.stroke = append(r.stroke, next.A.Sub(next.N.Mul(d)))
		r.addJoin(next.A, seg.T, next.T, d, false)
	default:
		return r.addInner(next.A, seg.T, next.T, seg.N, next.N, d, false)
	}
	return false
}

// addCap adds the cap at P, where T points away from the stroke.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addInner adds the inner side of a corner at P.  If the two offset lines
// intersect, only the intersection is added and the result is true.
// Otherwise both offset points are added.
func (r *Rasteriser) addInner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	cos := T1.Dot(T2)
	halfCos := math.Sqrt((1 + cos) / 2)
	dir := N1.Add(N2)
	if !positive {
		dir = dir.Mul(-1)
	}
	if l := dir.Length(); cos <= 1-1e-9 && halfCos >= 1e-9 && l >= 1e-9 {
		r.stroke = append(r.stroke, P.Add(dir.Mul(d/(halfCos*l))))
		return true
	}

	if positive {
		r.stroke = append(r.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.stroke = append(r.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds the outer side of the join at P, where the tangent turns
// from T1 to T2.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// the miter length relative to the line width is 1/cos(theta/2)
		halfCos := math.Sqrt((1 + cos) / 2)
		if halfCos > 0 && 1/halfCos <= r.MiterLimit+1e-10 {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			dir := N1.Add(N2)
			if !positive {
				dir = dir.Mul(-1)
			}
			if l := dir.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(dir.Mul(d/(halfCos*l))))
			}
		}
		// otherwise bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sin < 0 {
				angle = -angle
			}
			r.addArc(P, d, N1, angle, false)
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sin > 0 {
				angle = -angle
			}
			r.addArc(P, d, N2, angle, false)
		}
	}
}

// addArc adds points on the circle of the given radius around center,
// starting in direction startDir and turning by sweep radians.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= r.Flatness {
		// the sagitta of a chord over angle a is radius*(1-cos(a/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		a := sweep * float64(i) / float64(n)
		s, c := math.Sincos(a)
		dir := vec.Vec2{
			X: startDir.X*c - startDir.Y*s,
			Y: startDir.X*s + startDir.Y*c,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}
