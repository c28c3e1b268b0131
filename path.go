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

package outline

import (
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Builder receives the drawing instructions produced by the contour compiler.
type Builder interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	QuadTo(c, p vec.Vec2)
	CubeTo(c1, c2, p vec.Vec2)
	Close()
}

// Path is a vector path made of line, quadratic and cubic Bézier segments.
//
// Paths returned by the functions in this package are freshly allocated and
// owned by the caller.  The zero value is an empty path, ready to use.
type Path struct {
	data path.Data
}

var _ Builder = (*Path)(nil)

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt vec.Vec2) {
	p.data.Cmds = append(p.data.Cmds, path.CmdMoveTo)
	p.data.Coords = append(p.data.Coords, pt)
}

// LineTo appends a straight segment ending at pt.
func (p *Path) LineTo(pt vec.Vec2) {
	p.data.Cmds = append(p.data.Cmds, path.CmdLineTo)
	p.data.Coords = append(p.data.Coords, pt)
}

// QuadTo appends a quadratic Bézier segment with control point c.
func (p *Path) QuadTo(c, pt vec.Vec2) {
	p.data.Cmds = append(p.data.Cmds, path.CmdQuadTo)
	p.data.Coords = append(p.data.Coords, c, pt)
}

// CubeTo appends a cubic Bézier segment with control points c1 and c2.
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) {
	p.data.Cmds = append(p.data.Cmds, path.CmdCubeTo)
	p.data.Coords = append(p.data.Coords, c1, c2, pt)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.data.Cmds = append(p.data.Cmds, path.CmdClose)
}

// Append appends all subpaths of other to p.  Other is not modified.
func (p *Path) Append(other *Path) {
	if other == nil {
		return
	}
	p.data.Cmds = append(p.data.Cmds, other.data.Cmds...)
	p.data.Coords = append(p.data.Coords, other.data.Coords...)
}

// Transform applies the affine map m to every point of p, in place.
// For m = {a, b, c, d, tx, ty} a point (x, y) is mapped to
// (a*x + c*y + tx, b*x + d*y + ty).
func (p *Path) Transform(m matrix.Matrix) {
	if m == matrix.Identity {
		return
	}
	for i, c := range p.data.Coords {
		p.data.Coords[i] = vec.Vec2{
			X: m[0]*c.X + m[2]*c.Y + m[4],
			Y: m[1]*c.X + m[3]*c.Y + m[5],
		}
	}
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{
		data: path.Data{
			Cmds:   slices.Clone(p.data.Cmds),
			Coords: slices.Clone(p.data.Coords),
		},
	}
}

// Len returns the number of drawing instructions in p.
func (p *Path) Len() int {
	return len(p.data.Cmds)
}

// IsEmpty reports whether p contains no instructions.
func (p *Path) IsEmpty() bool {
	return len(p.data.Cmds) == 0
}

// Iter returns an iterator over the instructions of p.
func (p *Path) Iter() path.Path {
	return p.data.Iter()
}

// Data gives direct access to the instruction and coordinate arrays.
// The result must be treated as read-only.
func (p *Path) Data() *path.Data {
	return &p.data
}

// Bounds returns the bounding box of all points of p, including
// control points.  The result is the zero rectangle for an empty path.
func (p *Path) Bounds() rect.Rect {
	if len(p.data.Coords) == 0 {
		return rect.Rect{}
	}
	first := p.data.Coords[0]
	b := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, c := range p.data.Coords[1:] {
		b.LLx = min(b.LLx, c.X)
		b.LLy = min(b.LLy, c.Y)
		b.URx = max(b.URx, c.X)
		b.URy = max(b.URy, c.Y)
	}
	return b
}
