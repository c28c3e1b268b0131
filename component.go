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

import "seehuhn.de/go/geom/matrix"

// Component places a transformed copy of another layer's outline.
//
// Layer is a non-owning reference; the referenced layer may be shared by
// many components with different transformations.  Transform is applied
// as given, so a Component built as a struct literal must set it
// explicitly; use [NewComponent] for an untransformed placement.
type Component struct {
	Layer     *Layer
	Transform matrix.Matrix
}

// NewComponent returns a component which places l unchanged.
func NewComponent(l *Layer) *Component {
	return &Component{Layer: l, Transform: matrix.Identity}
}

// ClosedPath returns the closed contours of the referenced layer,
// transformed by c.Transform.
func (c *Component) ClosedPath() (*Path, error) {
	if c.Layer == nil {
		Logger().Debug("component without layer")
		return NewPath(), nil
	}
	src, err := c.Layer.ClosedPath()
	if err != nil {
		return nil, err
	}
	return Composite(src, c.Transform), nil
}

// OpenPath returns the open contours of the referenced layer,
// transformed by c.Transform.
func (c *Component) OpenPath() (*Path, error) {
	if c.Layer == nil {
		Logger().Debug("component without layer")
		return NewPath(), nil
	}
	src, err := c.Layer.OpenPath()
	if err != nil {
		return nil, err
	}
	return Composite(src, c.Transform), nil
}

// Composite copies src into a new path and applies m to the copy.
// Src is never modified, so it may be a path shared with other callers.
func Composite(src *Path, m matrix.Matrix) *Path {
	p := NewPath()
	p.Append(src)
	p.Transform(m)
	return p
}
