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
	"seehuhn.de/go/outline"
)

// Shape holds the two paths needed to draw a glyph layer.
type Shape struct {
	Fill   *outline.Path // closed contours of the layer and its components
	Stroke *outline.Path // open contours of the layer and its components
}

// LayerShape compiles all four views of l into a Shape.
func LayerShape(l *outline.Layer) (*Shape, error) {
	fill, err := l.Outline()
	if err != nil {
		return nil, err
	}
	stroke, err := l.OpenPath()
	if err != nil {
		return nil, err
	}
	comp, err := l.OpenComponentsPath()
	if err != nil {
		return nil, err
	}
	stroke.Append(comp)
	return &Shape{Fill: fill, Stroke: stroke}, nil
}
