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

// PathCompiler is implemented by values which compile to a single path.
type PathCompiler interface {
	Path() (*Path, error)
}

// ClosedPathCompiler is implemented by values which contribute closed
// contours to a glyph outline.
type ClosedPathCompiler interface {
	ClosedPath() (*Path, error)
}

// OpenPathCompiler is implemented by values which contribute open
// contours to a glyph outline.
type OpenPathCompiler interface {
	OpenPath() (*Path, error)
}

var (
	_ PathCompiler       = (*Contour)(nil)
	_ ClosedPathCompiler = (*Layer)(nil)
	_ OpenPathCompiler   = (*Layer)(nil)
	_ ClosedPathCompiler = (*Component)(nil)
	_ OpenPathCompiler   = (*Component)(nil)
)

// Layer is one drawing of a glyph: a list of contours and a list of
// components.  All derived paths preserve the stored order.
type Layer struct {
	Name       string
	Contours   []Contour
	Components []*Component
}

// ClosedPath returns all closed contours of the layer.
func (l *Layer) ClosedPath() (*Path, error) {
	return l.contourPath(false)
}

// OpenPath returns all open contours of the layer.
func (l *Layer) OpenPath() (*Path, error) {
	return l.contourPath(true)
}

func (l *Layer) contourPath(open bool) (*Path, error) {
	res := NewPath()
	for i := range l.Contours {
		c := &l.Contours[i]
		if c.IsOpen() != open {
			continue
		}
		p, err := c.Path()
		if err != nil {
			return nil, &LayerError{Layer: l.Name, Kind: "contour", Index: i, Err: err}
		}
		res.Append(p)
	}
	return res, nil
}

// ClosedComponentsPath returns the closed contours of all components,
// each in its own placement.
func (l *Layer) ClosedComponentsPath() (*Path, error) {
	return l.componentPath((*Component).ClosedPath)
}

// OpenComponentsPath returns the open contours of all components,
// each in its own placement.
func (l *Layer) OpenComponentsPath() (*Path, error) {
	return l.componentPath((*Component).OpenPath)
}

func (l *Layer) componentPath(get func(*Component) (*Path, error)) (*Path, error) {
	res := NewPath()
	for i, c := range l.Components {
		if c == nil {
			continue
		}
		p, err := get(c)
		if err != nil {
			return nil, &LayerError{Layer: l.Name, Kind: "component", Index: i, Err: err}
		}
		res.Append(p)
	}
	return res, nil
}

// Outline returns the filled shape of the layer: the closed contours
// followed by the closed contours of all components.
func (l *Layer) Outline() (*Path, error) {
	res, err := l.ClosedPath()
	if err != nil {
		return nil, err
	}
	comp, err := l.ClosedComponentsPath()
	if err != nil {
		return nil, err
	}
	res.Append(comp)
	return res, nil
}
