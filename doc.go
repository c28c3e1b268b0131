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

// Package outline converts glyph outlines into vector paths.
//
// A glyph layer consists of contours, each an ordered list of typed points,
// and of components, which place transformed copies of other layers.  The
// contour compiler turns the points of one contour into line, quadratic and
// cubic Bézier segments, inserting the implied on-curve points of quadratic
// outlines.  Layers and components combine the compiled contours into the
// four views used for drawing: closed and open contours, and closed and open
// contours of the components.
//
// All functions are pure: they only read their inputs and always return
// freshly allocated paths.  Caching compiled paths is left to the caller,
// see the pathcache sub-package.
package outline
