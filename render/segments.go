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

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline"
)

// Segments converts p into the 26.6 fixed point segment representation
// used by golang.org/x/image/font/sfnt, so that compiled outlines can be
// passed to glyph mask rasterizers built for sfnt.
//
// The matrix m is applied first; use a negative y scale to convert from
// font units (y up) to the y down convention of sfnt.  Closed subpaths
// get an explicit final line segment back to their start point.
func Segments(p *outline.Path, m matrix.Matrix) sfnt.Segments {
	dev := outline.Composite(p, m)

	var segs sfnt.Segments
	var current, start vec.Vec2
	for cmd, pts := range dev.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpMoveTo,
				Args: [3]fixed.Point26_6{toFixed(pts[0])},
			})
			current, start = pts[0], pts[0]
		case path.CmdLineTo:
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpLineTo,
				Args: [3]fixed.Point26_6{toFixed(pts[0])},
			})
			current = pts[0]
		case path.CmdQuadTo:
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpQuadTo,
				Args: [3]fixed.Point26_6{toFixed(pts[0]), toFixed(pts[1])},
			})
			current = pts[1]
		case path.CmdCubeTo:
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpCubeTo,
				Args: [3]fixed.Point26_6{toFixed(pts[0]), toFixed(pts[1]), toFixed(pts[2])},
			})
			current = pts[2]
		case path.CmdClose:
			if current != start {
				segs = append(segs, sfnt.Segment{
					Op:   sfnt.SegmentOpLineTo,
					Args: [3]fixed.Point26_6{toFixed(start)},
				})
			}
			current = start
		}
	}
	return segs
}

func toFixed(v vec.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
}
