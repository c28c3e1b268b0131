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
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
)

// VectorMask rasterises p with the golang.org/x/image/vector rasterizer,
// using the nonzero winding rule.  The matrix ctm maps path coordinates to
// pixel coordinates.
//
// VectorMask serves as an independent reference for [Rasteriser.Mask].
func VectorMask(p *outline.Path, width, height int, ctm matrix.Matrix) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	if p.IsEmpty() {
		return img
	}

	dev := outline.Composite(p, ctm)
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src

	open := false
	for cmd, pts := range dev.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			open = true
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			z.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	z.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}
