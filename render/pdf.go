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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/outline"
)

// PageOptions controls the PDF output of WritePDF.
type PageOptions struct {
	// Width and Height give the page size in PDF points.
	Width, Height float64

	// CTM maps glyph coordinates to page coordinates.
	// The zero matrix means no transformation.
	CTM matrix.Matrix

	// LineWidth is the width used for open contours, in glyph units.
	// Values <= 0 select a line width of one page unit.
	LineWidth float64

	// Cap and Join set the line style for open contours.  The zero values
	// are the PDF defaults, butt caps and miter joins.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// Rule is the fill rule used for closed contours.
	Rule FillRule

	// Coverage selects white ink on a black page, so that a grayscale
	// rendering of the file can be compared to a coverage mask.
	Coverage bool
}

// WritePDF writes a single page PDF file showing s.  Closed contours are
// filled and open contours are stroked.
func WritePDF(fname string, s *Shape, opt *PageOptions) error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return errors.New("render: empty page")
	}

	paper := &pdf.Rectangle{URx: opt.Width, URy: opt.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	ink := color.DeviceGray(0)
	if opt.Coverage {
		page.SetFillColor(color.DeviceGray(0))
		page.Rectangle(0, 0, opt.Width, opt.Height)
		page.Fill()
		ink = color.DeviceGray(1)
	}

	lineWidth := opt.LineWidth
	if opt.CTM != (matrix.Matrix{}) && opt.CTM != matrix.Identity {
		page.Transform(opt.CTM)
		if lineWidth <= 0 {
			if scale := opt.CTM[0]*opt.CTM[3] - opt.CTM[1]*opt.CTM[2]; scale != 0 {
				lineWidth = 1 / math.Sqrt(math.Abs(scale))
			}
		}
	}
	if lineWidth <= 0 {
		lineWidth = 1
	}

	// PDF has no quadratic segments, so everything is converted to cubics.
	draw := func(p *outline.Path) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	if s.Fill != nil && !s.Fill.IsEmpty() {
		page.SetFillColor(ink)
		draw(s.Fill)
		if opt.Rule == EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	}
	if s.Stroke != nil && !s.Stroke.IsEmpty() {
		page.SetStrokeColor(ink)
		page.SetLineWidth(lineWidth)
		page.SetLineCap(opt.Cap)
		page.SetLineJoin(opt.Join)
		draw(s.Stroke)
		page.Stroke()
	}

	return page.Close()
}
