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

package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/render"
	"seehuhn.de/go/outline/testcases"
)

// job is one glyph to be written.
type job struct {
	name  string
	tc    testcases.TestCase
	shape *render.Shape
}

// selectJobs returns the test cases selected by cfg and names, in sorted
// order.  Names have the form category_name.  If names is empty, all
// test cases of the configured categories are selected.
func selectJobs(cfg *Config, names []string) ([]*job, error) {
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = slices.Sorted(maps.Keys(testcases.All))
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	found := make(map[string]bool, len(names))

	var jobs []*job
	for _, category := range categories {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if len(want) > 0 && !want[name] {
				continue
			}
			found[name] = true

			shape, err := render.LayerShape(tc.Layer)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			jobs = append(jobs, &job{name: name, tc: tc, shape: shape})
		}
	}
	var unknown []string
	for name := range want {
		if !found[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("unknown test case(s) %v", unknown)
	}
	return jobs, nil
}

// placement returns the output size for j and the transformation from
// glyph coordinates to output coordinates, with the y-axis pointing up.
func (j *job) placement(cfg *Config) (w, h int, m matrix.Matrix) {
	if cfg.Width == 0 {
		m = j.tc.CTM
		if m == (matrix.Matrix{}) {
			m = matrix.Identity
		}
		return j.tc.Width, j.tc.Height, m
	}
	w, h = cfg.Width, cfg.Height

	all := j.shape.Fill.Clone()
	all.Append(j.shape.Stroke)
	if all.IsEmpty() {
		return w, h, matrix.Identity
	}
	b := all.Bounds()

	availX := float64(w - 2*cfg.Margin)
	availY := float64(h - 2*cfg.Margin)
	dx, dy := b.URx-b.LLx, b.URy-b.LLy
	var s float64
	switch {
	case dx > 0 && dy > 0:
		s = min(availX/dx, availY/dy)
	case dx > 0:
		s = availX / dx
	case dy > 0:
		s = availY / dy
	default:
		s = 1
	}

	// center the glyph in the available area
	offX := float64(cfg.Margin) + (availX-s*dx)/2 - s*b.LLx
	offY := float64(cfg.Margin) + (availY-s*dy)/2 - s*b.LLy
	if !cfg.FlipY {
		// glyph coordinates are y-down, mirror them into the y-up frame
		return w, h, matrix.Matrix{s, 0, 0, -s, offX, float64(h) - offY}
	}
	return w, h, matrix.Matrix{s, 0, 0, s, offX, offY}
}

// flip converts a y-up transformation for an output of height h into
// the corresponding y-down transformation.
func flip(m matrix.Matrix, h int) matrix.Matrix {
	return matrix.Matrix{m[0], -m[1], m[2], -m[3], m[4], float64(h) - m[5]}
}

func fillRule(cfg *Config, tc testcases.TestCase) render.FillRule {
	switch cfg.FillRule {
	case "nonzero":
		return render.NonZero
	case "evenodd":
		return render.EvenOdd
	}
	if tc.Rule == testcases.EvenOdd {
		return render.EvenOdd
	}
	return render.NonZero
}

// penWidth converts the configured line width from output units to
// glyph units.
func penWidth(cfg *Config, m matrix.Matrix) float64 {
	det := math.Abs(m[0]*m[3] - m[1]*m[2])
	if det == 0 {
		return cfg.LineWidth
	}
	return cfg.LineWidth / math.Sqrt(det)
}

// writePNG renders j as black on white.  Closed contours are filled,
// open contours are stroked.
func writePNG(cfg *Config, j *job) (err error) {
	w, h, m := j.placement(cfg)

	r := render.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = flip(m, h)
	r.Width = penWidth(cfg, m)
	mask := r.Draw(j.shape, fillRule(cfg, j.tc))

	img := image.NewGray(mask.Rect)
	for i, a := range mask.Pix {
		img.Pix[i] = 255 - a
	}

	fname := filepath.Join(cfg.OutDir, j.name+".png")
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func writePDF(cfg *Config, j *job) error {
	w, h, m := j.placement(cfg)
	opt := &render.PageOptions{
		Width:     float64(w),
		Height:    float64(h),
		CTM:       m,
		LineWidth: penWidth(cfg, m),
		Rule:      fillRule(cfg, j.tc),
	}
	fname := filepath.Join(cfg.OutDir, j.name+".pdf")
	return render.WritePDF(fname, j.shape, opt)
}

// jsonGlyph lists the compiled instructions of the four layer views.
type jsonGlyph struct {
	Name             string        `json:"name"`
	Closed           []jsonCommand `json:"closed"`
	Open             []jsonCommand `json:"open"`
	ClosedComponents []jsonCommand `json:"closed_components"`
	OpenComponents   []jsonCommand `json:"open_components"`
}

type jsonCommand struct {
	Op  string       `json:"op"`
	Pts [][2]float64 `json:"pts,omitempty"`
}

var opNames = map[path.Command]string{
	path.CmdMoveTo: "moveTo",
	path.CmdLineTo: "lineTo",
	path.CmdQuadTo: "qCurveTo",
	path.CmdCubeTo: "curveTo",
	path.CmdClose:  "closePath",
}

func writeJSON(cfg *Config, j *job) (err error) {
	l := j.tc.Layer
	out := jsonGlyph{Name: j.name}
	views := []struct {
		compile func() (*outline.Path, error)
		dst     *[]jsonCommand
	}{
		{l.ClosedPath, &out.Closed},
		{l.OpenPath, &out.Open},
		{l.ClosedComponentsPath, &out.ClosedComponents},
		{l.OpenComponentsPath, &out.OpenComponents},
	}
	for _, v := range views {
		p, err := v.compile()
		if err != nil {
			return err
		}
		cmds := []jsonCommand{}
		for cmd, pts := range p.Iter() {
			c := jsonCommand{Op: opNames[cmd]}
			for _, pt := range pts {
				c.Pts = append(c.Pts, [2]float64{pt.X, pt.Y})
			}
			cmds = append(cmds, c)
		}
		*v.dst = cmds
	}

	fname := filepath.Join(cfg.OutDir, j.name+".json")
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
