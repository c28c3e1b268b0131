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

// Command export writes the compiled test case paths to JSON, so that
// other implementations can be checked against them.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name             string        `json:"name"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	CTM              []float64     `json:"ctm"`
	FillRule         string        `json:"fill_rule"`
	Closed           []jsonSegment `json:"closed"`
	Open             []jsonSegment `json:"open,omitempty"`
	ClosedComponents []jsonSegment `json:"closed_components,omitempty"`
	OpenComponents   []jsonSegment `json:"open_components,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	ctm := tc.DeviceCTM()
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		CTM:      ctm[:],
		FillRule: "nonzero",
	}
	if tc.Rule == testcases.EvenOdd {
		jtc.FillRule = "evenodd"
	}

	views := []struct {
		compile func() (*outline.Path, error)
		dst     *[]jsonSegment
	}{
		{tc.Layer.ClosedPath, &jtc.Closed},
		{tc.Layer.OpenPath, &jtc.Open},
		{tc.Layer.ClosedComponentsPath, &jtc.ClosedComponents},
		{tc.Layer.OpenComponentsPath, &jtc.OpenComponents},
	}
	for _, view := range views {
		p, err := view.compile()
		if err != nil {
			return jtc, err
		}
		*view.dst = pathToJSON(p.Iter())
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
