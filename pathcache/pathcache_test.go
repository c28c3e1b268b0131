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

package pathcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline"
)

func box(name string, size float64) *outline.Layer {
	return &outline.Layer{
		Name: name,
		Contours: []outline.Contour{
			{Points: []outline.Point{
				{X: 0, Y: 0, Type: outline.Line},
				{X: size, Y: 0, Type: outline.Line},
				{X: size, Y: size, Type: outline.Line},
				{X: 0, Y: size, Type: outline.Line},
			}},
			{Points: []outline.Point{
				{X: 0, Y: -5, Type: outline.Move},
				{X: size, Y: -5, Type: outline.Line},
			}},
		},
	}
}

func TestCacheHit(t *testing.T) {
	c := New(0)
	l := box("o", 10)

	p1, err := c.Path(l, ClosedContours)
	require.NoError(t, err)
	p2, err := c.Path(l, ClosedContours)
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	want, err := l.ClosedPath()
	require.NoError(t, err)
	assert.Equal(t, want.Data(), p1.Data())

	st := c.Stats()
	assert.EqualValues(t, 1, st.Misses)
	assert.EqualValues(t, 1, st.Hits)

	open, err := c.Path(l, OpenContours)
	require.NoError(t, err)
	assert.Equal(t, 2, open.Len())
	assert.Equal(t, 2, c.Len())
}

func TestCacheInvalidate(t *testing.T) {
	c := New(0)
	l := box("o", 10)

	before, err := c.Path(l, ClosedContours)
	require.NoError(t, err)

	l.Contours[0].Points[0].X = -3
	stale, err := c.Path(l, ClosedContours)
	require.NoError(t, err)
	assert.Same(t, before, stale)

	c.Invalidate("o")
	after, err := c.Path(l, ClosedContours)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, vec.Vec2{X: -3, Y: 0}, after.Data().Coords[1])

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestCacheUnnamedLayer(t *testing.T) {
	c := New(0)
	l := box("", 10)
	p1, err := c.Path(l, ClosedContours)
	require.NoError(t, err)
	p2, err := c.Path(l, ClosedContours)
	require.NoError(t, err)
	assert.NotSame(t, p1, p2)
	assert.Zero(t, c.Len())
}

func TestCacheComponents(t *testing.T) {
	c := New(0)
	base := box("base", 10)
	glyph := &outline.Layer{
		Name: "glyph",
		Components: []*outline.Component{
			{Layer: base, Transform: matrix.Matrix{1, 0, 0, 1, 100, 0}},
			{Layer: base, Transform: matrix.Matrix{2, 0, 0, 2, 0, 0}},
		},
	}

	cached, err := c.Path(base, ClosedContours)
	require.NoError(t, err)
	orig := cached.Clone()

	got, err := c.Path(glyph, ClosedComponents)
	require.NoError(t, err)
	want, err := glyph.ClosedComponentsPath()
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
	assert.Equal(t, orig.Data(), cached.Data(), "cached base path was modified")

	gotOpen, err := c.Path(glyph, OpenComponents)
	require.NoError(t, err)
	wantOpen, err := glyph.OpenComponentsPath()
	require.NoError(t, err)
	assert.Equal(t, wantOpen.Data(), gotOpen.Data())

	// component views follow changes of the referenced layer
	base.Contours[0].Points[2].X = 50
	c.Invalidate("base")
	got2, err := c.Path(glyph, ClosedComponents)
	require.NoError(t, err)
	assert.NotEqual(t, got.Data(), got2.Data())
}

func TestCacheComponentView(t *testing.T) {
	c := New(0)
	_, err := c.Component(outline.NewComponent(box("b", 1)), ClosedComponents)
	assert.Error(t, err)

	p, err := c.Component(&outline.Component{}, OpenContours)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())

	_, err = c.Path(box("b", 1), View(17))
	assert.Error(t, err)
}

func TestCacheError(t *testing.T) {
	c := New(0)
	bad := &outline.Layer{
		Name:     "bad",
		Contours: []outline.Contour{{Points: []outline.Point{outline.Pt(1, 2)}}},
	}
	_, err := c.Path(bad, ClosedContours)
	require.ErrorIs(t, err, outline.ErrMalformedContour)
	_, err = c.Path(bad, ClosedContours)
	require.ErrorIs(t, err, outline.ErrMalformedContour)
	assert.EqualValues(t, 1, c.Stats().Hits)

	parent := &outline.Layer{Components: []*outline.Component{outline.NewComponent(bad)}}
	_, err = c.Path(parent, ClosedComponents)
	require.ErrorIs(t, err, outline.ErrMalformedContour)
}

func TestCacheConcurrent(t *testing.T) {
	c := New(0)
	base := box("base", 10)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*outline.Path, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comp := &outline.Component{Layer: base, Transform: matrix.Matrix{1, 0, 0, 1, float64(i), 0}}
			p, err := c.Component(comp, ClosedContours)
			if err == nil {
				results[i] = p
			}
		}()
	}
	wg.Wait()

	for i, p := range results {
		require.NotNil(t, p)
		assert.Equal(t, float64(i), p.Data().Coords[1].X)
	}
	assert.EqualValues(t, 1, c.Stats().Misses)
}
