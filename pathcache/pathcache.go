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

// Package pathcache caches the compiled paths of glyph layers.
//
// The functions of package outline always recompile from scratch.  A Cache
// keeps the contour paths of each layer, keyed by layer name, until the
// layer is invalidated.  Component views are composited from the cached
// paths of the referenced layers on every call, so they never go stale when
// a referenced layer changes.
package pathcache

import (
	"fmt"

	"github.com/gogpu/gg/cache"

	"seehuhn.de/go/outline"
)

// View selects one of the paths derived from a layer.
type View int

const (
	ClosedContours View = iota
	OpenContours
	ClosedComponents
	OpenComponents
)

func (v View) String() string {
	switch v {
	case ClosedContours:
		return "closed"
	case OpenContours:
		return "open"
	case ClosedComponents:
		return "closed-components"
	case OpenComponents:
		return "open-components"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

type key struct {
	name string
	view View
}

func hashKey(k key) uint64 {
	return cache.StringHasher(k.name)*31 + uint64(k.view)
}

// entry stores the outcome of one compilation.  Errors are kept as well,
// a malformed layer stays malformed until it is invalidated.
type entry struct {
	path *outline.Path
	err  error
}

// Cache holds compiled layer paths.  It is safe for concurrent use.
//
// Paths returned by a Cache are shared between callers and must not be
// modified.  Use [outline.Path.Clone] to obtain a private copy.
type Cache struct {
	c *cache.ShardedCache[key, entry]
}

// New returns an empty cache.  Capacity is the number of entries kept per
// shard; values <= 0 select the default.
func New(capacity int) *Cache {
	return &Cache{
		c: cache.NewSharded[key, entry](capacity, hashKey),
	}
}

// Path returns the given view of layer l.
//
// Layers without a name cannot be identified and are compiled on every call.
func (c *Cache) Path(l *outline.Layer, v View) (*outline.Path, error) {
	switch v {
	case ClosedContours, OpenContours:
		return c.contours(l, v)
	case ClosedComponents, OpenComponents:
		sub := ClosedContours
		if v == OpenComponents {
			sub = OpenContours
		}
		res := outline.NewPath()
		for i, comp := range l.Components {
			if comp == nil {
				continue
			}
			p, err := c.Component(comp, sub)
			if err != nil {
				return nil, &outline.LayerError{Layer: l.Name, Kind: "component", Index: i, Err: err}
			}
			res.Append(p)
		}
		return res, nil
	}
	return nil, fmt.Errorf("pathcache: invalid view %d", int(v))
}

// Component returns the contours of the layer referenced by comp, placed by
// comp.Transform.  The view v must be ClosedContours or OpenContours.
// The result is a new path owned by the caller.
func (c *Cache) Component(comp *outline.Component, v View) (*outline.Path, error) {
	if v != ClosedContours && v != OpenContours {
		return nil, fmt.Errorf("pathcache: invalid component view %s", v)
	}
	if comp.Layer == nil {
		return outline.NewPath(), nil
	}
	src, err := c.contours(comp.Layer, v)
	if err != nil {
		return nil, err
	}
	return outline.Composite(src, comp.Transform), nil
}

func (c *Cache) contours(l *outline.Layer, v View) (*outline.Path, error) {
	compile := l.ClosedPath
	if v == OpenContours {
		compile = l.OpenPath
	}
	if l.Name == "" {
		return compile()
	}

	e := c.c.GetOrCreate(key{name: l.Name, view: v}, func() entry {
		outline.Logger().Debug("compiling layer", "layer", l.Name, "view", v.String())
		p, err := compile()
		return entry{path: p, err: err}
	})
	return e.path, e.err
}

// Invalidate drops all cached paths of the named layer.
func (c *Cache) Invalidate(name string) {
	n := 0
	for _, v := range []View{ClosedContours, OpenContours} {
		if c.c.Delete(key{name: name, view: v}) {
			n++
		}
	}
	outline.Logger().Debug("invalidated layer", "layer", name, "entries", n)
}

// Clear drops all cached paths.
func (c *Cache) Clear() {
	c.c.Clear()
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	return c.c.Len()
}

// Stats returns hit and miss counters of the underlying cache.
func (c *Cache) Stats() cache.Stats {
	return c.c.Stats()
}
