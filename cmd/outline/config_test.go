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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "outline.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func TestLoadConfig(t *testing.T) {
	fname := writeFile(t, `
width: 128
height: 96
margin: 8
line_width: 1.5
fill_rule: evenodd
categories: [line, cubic]
out_dir: out
`)
	cfg, err := LoadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Width:      128,
		Height:     96,
		Margin:     8,
		FlipY:      true,
		LineWidth:  1.5,
		FillRule:   "evenodd",
		Categories: []string{"line", "cubic"},
		OutDir:     "out",
	}, cfg)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "flip_y: false\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.FlipY = false
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "width: [1, 2]\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "fill_rule: winding\n"))
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"size", func(c *Config) { c.Width, c.Height = 100, 50 }, true},
		{"negative size", func(c *Config) { c.Width, c.Height = -1, 10 }, false},
		{"width only", func(c *Config) { c.Width = 100 }, false},
		{"negative margin", func(c *Config) { c.Margin = -2 }, false},
		{"margin fits", func(c *Config) { c.Width, c.Height, c.Margin = 100, 50, 24 }, true},
		{"margin too large", func(c *Config) { c.Width, c.Height, c.Margin = 100, 50, 25 }, false},
		{"thin pen", func(c *Config) { c.LineWidth = 0.25 }, true},
		{"zero pen", func(c *Config) { c.LineWidth = 0 }, false},
		{"negative pen", func(c *Config) { c.LineWidth = -1 }, false},
		{"nonzero", func(c *Config) { c.FillRule = "nonzero" }, true},
		{"bad rule", func(c *Config) { c.FillRule = "NonZero" }, false},
		{"category", func(c *Config) { c.Categories = []string{"component"} }, true},
		{"bad category", func(c *Config) { c.Categories = []string{"fill"} }, false},
		{"no out dir", func(c *Config) { c.OutDir = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errInvalidConfig)
			}
		})
	}
}
