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
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/outline/testcases"
)

// Config controls how test glyphs are rendered.
type Config struct {
	// Width and Height give the output size in pixels (PNG) or points
	// (PDF).  If both are zero, the size and placement of each test case
	// is used unchanged.  Otherwise the glyph is scaled to fit.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Margin is the minimal distance between glyph and image border,
	// used when fitting glyphs into Width x Height.
	Margin int `yaml:"margin"`

	// FlipY indicates that glyph coordinates have the y-axis pointing up.
	FlipY bool `yaml:"flip_y"`

	// LineWidth is the pen width for open contours, in output pixels
	// (PNG) or points (PDF).
	LineWidth float64 `yaml:"line_width"`

	// FillRule is "nonzero" or "evenodd".  If empty, the rule of each
	// test case is used.
	FillRule string `yaml:"fill_rule"`

	// Categories restricts output to the given test case categories.
	// An empty list selects all categories.
	Categories []string `yaml:"categories"`

	// OutDir is the directory for generated files.
	OutDir string `yaml:"out_dir"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		FlipY:     true,
		LineWidth: 2,
		OutDir:    ".",
	}
}

// LoadConfig reads a YAML configuration file.  Fields missing from the
// file keep their default values.
func LoadConfig(fname string) (*Config, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	return cfg, nil
}

var errInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", errInvalidConfig, c.Width, c.Height)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("%w: width and height must both be set", errInvalidConfig)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: negative margin %d", errInvalidConfig, c.Margin)
	}
	if c.Width > 0 && 2*c.Margin >= min(c.Width, c.Height) {
		return fmt.Errorf("%w: margin %d too large for %dx%d",
			errInvalidConfig, c.Margin, c.Width, c.Height)
	}
	if !(c.LineWidth > 0) {
		return fmt.Errorf("%w: line width %g must be positive", errInvalidConfig, c.LineWidth)
	}
	switch c.FillRule {
	case "", "nonzero", "evenodd":
	default:
		return fmt.Errorf("%w: unknown fill rule %q", errInvalidConfig, c.FillRule)
	}
	for _, cat := range c.Categories {
		if _, ok := testcases.All[cat]; !ok {
			return fmt.Errorf("%w: unknown category %q (have %v)",
				errInvalidConfig, cat, slices.Sorted(maps.Keys(testcases.All)))
		}
	}
	if c.OutDir == "" {
		return fmt.Errorf("%w: empty output directory", errInvalidConfig)
	}
	return nil
}
