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
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/outline"
)

// options holds the values of the persistent flags.
type options struct {
	configFile string
	debug      bool

	width, height int
	margin        int
	lineWidth     float64
	fillRule      string
	categories    []string
	outDir        string
}

func newRootCmd() *cobra.Command {
	opt := &options{}

	cmd := &cobra.Command{
		Use:          "outline",
		Short:        "Compile glyph outlines and render them",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opt.debug {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			outline.SetLogger(slog.New(h))
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opt.configFile, "config", "c", "", "YAML configuration file")
	f.BoolVar(&opt.debug, "debug", false, "enable debug logging to stderr")
	f.IntVar(&opt.width, "width", 0, "output width (0 keeps the test case size)")
	f.IntVar(&opt.height, "height", 0, "output height (0 keeps the test case size)")
	f.IntVar(&opt.margin, "margin", 0, "margin around fitted glyphs")
	f.Float64Var(&opt.lineWidth, "line-width", 2, "pen width for open contours")
	f.StringVar(&opt.fillRule, "fill-rule", "", `fill rule, "nonzero" or "evenodd"`)
	f.StringSliceVar(&opt.categories, "category", nil, "test case categories to render")
	f.StringVarP(&opt.outDir, "out", "o", "", "output directory")

	cmd.AddCommand(
		outputCmd(opt, "png", "Render outlines to PNG images", writePNG),
		outputCmd(opt, "pdf", "Write outlines to PDF files", writePDF),
		outputCmd(opt, "json", "Dump compiled path instructions as JSON", writeJSON),
	)
	return cmd
}

// config loads the configuration file, if any, and applies the flags
// given on the command line.
func (opt *options) config(cmd *cobra.Command) (*Config, error) {
	cfg := DefaultConfig()
	if opt.configFile != "" {
		var err error
		cfg, err = LoadConfig(opt.configFile)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = opt.width
	}
	if f.Changed("height") {
		cfg.Height = opt.height
	}
	if f.Changed("margin") {
		cfg.Margin = opt.margin
	}
	if f.Changed("line-width") {
		cfg.LineWidth = opt.lineWidth
	}
	if f.Changed("fill-rule") {
		cfg.FillRule = opt.fillRule
	}
	if f.Changed("category") {
		cfg.Categories = opt.categories
	}
	if f.Changed("out") {
		cfg.OutDir = opt.outDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func outputCmd(opt *options, use, short string, write func(*Config, *job) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [category_name...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opt.config(cmd)
			if err != nil {
				return err
			}
			jobs, err := selectJobs(cfg, args)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
				return err
			}

			for _, j := range jobs {
				if err := write(cfg, j); err != nil {
					return fmt.Errorf("%s: %w", j.name, err)
				}
				outline.Logger().Debug("wrote glyph", "glyph", j.name, "format", use)
			}
			return nil
		},
	}
}
