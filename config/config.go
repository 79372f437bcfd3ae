// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads grid Voronoi generation parameters from TOML files.
//
// A complete file looks like:
//
//	width = 600
//	height = 400
//	sites = 100
//	seed = 7
//	metric = "euclidean"
//	relax_steps = 2
//
//	[border]
//	width = 1.5
//	curve = true
//
// Explicit site positions replace random placement:
//
//	positions = [[2.0, 2.0], [7.0, 7.0]]
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2dChan/gridvoronoi"
	"github.com/BurntSushi/toml"
	"github.com/golang/geo/r2"
)

// Config describes one generation run.
type Config struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Sites      int         `toml:"sites"`
	Seed       int64       `toml:"seed"`
	Metric     string      `toml:"metric"`
	Positions  [][]float64 `toml:"positions"`
	RelaxSteps int         `toml:"relax_steps"`
	Border     *Border     `toml:"border"`
}

// Border enables border shaping.
type Border struct {
	Width float64 `toml:"width"`
	Curve bool    `toml:"curve"`
}

// Default returns the configuration used for keys a file leaves unset.
func Default() Config {
	return Config{
		Width:  100,
		Height: 100,
		Sites:  16,
		Metric: "euclidean",
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and validates a TOML document. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field before any computation starts.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("dimensions", "width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Positions) == 0 && c.Sites <= 0 {
		return invalid("site count", "must be positive, got %d", c.Sites)
	}
	for i, p := range c.Positions {
		if len(p) != 2 {
			return invalid("site positions", "position %d has %d coordinates, want 2", i, len(p))
		}
	}
	if c.RelaxSteps < 0 {
		return invalid("relaxation steps", "must be non-negative, got %d", c.RelaxSteps)
	}
	if _, err := gridvoronoi.MetricByName(c.Metric); err != nil {
		return err
	}
	if c.Border != nil && c.Border.Width < 0 {
		return invalid("border width", "must be non-negative, got %v", c.Border.Width)
	}
	return nil
}

// SiteSet returns the explicit positions when present, or Sites random
// positions drawn with Seed.
func (c Config) SiteSet() (*gridvoronoi.SiteSet, error) {
	if len(c.Positions) == 0 {
		return gridvoronoi.GenerateSites(c.Sites, c.Width, c.Height, c.Seed)
	}
	positions := make([]r2.Point, len(c.Positions))
	for i, p := range c.Positions {
		if len(p) != 2 {
			return nil, invalid("site positions", "position %d has %d coordinates, want 2", i, len(p))
		}
		positions[i] = r2.Point{X: p[0], Y: p[1]}
	}
	return gridvoronoi.SitesFromPositions(positions)
}

// Options translates the metric and border settings into diagram options.
func (c Config) Options() ([]gridvoronoi.DiagramOption, error) {
	m, err := gridvoronoi.MetricByName(c.Metric)
	if err != nil {
		return nil, err
	}
	opts := []gridvoronoi.DiagramOption{gridvoronoi.WithMetric(m)}
	if c.Border != nil {
		opts = append(opts, gridvoronoi.WithBorder(c.Border.Width, c.Border.Curve))
	}
	return opts, nil
}

// Build runs the whole pipeline: site placement, assignment, borders and
// RelaxSteps relaxation steps. extra options are applied last.
func (c Config) Build(extra ...gridvoronoi.DiagramOption) (*gridvoronoi.Diagram, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sites, err := c.SiteSet()
	if err != nil {
		return nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	d, err := gridvoronoi.NewDiagram(c.Width, c.Height, sites, append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	if err := d.Relax(c.RelaxSteps); err != nil {
		return nil, err
	}
	return d, nil
}

func invalid(field, format string, args ...any) error {
	return &gridvoronoi.ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
