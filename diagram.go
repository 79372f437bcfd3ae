// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package gridvoronoi partitions rectangular grids into discrete Voronoi
// regions, with optional curved borders and Lloyd relaxation.
package gridvoronoi

import (
	"fmt"
)

// Diagram is a discrete Voronoi partition of a Width x Height grid.
// Every pass produces a new Field, so Regions obtained before a call to
// Relax stay valid and keep describing the earlier partition.
type Diagram struct {
	Width  int
	Height int

	// Initial is the site set the diagram was created from.
	Initial *SiteSet
	// Sites is the current site set, moved by Relax.
	Sites *SiteSet

	Field   *Field
	Regions []Region
	// Border is the region of border cells, nil unless borders are enabled.
	Border *Region

	Warnings []DegenerateStateWarning

	opts DiagramOptions
}

// NewDiagram assigns every cell of a width x height grid to its nearest site
// and extracts one Region per site.
func NewDiagram(width, height int, sites *SiteSet, setters ...DiagramOption) (*Diagram, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if sites == nil || sites.Len() == 0 {
		return nil, configErrorf("sites", "at least one site is required")
	}

	d := &Diagram{
		Width:   width,
		Height:  height,
		Initial: sites.Clone(),
		Sites:   sites.Clone(),
		opts:    opts,
	}
	if err := d.compute(); err != nil {
		return nil, err
	}
	return d, nil
}

// Relax runs steps Lloyd relaxation steps, recomputing the assignment and
// borders from scratch after each one. Steps that starve a site are recorded
// in Warnings and do not stop relaxation.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return configErrorf("relaxation steps", "must be non-negative, got %d", steps)
	}
	for i := range steps {
		next, warn := Relax(d.Field, d.Sites)
		if warn != nil {
			warn.Step = i + 1
			d.Warnings = append(d.Warnings, *warn)
			d.opts.Logger.Warn("relaxation starved sites", "step", warn.Step, "starved", warn.Starved)
		}
		d.Sites = next
		if err := d.compute(); err != nil {
			return fmt.Errorf("Relax: step %d: %w", i+1, err)
		}
		d.opts.Logger.Debug("relax", "step", i+1, "of", steps)
	}
	return nil
}

// NumRegions returns the number of site regions.
func (d *Diagram) NumRegions() int {
	return len(d.Regions)
}

// Region returns the region of site i.
// It returns an error if i is out of range.
func (d *Diagram) Region(i int) (Region, error) {
	if i < 0 || i >= len(d.Regions) {
		return Region{}, fmt.Errorf("Region: index %d out of range [0 %d)", i, len(d.Regions))
	}
	return d.Regions[i], nil
}

// Options returns the options the diagram was built with.
func (d *Diagram) Options() DiagramOptions {
	return d.opts
}

func (d *Diagram) compute() error {
	f, err := Assign(d.Width, d.Height, d.Sites, d.opts.Metric)
	if err != nil {
		return err
	}
	d.opts.Logger.Debug("assign", "width", d.Width, "height", d.Height, "sites", d.Sites.Len())

	d.Border = nil
	if d.opts.Borders {
		f, err = ApplyBorders(f, d.Sites, d.opts.Metric, d.opts.BorderWidth, d.opts.Curve)
		if err != nil {
			return err
		}
		border := f.Region(Border)
		d.Border = &border
		d.opts.Logger.Debug("borders", "width", d.opts.BorderWidth, "curve", d.opts.Curve,
			"cells", f.Count(Border))
	}

	d.Field = f
	d.Regions = Extract(f, d.Sites)
	return nil
}
