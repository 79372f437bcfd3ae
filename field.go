// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"image"
	"iter"
	"math"

	"github.com/2dChan/gridvoronoi/grid"
	"github.com/golang/geo/r2"
)

// Border is the field value of cells that belong to no site.
const Border = -1

// Field holds, for every grid cell, the ID of its nearest site or Border.
// A Field is never modified after it is returned, so Regions may share it.
type Field struct {
	g *grid.Grid[int]
}

// Assign computes the nearest site of every cell of a width x height grid.
// Cell (x, y) is measured at the point (x, y). When several sites are
// equally near, the cell goes to the one with the smallest ID.
func Assign(width, height int, sites *SiteSet, m Metric) (*Field, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if sites == nil || sites.Len() == 0 {
		return nil, configErrorf("sites", "at least one site is required")
	}
	if m == nil {
		return nil, configErrorf("metric", "metric is nil")
	}

	f := &Field{g: grid.New(width, height, Border)}
	for y := range height {
		for x := range width {
			f.g.Set(x, y, nearest(cellPoint(image.Pt(x, y)), sites.sites, m))
		}
	}
	return f, nil
}

// nearest scans sites in ID order and keeps the first minimum, which
// resolves exact ties to the lowest ID.
func nearest(p r2.Point, sites []Site, m Metric) int {
	id, best := Border, math.Inf(1)
	for _, s := range sites {
		if d := m.Distance(p, s.Position); d < best {
			id, best = s.ID, d
		}
	}
	return id
}

// ownerDistances returns the distance from p to the site owner and to the
// nearest site other than owner. The latter is +Inf for single-site sets.
func ownerDistances(p r2.Point, sites []Site, owner int, m Metric) (d, runnerUp float64) {
	runnerUp = math.Inf(1)
	for _, s := range sites {
		dist := m.Distance(p, s.Position)
		if s.ID == owner {
			d = dist
			continue
		}
		runnerUp = math.Min(runnerUp, dist)
	}
	return d, runnerUp
}

func cellPoint(p image.Point) r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (f *Field) Width() int {
	return f.g.Width()
}

func (f *Field) Height() int {
	return f.g.Height()
}

// In reports whether (x, y) lies inside the field.
func (f *Field) In(x, y int) bool {
	return f.g.In(x, y)
}

// At returns the site ID or Border stored at (x, y).
// It panics if (x, y) is outside the field.
func (f *Field) At(x, y int) int {
	return f.g.At(x, y)
}

// All yields every position with its value, row by row.
func (f *Field) All() iter.Seq2[image.Point, int] {
	return f.g.All()
}

// Count returns the number of cells holding ref.
func (f *Field) Count(ref int) int {
	n := 0
	for _, v := range f.g.All() {
		if v == ref {
			n++
		}
	}
	return n
}

// Neighborhood returns the bounds-aware 8-neighborhood around pos.
func (f *Field) Neighborhood(pos image.Point) grid.Neighborhood[int] {
	return grid.NewNeighborhood(f.g, pos)
}
