// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"image"
	"iter"

	"github.com/2dChan/gridvoronoi/grid"
	"github.com/golang/geo/r2"
)

// Region is the set of cells of a Field holding one reference value. It is a
// view structure: it stores only the tight bounding rectangle and a pointer
// to the shared Field, and re-checks the Field on every access.
type Region struct {
	bounds grid.Rect
	ref    int
	f      *Field
}

// Extract returns one Region per site, in ID order. The bounding rectangles
// of all sites are computed in a single scan of f. Sites that own no cells
// get an empty Region.
func Extract(f *Field, sites *SiteSet) []Region {
	n := sites.Len()
	regions := make([]Region, n)
	for i := range regions {
		regions[i] = Region{bounds: grid.EmptyRect(), ref: i, f: f}
	}
	for p, id := range f.All() {
		if id >= 0 && id < n {
			regions[id].bounds = regions[id].bounds.Extend(p)
		}
	}
	return regions
}

// Region returns the Region of cells holding ref, which may be Border.
func (f *Field) Region(ref int) Region {
	bounds := grid.EmptyRect()
	for p, id := range f.All() {
		if id == ref {
			bounds = bounds.Extend(p)
		}
	}
	return Region{bounds: bounds, ref: ref, f: f}
}

// Reference returns the field value the region selects.
func (r Region) Reference() int {
	return r.ref
}

// Bounds returns the minimal rectangle containing every cell of the region.
func (r Region) Bounds() grid.Rect {
	return r.bounds
}

// Field returns the field the region was extracted from.
func (r Region) Field() *Field {
	return r.f
}

func (r Region) Empty() bool {
	return r.f == nil || r.bounds.Empty()
}

// Contains reports whether p belongs to the region.
func (r Region) Contains(p image.Point) bool {
	return !r.Empty() && r.bounds.Contains(p) && r.f.At(p.X, p.Y) == r.ref
}

// All yields the positions of the region row by row. Each call rescans the
// bounding rectangle against the field.
func (r Region) All() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if r.Empty() {
			return
		}
		for p := range r.bounds.Points() {
			if r.f.At(p.X, p.Y) != r.ref {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	n := 0
	for range r.All() {
		n++
	}
	return n
}

// Centroid returns the mean position of the region's cells.
// The boolean is false for an empty region.
func (r Region) Centroid() (r2.Point, bool) {
	var sum r2.Point
	n := 0
	for p := range r.All() {
		sum = sum.Add(cellPoint(p))
		n++
	}
	if n == 0 {
		return r2.Point{}, false
	}
	return r2.Point{X: sum.X / float64(n), Y: sum.Y / float64(n)}, true
}
