// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Relax performs one Lloyd step: every site moves to the centroid of the
// cells f assigns to it. Border cells count toward no site. A site without
// cells keeps its position and is reported in the returned warning, which is
// nil when every site owns at least one cell.
//
// The input set is left unchanged. The returned set must be assigned again
// before the next step.
// It panics if f references a site ID outside sites.
func Relax(f *Field, sites *SiteSet) (*SiteSet, *DegenerateStateWarning) {
	n := sites.Len()
	sums := make([]r2.Point, n)
	counts := make([]int, n)
	for p, id := range f.All() {
		if id == Border {
			continue
		}
		if id < 0 || id >= n {
			panic(fmt.Sprintf("Relax: cell %v references site %d out of range [0 %d)", p, id, n))
		}
		sums[id] = sums[id].Add(cellPoint(p))
		counts[id]++
	}

	out := sites.Clone()
	var starved []int
	for i := range out.sites {
		if counts[i] == 0 {
			starved = append(starved, i)
			continue
		}
		c := float64(counts[i])
		out.sites[i].Position = r2.Point{X: sums[i].X / c, Y: sums[i].Y / c}
	}

	if len(starved) > 0 {
		return out, &DegenerateStateWarning{Starved: starved}
	}
	return out, nil
}
