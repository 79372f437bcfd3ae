// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"fmt"
	"math"
)

// ApplyBorders returns a copy of f in which cells close to a boundary
// between two sites are replaced by Border.
//
// A cell owned by site s, at distance d from s and distance d2 from the
// nearest other site, becomes a border cell when d2-d < width. Without curve
// the width is baseWidth. With curve it is baseWidth*BorderCurve(d, scale),
// where scale is the expected cell radius sqrt(area/len(sites))/2, so the
// band is thin where two sites face each other and widens away from them.
func ApplyBorders(f *Field, sites *SiteSet, m Metric, baseWidth float64, curve bool) (*Field, error) {
	if f == nil || sites == nil {
		return nil, fmt.Errorf("ApplyBorders: field and sites must not be nil")
	}
	if m == nil {
		return nil, configErrorf("metric", "metric is nil")
	}
	if err := validateBorderWidth(baseWidth); err != nil {
		return nil, err
	}

	n := sites.Len()
	scale := math.Sqrt(float64(f.Width()*f.Height())/float64(max(n, 1))) / 2
	out := &Field{g: f.g.Clone()}
	for p, id := range f.All() {
		if id == Border {
			continue
		}
		if id < 0 || id >= n {
			return nil, fmt.Errorf("ApplyBorders: cell %v references site %d out of range [0 %d)", p, id, n)
		}
		d, d2 := ownerDistances(cellPoint(p), sites.sites, id, m)
		width := baseWidth
		if curve {
			width *= BorderCurve(d, scale)
		}
		if d2-d < width {
			out.g.Set(p.X, p.Y, Border)
		}
	}
	return out, nil
}

// BorderCurve scales the border width by the distance d of a cell from its
// owning site. It is 0 at the site, 1 at d == scale and approaches 2 far
// away; it increases monotonically with d.
func BorderCurve(d, scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return 2 * d / (d + scale)
}

func validateBorderWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return configErrorf("border width", "must be a finite non-negative number, got %v", w)
	}
	return nil
}
