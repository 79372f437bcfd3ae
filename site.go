// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"fmt"
	"math"

	"github.com/2dChan/gridvoronoi/utils"
	"github.com/golang/geo/r2"
)

// Site is a seed point driving one Voronoi region.
type Site struct {
	ID       int
	Position r2.Point
}

// SiteSet is an ordered collection of sites whose IDs are 0..n-1 in order.
type SiteSet struct {
	sites []Site
}

// GenerateSites places count sites on distinct integer positions drawn
// uniformly from [0, width) x [0, height). The same seed always yields the
// same SiteSet.
func GenerateSites(count, width, height int, seed int64) (*SiteSet, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, configErrorf("site count", "must be positive, got %d", count)
	}
	if count > width*height {
		return nil, configErrorf("site count", "%d exceeds the %d distinct positions of a %dx%d grid",
			count, width*height, width, height)
	}
	return newSiteSet(utils.GenerateRandomPositions(count, width, height, seed)), nil
}

// SitesFromPositions assigns IDs to positions in input order.
func SitesFromPositions(positions []r2.Point) (*SiteSet, error) {
	if len(positions) == 0 {
		return nil, configErrorf("site positions", "at least one position is required")
	}
	seen := make(map[r2.Point]int, len(positions))
	for i, p := range positions {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, configErrorf("site positions", "position %d %v is not finite", i, p)
		}
		if j, ok := seen[p]; ok {
			return nil, configErrorf("site positions", "positions %d and %d are both %v", j, i, p)
		}
		seen[p] = i
	}
	return newSiteSet(positions), nil
}

func newSiteSet(positions []r2.Point) *SiteSet {
	s := &SiteSet{sites: make([]Site, len(positions))}
	for i, p := range positions {
		s.sites[i] = Site{ID: i, Position: p}
	}
	return s
}

func (s *SiteSet) Len() int {
	return len(s.sites)
}

// Site returns the site with the given ID.
// It returns an error if the ID is out of range.
func (s *SiteSet) Site(id int) (Site, error) {
	if id < 0 || id >= len(s.sites) {
		return Site{}, fmt.Errorf("Site: id %d out of range [0 %d)", id, len(s.sites))
	}
	return s.sites[id], nil
}

// Sites returns a copy of the sites in ID order.
func (s *SiteSet) Sites() []Site {
	out := make([]Site, len(s.sites))
	copy(out, s.sites)
	return out
}

// Positions returns the site positions in ID order.
func (s *SiteSet) Positions() []r2.Point {
	out := make([]r2.Point, len(s.sites))
	for i, site := range s.sites {
		out[i] = site.Position
	}
	return out
}

func (s *SiteSet) Clone() *SiteSet {
	return &SiteSet{sites: s.Sites()}
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return configErrorf("dimensions", "width and height must be positive, got %dx%d", width, height)
	}
	return nil
}
