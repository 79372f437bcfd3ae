// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random site placement on integer grids.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPositions returns cnt distinct integer positions drawn
// uniformly from [0, width) x [0, height).
// The seed parameter ensures reproducibility.
// It returns nil when cnt is not positive or exceeds width*height.
func GenerateRandomPositions(cnt, width, height int, seed int64) []r2.Point {
	total := width * height
	if cnt <= 0 || width <= 0 || height <= 0 || cnt > total {
		return nil
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	positions := make([]r2.Point, 0, cnt)

	// Dense requests sample without replacement; sparse ones reject repeats.
	if 2*cnt > total {
		for _, idx := range random.Perm(total)[:cnt] {
			positions = append(positions, r2.Point{X: float64(idx % width), Y: float64(idx / width)})
		}
		return positions
	}

	seen := make(map[int]struct{}, cnt)
	for len(positions) < cnt {
		idx := random.Intn(total)
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		positions = append(positions, r2.Point{X: float64(idx % width), Y: float64(idx / width)})
	}
	return positions
}
