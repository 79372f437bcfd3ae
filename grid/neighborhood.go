// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import (
	"cmp"
	"image"
	"iter"
)

// offsets lists the eight neighbors in row-major order.
var offsets = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighborhood is a view of the eight cells around a position of a Grid.
// The position itself may lie outside the grid; neighbors outside the grid
// are skipped.
type Neighborhood[T any] struct {
	g   *Grid[T]
	pos image.Point
}

func NewNeighborhood[T any](g *Grid[T], pos image.Point) Neighborhood[T] {
	return Neighborhood[T]{g: g, pos: pos}
}

func (n Neighborhood[T]) Position() image.Point {
	return n.pos
}

// Get returns the neighbor at offset, which must be within [-1, 1] on both
// axes. The boolean is false when the neighbor is outside the grid.
func (n Neighborhood[T]) Get(offset image.Point) (T, bool) {
	var zero T
	if offset.X < -1 || offset.X > 1 || offset.Y < -1 || offset.Y > 1 {
		return zero, false
	}
	p := n.pos.Add(offset)
	if !n.g.In(p.X, p.Y) {
		return zero, false
	}
	return n.g.At(p.X, p.Y), true
}

// All yields the in-bounds neighbors with their values.
func (n Neighborhood[T]) All() iter.Seq2[image.Point, T] {
	return func(yield func(image.Point, T) bool) {
		for _, o := range offsets {
			p := n.pos.Add(o)
			if !n.g.In(p.X, p.Y) {
				continue
			}
			if !yield(p, n.g.At(p.X, p.Y)) {
				return
			}
		}
	}
}

// Count returns the number of in-bounds neighbors satisfying match.
func (n Neighborhood[T]) Count(match func(T) bool) int {
	c := 0
	for _, v := range n.All() {
		if match(v) {
			c++
		}
	}
	return c
}

// Range returns the minimum and maximum neighbor values.
// The boolean is false when no neighbor lies inside the grid.
func Range[T cmp.Ordered](n Neighborhood[T]) (lo, hi T, ok bool) {
	for _, v := range n.All() {
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}
