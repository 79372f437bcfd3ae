// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package grid provides the dense 2D storage, inclusive rectangles and
// bounds-aware neighborhoods that grid Voronoi partitions are computed on.
package grid

import (
	"fmt"
	"image"
	"iter"
)

// Grid is a dense width x height array stored in row-major order.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New returns a grid of the given dimensions with every cell set to fill.
// It panics if width or height is negative.
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("New: negative dimensions %dx%d", width, height))
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	g.Fill(fill)
	return g
}

func (g *Grid[T]) Width() int {
	return g.width
}

func (g *Grid[T]) Height() int {
	return g.height
}

// Bounds returns the rectangle covering every cell of the grid.
func (g *Grid[T]) Bounds() Rect {
	if g.width == 0 || g.height == 0 {
		return EmptyRect()
	}
	return RectFromCorners(image.Pt(0, 0), image.Pt(g.width-1, g.height-1))
}

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the value stored at (x, y).
// It panics if (x, y) is outside the grid.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.index(x, y)]
}

// Set stores v at (x, y).
// It panics if (x, y) is outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  make([]T, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// All yields every position with its value, row by row.
func (g *Grid[T]) All() iter.Seq2[image.Point, T] {
	return func(yield func(image.Point, T) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(image.Pt(x, y), g.cells[y*g.width+x]) {
					return
				}
			}
		}
	}
}

func (g *Grid[T]) index(x, y int) int {
	if !g.In(x, y) {
		panic(fmt.Sprintf("grid: position (%d, %d) out of range [0 %d)x[0 %d)", x, y, g.width, g.height))
	}
	return y*g.width + x
}
