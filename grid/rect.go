// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import (
	"image"
	"iter"
)

// Rect is an axis-aligned integer rectangle with inclusive corners.
// A non-empty Rect always has Min.X <= Max.X and Min.Y <= Max.Y.
type Rect struct {
	Min image.Point
	Max image.Point
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{Min: image.Pt(0, 0), Max: image.Pt(-1, -1)}
}

// RectFromCorners returns the rectangle spanning a and b, in any order.
func RectFromCorners(a, b image.Point) Rect {
	return Rect{
		Min: image.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		Max: image.Pt(max(a.X, b.X), max(a.Y, b.Y)),
	}
}

// RectAround returns the square of the given radius centered on c.
// The top-left corner is clamped to non-negative coordinates.
func RectAround(c image.Point, radius int) Rect {
	if radius < 0 {
		return EmptyRect()
	}
	r := Rect{
		Min: image.Pt(max(c.X-radius, 0), max(c.Y-radius, 0)),
		Max: image.Pt(c.X+radius, c.Y+radius),
	}
	if r.Max.X < 0 || r.Max.Y < 0 {
		return EmptyRect()
	}
	return r
}

func (r Rect) Empty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

func (r Rect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.Max.X - r.Min.X + 1
}

func (r Rect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.Max.Y - r.Min.Y + 1
}

// Area returns the number of positions inside r.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Extend returns the smallest rectangle containing both r and p.
func (r Rect) Extend(p image.Point) Rect {
	if r.Empty() {
		return Rect{Min: p, Max: p}
	}
	return Rect{
		Min: image.Pt(min(r.Min.X, p.X), min(r.Min.Y, p.Y)),
		Max: image.Pt(max(r.Max.X, p.X), max(r.Max.Y, p.Y)),
	}
}

// Points yields every position of r row by row.
func (r Rect) Points() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if r.Empty() {
			return
		}
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				if !yield(image.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Rectangle converts r to the half-open image.Rectangle convention.
func (r Rect) Rectangle() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
}
