// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws grid Voronoi fields as SVG or PNG images.
package render

import (
	"errors"
	"image/color"
	"io"
	"math"

	"github.com/2dChan/gridvoronoi"
	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	goldenAngle = 137.50776405003785

	siteStyle = "fill:rgb(0,0,0)"
)

// BorderColor fills border cells.
var BorderColor = colorful.Color{R: 0.15, G: 0.15, B: 0.15}

// Options controls image size and decorations.
type Options struct {
	// Scale is the side length, in pixels, of one grid cell.
	Scale int
	// ShowSites draws a dot at every site position.
	ShowSites bool
}

// DefaultOptions draws 4x4 pixel cells with sites.
func DefaultOptions() Options {
	return Options{Scale: 4, ShowSites: true}
}

// Palette returns n distinct colors, spaced by the golden angle in hue.
func Palette(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		h := math.Mod(float64(i)*goldenAngle, 360)
		out[i] = colorful.Hsv(h, 0.45+0.2*float64(i%3)/2, 0.9)
	}
	return out
}

// SVG writes f as an SVG document with one rect per horizontal run of equal
// cells.
func SVG(w io.Writer, f *gridvoronoi.Field, sites *gridvoronoi.SiteSet, opts Options) error {
	if err := validate(f, sites, opts); err != nil {
		return err
	}
	s := opts.Scale
	palette := Palette(sites.Len())

	canvas := svg.New(w)
	canvas.Start(f.Width()*s, f.Height()*s)
	for y := range f.Height() {
		start := 0
		for x := 1; x <= f.Width(); x++ {
			if x < f.Width() && f.At(x, y) == f.At(start, y) {
				continue
			}
			canvas.Rect(start*s, y*s, (x-start)*s, s, "fill:"+cellColor(palette, f.At(start, y)).Hex())
			start = x
		}
	}
	if opts.ShowSites {
		for _, p := range sites.Positions() {
			canvas.Circle(int(p.X*float64(s))+s/2, int(p.Y*float64(s))+s/2, max(s/2, 1), siteStyle)
		}
	}
	canvas.End()
	return nil
}

// PNG writes f as a PNG image.
func PNG(w io.Writer, f *gridvoronoi.Field, sites *gridvoronoi.SiteSet, opts Options) error {
	if err := validate(f, sites, opts); err != nil {
		return err
	}
	s := float64(opts.Scale)
	palette := Palette(sites.Len())

	dc := gg.NewContext(f.Width()*opts.Scale, f.Height()*opts.Scale)
	for p, id := range f.All() {
		dc.SetColor(cellColor(palette, id))
		dc.DrawRectangle(float64(p.X)*s, float64(p.Y)*s, s, s)
		dc.Fill()
	}
	if opts.ShowSites {
		dc.SetColor(color.Black)
		for _, p := range sites.Positions() {
			dc.DrawCircle(p.X*s+s/2, p.Y*s+s/2, math.Max(s/2, 1))
			dc.Fill()
		}
	}
	return dc.EncodePNG(w)
}

func cellColor(palette []colorful.Color, id int) colorful.Color {
	if id < 0 || id >= len(palette) {
		return BorderColor
	}
	return palette[id]
}

func validate(f *gridvoronoi.Field, sites *gridvoronoi.SiteSet, opts Options) error {
	if f == nil || sites == nil {
		return errors.New("render: field and sites must not be nil")
	}
	if opts.Scale <= 0 {
		return errors.New("render: scale must be positive")
	}
	return nil
}
