// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/2dChan/gridvoronoi"
	"github.com/2dChan/gridvoronoi/config"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const iconWarning = "!"

// printSummary writes the grid settings followed by one line per region.
func printSummary(w io.Writer, cfg config.Config, d *gridvoronoi.Diagram) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Voronoi %dx%d", d.Width, d.Height)))
	row := func(label string, value any) {
		fmt.Fprintf(w, "  %s %s\n", styleDim.Render(fmt.Sprintf("%-13s", label)), styleNumber.Render(fmt.Sprint(value)))
	}
	row("sites", d.Sites.Len())
	row("metric", cfg.Metric)
	row("relax steps", cfg.RelaxSteps)
	if d.Border != nil {
		row("border cells", d.Border.Len())
	}

	for _, warn := range d.Warnings {
		fmt.Fprintf(w, "  %s %s\n", styleWarning.Render(iconWarning), styleWarning.Render(warn.Error()))
	}

	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  %-8s %-8s %s", "region", "cells", "bounds")))
	for _, r := range d.Regions {
		b := r.Bounds()
		bounds := "empty"
		if !r.Empty() {
			bounds = fmt.Sprintf("(%d,%d)-(%d,%d)", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
		}
		fmt.Fprintf(w, "  %-8d %-8d %s\n", r.Reference(), r.Len(), bounds)
	}
}
