// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"io"

	"github.com/charmbracelet/log"
)

// DiagramOptions configures how a Diagram assigns and shapes its cells.
type DiagramOptions struct {
	Metric      Metric
	Borders     bool
	BorderWidth float64
	Curve       bool
	Logger      *log.Logger
}

type DiagramOption func(*DiagramOptions) error

func defaultOptions() DiagramOptions {
	return DiagramOptions{
		Metric: Euclidean,
		Logger: log.New(io.Discard),
	}
}

// WithMetric selects the distance metric. The default is Euclidean.
func WithMetric(m Metric) DiagramOption {
	return func(o *DiagramOptions) error {
		if m == nil {
			return configErrorf("metric", "metric is nil")
		}
		o.Metric = m
		return nil
	}
}

// WithBorder enables border shaping after every assignment pass.
// See ApplyBorders for the meaning of width and curve.
func WithBorder(width float64, curve bool) DiagramOption {
	return func(o *DiagramOptions) error {
		if err := validateBorderWidth(width); err != nil {
			return err
		}
		o.Borders = true
		o.BorderWidth = width
		o.Curve = curve
		return nil
	}
}

// WithLogger sets the logger pass progress and warnings are written to.
// By default nothing is logged.
func WithLogger(l *log.Logger) DiagramOption {
	return func(o *DiagramOptions) error {
		if l == nil {
			return configErrorf("logger", "logger is nil")
		}
		o.Logger = l
		return nil
	}
}
