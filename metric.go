// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"math"
	"strings"

	"github.com/golang/geo/r2"
)

// Metric measures the distance between a cell and a site.
// Implementations must be deterministic, symmetric and non-negative.
type Metric interface {
	Distance(a, b r2.Point) float64
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(a, b r2.Point) float64

func (f MetricFunc) Distance(a, b r2.Point) float64 {
	return f(a, b)
}

type builtinMetric int

const (
	// Euclidean is sqrt(dx² + dy²).
	Euclidean builtinMetric = iota
	// Manhattan is |dx| + |dy|.
	Manhattan
	// Chebyshev is max(|dx|, |dy|).
	Chebyshev
)

var metricNames = map[builtinMetric]string{
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Chebyshev: "chebyshev",
}

func (m builtinMetric) Distance(a, b r2.Point) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	switch m {
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return math.Max(dx, dy)
	default:
		return math.Hypot(dx, dy)
	}
}

func (m builtinMetric) String() string {
	return metricNames[m]
}

// MetricByName returns the built-in metric with the given case-insensitive name.
func MetricByName(name string) (Metric, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range metricNames {
		if s == n {
			return m, nil
		}
	}
	return nil, configErrorf("metric", "unknown metric %q (want euclidean, manhattan or chebyshev)", name)
}
