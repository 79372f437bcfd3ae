// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// DiagramOptions

func TestWithBorder(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		wantErr bool
	}{
		{"width positive", 1.5, false},
		{"width zero", 0, false},
		{"width negative", -1, true},
		{"width nan", math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			err := WithBorder(tt.width, true)(&opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithBorder(%v, true) error = %v, wantErr %v", tt.width, err, tt.wantErr)
			}
			if err == nil && (!opts.Borders || opts.BorderWidth != tt.width || !opts.Curve) {
				t.Errorf("WithBorder(%v, true) opts = %+v", tt.width, opts)
			}
		})
	}
}

func TestWithMetric(t *testing.T) {
	opts := defaultOptions()
	if err := WithMetric(Manhattan)(&opts); err != nil {
		t.Fatalf("WithMetric(Manhattan) error = %v, want nil", err)
	}
	if opts.Metric != Manhattan {
		t.Errorf("opts.Metric = %v, want Manhattan", opts.Metric)
	}
	if err := WithMetric(nil)(&opts); !errors.Is(err, ErrConfiguration) {
		t.Errorf("WithMetric(nil) error = %v, want ErrConfiguration", err)
	}
	if err := WithLogger(nil)(&opts); !errors.Is(err, ErrConfiguration) {
		t.Errorf("WithLogger(nil) error = %v, want ErrConfiguration", err)
	}
}

// Diagram

func TestNewDiagram_Errors(t *testing.T) {
	sites := mustSites(t, r2.Point{X: 1, Y: 1})
	tests := []struct {
		name          string
		width, height int
		sites         *SiteSet
		opts          []DiagramOption
	}{
		{"zero width", 0, 10, sites, nil},
		{"zero height", 10, 0, sites, nil},
		{"nil sites", 10, 10, nil, nil},
		{"nil metric", 10, 10, sites, []DiagramOption{WithMetric(nil)}},
		{"negative border", 10, 10, sites, []DiagramOption{WithBorder(-2, false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDiagram(tt.width, tt.height, tt.sites, tt.opts...)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewDiagram(...) error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestNewDiagram_Invariants(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		sites  int
		border bool
	}{
		{"minimal", 1, 1, false},
		{"small", 10, 4, false},
		{"medium", 64, 20, true},
		{"dense", 12, 144, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []DiagramOption
			if tt.border {
				opts = append(opts, WithBorder(1, true))
			}
			d := mustNewDiagram(t, tt.size, tt.sites, opts...)

			if got := d.NumRegions(); got != tt.sites {
				t.Errorf("d.NumRegions() = %v, want %v", got, tt.sites)
			}
			if (d.Border != nil) != tt.border {
				t.Errorf("d.Border != nil is %v, want %v", d.Border != nil, tt.border)
			}
			total := 0
			for i := range d.NumRegions() {
				r, err := d.Region(i)
				if err != nil {
					t.Fatalf("d.Region(%d) error = %v, want nil", i, err)
				}
				if r.Reference() != i {
					t.Errorf("d.Region(%d).Reference() = %v, want %v", i, r.Reference(), i)
				}
				total += r.Len()
			}
			if d.Border != nil {
				total += d.Border.Len()
			}
			if total != tt.size*tt.size {
				t.Errorf("cells covered by regions = %v, want %v", total, tt.size*tt.size)
			}
		})
	}
}

func TestDiagram_Region(t *testing.T) {
	d := mustNewDiagram(t, 10, 3)
	if _, err := d.Region(-1); err == nil {
		t.Errorf("d.Region(-1) error = nil, want non-nil")
	}
	if _, err := d.Region(3); err == nil {
		t.Errorf("d.Region(3) error = nil, want non-nil")
	}
}

func TestDiagram_Relax(t *testing.T) {
	sites := mustSites(t, r2.Point{X: 2, Y: 2}, r2.Point{X: 7, Y: 7})
	d, err := NewDiagram(10, 10, sites)
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	before := d.Regions[0]
	if err := d.Relax(1); err != nil {
		t.Fatalf("d.Relax(1) error = %v, want nil", err)
	}
	if got := d.Sites.Positions()[0]; got != (r2.Point{X: 3, Y: 3}) {
		t.Errorf("d.Sites site 0 = %v, want (3, 3)", got)
	}
	if diff := cmp.Diff(sites.Positions(), d.Initial.Positions()); diff != "" {
		t.Errorf("d.Initial changed by Relax (-want +got):\n%s", diff)
	}
	if before.Field() == d.Field {
		t.Errorf("d.Relax(1) reused the previous field, want a new one")
	}
	if got := before.Len(); got != 55 {
		t.Errorf("region extracted before Relax Len() = %v, want 55", got)
	}
	if err := d.Relax(-1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("d.Relax(-1) error = %v, want ErrConfiguration", err)
	}
}

func TestDiagram_RelaxWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sites := mustSites(t, r2.Point{X: 1, Y: 1}, r2.Point{X: 3, Y: 3})
	d, err := NewDiagram(5, 5, sites, WithBorder(1000, false), WithLogger(logger))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	if err := d.Relax(2); err != nil {
		t.Fatalf("d.Relax(2) error = %v, want nil", err)
	}
	want := []DegenerateStateWarning{
		{Step: 1, Starved: []int{0, 1}},
		{Step: 2, Starved: []int{0, 1}},
	}
	if diff := cmp.Diff(want, d.Warnings); diff != "" {
		t.Errorf("d.Warnings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sites.Positions(), d.Sites.Positions()); diff != "" {
		t.Errorf("starved sites moved (-want +got):\n%s", diff)
	}
	out := buf.String()
	for _, msg := range []string{"assign", "borders", "relaxation starved sites"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestDiagram_Determinism(t *testing.T) {
	build := func() *Diagram {
		d := mustNewDiagram(t, 40, 12, WithBorder(1.25, true), WithMetric(Manhattan))
		if err := d.Relax(3); err != nil {
			t.Fatalf("d.Relax(3) error = %v, want nil", err)
		}
		return d
	}
	a, b := build(), build()
	if diff := cmp.Diff(fieldValues(a.Field), fieldValues(b.Field)); diff != "" {
		t.Errorf("fields differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.Sites.Positions(), b.Sites.Positions()); diff != "" {
		t.Errorf("sites differ (-want +got):\n%s", diff)
	}
	for i := range a.Regions {
		if a.Regions[i].Bounds() != b.Regions[i].Bounds() {
			t.Errorf("regions[%d] bounds %v != %v", i, a.Regions[i].Bounds(), b.Regions[i].Bounds())
		}
	}
}

func TestDiagram_Adjacency(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		positions []r2.Point
		opts      []DiagramOption
		want      [][]int
	}{
		{
			"strip",
			9,
			[]r2.Point{{X: 1, Y: 0}, {X: 4, Y: 0}, {X: 7, Y: 0}},
			nil,
			[][]int{{1}, {0, 2}, {1}},
		},
		{
			"thin border",
			7,
			[]r2.Point{{X: 1, Y: 0}, {X: 5, Y: 0}},
			[]DiagramOption{WithBorder(0.5, false)},
			[][]int{{1}, {0}},
		},
		{
			"thick border",
			9,
			[]r2.Point{{X: 1, Y: 0}, {X: 4, Y: 0}, {X: 7, Y: 0}},
			[]DiagramOption{WithBorder(2, false)},
			[][]int{{}, {}, {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDiagram(tt.width, 1, mustSites(t, tt.positions...), tt.opts...)
			if err != nil {
				t.Fatalf("NewDiagram(...) error = %v, want nil", err)
			}
			if diff := cmp.Diff(tt.want, d.Adjacency()); diff != "" {
				t.Errorf("d.Adjacency() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Benchmarks

func BenchmarkNewDiagram(b *testing.B) {
	sizes := []int{64, 256}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("N%d", size), func(b *testing.B) {
			sites, err := GenerateSites(size/4, size, size, 0)
			if err != nil {
				b.Fatalf("GenerateSites(...) error = %v, want nil", err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := NewDiagram(size, size, sites, WithBorder(1, true)); err != nil {
					b.Fatalf("NewDiagram(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustNewDiagram(t *testing.T, size, n int, opts ...DiagramOption) *Diagram {
	t.Helper()
	sites := mustGenerateSites(t, n, size, size, 0)
	d, err := NewDiagram(size, size, sites, opts...)
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	return d
}

func mustGenerateSites(t *testing.T, n, width, height int, seed int64) *SiteSet {
	t.Helper()
	s, err := GenerateSites(n, width, height, seed)
	if err != nil {
		t.Fatalf("GenerateSites(%d, %d, %d, %d) error = %v, want nil", n, width, height, seed, err)
	}
	return s
}

func mustSites(t *testing.T, positions ...r2.Point) *SiteSet {
	t.Helper()
	s, err := SitesFromPositions(positions)
	if err != nil {
		t.Fatalf("SitesFromPositions(%v) error = %v, want nil", positions, err)
	}
	return s
}

func mustAssign(t *testing.T, width, height int, sites *SiteSet, m Metric) *Field {
	t.Helper()
	f, err := Assign(width, height, sites, m)
	if err != nil {
		t.Fatalf("Assign(%d, %d, ...) error = %v, want nil", width, height, err)
	}
	return f
}

func fieldValues(f *Field) []int {
	out := make([]int, 0, f.Width()*f.Height())
	for _, v := range f.All() {
		out = append(out, v)
	}
	return out
}
