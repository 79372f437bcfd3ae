// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("gridvoronoi: invalid configuration")

// ConfigurationError reports an input parameter rejected before any
// computation starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func configErrorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("gridvoronoi: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// DegenerateStateWarning lists the sites left without any cell by a
// relaxation step. Starved sites keep their previous position.
type DegenerateStateWarning struct {
	// Step is the 1-based relaxation step within Diagram.Relax, or 0 when
	// Relax is called directly.
	Step    int
	Starved []int
}

func (w *DegenerateStateWarning) Error() string {
	return fmt.Sprintf("gridvoronoi: relaxation step %d left %d site(s) without cells: %v",
		w.Step, len(w.Starved), w.Starved)
}
