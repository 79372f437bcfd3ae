// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cli implements the gridvoronoi command-line interface.
//
// The generate command builds a diagram from flags and an optional TOML
// file (see package config), renders it to SVG or PNG and prints a summary
// of the resulting regions. --verbose (-v) enables per-pass debug logging.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the gridvoronoi CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "gridvoronoi",
		Short:        "gridvoronoi partitions grids into Voronoi regions",
		Long:         `gridvoronoi computes discrete Voronoi partitions of rectangular grids, with optional curved borders and Lloyd relaxation, and renders them as SVG or PNG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	return root
}
