// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/2dChan/gridvoronoi"
	"github.com/2dChan/gridvoronoi/config"
	"github.com/2dChan/gridvoronoi/render"
)

// generateOpts holds the command-line flags for the generate command.
// Flags that are set override the values of the config file.
type generateOpts struct {
	configPath  string
	output      string
	width       int
	height      int
	sites       int
	seed        int64
	metric      string
	borderWidth float64
	curve       bool
	relax       int
	scale       int
	noSites     bool
}

func newGenerateCmd() *cobra.Command {
	def := config.Default()
	opts := generateOpts{
		width:  def.Width,
		height: def.Height,
		sites:  def.Sites,
		metric: def.Metric,
		scale:  render.DefaultOptions().Scale,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Voronoi partition and optionally render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := resolveConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			d, err := cfg.Build(gridvoronoi.WithLogger(logger))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d regions on a %dx%d grid", d.NumRegions(), d.Width, d.Height))

			if opts.output != "" {
				if err := writeImage(opts.output, d, render.Options{Scale: opts.scale, ShowSites: !opts.noSites}); err != nil {
					return err
				}
				logger.Info("Wrote image", "path", opts.output)
			}

			printSummary(cmd.OutOrStdout(), cfg, d)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML file with generation parameters")
	f.StringVarP(&opts.output, "output", "o", "", "output image path (.svg or .png)")
	f.IntVar(&opts.width, "width", opts.width, "grid width in cells")
	f.IntVar(&opts.height, "height", opts.height, "grid height in cells")
	f.IntVarP(&opts.sites, "sites", "n", opts.sites, "number of random sites")
	f.Int64Var(&opts.seed, "seed", 0, "random seed for site placement")
	f.StringVarP(&opts.metric, "metric", "m", opts.metric, "distance metric: euclidean, manhattan or chebyshev")
	f.Float64Var(&opts.borderWidth, "border-width", 0, "border band width (enables borders)")
	f.BoolVar(&opts.curve, "curve", false, "curve borders by distance from the owning site (enables borders)")
	f.IntVarP(&opts.relax, "relax", "r", 0, "number of Lloyd relaxation steps")
	f.IntVar(&opts.scale, "scale", opts.scale, "pixels per grid cell in the output image")
	f.BoolVar(&opts.noSites, "no-sites", false, "do not draw site markers")
	return cmd
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set explicitly on top of it.
func resolveConfig(opts generateOpts, flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("sites") {
		cfg.Sites = opts.sites
		cfg.Positions = nil
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("metric") {
		cfg.Metric = opts.metric
	}
	if flags.Changed("relax") {
		cfg.RelaxSteps = opts.relax
	}
	if flags.Changed("border-width") || flags.Changed("curve") {
		if cfg.Border == nil {
			cfg.Border = &config.Border{}
		}
		if flags.Changed("border-width") {
			cfg.Border.Width = opts.borderWidth
		}
		if flags.Changed("curve") {
			cfg.Border.Curve = opts.curve
		}
	}
	return cfg, cfg.Validate()
}

func writeImage(path string, d *gridvoronoi.Diagram, opts render.Options) (err error) {
	var draw func(*os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		draw = func(f *os.File) error { return render.SVG(f, d.Field, d.Sites, opts) }
	case ".png":
		draw = func(f *os.File) error { return render.PNG(f, d.Field, d.Sites, opts) }
	default:
		return fmt.Errorf("unsupported output format %q (want .svg or .png)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return draw(f)
}
