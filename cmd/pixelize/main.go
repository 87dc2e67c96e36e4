// seehuhn.de/go/pixelize - rasterize cell data onto pixel grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command pixelize resamples cell data from a CSV file onto a regular grid.
//
// The job is described by a YAML file (see internal/config/defaults.yaml
// for all settings).  In "planar" mode the input columns are
// x,y,dx,dy,value; in "plane" mode they are x,y,z,px,py,dx,dy,dz,value.
// The output lists one pixel per line as i,j,x,y,value.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"seehuhn.de/go/pixelize"
	"seehuhn.de/go/pixelize/internal/cellio"
	"seehuhn.de/go/pixelize/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to job YAML (empty = use defaults)")
	input := flag.String("input", "", "Cells CSV file (overrides the config)")
	output := flag.String("output", "", "Grid CSV file, - for stdout (overrides the config)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (0 = use config)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if err := run(cfg); err != nil {
		slog.Error("pixelize failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	start := time.Now()
	g, n, err := rasterize(cfg, in)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := cellio.WriteGrid(out, g); err != nil {
		return err
	}

	unsampled := 0
	for _, v := range g.Pix {
		if math.IsNaN(v) {
			unsampled++
		}
	}
	slog.Info("grid written",
		"mode", cfg.Mode,
		"cells", n,
		"rows", g.Rows,
		"cols", g.Cols,
		"unsampled", unsampled,
		"elapsed", elapsed,
		"output", cfg.Output,
	)
	return nil
}

// rasterize reads the cells and runs the rasterizer selected by cfg.Mode.
// It also returns the number of cells used.
func rasterize(cfg *config.Config, in io.Reader) (*pixelize.Grid, int, error) {
	switch cfg.Mode {
	case config.ModePlane:
		cells, err := cellio.ReadCells3D(in)
		if err != nil {
			return nil, 0, err
		}
		center, inv, err := cfg.Transform()
		if err != nil {
			return nil, 0, err
		}
		sel := cfg.Selection(cells.Len())
		g, err := pixelize.ProjectCuttingPlane(cells, sel, cfg.Grid.Rows, cfg.Grid.Cols,
			cfg.Bounds(), center, inv, &pixelize.ProjectOptions{Workers: cfg.Workers})
		return g, len(sel), err

	default:
		cells, err := cellio.ReadCells2D(in)
		if err != nil {
			return nil, 0, err
		}
		g, err := pixelize.RasterizePlanar(cells, cfg.Grid.Rows, cfg.Grid.Cols,
			cfg.Bounds(), cfg.SplatOptions())
		return g, cells.Len(), err
	}
}
