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

// Package config loads rasterization jobs from YAML files.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixelize"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Job modes.
const (
	ModePlanar = "planar"
	ModePlane  = "plane"
)

// Config describes a single rasterization job.
type Config struct {
	Mode    string       `yaml:"mode"`   // ModePlanar or ModePlane
	Input   string       `yaml:"input"`  // cells CSV file
	Output  string       `yaml:"output"` // grid CSV file, "-" for stdout
	Workers int          `yaml:"workers"`
	Grid    GridConfig   `yaml:"grid"`
	Planar  PlanarConfig `yaml:"planar"`
	Plane   PlaneConfig  `yaml:"plane"`
}

// GridConfig holds the output grid geometry.
type GridConfig struct {
	Rows   int       `yaml:"rows"`   // pixels along x
	Cols   int       `yaml:"cols"`   // pixels along y
	Bounds []float64 `yaml:"bounds"` // x_min, x_max, y_min, y_max
}

// PlanarConfig holds the settings for planar splatting.
type PlanarConfig struct {
	Antialias   bool      `yaml:"antialias"`
	Period      []float64 `yaml:"period"` // period along x and y
	CheckPeriod bool      `yaml:"check_period"`
}

// PlaneConfig holds the settings for cutting plane projection.
type PlaneConfig struct {
	Center    []float64 `yaml:"center"`    // plane center in world coordinates
	Inverse   []float64 `yaml:"inverse"`   // row-major 3×3 plane-to-world matrix
	Selection []int     `yaml:"selection"` // cells to use, empty for all
}

// Load reads the job description at path on top of the built-in defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// fields missing from the file keep their default values
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings which the rasterizers cannot check
// themselves.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModePlanar, ModePlane:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if len(c.Grid.Bounds) != 4 {
		return fmt.Errorf("grid.bounds needs 4 values, got %d", len(c.Grid.Bounds))
	}
	if len(c.Planar.Period) != 2 {
		return fmt.Errorf("planar.period needs 2 values, got %d", len(c.Planar.Period))
	}
	return nil
}

// Bounds returns the area covered by the output grid.
func (c *Config) Bounds() rect.Rect {
	b := c.Grid.Bounds
	return rect.Rect{LLx: b[0], URx: b[1], LLy: b[2], URy: b[3]}
}

// SplatOptions returns the options for [pixelize.RasterizePlanar].
func (c *Config) SplatOptions() *pixelize.SplatOptions {
	opt := &pixelize.SplatOptions{
		Policy:      pixelize.Overwrite,
		Period:      vec.Vec2{X: c.Planar.Period[0], Y: c.Planar.Period[1]},
		CheckPeriod: c.Planar.CheckPeriod,
		Workers:     c.Workers,
	}
	if c.Planar.Antialias {
		opt.Policy = pixelize.Accumulate
	}
	return opt
}

// Transform returns the plane center and the plane-to-world matrix.
func (c *Config) Transform() (pixelize.Vec3, pixelize.Mat3, error) {
	center, err := pixelize.Vec3FromSlice(c.Plane.Center)
	if err != nil {
		return pixelize.Vec3{}, pixelize.Mat3{}, fmt.Errorf("plane.center: %w", err)
	}
	inv, err := pixelize.Mat3FromSlice(c.Plane.Inverse)
	if err != nil {
		return pixelize.Vec3{}, pixelize.Mat3{}, fmt.Errorf("plane.inverse: %w", err)
	}
	return center, inv, nil
}

// Selection returns the cells to project, given the total number of cells.
// An empty selection means all cells in file order.
func (c *Config) Selection(n int) []int {
	if len(c.Plane.Selection) > 0 {
		return c.Plane.Selection
	}
	sel := make([]int, n)
	for i := range sel {
		sel[i] = i
	}
	return sel
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
