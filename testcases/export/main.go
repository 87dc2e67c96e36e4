// Command export writes every test case as a cells CSV file and a job YAML
// file, so that the cases can be replayed with cmd/pixelize.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixelize/internal/cellio"
	"seehuhn.de/go/pixelize/internal/config"
	"seehuhn.de/go/pixelize/testcases"
)

const outDir = "testdata/cases"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(name string, tc testcases.TestCase) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	csvPath := filepath.Join(outDir, name+".csv")
	cfg.Input = csvPath
	cfg.Output = filepath.Join(outDir, name+".out.csv")
	cfg.Grid.Rows = tc.Rows
	cfg.Grid.Cols = tc.Cols
	cfg.Grid.Bounds = []float64{tc.Bounds.LLx, tc.Bounds.URx, tc.Bounds.LLy, tc.Bounds.URy}

	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	switch op := tc.Op.(type) {
	case testcases.Splat:
		cfg.Mode = config.ModePlanar
		cfg.Planar.Antialias = op.Antialias
		cfg.Planar.Period = []float64{op.Period.X, op.Period.Y}
		cfg.Planar.CheckPeriod = op.CheckPeriod

		rows := make([]cellio.Cell2D, len(op.Cells))
		for i, c := range op.Cells {
			rows[i] = cellio.Cell2D{X: c.X, Y: c.Y, HalfX: c.HalfX, HalfY: c.HalfY, Value: c.Value}
		}
		err = cellio.WriteCells2D(f, rows)

	case testcases.Plane:
		cfg.Mode = config.ModePlane
		cfg.Plane.Center = op.Center[:]
		cfg.Plane.Inverse = op.Inverse[:]
		cfg.Plane.Selection = op.Indices()

		rows := make([]cellio.Cell3D, len(op.Cells))
		for i, c := range op.Cells {
			rows[i] = cellio.Cell3D{
				X: c.X, Y: c.Y, Z: c.Z,
				PX: c.PX, PY: c.PY,
				HalfX: c.HalfX, HalfY: c.HalfY, HalfZ: c.HalfZ,
				Value: c.Value,
			}
		}
		err = cellio.WriteCells3D(f, rows)
	}
	if err != nil {
		return err
	}

	return cfg.WriteYAML(filepath.Join(outDir, name+".yaml"))
}
