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

package pixelize

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pixelize/testcases"
)

// gridOpts compares pixel values up to rounding, treating NaN as equal to
// NaN.
var gridOpts = cmp.Options{
	cmpopts.EquateApprox(0, 1e-12),
	cmpopts.EquateNaNs(),
}

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				g, err := runCase(tc, 1)
				if err != nil {
					t.Fatal(err)
				}
				if g.Rows != tc.Rows || g.Cols != tc.Cols {
					t.Fatalf("grid is %d×%d, want %d×%d", g.Rows, g.Cols, tc.Rows, tc.Cols)
				}
				if d := cmp.Diff(tc.Want, g.Pix, gridOpts); d != "" {
					t.Errorf("pixels differ (-want +got):\n%s", d)
				}
			})
		}
	}
}

// runCase renders a test case using the given number of workers.
func runCase(tc testcases.TestCase, workers int) (*Grid, error) {
	switch op := tc.Op.(type) {
	case testcases.Splat:
		opt := &SplatOptions{
			Policy:      Overwrite,
			Period:      op.Period,
			CheckPeriod: op.CheckPeriod,
			Workers:     workers,
		}
		if op.Antialias {
			opt.Policy = Accumulate
		}
		return RasterizePlanar(splatCells(op.Cells), tc.Rows, tc.Cols, tc.Bounds, opt)

	case testcases.Plane:
		cells := planeCells(op.Cells)
		center := Vec3{op.Center[0], op.Center[1], op.Center[2]}
		return ProjectCuttingPlane(cells, op.Indices(), tc.Rows, tc.Cols, tc.Bounds,
			center, Mat3(op.Inverse), &ProjectOptions{Workers: workers})
	}
	panic("unknown operation")
}

func splatCells(in []testcases.Cell2D) *Cells2D {
	c := &Cells2D{}
	for _, cell := range in {
		c.X = append(c.X, cell.X)
		c.Y = append(c.Y, cell.Y)
		c.HalfX = append(c.HalfX, cell.HalfX)
		c.HalfY = append(c.HalfY, cell.HalfY)
		c.Value = append(c.Value, cell.Value)
	}
	return c
}

func planeCells(in []testcases.Cell3D) *Cells3D {
	c := &Cells3D{}
	for _, cell := range in {
		c.X = append(c.X, cell.X)
		c.Y = append(c.Y, cell.Y)
		c.Z = append(c.Z, cell.Z)
		c.PX = append(c.PX, cell.PX)
		c.PY = append(c.PY, cell.PY)
		c.HalfX = append(c.HalfX, cell.HalfX)
		c.HalfY = append(c.HalfY, cell.HalfY)
		c.HalfZ = append(c.HalfZ, cell.HalfZ)
		c.Value = append(c.Value, cell.Value)
	}
	return c
}
