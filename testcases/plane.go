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

package testcases

import "math"

var nan = math.NaN()

var planeCases = []TestCase{
	{
		Name:   "identity_single",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Plane{
			Cells:   []Cell3D{unitCell(0.5, 0.5, 3)},
			Inverse: identity,
		},
		Want: []float64{3, nan, nan, nan},
	},
	{
		Name:   "identity_mean",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Plane{
			Cells:   []Cell3D{unitCell(0.5, 0.5, 3), unitCell(0.5, 0.5, 5)},
			Inverse: identity,
		},
		Want: []float64{4, nan, nan, nan},
	},
	{
		Name:   "selection_subset",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Plane{
			Cells:     []Cell3D{unitCell(0.5, 0.5, 3), unitCell(0.5, 0.5, 5)},
			Selection: []int{1},
			Inverse:   identity,
		},
		Want: []float64{5, nan, nan, nan},
	},
	{
		Name:   "identity_cover",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Plane{
			Cells: []Cell3D{{
				X: 1, Y: 1, Z: 0, PX: 1, PY: 1,
				HalfX: 1, HalfY: 1, HalfZ: 1,
				Value: 6,
			}},
			Inverse: identity,
		},
		Want: []float64{6, 6, 6, 6},
	},
	{
		Name:   "margin_included",
		Rows:   1,
		Cols:   1,
		Bounds: box(0, 1, 0, 1),
		Op: Plane{
			Cells:   []Cell3D{unitCell(-0.02, 0.5, 2)},
			Inverse: identity,
		},
		Want: []float64{2},
	},
	{
		Name:   "margin_excluded",
		Rows:   1,
		Cols:   1,
		Bounds: box(0, 1, 0, 1),
		Op: Plane{
			Cells:   []Cell3D{unitCell(-0.03, 0.5, 2)},
			Inverse: identity,
		},
		Want: []float64{nan},
	},
	{
		Name:   "rotated_plane",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Plane{
			// plane u runs along world z, plane v along world y
			Cells: []Cell3D{{
				X: 10, Y: 0.5, Z: 1.5, PX: 1.5, PY: 0.5,
				HalfX: 0.5, HalfY: 0.5, HalfZ: 0.5,
				Value: 9,
			}},
			Center:  [3]float64{10, 0, 0},
			Inverse: [9]float64{0, 0, 1, 0, 1, 0, 1, 0, 0},
		},
		Want: []float64{nan, nan, 9, nan},
	},
	{
		Name:   "culled",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Plane{
			Cells:   []Cell3D{unitCell(100, 100, 1)},
			Inverse: identity,
		},
		Want: []float64{nan, nan, nan, nan},
	},
}

// unitCell returns a cube of side 1 centered at (x, y, 0) which lies in
// the z = 0 plane.
func unitCell(x, y, value float64) Cell3D {
	return Cell3D{
		X: x, Y: y, Z: 0,
		PX: x, PY: y,
		HalfX: 0.5, HalfY: 0.5, HalfZ: 0.5,
		Value: value,
	}
}
