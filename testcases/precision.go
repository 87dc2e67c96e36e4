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

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op:     offsetCell(0),
		Want:   []float64{0, 1, 0, 0},
	},
	{
		Name:   "subpixel_offset_25",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op:     offsetCell(0.25),
		Want:   []float64{0, 0.75, 0.25, 0},
	},
	{
		Name:   "subpixel_offset_50",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op:     offsetCell(0.5),
		Want:   []float64{0, 0.5, 0.5, 0},
	},
	{
		Name:   "subpixel_offset_75",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op:     offsetCell(0.75),
		Want:   []float64{0, 0.25, 0.75, 0},
	},
	{
		Name:   "non_square_pixels",
		Rows:   4,
		Cols:   2,
		Bounds: box(0, 1, 0, 1),
		Op: Splat{
			Cells:     []Cell2D{{X: 0.5, Y: 0.5, HalfX: 0.25, HalfY: 0.25, Value: 8}},
			Antialias: true,
		},
		Want: []float64{
			0, 0,
			4, 4,
			4, 4,
			0, 0,
		},
	},
}

// offsetCell returns a unit cell whose left edge is at x = 1 + dx.
func offsetCell(dx float64) Splat {
	return Splat{
		Cells:     []Cell2D{{X: 1.5 + dx, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 1}},
		Antialias: true,
	}
}
