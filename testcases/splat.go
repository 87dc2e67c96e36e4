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

var splatCases = []TestCase{
	{
		Name:   "empty",
		Rows:   3,
		Cols:   2,
		Bounds: box(0, 3, 0, 2),
		Op:     Splat{Antialias: true},
		Want:   []float64{0, 0, 0, 0, 0, 0},
	},
	{
		Name:   "exact_cover_antialias",
		Rows:   2,
		Cols:   2,
		Bounds: box(-1, 1, -1, 1),
		Op: Splat{
			Cells:     []Cell2D{{X: 0, Y: 0, HalfX: 1, HalfY: 1, Value: 4}},
			Antialias: true,
		},
		Want: []float64{4, 4, 4, 4},
	},
	{
		Name:   "exact_cover_overwrite",
		Rows:   2,
		Cols:   2,
		Bounds: box(-1, 1, -1, 1),
		Op: Splat{
			Cells: []Cell2D{{X: 0, Y: 0, HalfX: 1, HalfY: 1, Value: 4}},
		},
		Want: []float64{4, 4, 4, 4},
	},
	{
		Name:   "quarter_pixels",
		Rows:   4,
		Cols:   4,
		Bounds: box(0, 4, 0, 4),
		Op: Splat{
			Cells:     []Cell2D{{X: 2, Y: 2, HalfX: 0.5, HalfY: 0.5, Value: 1}},
			Antialias: true,
		},
		Want: []float64{
			0, 0, 0, 0,
			0, 0.25, 0.25, 0,
			0, 0.25, 0.25, 0,
			0, 0, 0, 0,
		},
	},
	{
		Name:   "two_cells_sum",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Splat{
			Cells: []Cell2D{
				{X: 1, Y: 1, HalfX: 1, HalfY: 1, Value: 1},
				{X: 0.5, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 2},
			},
			Antialias: true,
		},
		Want: []float64{3, 1, 1, 1},
	},
	{
		Name:   "clipped_corner",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Splat{
			Cells:     []Cell2D{{X: 0, Y: 0, HalfX: 1, HalfY: 1, Value: 2}},
			Antialias: true,
		},
		Want: []float64{2, 0, 0, 0},
	},
	{
		Name:   "overwrite_partial",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op: Splat{
			Cells: []Cell2D{{X: 1.75, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 3}},
		},
		Want: []float64{0, 3, 3, 0},
	},
	{
		Name:   "overwrite_last_wins",
		Rows:   2,
		Cols:   1,
		Bounds: box(0, 2, 0, 1),
		Op: Splat{
			Cells: []Cell2D{
				{X: 1, Y: 0.5, HalfX: 1, HalfY: 0.5, Value: 1},
				{X: 1.5, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 7},
			},
		},
		Want: []float64{1, 7},
	},
	{
		Name:   "overwrite_first_lost",
		Rows:   2,
		Cols:   1,
		Bounds: box(0, 2, 0, 1),
		Op: Splat{
			Cells: []Cell2D{
				{X: 1.5, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 7},
				{X: 1, Y: 0.5, HalfX: 1, HalfY: 0.5, Value: 1},
			},
		},
		Want: []float64{1, 1},
	},
}
