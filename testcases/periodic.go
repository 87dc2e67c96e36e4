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

import "seehuhn.de/go/geom/vec"

var periodicCases = []TestCase{
	{
		Name:   "wrap_lower_x",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op: Splat{
			Cells:       []Cell2D{{X: 0, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 1}},
			Antialias:   true,
			Period:      vec.Vec2{X: 4, Y: 1},
			CheckPeriod: true,
		},
		Want: []float64{0.5, 0, 0, 0.5},
	},
	{
		Name:   "wrap_disabled",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op: Splat{
			Cells:     []Cell2D{{X: 0, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 1}},
			Antialias: true,
			Period:    vec.Vec2{X: 4, Y: 1},
		},
		Want: []float64{0.5, 0, 0, 0},
	},
	{
		Name:   "wrap_upper_x",
		Rows:   4,
		Cols:   1,
		Bounds: box(0, 4, 0, 1),
		Op: Splat{
			Cells:       []Cell2D{{X: 4, Y: 0.5, HalfX: 0.5, HalfY: 0.5, Value: 1}},
			Antialias:   true,
			Period:      vec.Vec2{X: 4, Y: 1},
			CheckPeriod: true,
		},
		Want: []float64{0.5, 0, 0, 0.5},
	},
	{
		Name:   "wrap_corner",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Splat{
			Cells:       []Cell2D{{X: 0, Y: 0, HalfX: 0.5, HalfY: 0.5, Value: 1}},
			Antialias:   true,
			Period:      vec.Vec2{X: 2, Y: 2},
			CheckPeriod: true,
		},
		Want: []float64{0.25, 0.25, 0.25, 0.25},
	},
	{
		Name:   "wrap_corner_overwrite",
		Rows:   2,
		Cols:   2,
		Bounds: box(0, 2, 0, 2),
		Op: Splat{
			Cells:       []Cell2D{{X: 0, Y: 0, HalfX: 0.5, HalfY: 0.5, Value: 5}},
			Period:      vec.Vec2{X: 2, Y: 2},
			CheckPeriod: true,
		},
		Want: []float64{5, 5, 5, 5},
	},
}
