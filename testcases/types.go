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

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization scenario with known output.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Rows   int       // number of pixels along x
	Cols   int       // number of pixels along y
	Bounds rect.Rect // area covered by the grid
	Op     Operation // planar splat or cutting plane

	// Want lists the expected pixel values, pixel (i, j) at index
	// i*Cols+j.  NaN marks pixels which no cell reaches.
	Want []float64
}

// Operation is the rasterizer to apply.
type Operation interface {
	isOperation()
}

// Cell2D is a rectangular cell for planar splatting.
type Cell2D struct {
	X, Y         float64
	HalfX, HalfY float64
	Value        float64
}

// Splat specifies a planar splat.
type Splat struct {
	Cells       []Cell2D
	Antialias   bool
	Period      vec.Vec2
	CheckPeriod bool
}

func (Splat) isOperation() {}

// Cell3D is a box-shaped cell for cutting plane projection.
type Cell3D struct {
	X, Y, Z             float64 // center in world coordinates
	PX, PY              float64 // center projected onto the plane
	HalfX, HalfY, HalfZ float64
	Value               float64
}

// Plane specifies a cutting plane projection.
type Plane struct {
	Cells     []Cell3D
	Selection []int      // nil means all cells in order
	Center    [3]float64 // plane center in world coordinates
	Inverse   [9]float64 // row-major plane-to-world matrix
}

func (Plane) isOperation() {}

// Indices returns the selection to use, expanding a nil selection.
func (p Plane) Indices() []int {
	if p.Selection != nil {
		return p.Selection
	}
	idx := make([]int, len(p.Cells))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// box returns the rectangle [x0,x1]×[y0,y1].
func box(x0, x1, y0, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

var identity = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
