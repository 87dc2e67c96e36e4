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
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Grid is a dense rectangular array of pixel values covering Bounds.
//
// The first pixel index i runs along the x axis (Rows pixels between
// Bounds.LLx and Bounds.URx), the second index j runs along the y axis
// (Cols pixels between Bounds.LLy and Bounds.URy).  Pixel (i, j) is stored
// at Pix[i*Cols+j].
type Grid struct {
	Rows, Cols int
	Bounds     rect.Rect
	Pix        []float64
}

// newGrid allocates a zero-filled grid.  The arguments must have been
// checked by validateGrid.
func newGrid(rows, cols int, bounds rect.Rect) *Grid {
	return &Grid{
		Rows:   rows,
		Cols:   cols,
		Bounds: bounds,
		Pix:    make([]float64, rows*cols),
	}
}

// validateGrid checks the output geometry shared by both rasterizers.
func validateGrid(rows, cols int, bounds rect.Rect) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: cannot scale to %d×%d pixels", ErrInvalidDimension, rows, cols)
	}
	width := bounds.URx - bounds.LLx
	height := bounds.URy - bounds.LLy
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: degenerate bounds [%g,%g]×[%g,%g]", ErrInvalidDimension,
			bounds.LLx, bounds.URx, bounds.LLy, bounds.URy)
	}
	return nil
}

// At returns the value of pixel (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.Pix[i*g.Cols+j]
}

// PixelSize returns the extent of a single pixel along x and y.
func (g *Grid) PixelSize() (dx, dy float64) {
	dx = (g.Bounds.URx - g.Bounds.LLx) / float64(g.Rows)
	dy = (g.Bounds.URy - g.Bounds.LLy) / float64(g.Cols)
	return dx, dy
}

// Transform returns the affine map from pixel index space to data
// coordinates.  The pixel (i, j) covers the image of the unit square
// [i, i+1]×[j, j+1].
func (g *Grid) Transform() matrix.Matrix {
	dx, dy := g.PixelSize()
	return matrix.Matrix{dx, 0, 0, dy, g.Bounds.LLx, g.Bounds.LLy}
}

// PixelCenter returns the data coordinates of the center of pixel (i, j).
func (g *Grid) PixelCenter(i, j int) vec.Vec2 {
	return pixelToData(g.Transform(), float64(i)+0.5, float64(j)+0.5)
}

func pixelToData(m matrix.Matrix, u, v float64) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*u + m[2]*v + m[4],
		Y: m[1]*u + m[3]*v + m[5],
	}
}

// Sum returns the total of all pixel values.  NaN pixels propagate.
func (g *Grid) Sum() float64 {
	return floats.Sum(g.Pix)
}

// Dense returns the grid as a Rows×Cols gonum matrix.  The matrix shares
// its storage with g.Pix.
func (g *Grid) Dense() *mat.Dense {
	return mat.NewDense(g.Rows, g.Cols, g.Pix)
}
