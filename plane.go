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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// containmentMargin scales the distance between a sample point and a cell
// center before it is compared to the cell half-width.
const containmentMargin = 0.95

// Cells3D holds M box-shaped cells as parallel slices.
// All slices must have the same length.
type Cells3D struct {
	X, Y, Z             []float64 // cell centers in world coordinates
	PX, PY              []float64 // cell centers projected onto the plane
	HalfX, HalfY, HalfZ []float64 // half-widths
	Value               []float64
}

// Len returns the number of cells.
func (c *Cells3D) Len() int {
	return len(c.X)
}

func (c *Cells3D) validate() error {
	m := len(c.X)
	for _, s := range [][]float64{c.Y, c.Z, c.PX, c.PY, c.HalfX, c.HalfY, c.HalfZ, c.Value} {
		if len(s) != m {
			return fmt.Errorf("%w: cell slices have lengths x=%d y=%d z=%d px=%d py=%d dx=%d dy=%d dz=%d value=%d",
				ErrInvalidShape, m, len(c.Y), len(c.Z), len(c.PX), len(c.PY),
				len(c.HalfX), len(c.HalfY), len(c.HalfZ), len(c.Value))
		}
	}
	return nil
}

// ProjectOptions controls [ProjectCuttingPlane].  The zero value selects
// sequential processing.
type ProjectOptions struct {
	// Workers is the number of goroutines used to scan the selected
	// cells.  Values below 2 mean sequential processing.
	Workers int
}

// ProjectCuttingPlane samples the cells listed in sel along a cutting plane
// and returns a rows×cols grid covering bounds in plane coordinates.
//
// Every pixel center (u, v) is mapped to the world point
// inv·(u, v, 0) + center.  A cell contains the point if, along each axis,
// 0.95 times the distance to the cell center does not exceed the
// half-width.  The output pixel is the mean value of all containing cells,
// or NaN if there are none.
//
// Only the cells listed in sel are considered; sel may be shorter than the
// cell slices and may list cells in any order.  A nil opt is treated like
// the zero ProjectOptions.
func ProjectCuttingPlane(cells *Cells3D, sel []int, rows, cols int, bounds rect.Rect,
	center Vec3, inv Mat3, opt *ProjectOptions) (*Grid, error) {
	if err := validateGrid(rows, cols, bounds); err != nil {
		return nil, err
	}
	if cells == nil {
		cells = &Cells3D{}
	}
	if err := cells.validate(); err != nil {
		return nil, err
	}
	m := cells.Len()
	if len(sel) > m {
		return nil, fmt.Errorf("%w: %d indices for %d cells", ErrInvalidShape, len(sel), m)
	}
	for k, idx := range sel {
		if idx < 0 || idx >= m {
			return nil, fmt.Errorf("%w: selection[%d]=%d is outside [0,%d)", ErrInvalidIndex, k, idx, m)
		}
	}
	if opt == nil {
		opt = &ProjectOptions{}
	}

	g := newGrid(rows, cols, bounds)
	pxX, pxY := g.PixelSize()
	p := &projector{
		cells:  cells,
		sel:    sel,
		bounds: bounds,
		rows:   rows,
		cols:   cols,
		pxX:    pxX,
		pxY:    pxY,
		m:      g.Transform(),
		center: center,
		inv:    inv,
	}

	// The first half of buf holds the value sums, the second half the
	// number of hits per pixel.
	npix := rows * cols
	buf := make([]float64, 2*npix)
	accumulate(len(sel), opt.Workers, buf, p.projectRange)

	sum, hits := buf[:npix], buf[npix:]
	for k := range g.Pix {
		if hits[k] == 0 {
			g.Pix[k] = math.NaN()
			continue
		}
		g.Pix[k] = sum[k] / hits[k]
	}
	return g, nil
}

// projector holds the per-call constants of a cutting plane projection.
type projector struct {
	cells      *Cells3D
	sel        []int
	bounds     rect.Rect
	rows, cols int
	pxX, pxY   float64
	m          matrix.Matrix // pixel index space to plane coordinates

	center Vec3
	inv    Mat3
}

// projectRange scans the cells sel[lo:hi] and adds their values and hit
// counts to buf.
func (p *projector) projectRange(lo, hi int, buf []float64) {
	npix := p.rows * p.cols
	sum, hits := buf[:npix], buf[npix:]
	b := p.bounds
	c := p.cells

	for _, idx := range p.sel[lo:hi] {
		cellCenter := Vec3{c.X[idx], c.Y[idx], c.Z[idx]}
		hx, hy, hz := c.HalfX[idx], c.HalfY[idx], c.HalfZ[idx]
		px, py := c.PX[idx], c.PY[idx]
		value := c.Value[idx]

		// no point inside the cell is further than md from its center
		md := 2 * math.Sqrt(hx*hx+hy*hy+hz*hz)
		if px+md < b.LLx || px-md > b.URx || py+md < b.LLy || py-md > b.URy {
			continue
		}

		iMin, iMax := boundingRange(px-md, px+md, b.LLx, p.pxX, p.rows)
		jMin, jMax := boundingRange(py-md, py+md, b.LLy, p.pxY, p.cols)
		for i := iMin; i < iMax; i++ {
			for j := jMin; j < jMax; j++ {
				uv := pixelToData(p.m, float64(i)+0.5, float64(j)+0.5)
				world := p.inv.Apply(Vec3{X: uv.X, Y: uv.Y}).Add(p.center)
				d := cellCenter.Sub(world)
				if math.Abs(d.X)*containmentMargin > hx ||
					math.Abs(d.Y)*containmentMargin > hy ||
					math.Abs(d.Z)*containmentMargin > hz {
					continue
				}
				k := i*p.cols + j
				sum[k] += value
				hits[k]++
			}
		}
	}
}
