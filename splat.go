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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// WritePolicy selects how the contribution of a cell is combined with the
// pixels it touches.
type WritePolicy int

const (
	// Accumulate adds the cell value to every pixel, weighted by the
	// fraction of the pixel covered by the cell.  A pixel which lies
	// completely inside a cell receives the full cell value.
	Accumulate WritePolicy = iota

	// Overwrite sets every pixel touched by a cell to the cell value.
	// Where cells (or periodic images of the same cell) overlap, the one
	// processed last wins.  Rasterization is always sequential in this
	// mode, so that the outcome is well defined.
	Overwrite
)

func (p WritePolicy) String() string {
	switch p {
	case Accumulate:
		return "accumulate"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("WritePolicy(%d)", int(p))
	}
}

// Cells2D holds N axis-aligned rectangular cells as parallel slices.
// All slices must have the same length.
type Cells2D struct {
	X, Y         []float64 // cell centers
	HalfX, HalfY []float64 // half-widths
	Value        []float64
}

// Len returns the number of cells.
func (c *Cells2D) Len() int {
	return len(c.X)
}

func (c *Cells2D) validate() error {
	n := len(c.X)
	if len(c.Y) != n || len(c.HalfX) != n || len(c.HalfY) != n || len(c.Value) != n {
		return fmt.Errorf("%w: cell slices have lengths x=%d y=%d dx=%d dy=%d value=%d",
			ErrInvalidShape, n, len(c.Y), len(c.HalfX), len(c.HalfY), len(c.Value))
	}
	return nil
}

// SplatOptions controls [RasterizePlanar].  The zero value selects
// antialiased, non-periodic, single-threaded rasterization.
type SplatOptions struct {
	// Policy selects between area-weighted accumulation and overwriting.
	Policy WritePolicy

	// Period gives the length of the periodic domain along x and y.
	// It is only used if CheckPeriod is set.
	Period vec.Vec2

	// CheckPeriod enables periodic wraparound.  A cell which crosses the
	// lower (or else the upper) edge of the bounds along an axis is also
	// drawn shifted by the period along that axis.
	CheckPeriod bool

	// Workers is the number of goroutines used in Accumulate mode.
	// Values below 2 mean sequential processing.
	Workers int
}

// RasterizePlanar splats the cells onto a rows×cols grid covering bounds.
//
// A nil cells argument is treated like an empty cell set and a nil opt like
// the zero SplatOptions.  With no cells the result is a zero grid.
//
// The grid dimensions and bounds are checked before the cells; errors wrap
// ErrInvalidDimension or ErrInvalidShape.
func RasterizePlanar(cells *Cells2D, rows, cols int, bounds rect.Rect, opt *SplatOptions) (*Grid, error) {
	if err := validateGrid(rows, cols, bounds); err != nil {
		return nil, err
	}
	if cells == nil {
		cells = &Cells2D{}
	}
	if err := cells.validate(); err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &SplatOptions{}
	}

	g := newGrid(rows, cols, bounds)
	s := newSplatter(g, opt)
	n := cells.Len()
	if opt.Policy == Overwrite {
		s.splatRange(cells, 0, n, g.Pix)
	} else {
		accumulate(n, opt.Workers, g.Pix, func(lo, hi int, buf []float64) {
			s.splatRange(cells, lo, hi, buf)
		})
	}
	return g, nil
}

// splatter holds the per-call constants of a planar rasterization.
// It is read-only once constructed and may be shared between workers.
type splatter struct {
	bounds     rect.Rect
	rows, cols int
	pxX, pxY   float64 // pixel size
	invX, invY float64 // 1/pixel size

	overwrite   bool
	period      vec.Vec2
	checkPeriod bool
}

func newSplatter(g *Grid, opt *SplatOptions) *splatter {
	pxX, pxY := g.PixelSize()
	return &splatter{
		bounds:      g.Bounds,
		rows:        g.Rows,
		cols:        g.Cols,
		pxX:         pxX,
		pxY:         pxY,
		invX:        1 / pxX,
		invY:        1 / pxY,
		overwrite:   opt.Policy == Overwrite,
		period:      opt.Period,
		checkPeriod: opt.CheckPeriod,
	}
}

// splatRange draws cells lo..hi-1 into buf.
func (s *splatter) splatRange(cells *Cells2D, lo, hi int, buf []float64) {
	for p := lo; p < hi; p++ {
		center := vec.Vec2{X: cells.X[p], Y: cells.Y[p]}
		half := vec.Vec2{X: cells.HalfX[p], Y: cells.HalfY[p]}
		value := cells.Value[p]

		offsets, n := s.images(center, half)
		for _, off := range offsets[:n] {
			s.splatCell(center.Add(off), half, value, buf)
		}
	}
}

// images returns the offsets at which a cell must be drawn.  The first
// offset is always zero.  With periodic wraparound enabled, a cell which
// crosses an edge of the bounds gets one extra image per axis, giving at
// most four combinations.  The x offset varies slowest.
func (s *splatter) images(center, half vec.Vec2) (offsets [4]vec.Vec2, n int) {
	var dx, dy [2]float64
	nx, ny := 1, 1
	if s.checkPeriod {
		b := s.bounds
		if center.X-half.X < b.LLx {
			dx[1], nx = s.period.X, 2
		} else if center.X+half.X > b.URx {
			dx[1], nx = -s.period.X, 2
		}
		if center.Y-half.Y < b.LLy {
			dy[1], ny = s.period.Y, 2
		} else if center.Y+half.Y > b.URy {
			dy[1], ny = -s.period.Y, 2
		}
	}

	for xi := range nx {
		for yi := range ny {
			offsets[n] = vec.Vec2{X: dx[xi], Y: dy[yi]}
			n++
		}
	}
	return offsets, n
}

// splatCell draws a single rectangle into buf.
func (s *splatter) splatCell(center, half vec.Vec2, value float64, buf []float64) {
	b := s.bounds
	xLo, xHi := center.X-half.X, center.X+half.X
	yLo, yHi := center.Y-half.Y, center.Y+half.Y
	if xHi < b.LLx || xLo > b.URx || yHi < b.LLy || yLo > b.URy {
		return
	}

	iMin, iMax := spanRange(xLo, xHi, b.LLx, s.invX, s.rows)
	jMin, jMax := spanRange(yLo, yHi, b.LLy, s.invY, s.cols)

	if s.overwrite {
		for i := iMin; i < iMax; i++ {
			row := buf[i*s.cols : (i+1)*s.cols]
			for j := jMin; j < jMax; j++ {
				row[j] = value
			}
		}
		return
	}

	for i := iMin; i < iMax; i++ {
		left := s.pxX*float64(i) + b.LLx
		right := s.pxX*float64(i+1) + b.LLx
		wx := overlap(left, right, xLo, xHi, s.invX)
		if wx < 0 {
			// the range is rounded outwards and may include a pixel
			// which the cell does not reach
			continue
		}
		row := buf[i*s.cols : (i+1)*s.cols]
		for j := jMin; j < jMax; j++ {
			bottom := s.pxY*float64(j) + b.LLy
			top := s.pxY*float64(j+1) + b.LLy
			wy := overlap(bottom, top, yLo, yHi, s.invY)
			if wy < 0 {
				continue
			}
			row[j] += value * wx * wy
		}
	}
}
