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

// Package cellio reads cell data from CSV files and writes pixel grids as
// CSV.
package cellio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"seehuhn.de/go/pixelize"
)

// Cell2D is one row of a planar cells file.
type Cell2D struct {
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	HalfX float64 `csv:"dx"`
	HalfY float64 `csv:"dy"`
	Value float64 `csv:"value"`
}

// Cell3D is one row of a 3D cells file.
type Cell3D struct {
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	PX    float64 `csv:"px"`
	PY    float64 `csv:"py"`
	HalfX float64 `csv:"dx"`
	HalfY float64 `csv:"dy"`
	HalfZ float64 `csv:"dz"`
	Value float64 `csv:"value"`
}

// Pixel is one row of a grid output file.
type Pixel struct {
	I     int     `csv:"i"`
	J     int     `csv:"j"`
	X     float64 `csv:"x"` // pixel center
	Y     float64 `csv:"y"`
	Value float64 `csv:"value"`
}

// ReadCells2D reads planar cells in CSV format.
func ReadCells2D(r io.Reader) (*pixelize.Cells2D, error) {
	var rows []Cell2D
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading cells: %w", err)
	}

	n := len(rows)
	c := &pixelize.Cells2D{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		HalfX: make([]float64, n),
		HalfY: make([]float64, n),
		Value: make([]float64, n),
	}
	for p, row := range rows {
		c.X[p] = row.X
		c.Y[p] = row.Y
		c.HalfX[p] = row.HalfX
		c.HalfY[p] = row.HalfY
		c.Value[p] = row.Value
	}
	return c, nil
}

// ReadCells3D reads 3D cells in CSV format.
func ReadCells3D(r io.Reader) (*pixelize.Cells3D, error) {
	var rows []Cell3D
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading cells: %w", err)
	}

	c := &pixelize.Cells3D{}
	for _, row := range rows {
		c.X = append(c.X, row.X)
		c.Y = append(c.Y, row.Y)
		c.Z = append(c.Z, row.Z)
		c.PX = append(c.PX, row.PX)
		c.PY = append(c.PY, row.PY)
		c.HalfX = append(c.HalfX, row.HalfX)
		c.HalfY = append(c.HalfY, row.HalfY)
		c.HalfZ = append(c.HalfZ, row.HalfZ)
		c.Value = append(c.Value, row.Value)
	}
	return c, nil
}

// WriteCells2D writes planar cells in CSV format, including a header.
func WriteCells2D(w io.Writer, cells []Cell2D) error {
	if err := gocsv.Marshal(cells, w); err != nil {
		return fmt.Errorf("writing cells: %w", err)
	}
	return nil
}

// WriteCells3D writes 3D cells in CSV format, including a header.
func WriteCells3D(w io.Writer, cells []Cell3D) error {
	if err := gocsv.Marshal(cells, w); err != nil {
		return fmt.Errorf("writing cells: %w", err)
	}
	return nil
}

// WriteGrid writes one row per pixel, in storage order.  Unsampled pixels
// are written as NaN.
func WriteGrid(w io.Writer, g *pixelize.Grid) error {
	rows := make([]Pixel, 0, len(g.Pix))
	for i := range g.Rows {
		for j := range g.Cols {
			c := g.PixelCenter(i, j)
			rows = append(rows, Pixel{I: i, J: j, X: c.X, Y: c.Y, Value: g.At(i, j)})
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}
	return nil
}
