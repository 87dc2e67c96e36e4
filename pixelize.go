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

// Package pixelize resamples cell-based data, such as the cells of an
// adaptive mesh, onto regular pixel grids.
//
// Two independent rasterizers are provided. [RasterizePlanar] splats 2D
// axis-aligned rectangles onto a grid, weighting each pixel by the area it
// shares with the cell. [ProjectCuttingPlane] samples 3D box cells along a
// plane: every pixel center is mapped back to world space and averaged over
// all cells which contain it.
//
// Both functions validate their inputs before allocating any output and
// report problems using the sentinel errors below.
package pixelize

import "errors"

var (
	// ErrInvalidShape is returned when parallel input slices have
	// different lengths, or a vector or matrix has the wrong number of
	// elements.
	ErrInvalidShape = errors.New("pixelize: invalid shape")

	// ErrInvalidDimension is returned for non-positive grid sizes and for
	// degenerate bounds.
	ErrInvalidDimension = errors.New("pixelize: invalid dimension")

	// ErrInvalidIndex is returned when a selection index does not refer
	// to an existing cell.
	ErrInvalidIndex = errors.New("pixelize: invalid index")
)
