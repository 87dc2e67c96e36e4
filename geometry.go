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
)

// Vec3 is a point or direction in 3D world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Vec3FromSlice converts a slice of exactly three elements.
func Vec3FromSlice(s []float64) (Vec3, error) {
	if len(s) != 3 {
		return Vec3{}, fmt.Errorf("%w: center must have three elements, got %d", ErrInvalidShape, len(s))
	}
	return Vec3{s[0], s[1], s[2]}, nil
}

// Mat3 is a 3×3 matrix stored in row-major order.
type Mat3 [9]float64

// Identity3 is the 3×3 identity matrix.
var Identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Mat3FromSlice converts a row-major slice of exactly nine elements.
func Mat3FromSlice(s []float64) (Mat3, error) {
	var m Mat3
	if len(s) != len(m) {
		return m, fmt.Errorf("%w: matrix must be three by three, got %d elements", ErrInvalidShape, len(s))
	}
	copy(m[:], s)
	return m, nil
}

// Apply returns m·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// overlap returns the length of [lo1, hi1] ∩ [lo2, hi2], measured in units
// of scale⁻¹.  The result is negative if the intervals are disjoint.
func overlap(lo1, hi1, lo2, hi2, scale float64) float64 {
	return (min(hi1, hi2) - max(lo1, lo2)) * scale
}

// spanRange maps the interval [lo, hi] on an axis which starts at origin
// and has n pixels of size 1/scale to the half-open range of pixel indices
// touched by the interval.  The interval must intersect the axis.
func spanRange(lo, hi, origin, scale float64, n int) (first, last int) {
	first = int(max((lo-origin)*scale, 0))
	last = int(math.Ceil(min((hi-origin)*scale, float64(n))))
	return first, last
}

// boundingRange is like spanRange, but rounds outwards before clamping.
func boundingRange(lo, hi, origin, size float64, n int) (first, last int) {
	first = max(int(math.Floor((lo-origin)/size)), 0)
	last = min(int(math.Ceil((hi-origin)/size)), n)
	return first, last
}
