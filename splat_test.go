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
	"errors"
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestRasterizePlanarEmpty(t *testing.T) {
	bounds := rect.Rect{LLx: -1, LLy: -2, URx: 3, URy: 5}
	for _, cells := range []*Cells2D{nil, {}} {
		for _, policy := range []WritePolicy{Accumulate, Overwrite} {
			g, err := RasterizePlanar(cells, 7, 3, bounds, &SplatOptions{Policy: policy})
			if err != nil {
				t.Fatal(err)
			}
			if len(g.Pix) != 21 {
				t.Fatalf("got %d pixels, want 21", len(g.Pix))
			}
			for k, v := range g.Pix {
				if v != 0 {
					t.Errorf("%s: pixel %d = %g, want 0", policy, k, v)
				}
			}
		}
	}
}

func TestRasterizePlanarErrors(t *testing.T) {
	unit := rect.Rect{URx: 1, URy: 1}
	one := []float64{1}
	good := &Cells2D{X: one, Y: one, HalfX: one, HalfY: one, Value: one}
	short := &Cells2D{X: one, Y: one, HalfX: one, HalfY: nil, Value: one}

	cases := []struct {
		name       string
		cells      *Cells2D
		rows, cols int
		bounds     rect.Rect
		want       error
	}{
		{"zero_rows", good, 0, 4, unit, ErrInvalidDimension},
		{"zero_cols", good, 4, 0, unit, ErrInvalidDimension},
		{"negative_rows", good, -1, 4, unit, ErrInvalidDimension},
		{"zero_before_shape", short, 0, 0, unit, ErrInvalidDimension},
		{"flat_x", good, 4, 4, rect.Rect{LLx: 1, URx: 1, URy: 1}, ErrInvalidDimension},
		{"flipped_y", good, 4, 4, rect.Rect{URx: 1, LLy: 1}, ErrInvalidDimension},
		{"nan_bounds", good, 4, 4, rect.Rect{URx: math.NaN(), URy: 1}, ErrInvalidDimension},
		{"infinite_bounds", good, 4, 4, rect.Rect{URx: math.Inf(1), URy: 1}, ErrInvalidDimension},
		{"short_slice", short, 4, 4, unit, ErrInvalidShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := RasterizePlanar(tc.cells, tc.rows, tc.cols, tc.bounds, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
			if g != nil {
				t.Error("grid returned together with an error")
			}
		})
	}
}

// TestMassConservation checks that the area-weighted contributions of a
// cell which lies inside the bounds add up to value·(cell area)/(pixel
// area).
func TestMassConservation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	bounds := rect.Rect{URx: 10, URy: 8}
	const rows, cols = 20, 16
	pixelArea := (10.0 / rows) * (8.0 / cols)

	for range 50 {
		hx := 0.05 + 2*rng.Float64()
		hy := 0.05 + 2*rng.Float64()
		x := hx + rng.Float64()*(10-2*hx)
		y := hy + rng.Float64()*(8-2*hy)
		value := 10*rng.Float64() - 5

		cells := &Cells2D{
			X: []float64{x}, Y: []float64{y},
			HalfX: []float64{hx}, HalfY: []float64{hy},
			Value: []float64{value},
		}
		g, err := RasterizePlanar(cells, rows, cols, bounds, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := value * (4 * hx * hy) / pixelArea
		if got := g.Sum(); math.Abs(got-want) > 1e-9*max(1, math.Abs(want)) {
			t.Errorf("cell (%g,%g)±(%g,%g): total %g, want %g", x, y, hx, hy, got, want)
		}
	}
}

func TestOverwriteInterior(t *testing.T) {
	cells := &Cells2D{
		X: []float64{5}, Y: []float64{5},
		HalfX: []float64{2.5}, HalfY: []float64{1.5},
		Value: []float64{7},
	}
	g, err := RasterizePlanar(cells, 10, 10, rect.Rect{URx: 10, URy: 10},
		&SplatOptions{Policy: Overwrite})
	if err != nil {
		t.Fatal(err)
	}

	// x ∈ [2.5, 7.5] touches rows 2..7, y ∈ [3.5, 6.5] touches columns 3..6
	for i := range g.Rows {
		for j := range g.Cols {
			want := 0.0
			if i >= 2 && i < 8 && j >= 3 && j < 7 {
				want = 7
			}
			if got := g.At(i, j); got != want {
				t.Errorf("pixel (%d,%d) = %g, want %g", i, j, got, want)
			}
		}
	}
}

func TestPeriodicWrap(t *testing.T) {
	cells := &Cells2D{
		X: []float64{0.2}, Y: []float64{2},
		HalfX: []float64{0.7}, HalfY: []float64{0.5},
		Value: []float64{1},
	}
	bounds := rect.Rect{URx: 4, URy: 4}
	period := vec.Vec2{X: 4, Y: 4}

	wrapped, err := RasterizePlanar(cells, 4, 4, bounds,
		&SplatOptions{Period: period, CheckPeriod: true})
	if err != nil {
		t.Fatal(err)
	}
	clipped, err := RasterizePlanar(cells, 4, 4, bounds,
		&SplatOptions{Period: period})
	if err != nil {
		t.Fatal(err)
	}

	if got := wrapped.Sum(); math.Abs(got-1.4) > 1e-12 {
		t.Errorf("wrapped total %g, want 1.4", got)
	}
	if got := clipped.Sum(); math.Abs(got-0.9) > 1e-12 {
		t.Errorf("clipped total %g, want 0.9", got)
	}
	for j := 1; j < 3; j++ {
		if wrapped.At(0, j) <= 0 || wrapped.At(3, j) <= 0 {
			t.Errorf("column %d: wrapped cell missing on one edge", j)
		}
		if clipped.At(0, j) <= 0 || clipped.At(3, j) != 0 {
			t.Errorf("column %d: clipped cell deposited on the far edge", j)
		}
	}
}

func TestImages(t *testing.T) {
	s := &splatter{
		bounds:      rect.Rect{URx: 10, URy: 10},
		period:      vec.Vec2{X: 10, Y: 20},
		checkPeriod: true,
	}
	cases := []struct {
		center, half vec.Vec2
		want         []vec.Vec2
	}{
		{vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 1, Y: 1}, []vec.Vec2{{}}},
		{vec.Vec2{X: 0.5, Y: 5}, vec.Vec2{X: 1, Y: 1}, []vec.Vec2{{}, {X: 10}}},
		{vec.Vec2{X: 5, Y: 9.5}, vec.Vec2{X: 1, Y: 1}, []vec.Vec2{{}, {Y: -20}}},
		{vec.Vec2{X: 9.5, Y: 0.5}, vec.Vec2{X: 1, Y: 1}, []vec.Vec2{{}, {Y: 20}, {X: -10}, {X: -10, Y: 20}}},
		// the lower edge takes precedence for cells wider than the domain
		{vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 6, Y: 1}, []vec.Vec2{{}, {X: 10}}},
	}
	for _, tc := range cases {
		offsets, n := s.images(tc.center, tc.half)
		if d := cmp.Diff(tc.want, offsets[:n]); d != "" {
			t.Errorf("images(%v, %v) (-want +got):\n%s", tc.center, tc.half, d)
		}
	}

	s.checkPeriod = false
	if _, n := s.images(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}); n != 1 {
		t.Errorf("got %d images without periodicity, want 1", n)
	}
}

// TestCoverageMatchesVector compares the antialiased coverage of single
// rectangles with the coverage computed by golang.org/x/image/vector.
func TestCoverageMatchesVector(t *testing.T) {
	const w, h = 16, 12
	rects := []rect.Rect{
		{LLx: 2.25, LLy: 3.5, URx: 9.75, URy: 7.125},
		{LLx: 0.1, LLy: 0.2, URx: 15.9, URy: 11.8},
		{LLx: 5.5, LLy: 5.5, URx: 6.25, URy: 6.75},
		{LLx: 3.3, LLy: 1.7, URx: 3.9, URy: 10.6},
	}
	for _, r := range rects {
		cells := &Cells2D{
			X:     []float64{(r.LLx + r.URx) / 2},
			Y:     []float64{(r.LLy + r.URy) / 2},
			HalfX: []float64{(r.URx - r.LLx) / 2},
			HalfY: []float64{(r.URy - r.LLy) / 2},
			Value: []float64{1},
		}
		g, err := RasterizePlanar(cells, w, h, rect.Rect{URx: w, URy: h}, nil)
		if err != nil {
			t.Fatal(err)
		}

		z := vector.NewRasterizer(w, h)
		z.MoveTo(float32(r.LLx), float32(r.LLy))
		z.LineTo(float32(r.URx), float32(r.LLy))
		z.LineTo(float32(r.URx), float32(r.URy))
		z.LineTo(float32(r.LLx), float32(r.URy))
		z.ClosePath()
		dst := image.NewAlpha(image.Rect(0, 0, w, h))
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

		for i := range w {
			for j := range h {
				want := float64(dst.AlphaAt(i, j).A) / 255
				if got := g.At(i, j); math.Abs(got-want) > 4.0/255 {
					t.Errorf("%v: pixel (%d,%d) = %.4f, vector gives %.4f", r, i, j, got, want)
				}
			}
		}
	}
}

func TestParallelSplat(t *testing.T) {
	cells := randomCells2D(rand.New(rand.NewPCG(3, 4)), 5000)
	bounds := rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}
	opt := &SplatOptions{Period: vec.Vec2{X: 2, Y: 2}, CheckPeriod: true}

	seq, err := RasterizePlanar(cells, 64, 48, bounds, opt)
	if err != nil {
		t.Fatal(err)
	}
	opt.Workers = 4
	par, err := RasterizePlanar(cells, 64, 48, bounds, opt)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(seq.Pix, par.Pix, cmpopts.EquateApprox(1e-12, 1e-9)); d != "" {
		t.Errorf("parallel result differs (-seq +par):\n%s", d)
	}

	// overwrite mode ignores Workers
	opt.Policy = Overwrite
	opt.Workers = 1
	seq, _ = RasterizePlanar(cells, 64, 48, bounds, opt)
	opt.Workers = 8
	par, _ = RasterizePlanar(cells, 64, 48, bounds, opt)
	if d := cmp.Diff(seq.Pix, par.Pix); d != "" {
		t.Errorf("overwrite result depends on Workers (-seq +par):\n%s", d)
	}
}

func TestWritePolicyString(t *testing.T) {
	for p, want := range map[WritePolicy]string{
		Accumulate:     "accumulate",
		Overwrite:      "overwrite",
		WritePolicy(7): "WritePolicy(7)",
	} {
		if got := p.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(p), got, want)
		}
	}
}

// randomCells2D returns n cells scattered over [-1.2, 1.2]², some of
// which cross the edges of [-1, 1]².
func randomCells2D(rng *rand.Rand, n int) *Cells2D {
	c := &Cells2D{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		HalfX: make([]float64, n),
		HalfY: make([]float64, n),
		Value: make([]float64, n),
	}
	for p := range n {
		c.X[p] = 2.4*rng.Float64() - 1.2
		c.Y[p] = 2.4*rng.Float64() - 1.2
		c.HalfX[p] = 0.001 + 0.1*rng.Float64()
		c.HalfY[p] = 0.001 + 0.1*rng.Float64()
		c.Value[p] = rng.NormFloat64()
	}
	return c
}
