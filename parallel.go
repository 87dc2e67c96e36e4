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
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// minChunk is the smallest number of cells handed to a single worker.
// Smaller inputs are processed on fewer goroutines.
const minChunk = 256

// accumulate runs fn over the cells 0..n-1, split into contiguous chunks.
// Every chunk adds into its own buffer of len(dst) elements; the first chunk
// uses dst directly.  The remaining buffers are added to dst in chunk order
// once all chunks are done, so the result does not depend on scheduling.
func accumulate(n, workers int, dst []float64, fn func(lo, hi int, buf []float64)) {
	workers = min(workers, (n+minChunk-1)/minChunk)
	if workers <= 1 {
		fn(0, n, dst)
		return
	}

	bufs := make([][]float64, workers)
	bufs[0] = dst
	var g errgroup.Group
	for w := range workers {
		lo := n * w / workers
		hi := n * (w + 1) / workers
		if w > 0 {
			bufs[w] = make([]float64, len(dst))
		}
		buf := bufs[w]
		g.Go(func() error {
			fn(lo, hi, buf)
			return nil
		})
	}
	_ = g.Wait()

	for _, buf := range bufs[1:] {
		floats.Add(dst, buf)
	}
}
