package maskpyr

import (
	"math"

	"github.com/gogpu/maskpyr/internal/parallel"
)

// Below this many output rows a parallel dispatch costs more than the
// accumulation itself.
const minParallelRows = 8

// Halve downsamples a weight buffer to half size in each dimension.
//
// The full buffer is partitioned into non-overlapping 2x2 blocks aligned to
// the top-left corner; each output cell receives the sum of the absolute
// values of the pixels in its block. No averaging takes place, so coarser
// cells carry the aggregate validity mass of the region they cover.
//
// If fullWidth is odd the trailing column contributes to no output cell,
// and if fullHeight is odd the trailing row contributes to no output cell;
// only the first 2*(fullWidth/2) columns and 2*(fullHeight/2) rows are read.
//
// Dimensions are trusted: full must hold at least fullWidth*fullHeight
// samples. The returned buffer has fullWidth/2 * fullHeight/2 elements
// (integer division) and is freshly allocated on every call.
func Halve(full []float64, fullWidth, fullHeight int) []float64 {
	halfWidth := fullWidth / 2
	halfHeight := fullHeight / 2
	half := make([]float64, halfWidth*halfHeight)
	halveBand(half, full, fullWidth, halfWidth, 0, halfHeight)
	return half
}

// halveBand accumulates output rows [y0, y1). Each output row reads one pair
// of source rows, so bands over disjoint row ranges touch disjoint parts of
// both buffers and may run concurrently.
func halveBand(half, full []float64, fullWidth, halfWidth, y0, y1 int) {
	for y := y0; y < y1; y++ {
		top := full[2*y*fullWidth : 2*y*fullWidth+fullWidth]
		bottom := full[(2*y+1)*fullWidth : (2*y+2)*fullWidth]
		row := half[y*halfWidth : (y+1)*halfWidth]
		for x := range row {
			row[x] = math.Abs(top[2*x]) + math.Abs(top[2*x+1]) +
				math.Abs(bottom[2*x]) + math.Abs(bottom[2*x+1])
		}
	}
}

// halveOn computes one level, splitting the output rows into bands across
// the pool when one is available and the level is worth the dispatch.
func halveOn(pool *parallel.Pool, full []float64, fullWidth, fullHeight int) []float64 {
	halfWidth := fullWidth / 2
	halfHeight := fullHeight / 2
	half := make([]float64, halfWidth*halfHeight)

	if pool == nil || halfHeight < minParallelRows {
		halveBand(half, full, fullWidth, halfWidth, 0, halfHeight)
		return half
	}

	step := (halfHeight + pool.Workers() - 1) / pool.Workers()
	tasks := make([]func(), 0, pool.Workers())
	for y0 := 0; y0 < halfHeight; y0 += step {
		y0, y1 := y0, min(y0+step, halfHeight)
		tasks = append(tasks, func() {
			halveBand(half, full, fullWidth, halfWidth, y0, y1)
		})
	}
	pool.Run(tasks)
	return half
}
