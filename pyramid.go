package maskpyr

import (
	"github.com/gogpu/maskpyr/internal/parallel"
)

// SetPyramidDepth sets the total number of pyramid levels, including the
// full-resolution level. Pure configuration: no rebuild happens until
// BuildPyramid is called. Depths below 1 are treated as 1.
func (m *Mask) SetPyramidDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	m.depth = depth
}

// PyramidDepth returns the configured total level count.
func (m *Mask) PyramidDepth() int { return m.depth }

// BuildPyramid constructs the coarser levels from the full-resolution mask
// using the currently configured depth, replacing any previously built
// levels. A depth of d runs exactly d-1 halving iterations; each level is
// computed from its predecessor and never mutated afterwards.
//
// The loop is a fixed count derived purely from configuration: there is no
// early termination, even when a dimension reaches zero.
func (m *Mask) BuildPyramid() {
	var pool *parallel.Pool
	if m.workers > 1 {
		pool = parallel.NewPool(m.workers)
		defer pool.Close()
	}

	m.pyramid = nil
	if m.depth > 1 {
		m.pyramid = make([]*Mask, 0, m.depth-1)
	}

	current := m.data
	w, h := m.width, m.height
	for depth := 1; depth < m.depth; depth++ {
		fullW, fullH := w, h
		w /= 2
		h /= 2
		current = halveOn(pool, current, fullW, fullH)
		m.pyramid = append(m.pyramid, &Mask{
			width:  w,
			height: h,
			data:   current,
			depth:  1,
		})
		Logger().Debug("pyramid level built", "level", depth, "width", w, "height", h)
	}
}

// Pyramid returns the ordered sequence of coarser levels, finest first:
// index 0 is the first-halved (second-finest) level. The slice and the
// levels are borrowed views; the full-resolution mask is not an element.
//
// The result is empty until BuildPyramid runs, and for depths of 1 or less.
func (m *Mask) Pyramid() []*Mask {
	return m.pyramid
}
