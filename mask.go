package maskpyr

import (
	"fmt"
	"image"
)

// Mask is a per-pixel weight buffer indicating validity or contribution
// strength for registration. Values are typically 0/1 flags but any float64
// weight is accepted; the pyramid filter folds signs via absolute value.
type Mask struct {
	width  int
	height int
	data   []float64

	// depth is the configured number of pyramid levels including the
	// full-resolution level. A depth of 1 means no coarser levels.
	depth   int
	workers int

	// pyramid holds the coarser levels, finest first. The full-resolution
	// mask itself is never an element.
	pyramid []*Mask
}

// New creates a mask from a caller-supplied sample buffer. The first
// width*height samples are copied; the caller's buffer is not retained.
//
// Returns ErrInvalidDimension if width or height is not positive, and
// ErrShortBuffer if samples holds fewer than width*height values.
//
// If WithPyramidDepth is supplied, the pyramid is built before New returns,
// so the depth is always configured ahead of the build.
func New(samples []float64, width, height int, opts ...Option) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if len(samples) < width*height {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(samples), width*height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Mask{
		width:   width,
		height:  height,
		data:    make([]float64, width*height),
		depth:   1,
		workers: o.workers,
	}
	copy(m.data, samples[:width*height])

	Logger().Debug("mask created", "width", width, "height", height)

	if o.depth > 0 {
		m.depth = o.depth
		m.BuildPyramid()
	}
	return m, nil
}

// NewUniform creates a mask with every element set to value.
// A value of 1.0 yields a fully valid mask.
func NewUniform(width, height int, value float64, opts ...Option) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Mask{
		width:   width,
		height:  height,
		data:    make([]float64, width*height),
		depth:   1,
		workers: o.workers,
	}
	m.Fill(value)

	if o.depth > 0 {
		m.depth = o.depth
		m.BuildPyramid()
	}
	return m, nil
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the weight at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the weight at (x, y).
// Coordinates outside the mask bounds are ignored.
//
// Mutating the full-resolution mask does not update already-built pyramid
// levels; call BuildPyramid again to refresh them.
func (m *Mask) Set(x, y int, value float64) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Data returns the full-resolution weight buffer in row-major order.
// The slice is a borrowed view; ownership stays with the mask.
func (m *Mask) Data() []float64 {
	return m.data
}

// Clear marks every pixel fully valid (weight 1.0).
func (m *Mask) Clear() {
	m.Fill(1.0)
}

// Fill sets every element to value.
func (m *Mask) Fill(value float64) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clone creates a deep copy of the full-resolution mask. The configured
// pyramid depth is carried over but the pyramid itself is not copied;
// call BuildPyramid on the clone if levels are needed.
func (m *Mask) Clone() *Mask {
	clone := &Mask{
		width:   m.width,
		height:  m.height,
		data:    make([]float64, len(m.data)),
		depth:   m.depth,
		workers: m.workers,
	}
	copy(clone.data, m.data)
	return clone
}
