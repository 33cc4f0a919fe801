package maskpyr

import "errors"

// Sentinel errors for the maskpyr package.
var (
	// ErrInvalidDimension is returned when a mask is constructed with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("maskpyr: invalid mask dimensions")

	// ErrShortBuffer is returned when the source buffer holds fewer than
	// width*height samples.
	ErrShortBuffer = errors.New("maskpyr: source buffer shorter than width*height")
)
