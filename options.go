package maskpyr

// Option configures a Mask during creation.
//
// Example:
//
//	// Ingest only; build the pyramid later with an explicit call.
//	m, err := maskpyr.New(samples, w, h)
//
//	// Ingest and build four levels in one step.
//	m, err := maskpyr.New(samples, w, h, maskpyr.WithPyramidDepth(4))
type Option func(*options)

// options holds optional configuration for Mask creation.
type options struct {
	// depth, when positive, triggers a pyramid build at construction
	// with that many total levels.
	depth   int
	workers int
}

// defaultOptions returns the default mask options: no pyramid build at
// construction, single-threaded downsampling.
func defaultOptions() options {
	return options{
		depth:   0,
		workers: 1,
	}
}

// WithPyramidDepth sets the total number of pyramid levels, including the
// full-resolution level, and builds the pyramid during construction.
// A depth of d produces d-1 coarser levels; depths below 1 are treated as 1
// (no coarser levels).
func WithPyramidDepth(depth int) Option {
	return func(o *options) {
		if depth < 1 {
			depth = 1
		}
		o.depth = depth
	}
}

// WithParallelism distributes the row-band accumulation of each pyramid
// level across n workers. Levels are still produced strictly in sequence,
// since each depends on its predecessor's output. n below 2 keeps the
// default single-threaded path.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
