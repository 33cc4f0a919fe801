// Package maskpyr builds multi-resolution pyramids of validity masks for
// coarse-to-fine image registration.
//
// # Overview
//
// A registration algorithm that walks an image pyramid from coarse to fine
// needs a matching pyramid of per-pixel weights telling it which samples may
// contribute at each resolution. maskpyr owns exactly that structure: a
// full-resolution weight buffer ([Mask]) and the ordered sequence of
// progressively half-sized summaries built from it.
//
// Each coarser level is produced by [Halve]: every output cell receives the
// sum of the absolute values of the 2x2 block of finer pixels beneath it.
// The sum is deliberately not divided by four: a coarse cell carries the
// aggregate validity mass of the region it covers, so a cell worth 4.0 at
// one level summarizes four fully valid pixels at the level below.
//
// # Quick Start
//
//	import "github.com/gogpu/maskpyr"
//
//	// Ingest a weight buffer and build three coarser levels.
//	m, err := maskpyr.New(weights, 640, 480, maskpyr.WithPyramidDepth(4))
//	if err != nil {
//	    // invalid dimensions or short buffer
//	}
//
//	full := m.Data()       // 640x480, borrowed
//	levels := m.Pyramid()  // 320x240, 160x120, 80x60, borrowed
//
// # Ownership
//
// New copies the caller's buffer; Data and Pyramid return borrowed views
// backed by storage the Mask owns. Pyramid levels are immutable once built.
//
// # Logging
//
// maskpyr produces no log output by default. Call [SetLogger] to receive
// debug-level records about buffer creation and pyramid construction.
package maskpyr
