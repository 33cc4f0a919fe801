// Command maskpyrdemo builds a mask pyramid and writes every level out as
// an image for inspection.
//
// With -input it reads a PNG and treats every nonzero gray pixel as valid;
// without it a synthetic annulus mask is generated. Coarse levels are tiny,
// so -upscale renders each one at the full-resolution size with
// nearest-neighbor sampling to make the block structure visible.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/gen2brain/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/maskpyr"
)

func main() {
	var (
		input   = flag.String("input", "", "input PNG; nonzero gray pixels become valid")
		width   = flag.Int("width", 512, "synthetic mask width (ignored with -input)")
		height  = flag.Int("height", 512, "synthetic mask height (ignored with -input)")
		depth   = flag.Int("depth", 5, "total pyramid levels including full resolution")
		workers = flag.Int("workers", 1, "row-band workers per level")
		outdir  = flag.String("outdir", ".", "output directory")
		format  = flag.String("format", "png", "level encoding: png, webp")
		quality = flag.Int("quality", 85, "webp quality")
		upscale = flag.Bool("upscale", false, "render every level at full-resolution size")
	)
	flag.Parse()

	if *format != "png" && *format != "webp" {
		log.Fatalf("Unknown format %q (want png or webp)", *format)
	}

	var (
		m   *maskpyr.Mask
		err error
	)
	opts := []maskpyr.Option{
		maskpyr.WithPyramidDepth(*depth),
		maskpyr.WithParallelism(*workers),
	}
	if *input != "" {
		m, err = loadMask(*input, opts)
	} else {
		m, err = syntheticMask(*width, *height, opts)
	}
	if err != nil {
		log.Fatalf("Failed to build mask: %v", err)
	}

	report(0, m)
	if err := writeLevel(m, 0, *outdir, *format, *quality, *upscale, m.Bounds()); err != nil {
		log.Fatalf("Failed to write level 0: %v", err)
	}
	for i, level := range m.Pyramid() {
		report(i+1, level)
		if err := writeLevel(level, i+1, *outdir, *format, *quality, *upscale, m.Bounds()); err != nil {
			log.Fatalf("Failed to write level %d: %v", i+1, err)
		}
	}

	log.Printf("Wrote %d levels to %s", len(m.Pyramid())+1, *outdir)
}

// loadMask reads a PNG and converts it to a 0/1 validity mask.
func loadMask(path string, opts []maskpyr.Option) (*maskpyr.Mask, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return maskpyr.FromGray(gray, opts...)
}

// syntheticMask marks an annulus around the center valid and everything
// else invalid, giving the pyramid a recognizable shape at every level.
func syntheticMask(w, h int, opts []maskpyr.Option) (*maskpyr.Mask, error) {
	samples := make([]float64, w*h)
	cx, cy := float64(w)/2, float64(h)/2
	outer := min(cx, cy) * 0.9
	inner := outer * 0.4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d2 := dx*dx + dy*dy
			if d2 <= outer*outer && d2 >= inner*inner {
				samples[y*w+x] = 1.0
			}
		}
	}
	return maskpyr.New(samples, w, h, opts...)
}

func report(level int, m *maskpyr.Mask) {
	maxVal, mass := 0.0, 0.0
	for _, v := range m.Data() {
		if v > maxVal {
			maxVal = v
		}
		mass += v
	}
	log.Printf("level %d: %dx%d max=%.1f mass=%.1f", level, m.Width(), m.Height(), maxVal, mass)
}

func writeLevel(m *maskpyr.Mask, level int, outdir, format string, quality int, upscale bool, full image.Rectangle) error {
	var img image.Image = m.Image()
	if img.Bounds().Empty() {
		log.Printf("level %d is empty, skipping", level)
		return nil
	}
	if upscale && level > 0 {
		dst := image.NewGray(full)
		xdraw.NearestNeighbor.Scale(dst, full, img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	path := filepath.Join(outdir, fmt.Sprintf("level%02d.%s", level, format))
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if format == "webp" {
		return webp.Encode(f, img, webp.Options{Lossless: true, Quality: quality})
	}
	return png.Encode(f, img)
}
