package maskpyr

import (
	"image"
	"image/png"
	"os"
)

// FromGray creates a 0/1 validity mask from a grayscale image: every
// nonzero pixel becomes weight 1.0 and every zero pixel weight 0.0.
// The image data is copied, not retained.
func FromGray(img *image.Gray, opts ...Option) (*Mask, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	samples := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y != 0 {
				samples[y*w+x] = 1.0
			}
		}
	}
	return New(samples, w, h, opts...)
}

// Image renders the mask to a grayscale image for inspection. Weights are
// scaled so the largest magnitude maps to 255; stored values are not
// modified. Coarse pyramid levels accumulate magnitudes well above 1.0,
// so the scaling is per-buffer, not shared across levels.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))

	maxVal := 0.0
	for _, v := range m.data {
		if v > maxVal {
			maxVal = v
		} else if -v > maxVal {
			maxVal = -v
		}
	}
	if maxVal == 0 {
		return img
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			v := m.data[y*m.width+x]
			if v < 0 {
				v = -v
			}
			img.Pix[y*img.Stride+x] = uint8(v / maxVal * 255)
		}
	}
	return img
}

// SavePNG saves a grayscale rendition of the mask to a PNG file.
func (m *Mask) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, m.Image())
}
