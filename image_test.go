package maskpyr

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFromGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Pix = []uint8{0, 255, 7, 0}

	m, err := FromGray(img)
	if err != nil {
		t.Fatalf("FromGray failed: %v", err)
	}

	want := []float64{0, 1, 1, 0}
	for i, v := range m.Data() {
		if v != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], v)
		}
	}
}

func TestFromGrayOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 13, 22))
	img.SetGray(11, 21, color.Gray{Y: 200})

	m, err := FromGray(img)
	if err != nil {
		t.Fatalf("FromGray failed: %v", err)
	}
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", m.Width(), m.Height())
	}
	if got := m.At(1, 1); got != 1 {
		t.Errorf("expected 1 at (1,1), got %v", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("expected 0 at (0,0), got %v", got)
	}
}

func TestImageScaling(t *testing.T) {
	m, err := New([]float64{0, 1, 2, 0}, 2, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	img := m.Image()

	if got := img.GrayAt(0, 1).Y; got != 255 {
		t.Errorf("max value should map to 255, got %d", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 127 {
		t.Errorf("half of max should map to 127, got %d", got)
	}
	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("zero weight should map to 0, got %d", got)
	}
}

func TestImageAllZero(t *testing.T) {
	m, err := NewUniform(3, 3, 0)
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}

	img := m.Image()
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("all-zero mask should render black")
		}
	}
}

func TestSavePNG(t *testing.T) {
	m, err := NewUniform(4, 4, 1)
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "mask.png")
	if err := m.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("expected 4x4 image, got %v", img.Bounds())
	}
}
