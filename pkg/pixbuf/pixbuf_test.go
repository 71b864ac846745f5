package pixbuf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNew_RejectsInvalidSizes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		stride        int
	}{
		{"zero width", 0, 10, 0},
		{"negative height", 10, -1, 30},
		{"short stride", 10, 10, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithStride(tt.width, tt.height, tt.stride)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestRawImage_CloneIsolation(t *testing.T) {
	orig, err := New(16, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	orig.Fill(RGB{R: 10, G: 20, B: 30})
	before := append([]uint8(nil), orig.Pix...)

	clone := orig.Clone()
	for y := 0; y < clone.Height; y++ {
		for x := 0; x < clone.Width; x++ {
			clone.SetPixel(x, y, RGB{R: 255})
		}
	}

	if !bytes.Equal(orig.Pix, before) {
		t.Error("mutating the clone changed the original")
	}
}

func TestRawImage_PixelAtOutOfBounds(t *testing.T) {
	m, _ := New(4, 4)

	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, c := range coords {
		if _, err := m.PixelAt(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("PixelAt(%d,%d): expected ErrOutOfBounds, got %v", c[0], c[1], err)
		}
	}
}

func TestRawImage_SetPixelClips(t *testing.T) {
	m, _ := New(4, 4)
	before := append([]uint8(nil), m.Pix...)

	m.SetPixel(-1, 2, RGB{R: 1})
	m.SetPixel(4, 0, RGB{R: 1})
	m.SetPixel(0, 99, RGB{R: 1})

	if !bytes.Equal(m.Pix, before) {
		t.Error("out-of-range writes modified the buffer")
	}

	m.SetPixel(3, 3, RGB{R: 7, G: 8, B: 9})
	got, err := m.PixelAt(3, 3)
	if err != nil {
		t.Fatalf("PixelAt failed: %v", err)
	}
	if got != (RGB{R: 7, G: 8, B: 9}) {
		t.Errorf("expected {7 8 9}, got %v", got)
	}
}

func TestRawImage_StridePadding(t *testing.T) {
	m, err := NewWithStride(3, 2, 12)
	if err != nil {
		t.Fatalf("NewWithStride failed: %v", err)
	}
	m.SetPixel(2, 1, RGB{R: 1, G: 2, B: 3})

	if m.Pix[12+6] != 1 || m.Pix[12+7] != 2 || m.Pix[12+8] != 3 {
		t.Errorf("pixel written at wrong offset: %v", m.Pix)
	}

	packed, _ := New(3, 2)
	packed.SetPixel(2, 1, RGB{R: 1, G: 2, B: 3})
	if !m.Equal(packed) {
		t.Error("expected padded and packed buffers to compare equal")
	}
}

func TestRawImage_ImageInterface(t *testing.T) {
	m, _ := New(5, 3)
	m.SetPixel(1, 1, RGB{R: 200, G: 100, B: 50})

	if m.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Errorf("unexpected bounds %v", m.Bounds())
	}
	if got := m.At(1, 1); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("unexpected At value %v", got)
	}

	rgba := m.ToRGBA()
	if got := rgba.RGBAAt(1, 1); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("unexpected ToRGBA value %v", got)
	}
}

func TestRGB_Color(t *testing.T) {
	var c color.Color = RGB{R: 0, G: 255, B: 128}

	if got := color.RGBAModel.Convert(c); got != (color.RGBA{G: 255, B: 128, A: 255}) {
		t.Errorf("unexpected conversion %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	src.Set(11, 11, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	m, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if m.Width != 4 || m.Height != 2 {
		t.Fatalf("expected 4x2, got %dx%d", m.Width, m.Height)
	}
	got, _ := m.PixelAt(1, 1)
	if got != (RGB{R: 40, G: 50, B: 60}) {
		t.Errorf("expected {40 50 60}, got %v", got)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(1, 0, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	m, err = FromImage(rgba)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	got, _ = m.PixelAt(1, 0)
	if got != (RGB{R: 9, G: 8, B: 7}) {
		t.Errorf("expected {9 8 7}, got %v", got)
	}
}
