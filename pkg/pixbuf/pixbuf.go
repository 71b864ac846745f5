// Package pixbuf provides the owned RGB24 pixel buffer the renderer draws into.
package pixbuf

import (
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is fixed: three interleaved 8-bit channels in R, G, B order.
const BytesPerPixel = 3

// RGB is a single opaque pixel value.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The alpha channel is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// RawImage is a mutable row-major RGB24 buffer.
// The pixel at (x, y) starts at Pix[y*Stride + x*3].
type RawImage struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// New allocates a zeroed (black) buffer with a tightly packed stride.
func New(width, height int) (*RawImage, error) {
	return NewWithStride(width, height, width*BytesPerPixel)
}

// NewWithStride allocates a zeroed buffer with an explicit row stride.
func NewWithStride(width, height, stride int) (*RawImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidSize, width, height)
	}
	if stride < width*BytesPerPixel {
		return nil, fmt.Errorf("%w: stride %d shorter than row of %d pixels", ErrInvalidSize, stride, width)
	}
	return &RawImage{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]uint8, height*stride),
	}, nil
}

// Fill sets every pixel to c.
func (m *RawImage) Fill(c RGB) {
	for y := 0; y < m.Height; y++ {
		row := y * m.Stride
		for x := 0; x < m.Width; x++ {
			i := row + x*BytesPerPixel
			m.Pix[i] = c.R
			m.Pix[i+1] = c.G
			m.Pix[i+2] = c.B
		}
	}
}

// Clone returns an independent deep copy.
func (m *RawImage) Clone() *RawImage {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &RawImage{
		Width:  m.Width,
		Height: m.Height,
		Stride: m.Stride,
		Pix:    pix,
	}
}

// In reports whether (x, y) lies inside the buffer.
func (m *RawImage) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

func (m *RawImage) offset(x, y int) int {
	return y*m.Stride + x*BytesPerPixel
}

// PixelAt returns the pixel at (x, y), or an error wrapping ErrOutOfBounds.
func (m *RawImage) PixelAt(x, y int) (RGB, error) {
	if !m.In(x, y) {
		return RGB{}, fmt.Errorf("pixel (%d,%d) in %dx%d buffer: %w", x, y, m.Width, m.Height, ErrOutOfBounds)
	}
	i := m.offset(x, y)
	return RGB{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}, nil
}

// SetPixel writes c at (x, y). Writes outside the buffer are dropped.
func (m *RawImage) SetPixel(x, y int, c RGB) {
	if !m.In(x, y) {
		return
	}
	i := m.offset(x, y)
	m.Pix[i] = c.R
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.B
}

// Equal reports whether both buffers hold the same visible pixels.
// Padding bytes past Width*3 in each row are ignored.
func (m *RawImage) Equal(o *RawImage) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	n := m.Width * BytesPerPixel
	for y := 0; y < m.Height; y++ {
		a := m.Pix[y*m.Stride : y*m.Stride+n]
		b := o.Pix[y*o.Stride : y*o.Stride+n]
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// ColorModel implements image.Image.
func (m *RawImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (m *RawImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At implements image.Image. Out-of-range coordinates yield transparent black.
func (m *RawImage) At(x, y int) color.Color {
	if !m.In(x, y) {
		return color.RGBA{}
	}
	i := m.offset(x, y)
	return color.RGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: 0xff}
}

// ToRGBA expands the buffer into an opaque *image.RGBA for the standard encoders.
func (m *RawImage) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		src := y * m.Stride
		out := y * dst.Stride
		for x := 0; x < m.Width; x++ {
			dst.Pix[out] = m.Pix[src]
			dst.Pix[out+1] = m.Pix[src+1]
			dst.Pix[out+2] = m.Pix[src+2]
			dst.Pix[out+3] = 0xff
			src += BytesPerPixel
			out += 4
		}
	}
	return dst
}

// FromImage converts any decoded image into a tightly packed RawImage.
// Translucent pixels are composited over black.
func FromImage(img image.Image) (*RawImage, error) {
	b := img.Bounds()
	m, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < m.Height; y++ {
			src := (y+b.Min.Y-rgba.Rect.Min.Y)*rgba.Stride + (b.Min.X-rgba.Rect.Min.X)*4
			out := y * m.Stride
			for x := 0; x < m.Width; x++ {
				m.Pix[out] = rgba.Pix[src]
				m.Pix[out+1] = rgba.Pix[src+1]
				m.Pix[out+2] = rgba.Pix[src+2]
				src += 4
				out += BytesPerPixel
			}
		}
		return m, nil
	}

	for y := 0; y < m.Height; y++ {
		out := y * m.Stride
		for x := 0; x < m.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.Pix[out] = uint8(r >> 8)
			m.Pix[out+1] = uint8(g >> 8)
			m.Pix[out+2] = uint8(bl >> 8)
			out += BytesPerPixel
		}
	}
	return m, nil
}
