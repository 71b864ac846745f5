// Package raster draws the shaded disc onto a pixel buffer.
package raster

import (
	"math"

	"github.com/user/bouncer/pkg/pixbuf"
)

// Gradient is a two-stop radial gradient: Inner at the center (t=0), Outer at the edge (t=1).
type Gradient struct {
	Inner pixbuf.RGB
	Outer pixbuf.RGB
}

// At returns the interpolated color at t, rounded to the nearest channel value.
func (g Gradient) At(t float64) pixbuf.RGB {
	return pixbuf.RGB{
		R: lerp(g.Inner.R, g.Outer.R, t),
		G: lerp(g.Inner.G, g.Outer.G, t),
		B: lerp(g.Inner.B, g.Outer.B, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + t*(float64(b)-float64(a)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Disc is a filled circle in pixel coordinates. The center may lie outside the buffer.
type Disc struct {
	CenterX  int
	CenterY  int
	Radius   int
	Gradient Gradient
}

// Contains reports whether (x, y) is inside the disc, edge included.
func (d Disc) Contains(x, y int) bool {
	if d.Radius <= 0 {
		return false
	}
	return distSq(x, y, d.CenterX, d.CenterY) <= int64(d.Radius)*int64(d.Radius)
}

func distSq(x, y, cx, cy int) int64 {
	dx := int64(x - cx)
	dy := int64(y - cy)
	return dx*dx + dy*dy
}

// RenderDisc overwrites every pixel of buf inside d with its gradient color.
// Pixels outside the disc are left untouched; a non-positive radius draws nothing.
// The whole buffer is scanned, so discs crossing the edges are clipped implicitly.
func RenderDisc(buf *pixbuf.RawImage, d Disc) {
	if d.Radius <= 0 {
		return
	}

	r := float64(d.Radius)
	r2 := int64(d.Radius) * int64(d.Radius)

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			d2 := distSq(x, y, d.CenterX, d.CenterY)
			if d2 > r2 {
				continue
			}
			t := math.Sqrt(float64(d2)) / r
			buf.SetPixel(x, y, d.Gradient.At(t))
		}
	}
}
