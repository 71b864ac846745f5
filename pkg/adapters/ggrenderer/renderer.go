// Package ggrenderer draws debug overlays using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/user/bouncer/pkg/ports"
)

var defaultOverlayColor = color.RGBA{R: 0, G: 255, B: 128, A: 255}

// Renderer implements ports.Annotator using gg.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Annotate draws the disc outline, a crosshair at its center and a caption
// with the frame index and motion offset onto a copy of img.
func (r *Renderer) Annotate(img image.Image, a ports.Annotation) image.Image {
	dc := gg.NewContextForImage(img)

	col := a.Color
	if col == nil {
		col = defaultOverlayColor
	}
	dc.SetColor(col)
	dc.SetLineWidth(1)

	cx, cy := float64(a.CenterX), float64(a.CenterY)
	if a.Radius > 0 {
		dc.DrawCircle(cx, cy, float64(a.Radius))
		dc.Stroke()
	}

	arm := float64(max(a.Radius/4, 3))
	dc.DrawLine(cx-arm, cy, cx+arm, cy)
	dc.DrawLine(cx, cy-arm, cx, cy+arm)
	dc.Stroke()

	caption := fmt.Sprintf("#%03d y=%.3f (%d,%d) r=%d", a.FrameIndex, a.Offset, a.CenterX, a.CenterY, a.Radius)
	dc.DrawStringAnchored(caption, 4, 4, 0, 1)

	return dc.Image()
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Annotator
var _ ports.Annotator = (*Renderer)(nil)
