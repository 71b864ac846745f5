package ports

import (
	"image"
	"image/color"
)

// Annotation describes the overlay drawn on a debug copy of a frame.
type Annotation struct {
	FrameIndex int
	CenterX    int
	CenterY    int
	Radius     int
	Offset     float64 // motion table value used for CenterY
	Color      color.Color
}

// Annotator draws diagnostic overlays on rendered frames.
type Annotator interface {
	// Annotate returns a new image with the overlay drawn over img. img is not modified.
	Annotate(img image.Image, a Annotation) image.Image

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}
