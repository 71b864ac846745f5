package mocks

import (
	"image"

	"github.com/user/bouncer/pkg/ports"
)

// Annotator is a mock implementation of ports.Annotator that returns images unchanged.
type Annotator struct {
	AnnotateFunc  func(img image.Image, a ports.Annotation) image.Image
	EncodePNGFunc func(img image.Image) ([]byte, error)
}

func (m *Annotator) Annotate(img image.Image, a ports.Annotation) image.Image {
	if m.AnnotateFunc != nil {
		return m.AnnotateFunc(img, a)
	}
	return img
}

func (m *Annotator) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ ports.Annotator = (*Annotator)(nil)
