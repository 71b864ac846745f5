package mocks

import (
	"context"
	"sync"

	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec.
// Without hooks it decodes Background and records every encoded frame.
type ImageCodec struct {
	mu sync.Mutex

	Background   *pixbuf.RawImage
	OutputFormat ports.ImageFormat

	DecodeFunc func(ctx context.Context, path string, opts ports.DecodeOptions) (*pixbuf.RawImage, error)
	EncodeFunc func(ctx context.Context, path string, img *pixbuf.RawImage) error

	// Recorded calls for verification
	DecodeCalls int
	Encoded     map[string]*pixbuf.RawImage
}

// NewImageCodec creates a mock codec that decodes to background.
func NewImageCodec(background *pixbuf.RawImage) *ImageCodec {
	return &ImageCodec{
		Background:   background,
		OutputFormat: ports.FormatPNG,
		Encoded:      make(map[string]*pixbuf.RawImage),
	}
}

func (m *ImageCodec) DecodeFirstFrame(ctx context.Context, path string, opts ports.DecodeOptions) (*pixbuf.RawImage, error) {
	m.mu.Lock()
	m.DecodeCalls++
	m.mu.Unlock()
	if m.DecodeFunc != nil {
		return m.DecodeFunc(ctx, path, opts)
	}
	return m.Background.Clone(), nil
}

func (m *ImageCodec) EncodeFrame(ctx context.Context, path string, img *pixbuf.RawImage) error {
	if m.EncodeFunc != nil {
		if err := m.EncodeFunc(ctx, path, img); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Encoded[path] = img.Clone()
	return nil
}

func (m *ImageCodec) Format() ports.ImageFormat {
	return m.OutputFormat
}

// Frame returns the buffer encoded to path.
func (m *ImageCodec) Frame(path string) (*pixbuf.RawImage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.Encoded[path]
	return img, ok
}

// EncodedCount returns the number of frames encoded.
func (m *ImageCodec) EncodedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Encoded)
}

var _ ports.ImageCodec = (*ImageCodec)(nil)
