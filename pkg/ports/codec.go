package ports

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/bouncer/pkg/pixbuf"
)

// ImageFormat names an output image encoding.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpg"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

// ParseImageFormat parses a format name. "jpeg" and "tif" are accepted as aliases.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrEncoderUnavailable, s)
	}
}

// Extension returns the file extension written for this format, without the dot.
func (f ImageFormat) Extension() string {
	return string(f)
}

// DecodeOptions is the pixel layout request for a decode.
// A zero Width and Height keep the source dimensions.
type DecodeOptions struct {
	Width  int
	Height int
}

// ImageDecoder decodes a single frame from an image container.
type ImageDecoder interface {
	// DecodeFirstFrame reads the container at path and returns its first frame
	// as an RGB24 buffer. Errors are *CodecError values of kind ErrOpen,
	// ErrCodecUnsupported or ErrDecode.
	DecodeFirstFrame(ctx context.Context, path string, opts DecodeOptions) (*pixbuf.RawImage, error)
}

// ImageEncoder writes a single frame to an image file.
type ImageEncoder interface {
	// EncodeFrame encodes img and writes it to path, replacing any existing file.
	// Errors are *CodecError values of kind ErrEncoderUnavailable, ErrEncode or ErrIO.
	// On failure no partial file is left at path.
	EncodeFrame(ctx context.Context, path string, img *pixbuf.RawImage) error

	// Format returns the output format used by EncodeFrame.
	Format() ImageFormat
}

// ImageCodec combines decoding and encoding.
type ImageCodec interface {
	ImageDecoder
	ImageEncoder
}
