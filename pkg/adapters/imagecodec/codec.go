// Package imagecodec decodes background images and encodes rendered frames.
package imagecodec

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	// Extra decoders; registration happens once, in package init.
	_ "image/gif"

	_ "golang.org/x/image/webp"

	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
)

const (
	opDecode = "decode"
	opEncode = "encode"

	// DefaultJPEGQuality is used when Options.JPEGQuality is zero.
	DefaultJPEGQuality = 90
)

type encodeFunc func(w io.Writer, img image.Image, quality int) error

var encoders = map[ports.ImageFormat]encodeFunc{
	ports.FormatPNG: func(w io.Writer, img image.Image, _ int) error {
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		return enc.Encode(w, img)
	},
	ports.FormatJPEG: func(w io.Writer, img image.Image, quality int) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	},
	ports.FormatBMP: func(w io.Writer, img image.Image, _ int) error {
		return bmp.Encode(w, img)
	},
	ports.FormatTIFF: func(w io.Writer, img image.Image, _ int) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

// Options configures the output side of the codec.
type Options struct {
	Format      ports.ImageFormat
	JPEGQuality int // 1-100, only used for FormatJPEG
}

// Codec implements ports.ImageCodec on top of the image package decoders.
// It keeps no state between calls.
type Codec struct {
	fs     ports.FileSystem
	logger ports.Logger
	opts   Options
}

// New creates a Codec that reads and writes through fs.
func New(fs ports.FileSystem, logger ports.Logger, opts Options) *Codec {
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = DefaultJPEGQuality
	}
	return &Codec{
		fs:     fs,
		logger: logger.WithComponent("codec"),
		opts:   opts,
	}
}

// Format returns the output format.
func (c *Codec) Format() ports.ImageFormat {
	return c.opts.Format
}

// DecodeFirstFrame decodes the image at path into an RGB24 buffer.
func (c *Codec) DecodeFirstFrame(ctx context.Context, path string, opts ports.DecodeOptions) (*pixbuf.RawImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, ports.NewCodecError(opDecode, path, ports.ErrOpen, err)
	}
	if len(data) == 0 {
		return nil, ports.NewCodecError(opDecode, path, ports.ErrOpen, errors.New("file is empty"))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ports.NewCodecError(opDecode, path, ports.ErrCodecUnsupported, err)
		}
		return nil, ports.NewCodecError(opDecode, path, ports.ErrOpen, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ports.NewCodecError(opDecode, path, ports.ErrOpen, errors.New("no visual content"))
	}

	c.logger.Debug("Input %s: %s, %dx%d, %d bytes", path, format, cfg.Width, cfg.Height, len(data))

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ports.NewCodecError(opDecode, path, ports.ErrDecode, err)
	}

	if w, h := targetSize(img.Bounds(), opts); w != img.Bounds().Dx() || h != img.Bounds().Dy() {
		c.logger.Debug("Scaling %dx%d to %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), w, h)
		img = resize(img, w, h)
	}

	raw, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, ports.NewCodecError(opDecode, path, ports.ErrDecode, err)
	}
	return raw, nil
}

// EncodeFrame encodes img in the configured format and writes it to path atomically.
func (c *Codec) EncodeFrame(ctx context.Context, path string, img *pixbuf.RawImage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	enc, ok := encoders[c.opts.Format]
	if !ok {
		return ports.NewCodecError(opEncode, path, ports.ErrEncoderUnavailable, errors.New(string(c.opts.Format)))
	}

	var buf bytes.Buffer
	if err := enc(&buf, img.ToRGBA(), c.opts.JPEGQuality); err != nil {
		return ports.NewCodecError(opEncode, path, ports.ErrEncode, err)
	}
	if buf.Len() == 0 {
		return ports.NewCodecError(opEncode, path, ports.ErrEncode, errors.New("encoder produced no output"))
	}

	if err := c.fs.WriteFile(path, buf.Bytes()); err != nil {
		return ports.NewCodecError(opEncode, path, ports.ErrIO, err)
	}
	return nil
}

// targetSize resolves the requested output size. When only one dimension is
// given the other follows the source aspect ratio.
func targetSize(b image.Rectangle, opts ports.DecodeOptions) (int, int) {
	w, h := opts.Width, opts.Height
	switch {
	case w > 0 && h > 0:
		return w, h
	case w > 0:
		return w, max(1, b.Dy()*w/b.Dx())
	case h > 0:
		return max(1, b.Dx()*h/b.Dy()), h
	default:
		return b.Dx(), b.Dy()
	}
}

func resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var _ ports.ImageCodec = (*Codec)(nil)
