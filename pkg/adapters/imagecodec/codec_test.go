package imagecodec

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/bouncer/pkg/adapters/logger"
	"github.com/user/bouncer/pkg/adapters/osfilesystem"
	"github.com/user/bouncer/pkg/mocks"
	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
)

func newCodec(format ports.ImageFormat) *Codec {
	return New(osfilesystem.New(), logger.NewNoop(), Options{Format: format})
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return buf.Bytes()
}

func TestCodec_DecodeFirstFramePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	writePNG(t, path, 8, 6, color.RGBA{R: 12, G: 34, B: 56, A: 255})

	img, err := newCodec(ports.FormatPNG).DecodeFirstFrame(context.Background(), path, ports.DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeFirstFrame failed: %v", err)
	}
	if img.Width != 8 || img.Height != 6 || img.Stride != 24 {
		t.Fatalf("unexpected layout %dx%d stride %d", img.Width, img.Height, img.Stride)
	}
	got, _ := img.PixelAt(7, 5)
	if got != (pixbuf.RGB{R: 12, G: 34, B: 56}) {
		t.Errorf("unexpected pixel %v", got)
	}
}

func TestCodec_DecodeFirstFrameJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.jpg")
	src := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}
	os.WriteFile(path, buf.Bytes(), 0644)

	img, err := newCodec(ports.FormatPNG).DecodeFirstFrame(context.Background(), path, ports.DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeFirstFrame failed: %v", err)
	}
	if img.Width != 32 || img.Height != 16 {
		t.Fatalf("expected 32x16, got %dx%d", img.Width, img.Height)
	}
	got, _ := img.PixelAt(16, 8)
	if got.R < 190 || got.R > 210 {
		t.Errorf("expected light gray after YCbCr conversion, got %v", got)
	}
}

func TestCodec_DecodeScales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	writePNG(t, path, 40, 20, color.RGBA{R: 255, A: 255})
	codec := newCodec(ports.FormatPNG)

	tests := []struct {
		name         string
		opts         ports.DecodeOptions
		wantW, wantH int
	}{
		{"both", ports.DecodeOptions{Width: 10, Height: 30}, 10, 30},
		{"width only", ports.DecodeOptions{Width: 20}, 20, 10},
		{"height only", ports.DecodeOptions{Height: 5}, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := codec.DecodeFirstFrame(context.Background(), path, tt.opts)
			if err != nil {
				t.Fatalf("DecodeFirstFrame failed: %v", err)
			}
			if img.Width != tt.wantW || img.Height != tt.wantH {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, img.Width, img.Height)
			}
		})
	}
}

func TestCodec_DecodeErrors(t *testing.T) {
	dir := t.TempDir()

	full := writePNG(t, filepath.Join(dir, "full.png"), 64, 64, color.RGBA{G: 255, A: 255})
	// signature + IHDR is 33 bytes; keep a few bytes of the next chunk
	os.WriteFile(filepath.Join(dir, "truncated.png"), full[:41], 0644)
	os.WriteFile(filepath.Join(dir, "empty.jpg"), nil, 0644)
	os.WriteFile(filepath.Join(dir, "text.jpg"), []byte("definitely not an image"), 0644)

	tests := []struct {
		name string
		file string
		kind error
	}{
		{"missing file", "missing.jpg", ports.ErrOpen},
		{"empty file", "empty.jpg", ports.ErrOpen},
		{"unknown format", "text.jpg", ports.ErrCodecUnsupported},
		{"truncated data", "truncated.png", ports.ErrDecode},
	}

	codec := newCodec(ports.FormatPNG)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			_, err := codec.DecodeFirstFrame(context.Background(), path, ports.DecodeOptions{})
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			var codecErr *ports.CodecError
			if !errors.As(err, &codecErr) || codecErr.Path != path || codecErr.Op != "decode" {
				t.Errorf("expected CodecError naming %s, got %#v", path, err)
			}
		})
	}
}

func TestCodec_EncodeFrameRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src, _ := pixbuf.New(9, 7)
	src.Fill(pixbuf.RGB{R: 1, G: 2, B: 3})
	src.SetPixel(4, 3, pixbuf.RGB{R: 250, G: 128, B: 7})

	for _, format := range []ports.ImageFormat{ports.FormatPNG, ports.FormatBMP, ports.FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			codec := newCodec(format)
			path := filepath.Join(dir, "frame000."+format.Extension())

			if err := codec.EncodeFrame(context.Background(), path, src); err != nil {
				t.Fatalf("EncodeFrame failed: %v", err)
			}

			back, err := codec.DecodeFirstFrame(context.Background(), path, ports.DecodeOptions{})
			if err != nil {
				t.Fatalf("DecodeFirstFrame failed: %v", err)
			}
			if !back.Equal(src) {
				t.Error("lossless round trip changed pixels")
			}
		})
	}
}

func TestCodec_EncodeFrameJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame000.jpg")
	src, _ := pixbuf.New(16, 16)
	src.Fill(pixbuf.RGB{R: 128, G: 128, B: 128})

	if err := newCodec(ports.FormatJPEG).EncodeFrame(context.Background(), path, src); err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("expected JPEG SOI marker")
	}
}

func TestCodec_EncodeFrameSequence(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := New(fs, logger.NewNoop(), Options{Format: ports.FormatBMP})
	src, _ := pixbuf.New(4, 4)

	for _, name := range []string{"frame002.bmp", "frame000.bmp", "frame001.bmp"} {
		if err := codec.EncodeFrame(context.Background(), filepath.Join("out", name), src); err != nil {
			t.Fatalf("EncodeFrame failed: %v", err)
		}
	}

	got := fs.FilesIn("out")
	want := []string{
		filepath.Join("out", "frame000.bmp"),
		filepath.Join("out", "frame001.bmp"),
		filepath.Join("out", "frame002.bmp"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if size, err := fs.Size(want[0]); err != nil || size < 54 {
		t.Errorf("expected a BMP with header, got size %d (%v)", size, err)
	}
}

func TestCodec_EncodeFrameUnavailableFormat(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := New(fs, logger.NewNoop(), Options{Format: ports.ImageFormat("webp")})
	src, _ := pixbuf.New(2, 2)

	err := codec.EncodeFrame(context.Background(), "frame000.webp", src)
	if !errors.Is(err, ports.ErrEncoderUnavailable) {
		t.Fatalf("expected ErrEncoderUnavailable, got %v", err)
	}
	if fs.FileCount() != 0 {
		t.Error("expected no file to be written")
	}
}

func TestCodec_EncodeFrameWriteFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	diskFull := errors.New("no space left on device")
	fs.WriteFileFunc = func(path string, data []byte) error {
		return diskFull
	}
	codec := New(fs, logger.NewNoop(), Options{Format: ports.FormatPNG})
	src, _ := pixbuf.New(2, 2)

	err := codec.EncodeFrame(context.Background(), "out/frame007.png", src)
	if !errors.Is(err, ports.ErrIO) || !errors.Is(err, diskFull) {
		t.Fatalf("expected ErrIO wrapping the cause, got %v", err)
	}
	if _, ok := fs.GetFile("out/frame007.png"); ok {
		t.Error("expected no file to be stored")
	}
}

func TestCodec_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src, _ := pixbuf.New(2, 2)

	if err := newCodec(ports.FormatPNG).EncodeFrame(ctx, filepath.Join(t.TempDir(), "x.png"), src); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
