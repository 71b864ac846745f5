package encode

import (
	"context"
	"errors"
	"testing"

	"github.com/user/bouncer/pkg/mocks"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	codec := mocks.NewImageCodec(nil)
	stage := NewStage(codec)

	frame, _ := pixbuf.New(4, 4)
	frame.Fill(pixbuf.RGB{G: 200})

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{Index: 7, Path: "frame007.png", Frame: frame})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Index != 7 || result.Path != "frame007.png" {
		t.Errorf("unexpected result %+v", result)
	}

	got, ok := codec.Frame("frame007.png")
	if !ok {
		t.Fatal("expected frame to be encoded")
	}
	if !got.Equal(frame) {
		t.Error("encoded frame differs from input")
	}
}

func TestStage_Execute_EncoderError(t *testing.T) {
	codec := mocks.NewImageCodec(nil)
	codec.EncodeFunc = func(ctx context.Context, path string, img *pixbuf.RawImage) error {
		return ports.NewCodecError("encode", path, ports.ErrIO, errors.New("read-only file system"))
	}
	frame, _ := pixbuf.New(2, 2)

	_, err := NewStage(codec).Execute(context.Background(), pipeline.EncodeInput{Index: 1, Path: "frame001.png", Frame: frame})
	if !errors.Is(err, ports.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if codec.EncodedCount() != 0 {
		t.Error("expected nothing recorded on failure")
	}
}

func TestStage_Execute_InvalidInput(t *testing.T) {
	codec := mocks.NewImageCodec(nil)
	stage := NewStage(codec)
	frame, _ := pixbuf.New(2, 2)

	tests := []struct {
		name  string
		input pipeline.EncodeInput
	}{
		{"no frame", pipeline.EncodeInput{Path: "frame000.png"}},
		{"no path", pipeline.EncodeInput{Frame: frame}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := stage.Execute(context.Background(), tt.input); !errors.Is(err, ports.ErrArgument) {
				t.Errorf("expected ErrArgument, got %v", err)
			}
		})
	}
}
