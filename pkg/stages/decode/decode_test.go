package decode

import (
	"context"
	"errors"
	"testing"

	"github.com/user/bouncer/pkg/adapters/logger"
	"github.com/user/bouncer/pkg/mocks"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
)

func background(t *testing.T) *pixbuf.RawImage {
	t.Helper()
	bg, err := pixbuf.New(40, 30)
	if err != nil {
		t.Fatalf("pixbuf.New failed: %v", err)
	}
	bg.Fill(pixbuf.RGB{R: 10, G: 20, B: 30})
	return bg
}

func TestStage_Execute(t *testing.T) {
	bg := background(t)
	codec := mocks.NewImageCodec(bg)
	sink := mocks.NewDebugSink(true)

	var gotOpts ports.DecodeOptions
	codec.DecodeFunc = func(ctx context.Context, path string, opts ports.DecodeOptions) (*pixbuf.RawImage, error) {
		gotOpts = opts
		return bg.Clone(), nil
	}

	stage := NewStage(codec, sink, logger.NewNoop())
	result, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "bg.jpg", Width: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Background.Equal(bg) {
		t.Error("expected decoded background to match source")
	}
	if gotOpts.Width != 20 || gotOpts.Height != 0 {
		t.Errorf("expected decode options to be forwarded, got %+v", gotOpts)
	}
	if sink.Background == nil {
		t.Error("expected background to be saved to debug sink")
	}
}

func TestStage_Execute_DebugDisabled(t *testing.T) {
	sink := mocks.NewDebugSink(false)
	stage := NewStage(mocks.NewImageCodec(background(t)), sink, logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "bg.jpg"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.Background != nil {
		t.Error("expected nothing saved when debug is disabled")
	}
}

func TestStage_Execute_DecodeError(t *testing.T) {
	codec := mocks.NewImageCodec(nil)
	codec.DecodeFunc = func(ctx context.Context, path string, opts ports.DecodeOptions) (*pixbuf.RawImage, error) {
		return nil, ports.NewCodecError("decode", path, ports.ErrOpen, errors.New("no such file"))
	}

	stage := NewStage(codec, mocks.NewDebugSink(true), logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "missing.jpg"})
	if !errors.Is(err, ports.ErrOpen) {
		t.Errorf("expected ErrOpen, got %v", err)
	}
}

func TestStage_Execute_InvalidInput(t *testing.T) {
	codec := mocks.NewImageCodec(background(t))
	stage := NewStage(codec, mocks.NewDebugSink(false), logger.NewNoop())

	tests := []struct {
		name  string
		input pipeline.DecodeInput
	}{
		{"empty path", pipeline.DecodeInput{}},
		{"negative width", pipeline.DecodeInput{Path: "bg.jpg", Width: -1}},
		{"negative height", pipeline.DecodeInput{Path: "bg.jpg", Height: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stage.Execute(context.Background(), tt.input)
			if !errors.Is(err, ports.ErrArgument) {
				t.Errorf("expected ErrArgument, got %v", err)
			}
		})
	}
	if codec.DecodeCalls != 0 {
		t.Errorf("expected no decode calls, got %d", codec.DecodeCalls)
	}
}
