// Package decode implements the background decoding stage.
package decode

import (
	"context"
	"fmt"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

// Stage decodes the background image once per run.
type Stage struct {
	decoder ports.ImageDecoder
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(decoder ports.ImageDecoder, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		sink:    sink,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute decodes the first frame of input.Path into the canonical background.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	if input.Path == "" {
		return pipeline.DecodeResult{}, fmt.Errorf("%w: no background path", ports.ErrArgument)
	}
	if input.Width < 0 || input.Height < 0 {
		return pipeline.DecodeResult{}, fmt.Errorf("%w: negative target size %dx%d", ports.ErrArgument, input.Width, input.Height)
	}

	bg, err := s.decoder.DecodeFirstFrame(ctx, input.Path, ports.DecodeOptions{
		Width:  input.Width,
		Height: input.Height,
	})
	if err != nil {
		return pipeline.DecodeResult{}, err
	}

	s.logger.Debug("Background decoded: %dx%d, stride %d", bg.Width, bg.Height, bg.Stride)

	if s.sink.Enabled() {
		if err := s.sink.SaveBackground(bg); err != nil {
			s.logger.Warn("Failed to save debug background: %s", err)
		}
	}

	return pipeline.DecodeResult{Background: bg}, nil
}
