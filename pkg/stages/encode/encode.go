// Package encode implements the frame encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

// Stage writes one rendered frame to disk.
type Stage struct {
	encoder ports.ImageEncoder
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.ImageEncoder) *Stage {
	return &Stage{
		encoder: encoder,
	}
}

// Execute encodes input.Frame to input.Path.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	if input.Frame == nil {
		return pipeline.EncodeResult{}, fmt.Errorf("%w: frame %d has no image", ports.ErrArgument, input.Index)
	}
	if input.Path == "" {
		return pipeline.EncodeResult{}, fmt.Errorf("%w: frame %d has no output path", ports.ErrArgument, input.Index)
	}

	if err := s.encoder.EncodeFrame(ctx, input.Path, input.Frame); err != nil {
		return pipeline.EncodeResult{}, err
	}

	return pipeline.EncodeResult{Index: input.Index, Path: input.Path}, nil
}
