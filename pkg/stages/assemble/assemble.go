// Package assemble implements the preview video stage: the written frame
// sequence is encoded into an MP4 and the result is probed.
package assemble

import (
	"context"
	"fmt"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

// Stage builds and inspects the preview video.
type Stage struct {
	assembler ports.VideoAssembler
	prober    ports.VideoProber
	fs        ports.FileSystem
	logger    ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(assembler ports.VideoAssembler, prober ports.VideoProber, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		assembler: assembler,
		prober:    prober,
		fs:        fs,
		logger:    logger.WithComponent("assemble"),
	}
}

// Execute assembles input.FrameCount frames into input.OutputPath.
// A probe failure is logged but does not fail the stage.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	if input.FrameCount <= 0 {
		return pipeline.AssembleResult{}, fmt.Errorf("%w: no frames to assemble", ports.ErrArgument)
	}
	if input.OutputPath == "" {
		return pipeline.AssembleResult{}, fmt.Errorf("%w: no video output path", ports.ErrArgument)
	}

	fps := input.FPS
	if fps <= 0 {
		fps = pipeline.DefaultFPS
	}

	opts := ports.VideoOptions{FPS: fps, Quality: input.CRF}
	if err := s.assembler.Assemble(ctx, input.Pattern, input.FrameCount, input.OutputPath, opts); err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("assemble video: %w", err)
	}

	result := pipeline.AssembleResult{Path: input.OutputPath}
	if size, err := s.fs.Size(input.OutputPath); err == nil {
		result.FileSize = size
	} else {
		s.logger.Warn("Failed to read size of video %s: %s", input.OutputPath, err)
	}

	info, err := s.prober.Probe(input.OutputPath)
	if err != nil {
		s.logger.Warn("Failed to probe video %s: %s", input.OutputPath, err)
		return result, nil
	}
	result.Info = info

	s.logger.Debug("Video %s: %s %dx%d, %d samples, %d ms",
		input.OutputPath, info.Codec, info.Width, info.Height, info.SampleCount, info.DurationMs)
	if info.SampleCount != 0 && info.SampleCount != input.FrameCount {
		s.logger.Warn("Video has %d samples, expected %d", info.SampleCount, input.FrameCount)
	}

	return result, nil
}
