package ports

import (
	"context"
)

// VideoOptions configures preview video assembly.
type VideoOptions struct {
	FPS     float64
	Quality int // CRF: 0-51 (lower is higher quality, 0 is lossless), negative selects the encoder default
}

// VideoAssembler turns a numbered image sequence into a video file.
type VideoAssembler interface {
	// Assemble encodes the files matching pattern (a printf-style sequence such as
	// "out/frame%03d.png") into an MP4 at outputPath.
	Assemble(ctx context.Context, pattern string, frameCount int, outputPath string, opts VideoOptions) error
}

// VideoInfo describes the video track found in an MP4 file.
type VideoInfo struct {
	Codec       string
	Width       int
	Height      int
	SampleCount int
	DurationMs  int
}

// VideoProber inspects an encoded video file.
type VideoProber interface {
	// Probe reads the container at path and describes its first video track.
	Probe(path string) (VideoInfo, error)
}
