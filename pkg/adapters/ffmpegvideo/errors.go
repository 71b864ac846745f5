package ffmpegvideo

import "errors"

var (
	// ErrFFmpegNotFound is returned when ffmpeg cannot be located.
	ErrFFmpegNotFound = errors.New("ffmpegvideo: ffmpeg not found in PATH")

	// ErrNoFrames is returned when asked to assemble an empty sequence.
	ErrNoFrames = errors.New("ffmpegvideo: no frames to assemble")
)
