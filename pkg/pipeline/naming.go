package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/user/bouncer/pkg/ports"
)

// FrameName joins dir with the zero-padded frame file name.
func FrameName(dir, prefix string, format ports.ImageFormat, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s%03d.%s", prefix, index, format.Extension()))
}

// FramePattern returns the printf-style pattern matching FrameName, as
// understood by ffmpeg's image2 demuxer.
func FramePattern(dir, prefix string, format ports.ImageFormat) string {
	return filepath.Join(dir, prefix+"%03d."+format.Extension())
}
