package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveBackground saves the decoded canonical background.
	SaveBackground(img image.Image) error

	// SaveMotionJSON saves the motion table and per-frame centers as JSON.
	SaveMotionJSON(data []byte) error

	// SaveAnnotatedFrame saves a rendered frame with its diagnostic overlay.
	SaveAnnotatedFrame(index int, img image.Image, a Annotation) error
}
