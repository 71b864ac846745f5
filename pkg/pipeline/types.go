package pipeline

import (
	"image/color"

	"github.com/user/bouncer/pkg/motion"
	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput names the background image and an optional target size.
type DecodeInput struct {
	Path   string
	Width  int // 0 keeps the source width (or follows Height's aspect ratio)
	Height int // 0 keeps the source height (or follows Width's aspect ratio)
}

// DecodeResult holds the canonical background. It is never written to after
// decoding; every frame starts from a clone.
type DecodeResult struct {
	Background *pixbuf.RawImage
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput describes one frame of the animation.
type RenderInput struct {
	Background  *pixbuf.RawImage
	Table       motion.Table
	Index       int
	RadiusRatio float64 // radius = int(RadiusRatio * min(width, height))
	Gradient    raster.Gradient
}

// DefaultRadiusRatio is the disc radius as a fraction of the smaller side.
const DefaultRadiusRatio = 0.10

// RenderResult is a freshly composited frame and the disc drawn on it.
type RenderResult struct {
	Frame  *pixbuf.RawImage
	Disc   raster.Disc
	Offset float64 // motion table value used for the vertical position
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput is a rendered frame bound for disk.
type EncodeInput struct {
	Index int
	Path  string
	Frame *pixbuf.RawImage
}

// EncodeResult reports where a frame was written.
type EncodeResult struct {
	Index int
	Path  string
}

// =============================================================================
// Animate Stage Types
// =============================================================================

// AnimateInput drives the whole frame loop.
type AnimateInput struct {
	Background      *pixbuf.RawImage
	Table           motion.Table
	Frames          int
	RadiusRatio     float64
	Gradient        raster.Gradient
	OutputDir       string
	Prefix          string
	Format          ports.ImageFormat
	ContinueOnError bool
	OverlayColor    color.Color // annotated debug frames only
}

// FramePath returns the output path of frame index: <dir>/<prefix><%03d>.<ext>.
func (in AnimateInput) FramePath(index int) string {
	return FrameName(in.OutputDir, in.Prefix, in.Format, index)
}

// FrameFailure records a frame that could not be rendered or written.
type FrameFailure struct {
	Index int
	Err   error
}

// AnimateResult summarizes the frame loop.
type AnimateResult struct {
	Written []EncodeResult // ordered by frame index
	Failed  []FrameFailure // ordered by frame index
	Radius  int
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput describes the preview video to build from written frames.
type AssembleInput struct {
	Pattern    string // printf-style sequence, e.g. "frames/frame%03d.png"
	FrameCount int
	OutputPath string
	FPS        float64
	CRF        int
}

// DefaultFPS is the preview video frame rate.
const DefaultFPS = 30.0

// AssembleResult describes the assembled video.
type AssembleResult struct {
	Path     string
	FileSize int64
	Info     ports.VideoInfo
}
