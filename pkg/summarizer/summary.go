// Package summarizer provides summary generation for bouncer runs.
package summarizer

import "time"

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Background image
	Input InputInfo

	// Run settings
	Settings Settings

	// Frame output
	Frames FrameInfo

	// Timing results
	Timing TimingInfo

	// Preview video, nil when none was assembled
	Video *VideoInfo
}

// InputInfo describes the decoded background.
type InputInfo struct {
	Path   string
	Width  int
	Height int
}

// Settings contains the animation configuration.
type Settings struct {
	Format          string
	Radius          int
	RadiusRatio     float64
	MotionSteps     int
	Workers         int
	ContinueOnError bool
}

// FrameInfo describes the written frame sequence.
type FrameInfo struct {
	Requested int
	Written   int
	Failed    []int
	OutputDir string
	FirstFile string
	LastFile  string
}

// TimingInfo contains timing measurements.
type TimingInfo struct {
	DecodeMs int64
	RenderMs int64
	TotalMs  int64
}

// VideoInfo contains information about the preview video.
type VideoInfo struct {
	Path        string
	Codec       string
	Width       int
	Height      int
	SampleCount int
	DurationMs  int
	FileSize    int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets background information.
func (b *Builder) WithInput(path string, width, height int) *Builder {
	b.summary.Input = InputInfo{
		Path:   path,
		Width:  width,
		Height: height,
	}
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithFrames sets frame output information.
func (b *Builder) WithFrames(frames FrameInfo) *Builder {
	b.summary.Frames = frames
	return b
}

// WithTiming sets timing information.
func (b *Builder) WithTiming(decode, render, total time.Duration) *Builder {
	b.summary.Timing = TimingInfo{
		DecodeMs: decode.Milliseconds(),
		RenderMs: render.Milliseconds(),
		TotalMs:  total.Milliseconds(),
	}
	return b
}

// WithVideo sets preview video information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = &video
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
