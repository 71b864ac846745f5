// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"time"

	"github.com/user/bouncer/pkg/motion"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/pixbuf"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
	"github.com/user/bouncer/pkg/stages/render"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputPath string
	Width     int // optional scaling of the background, 0 keeps the source size
	Height    int

	// Animation
	Frames      int
	RadiusRatio float64
	Gradient    raster.Gradient
	MotionTable motion.Table

	// Output
	OutputDir       string
	Prefix          string
	Format          ports.ImageFormat
	ContinueOnError bool

	// Preview video, skipped when VideoPath is empty
	VideoPath string
	FPS       float64
	CRF       int

	// Debug overlay color, nil uses the annotator default
	OverlayColor color.Color
}

// DefaultGradient is a near-white highlight fading to a deep red rim.
var DefaultGradient = raster.Gradient{
	Inner: pixbuf.RGB{R: 250, G: 250, B: 250},
	Outer: pixbuf.RGB{R: 178, G: 34, B: 34},
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Frames:      300,
		RadiusRatio: pipeline.DefaultRadiusRatio,
		Gradient:    DefaultGradient,
		MotionTable: motion.Default(),

		Prefix: "frame",
		Format: ports.FormatPNG,

		FPS: pipeline.DefaultFPS,
		CRF: 23,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	decodeStage   pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	animateStage  pipeline.Stage[pipeline.AnimateInput, pipeline.AnimateResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	animateStage pipeline.Stage[pipeline.AnimateInput, pipeline.AnimateResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:   decodeStage,
		animateStage:  animateStage,
		assembleStage: assembleStage,
		sink:          sink,
		logger:        logger,
	}
}

// Run decodes the background once, writes every frame and optionally
// assembles the preview video.
//
// The returned RunResult is filled in as far as the run got, also when an
// error is returned.
func (o *Orchestrator) Run(ctx context.Context, config Config) (result RunResult, err error) {
	start := time.Now()
	result = RunResult{
		InputPath:       config.InputPath,
		FramesRequested: config.Frames,
		OutputDir:       config.OutputDir,
		Format:          config.Format,
	}
	defer func() {
		result.TotalDuration = time.Since(start)
	}()

	o.logger.Info("Starting bouncer")

	// 1. Decode background
	o.logger.Info("Decoding background %s", config.InputPath)
	decodeStart := time.Now()
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{
		Path:   config.InputPath,
		Width:  config.Width,
		Height: config.Height,
	})
	result.DecodeDuration = time.Since(decodeStart)
	if err != nil {
		o.logger.Error("Failed to decode background: %s", err)
		return result, fmt.Errorf("decode stage: %w", err)
	}
	bg := decoded.Background
	result.BackgroundWidth = bg.Width
	result.BackgroundHeight = bg.Height
	o.logger.Info("Background decoded: %dx%d", bg.Width, bg.Height)

	if o.sink.Enabled() {
		if data, err := motionJSON(config, bg); err == nil {
			if err := o.sink.SaveMotionJSON(data); err != nil {
				o.logger.Warn("Failed to save motion debug output: %s", err)
			}
		}
	}

	// 2. Render and write frames
	o.logger.Info("Rendering %d frames", config.Frames)
	renderStart := time.Now()
	animated, err := o.animateStage.Execute(ctx, pipeline.AnimateInput{
		Background:      bg,
		Table:           config.MotionTable,
		Frames:          config.Frames,
		RadiusRatio:     config.RadiusRatio,
		Gradient:        config.Gradient,
		OutputDir:       config.OutputDir,
		Prefix:          config.Prefix,
		Format:          config.Format,
		ContinueOnError: config.ContinueOnError,
		OverlayColor:    config.OverlayColor,
	})
	result.RenderDuration = time.Since(renderStart)
	result.Radius = animated.Radius
	result.FramesWritten = len(animated.Written)
	for _, f := range animated.Failed {
		result.FailedFrames = append(result.FailedFrames, f.Index)
	}
	if n := len(animated.Written); n > 0 {
		result.FirstFile = animated.Written[0].Path
		result.LastFile = animated.Written[n-1].Path
	}
	if err != nil {
		o.logger.Error("Failed to render frames: %s", err)
		return result, fmt.Errorf("animate stage: %w", err)
	}
	o.logger.Info("%d frames written", result.FramesWritten)

	if len(result.FailedFrames) > 0 {
		o.logger.Error("%d of %d frames failed: %v", len(result.FailedFrames), config.Frames, result.FailedFrames)
		if config.VideoPath != "" {
			o.logger.Warn("Skipping video because some frames are missing")
		}
		return result, fmt.Errorf("%w: %d of %d (%v)", ErrFramesFailed, len(result.FailedFrames), config.Frames, result.FailedFrames)
	}

	// 3. Preview video (optional)
	if config.VideoPath != "" && result.FramesWritten > 0 {
		o.logger.Info("Assembling video %s", config.VideoPath)
		video, err := o.assembleStage.Execute(ctx, pipeline.AssembleInput{
			Pattern:    pipeline.FramePattern(config.OutputDir, config.Prefix, config.Format),
			FrameCount: result.FramesWritten,
			OutputPath: config.VideoPath,
			FPS:        config.FPS,
			CRF:        config.CRF,
		})
		if err != nil {
			o.logger.Error("Failed to assemble video: %s", err)
			return result, fmt.Errorf("assemble stage: %w", err)
		}
		result.Video = &video
		o.logger.Info("Video saved to %s (%d bytes)", video.Path, video.FileSize)
	}

	o.logger.Info("Run completed successfully")
	return result, nil
}

type motionDump struct {
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Radius  int           `json:"radius"`
	Offsets []float64     `json:"offsets"`
	Frames  []frameCenter `json:"frames"`
}

type frameCenter struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// motionJSON describes where the disc goes in every frame.
func motionJSON(config Config, bg *pixbuf.RawImage) ([]byte, error) {
	dump := motionDump{
		Width:   bg.Width,
		Height:  bg.Height,
		Radius:  render.Radius(config.RadiusRatio, bg.Width, bg.Height),
		Offsets: config.MotionTable.Offsets(),
		Frames:  make([]frameCenter, 0, max(config.Frames, 0)),
	}
	for i := 0; i < config.Frames; i++ {
		x, y := config.MotionTable.Center(bg.Width, bg.Height, i)
		dump.Frames = append(dump.Frames, frameCenter{Index: i, X: x, Y: y})
	}
	return json.MarshalIndent(dump, "", "  ")
}

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	// Input
	InputPath        string
	BackgroundWidth  int
	BackgroundHeight int

	// Frames
	Radius          int
	FramesRequested int
	FramesWritten   int
	FailedFrames    []int
	OutputDir       string
	Format          ports.ImageFormat
	FirstFile       string
	LastFile        string

	// Timing
	DecodeDuration time.Duration
	RenderDuration time.Duration
	TotalDuration  time.Duration

	// Preview video, nil when not requested
	Video *pipeline.AssembleResult
}
