// Package bouncer provides a high-level API for rendering bouncing-disc frame
// sequences. It wires the default adapters into the orchestrator.
package bouncer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/bouncer/pkg/adapters/ffmpegvideo"
	"github.com/user/bouncer/pkg/adapters/filesink"
	"github.com/user/bouncer/pkg/adapters/ggrenderer"
	"github.com/user/bouncer/pkg/adapters/imagecodec"
	"github.com/user/bouncer/pkg/adapters/mp4probe"
	"github.com/user/bouncer/pkg/adapters/nullsink"
	"github.com/user/bouncer/pkg/adapters/osfilesystem"
	"github.com/user/bouncer/pkg/config"
	"github.com/user/bouncer/pkg/orchestrator"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/stages/animate"
	"github.com/user/bouncer/pkg/stages/assemble"
	"github.com/user/bouncer/pkg/stages/decode"
	"github.com/user/bouncer/pkg/stages/encode"
	"github.com/user/bouncer/pkg/stages/render"
	"github.com/user/bouncer/pkg/summarizer"
)

// RequiredExtension is the only background file extension accepted.
const RequiredExtension = "jpg"

// CheckInputPath accepts paths whose text after the last '.' is exactly "jpg".
// A path without a '.' is rejected. The check is case-sensitive and looks at
// the path text only.
func CheckInputPath(path string) error {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return fmt.Errorf("%w: %s has no file extension, expected .%s", ports.ErrArgument, path, RequiredExtension)
	}
	if ext := path[dot+1:]; ext != RequiredExtension {
		return fmt.Errorf("%w: %s has extension %q, expected .%s", ports.ErrArgument, path, ext, RequiredExtension)
	}
	return nil
}

// Options configures a Run.
type Options struct {
	Config     config.Config
	InputPath  string
	Logger     ports.Logger
	FFmpegPath string // empty searches FFMPEG_PATH, PATH and common locations
	Version    string // shown in the summary footer
	Translate  func(string) string
}

// Run renders the frame sequence described by opts and writes the optional
// summary. The result is returned also on failure so callers can report
// partial progress.
func Run(ctx context.Context, opts Options) (orchestrator.RunResult, error) {
	cfg := opts.Config
	log := opts.Logger

	orchConfig, err := cfg.ToOrchestratorConfig(opts.InputPath)
	if err != nil {
		return orchestrator.RunResult{}, err
	}

	fs := osfilesystem.New()
	codec := imagecodec.New(fs, log, imagecodec.Options{
		Format:      orchConfig.Format,
		JPEGQuality: cfg.JPEGQuality,
	})

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return orchestrator.RunResult{}, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, ggrenderer.New())
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		decode.NewStage(codec, sink, log),
		animate.NewStage(render.NewStage(), encode.NewStage(codec), sink, log, cfg.Workers),
		assemble.NewStage(ffmpegvideo.New(opts.FFmpegPath, log), mp4probe.New(), fs, log),
		sink,
		log,
	)

	result, runErr := orch.Run(ctx, orchConfig)

	if cfg.Summary != "" && result.BackgroundWidth > 0 {
		var fmtOpts []summarizer.MarkdownOption
		if opts.Translate != nil {
			fmtOpts = append(fmtOpts, summarizer.WithTranslator(opts.Translate))
		}
		if opts.Version != "" {
			fmtOpts = append(fmtOpts, summarizer.WithVersion(opts.Version))
		}
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(fmtOpts...), fs)
		if err := w.Write(cfg.Summary, BuildSummary(cfg, orchConfig, result)); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cfg.Summary)
		}
	}

	return result, runErr
}

// BuildSummary collects a run result into a summarizer.Summary.
func BuildSummary(cfg config.Config, oc orchestrator.Config, result orchestrator.RunResult) *summarizer.Summary {
	outputDir := result.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	b := summarizer.NewBuilder().
		WithInput(filepath.Clean(result.InputPath), result.BackgroundWidth, result.BackgroundHeight).
		WithSettings(summarizer.Settings{
			Format:          string(result.Format),
			Radius:          result.Radius,
			RadiusRatio:     oc.RadiusRatio,
			MotionSteps:     oc.MotionTable.Len(),
			Workers:         cfg.Workers,
			ContinueOnError: oc.ContinueOnError,
		}).
		WithFrames(summarizer.FrameInfo{
			Requested: result.FramesRequested,
			Written:   result.FramesWritten,
			Failed:    result.FailedFrames,
			OutputDir: outputDir,
			FirstFile: result.FirstFile,
			LastFile:  result.LastFile,
		}).
		WithTiming(result.DecodeDuration, result.RenderDuration, result.TotalDuration)

	if v := result.Video; v != nil {
		b.WithVideo(summarizer.VideoInfo{
			Path:        v.Path,
			Codec:       v.Info.Codec,
			Width:       v.Info.Width,
			Height:      v.Info.Height,
			SampleCount: v.Info.SampleCount,
			DurationMs:  v.Info.DurationMs,
			FileSize:    v.FileSize,
		})
	}

	return b.Build()
}
