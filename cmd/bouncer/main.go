// Package main provides the CLI entry point for bouncer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/bouncer/pkg/adapters/logger"
	"github.com/user/bouncer/pkg/bouncer"
	"github.com/user/bouncer/pkg/config"
	"github.com/user/bouncer/pkg/orchestrator"
	"github.com/user/bouncer/pkg/ports"
)

const usage = "usage: bouncer [flags] <background.jpg>"

var version = "dev"

// CLI defines the command-line interface.
type CLI struct {
	Background string `arg:"" name:"background" help:"Background JPEG image (.jpg)."`

	Config string `short:"c" help:"YAML configuration file; flags override its values."`

	// Animation
	Frames      *int     `short:"n" group:"Animation" help:"Number of frames to write (default: 300)."`
	RadiusRatio *float64 `group:"Animation" help:"Disc radius as a fraction of the shorter side (default: 0.10)."`
	InnerColor  *string  `group:"Animation" help:"Disc center color (hex, e.g. #fafafa)."`
	OuterColor  *string  `group:"Animation" help:"Disc edge color (hex, e.g. #b22222)."`
	Width       *int     `short:"W" group:"Animation" help:"Scale the background to this width."`
	Height      *int     `short:"H" group:"Animation" help:"Scale the background to this height."`

	// Output
	OutputDir       *string `short:"o" group:"Output" help:"Directory for frame files (default: current directory)."`
	Prefix          *string `group:"Output" help:"Frame file name prefix (default: frame)."`
	Format          *string `short:"f" group:"Output" help:"Frame format: png, jpg, bmp, tiff (default: png)."`
	Quality         *string `short:"q" group:"Output" help:"Quality preset (low, medium, high)."`
	JPEGQuality     *int    `group:"Output" help:"JPEG frame quality (1-100, overrides quality preset)."`
	Workers         *int    `short:"j" group:"Output" help:"Frames rendered in parallel (0 = one per CPU, default: 1)."`
	ContinueOnError bool    `group:"Output" help:"Keep writing frames after a frame fails; the run still fails."`

	// Video
	Video      *string  `group:"Video" help:"Also assemble the frames into this MP4 file (requires ffmpeg)."`
	FPS        *float64 `group:"Video" help:"Preview video frame rate (default: 30)."`
	CRF        *int     `group:"Video" help:"Preview video CRF (0-51, lower is better, overrides quality preset)."`
	FFmpegPath string   `group:"Video" help:"Path to ffmpeg (falls back to FFMPEG_PATH env, then PATH)."`

	// Reporting
	Summary  *string `short:"s" group:"Reporting" help:"Write a Markdown run summary to this file."`
	Debug    bool    `short:"d" group:"Reporting" help:"Enable debug output."`
	DebugDir   *string `group:"Reporting" help:"Directory for debug output (default: ./debug)."`
	DebugColor *string `group:"Reporting" help:"Overlay color of annotated debug frames (hex, default: #00ff80)."`

	// Logging
	LogLevel *string `short:"l" group:"Logging" help:"Log level: debug, info, warn, error (default: info)."`
	Quiet    bool    `short:"Q" group:"Logging" help:"Suppress all log output."`

	Version kong.VersionFlag `short:"V" help:"Show version information."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, renders the frames and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("bouncer"),
		kong.Description(l10n.T("Render a bouncing disc over a background image as numbered frames.")),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Vars{"version": fmt.Sprintf("bouncer %s", version)},
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		// --help or --version
		return exitCode
	}
	if err != nil {
		fmt.Fprintln(stderr, l10n.F("Invalid arguments: %s", err))
		fmt.Fprintln(stderr, usage)
		return 1
	}

	if err := bouncer.CheckInputPath(cli.Background); err != nil {
		fmt.Fprintln(stderr, l10n.F("Background must be a .jpg file: %s", cli.Background))
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := cli.buildConfig()
	if err != nil {
		fmt.Fprintln(stderr, l10n.F("Invalid configuration: %s", err))
		return 1
	}

	var log ports.Logger
	if cli.Quiet {
		log = logger.NewNoop()
	} else {
		log = newLogger(ports.ParseLogLevel(cfg.LogLevel), stdout, stderr)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := bouncer.Run(ctx, bouncer.Options{
		Config:     cfg,
		InputPath:  cli.Background,
		Logger:     log,
		FFmpegPath: cli.FFmpegPath,
		Version:    version,
		Translate:  l10n.T,
	})
	if err != nil {
		if errors.Is(err, orchestrator.ErrFramesFailed) {
			log.Error("%d of %d frames written", result.FramesWritten, result.FramesRequested)
		}
		if cli.Quiet {
			fmt.Fprintln(stderr, err)
		} else {
			log.Error("Run failed: %s", err)
		}
		return 1
	}

	log.Info("Frames saved: %s ... %s", result.FirstFile, result.LastFile)
	return 0
}

// newLogger logs with colors on a terminal and plainly to any other writer.
func newLogger(level ports.LogLevel, stdout, stderr io.Writer) ports.Logger {
	if stdout == io.Writer(os.Stdout) {
		return logger.NewConsole(level)
	}
	return logger.NewWriters(level, stdout, stderr)
}

// buildConfig loads the config file, if any, and applies flag overrides.
func (cli *CLI) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cli.Config != "" {
		loaded, err := config.LoadFromFile(cli.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// Quality preset first so explicit values win
	if cli.Quality != nil {
		if err := bouncer.ApplyQuality(&cfg, *cli.Quality); err != nil {
			return cfg, err
		}
	}

	if cli.Frames != nil {
		cfg.Frames = *cli.Frames
	}
	if cli.RadiusRatio != nil {
		cfg.RadiusRatio = *cli.RadiusRatio
	}
	if cli.InnerColor != nil {
		cfg.Gradient.Inner = *cli.InnerColor
	}
	if cli.OuterColor != nil {
		cfg.Gradient.Outer = *cli.OuterColor
	}
	if cli.Width != nil {
		cfg.Width = *cli.Width
	}
	if cli.Height != nil {
		cfg.Height = *cli.Height
	}
	if cli.OutputDir != nil {
		cfg.OutputDir = *cli.OutputDir
	}
	if cli.Prefix != nil {
		cfg.Prefix = *cli.Prefix
	}
	if cli.Format != nil {
		cfg.Format = *cli.Format
	}
	if cli.JPEGQuality != nil {
		cfg.JPEGQuality = *cli.JPEGQuality
	}
	if cli.Workers != nil {
		cfg.Workers = *cli.Workers
	}
	if cli.ContinueOnError {
		cfg.ContinueOnError = true
	}
	if cli.Video != nil {
		cfg.Video = *cli.Video
	}
	if cli.FPS != nil {
		cfg.FPS = *cli.FPS
	}
	if cli.CRF != nil {
		cfg.CRF = *cli.CRF
	}
	if cli.Summary != nil {
		cfg.Summary = *cli.Summary
	}
	if cli.Debug {
		cfg.Debug = true
	}
	if cli.DebugDir != nil {
		cfg.DebugDir = *cli.DebugDir
	}
	if cli.DebugColor != nil {
		cfg.DebugColor = *cli.DebugColor
	}
	if cli.LogLevel != nil {
		cfg.LogLevel = *cli.LogLevel
	}

	return cfg, cfg.Validate()
}
