// Package ffmpegvideo assembles rendered frame sequences into an H.264 MP4
// using an external ffmpeg process.
package ffmpegvideo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/user/bouncer/pkg/ports"
)

const defaultCRF = 23

// FindFFmpeg searches for ffmpeg.
// Priority: 1) explicit path, 2) FFMPEG_PATH env, 3) PATH, 4) common locations
func FindFFmpeg(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, explicit)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	default:
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// IsAvailable reports whether ffmpeg can be found.
func IsAvailable() bool {
	_, err := FindFFmpeg("")
	return err == nil
}

// Assembler implements ports.VideoAssembler with ffmpeg.
type Assembler struct {
	ffmpegPath string
	logger     ports.Logger
}

// New creates an Assembler. An empty ffmpegPath means search the usual places.
func New(ffmpegPath string, logger ports.Logger) *Assembler {
	return &Assembler{
		ffmpegPath: ffmpegPath,
		logger:     logger.WithComponent("video"),
	}
}

// Assemble runs ffmpeg over the numbered frame files and writes an MP4.
// The video is written to a temporary file first and renamed into place.
func (a *Assembler) Assemble(ctx context.Context, pattern string, frameCount int, outputPath string, opts ports.VideoOptions) (err error) {
	if frameCount <= 0 {
		return ErrNoFrames
	}

	ffmpegPath, err := FindFFmpeg(a.ffmpegPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create video directory: %w", err)
		}
	}
	tmpPath := filepath.Join(dir, "."+filepath.Base(outputPath)+".tmp.mp4")
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	args := encodeArgs(pattern, frameCount, tmpPath, opts)

	a.logger.Debug("Running %s %s", ffmpegPath, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, stderr.String())
	}

	if err = os.Rename(tmpPath, outputPath); err != nil {
		return fmt.Errorf("move video into place: %w", err)
	}
	return nil
}

// encodeArgs builds the ffmpeg command line. A negative CRF or one above 51
// selects the default; 0 is lossless.
func encodeArgs(pattern string, frameCount int, outputPath string, opts ports.VideoOptions) []string {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	crf := opts.Quality
	if crf < 0 || crf > 51 {
		crf = defaultCRF
	}

	return []string{
		"-y",
		"-loglevel", "error",
		"-framerate", fmt.Sprintf("%.2f", fps),
		"-start_number", "0",
		"-i", pattern,
		"-frames:v", fmt.Sprintf("%d", frameCount),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", fmt.Sprintf("%d", crf),
		// libx264 with yuv420p needs even dimensions
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outputPath,
	}
}

// Ensure Assembler implements ports.VideoAssembler
var _ ports.VideoAssembler = (*Assembler)(nil)
