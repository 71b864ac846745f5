package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/bouncer/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
	if summary.Video != nil {
		t.Error("expected no video by default")
	}
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithInput("bg.jpg", 640, 480).
		WithSettings(Settings{Format: "png", Radius: 48, RadiusRatio: 0.1, MotionSteps: 20, Workers: 1}).
		WithFrames(FrameInfo{Requested: 300, Written: 300, FirstFile: "frame000.png", LastFile: "frame299.png"}).
		WithTiming(15*time.Millisecond, 2*time.Second, 2100*time.Millisecond).
		WithVideo(VideoInfo{Path: "preview.mp4", Codec: "h264"}).
		Build()

	if summary.Input.Path != "bg.jpg" || summary.Input.Width != 640 || summary.Input.Height != 480 {
		t.Errorf("unexpected input %+v", summary.Input)
	}
	if summary.Settings.Radius != 48 {
		t.Errorf("expected radius 48, got %d", summary.Settings.Radius)
	}
	if summary.Frames.Written != 300 {
		t.Errorf("expected 300 frames, got %d", summary.Frames.Written)
	}
	if summary.Timing.DecodeMs != 15 || summary.Timing.RenderMs != 2000 || summary.Timing.TotalMs != 2100 {
		t.Errorf("unexpected timing %+v", summary.Timing)
	}
	if summary.Video == nil || summary.Video.Codec != "h264" {
		t.Errorf("unexpected video %+v", summary.Video)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Input.Path })
	if got := f.Format(&Summary{Input: InputInfo{Path: "x.jpg"}}); got != "x.jpg" {
		t.Errorf("expected x.jpg, got %q", got)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(NewMarkdownFormatter(), fs)

	summary := NewBuilder().WithInput("bg.jpg", 10, 10).Build()
	if err := w.Write("reports/summary.md", summary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("reports/summary.md")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if !strings.HasPrefix(string(data), "# Bouncer Summary") {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	diskFull := errors.New("no space left on device")
	fs.WriteFileFunc = func(path string, data []byte) error { return diskFull }

	err := NewWriter(NewMarkdownFormatter(), fs).Write("summary.md", NewSummary())
	if !errors.Is(err, diskFull) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}
