package assemble

import (
	"context"
	"errors"
	"testing"

	"github.com/user/bouncer/pkg/adapters/logger"
	"github.com/user/bouncer/pkg/mocks"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	out := "video/preview.mp4"
	fs := mocks.NewFileSystem()
	assembler := &mocks.VideoAssembler{
		AssembleFunc: func(ctx context.Context, pattern string, frameCount int, outputPath string, opts ports.VideoOptions) error {
			return fs.WriteFile(outputPath, make([]byte, 2048))
		},
	}
	prober := &mocks.VideoProber{
		Info: ports.VideoInfo{Codec: "h264", Width: 640, Height: 480, SampleCount: 300, DurationMs: 10000},
	}

	stage := NewStage(assembler, prober, fs, logger.NewNoop())
	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Pattern:    "frame%03d.png",
		FrameCount: 300,
		OutputPath: out,
		CRF:        20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(assembler.Calls) != 1 {
		t.Fatalf("expected 1 Assemble call, got %d", len(assembler.Calls))
	}
	call := assembler.Calls[0]
	if call.Pattern != "frame%03d.png" || call.FrameCount != 300 || call.OutputPath != out {
		t.Errorf("unexpected call %+v", call)
	}
	if call.Options.FPS != pipeline.DefaultFPS || call.Options.Quality != 20 {
		t.Errorf("unexpected options %+v", call.Options)
	}

	if result.Path != out || result.FileSize != 2048 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Info.Codec != "h264" || result.Info.SampleCount != 300 {
		t.Errorf("expected probe info in result, got %+v", result.Info)
	}
	if len(prober.ProbedPaths) != 1 || prober.ProbedPaths[0] != out {
		t.Errorf("expected %s to be probed, got %v", out, prober.ProbedPaths)
	}
}

func TestStage_Execute_AssembleError(t *testing.T) {
	boom := errors.New("ffmpeg exited with status 1")
	assembler := &mocks.VideoAssembler{
		AssembleFunc: func(ctx context.Context, pattern string, frameCount int, outputPath string, opts ports.VideoOptions) error {
			return boom
		},
	}
	prober := &mocks.VideoProber{}

	_, err := NewStage(assembler, prober, mocks.NewFileSystem(), logger.NewNoop()).Execute(context.Background(), pipeline.AssembleInput{
		Pattern: "frame%03d.png", FrameCount: 3, OutputPath: "out.mp4",
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped assembler error, got %v", err)
	}
	if len(prober.ProbedPaths) != 0 {
		t.Error("expected no probe after a failed assembly")
	}
}

func TestStage_Execute_ProbeErrorIsNotFatal(t *testing.T) {
	prober := &mocks.VideoProber{Err: errors.New("decode mp4: unexpected EOF")}

	result, err := NewStage(&mocks.VideoAssembler{}, prober, mocks.NewFileSystem(), logger.NewNoop()).Execute(context.Background(), pipeline.AssembleInput{
		Pattern: "frame%03d.png", FrameCount: 3, OutputPath: "out.mp4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Info.Codec != "" {
		t.Errorf("expected empty info, got %+v", result.Info)
	}
}

func TestStage_Execute_SizeErrorIsNotFatal(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SizeFunc = func(path string) (int64, error) {
		return 0, errors.New("permission denied")
	}
	prober := &mocks.VideoProber{Info: ports.VideoInfo{Codec: "h264", SampleCount: 3}}

	result, err := NewStage(&mocks.VideoAssembler{}, prober, fs, logger.NewNoop()).Execute(context.Background(), pipeline.AssembleInput{
		Pattern: "frame%03d.png", FrameCount: 3, OutputPath: "out.mp4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FileSize != 0 || result.Info.Codec != "h264" {
		t.Errorf("expected probe info without a size, got %+v", result)
	}
}

func TestStage_Execute_InvalidInput(t *testing.T) {
	assembler := &mocks.VideoAssembler{}
	stage := NewStage(assembler, &mocks.VideoProber{}, mocks.NewFileSystem(), logger.NewNoop())

	tests := []struct {
		name  string
		input pipeline.AssembleInput
	}{
		{"no frames", pipeline.AssembleInput{Pattern: "f%03d.png", OutputPath: "out.mp4"}},
		{"no output", pipeline.AssembleInput{Pattern: "f%03d.png", FrameCount: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := stage.Execute(context.Background(), tt.input); !errors.Is(err, ports.ErrArgument) {
				t.Errorf("expected ErrArgument, got %v", err)
			}
		})
	}
	if len(assembler.Calls) != 0 {
		t.Error("expected no Assemble calls")
	}
}
