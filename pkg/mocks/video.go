package mocks

import (
	"context"

	"github.com/user/bouncer/pkg/ports"
)

// VideoAssembler is a mock implementation of ports.VideoAssembler.
type VideoAssembler struct {
	AssembleFunc func(ctx context.Context, pattern string, frameCount int, outputPath string, opts ports.VideoOptions) error

	// Recorded calls for verification
	Calls []AssembleCall
}

// AssembleCall records a call to Assemble.
type AssembleCall struct {
	Pattern    string
	FrameCount int
	OutputPath string
	Options    ports.VideoOptions
}

func (m *VideoAssembler) Assemble(ctx context.Context, pattern string, frameCount int, outputPath string, opts ports.VideoOptions) error {
	m.Calls = append(m.Calls, AssembleCall{Pattern: pattern, FrameCount: frameCount, OutputPath: outputPath, Options: opts})
	if m.AssembleFunc != nil {
		return m.AssembleFunc(ctx, pattern, frameCount, outputPath, opts)
	}
	return nil
}

// VideoProber is a mock implementation of ports.VideoProber.
type VideoProber struct {
	Info ports.VideoInfo
	Err  error

	ProbedPaths []string
}

func (m *VideoProber) Probe(path string) (ports.VideoInfo, error) {
	m.ProbedPaths = append(m.ProbedPaths, path)
	return m.Info, m.Err
}

var (
	_ ports.VideoAssembler = (*VideoAssembler)(nil)
	_ ports.VideoProber    = (*VideoProber)(nil)
)
