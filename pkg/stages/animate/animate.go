// Package animate implements the frame loop: render and encode every frame of
// the animation, optionally on a pool of workers.
package animate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/stages/render"
)

// Stage renders and writes the frame sequence.
type Stage struct {
	render     pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	encode     pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new animate stage. numWorkers <= 0 uses one worker per CPU.
func NewStage(
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	sink ports.DebugSink,
	logger ports.Logger,
	numWorkers int,
) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		render:     renderStage,
		encode:     encodeStage,
		sink:       sink,
		logger:     logger.WithComponent("animate"),
		numWorkers: numWorkers,
	}
}

// outcome is the result of one frame, tagged with its index for sorting.
type outcome struct {
	index   int
	written pipeline.EncodeResult
	err     error
}

// Execute renders and encodes input.Frames frames.
//
// Without ContinueOnError the first failure stops the loop: no new frames are
// started and the error names the frame. With ContinueOnError every frame is
// attempted and failures are reported in AnimateResult.Failed with a nil error.
// The result always lists the frames that were written.
func (s *Stage) Execute(ctx context.Context, input pipeline.AnimateInput) (pipeline.AnimateResult, error) {
	if input.Frames < 0 {
		return pipeline.AnimateResult{}, fmt.Errorf("%w: frame count %d", ports.ErrArgument, input.Frames)
	}
	if input.Background == nil {
		return pipeline.AnimateResult{}, fmt.Errorf("%w: no background", ports.ErrArgument)
	}

	result := pipeline.AnimateResult{
		Radius: render.Radius(input.RadiusRatio, input.Background.Width, input.Background.Height),
	}
	if input.Frames == 0 {
		return result, nil
	}

	workers := min(s.numWorkers, input.Frames)
	s.logger.Debug("Rendering %d frames with %d workers", input.Frames, workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, input.Frames)
	results := make(chan outcome, input.Frames)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(runCtx, cancel, &wg, input, jobs, results)
	}

	for i := 0; i < input.Frames; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for o := range results {
		if o.err != nil {
			result.Failed = append(result.Failed, pipeline.FrameFailure{Index: o.index, Err: o.err})
			continue
		}
		result.Written = append(result.Written, o.written)
	}

	sort.Slice(result.Written, func(i, j int) bool {
		return result.Written[i].Index < result.Written[j].Index
	})
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].Index < result.Failed[j].Index
	})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(result.Failed) > 0 && !input.ContinueOnError {
		first := result.Failed[0]
		return result, fmt.Errorf("frame %d: %w", first.Index, first.Err)
	}
	return result, nil
}

// worker processes frames from the jobs channel. Each frame gets its own clone
// of the background, so workers share nothing writable.
func (s *Stage) worker(
	ctx context.Context,
	cancel context.CancelFunc,
	wg *sync.WaitGroup,
	input pipeline.AnimateInput,
	jobs <-chan int,
	results chan<- outcome,
) {
	defer wg.Done()

	for idx := range jobs {
		if ctx.Err() != nil {
			return
		}

		written, err := s.processFrame(ctx, input, idx)
		if err != nil {
			// frames aborted by a sibling's failure are not failures of their own
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return
			}
			s.logger.Error("Frame %d failed: %s", idx, err)
			results <- outcome{index: idx, err: err}
			if !input.ContinueOnError {
				cancel()
				return
			}
			continue
		}

		results <- outcome{index: idx, written: written}
	}
}

// processFrame renders, encodes and optionally annotates a single frame.
func (s *Stage) processFrame(ctx context.Context, input pipeline.AnimateInput, idx int) (pipeline.EncodeResult, error) {
	rendered, err := s.render.Execute(ctx, pipeline.RenderInput{
		Background:  input.Background,
		Table:       input.Table,
		Index:       idx,
		RadiusRatio: input.RadiusRatio,
		Gradient:    input.Gradient,
	})
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("render: %w", err)
	}

	written, err := s.encode.Execute(ctx, pipeline.EncodeInput{
		Index: idx,
		Path:  input.FramePath(idx),
		Frame: rendered.Frame,
	})
	if err != nil {
		return pipeline.EncodeResult{}, err
	}
	s.logger.Debug("Frame %d written to %s", idx, written.Path)

	if s.sink.Enabled() {
		a := ports.Annotation{
			FrameIndex: idx,
			CenterX:    rendered.Disc.CenterX,
			CenterY:    rendered.Disc.CenterY,
			Radius:     rendered.Disc.Radius,
			Offset:     rendered.Offset,
			Color:      input.OverlayColor,
		}
		if err := s.sink.SaveAnnotatedFrame(idx, rendered.Frame, a); err != nil {
			s.logger.Warn("Failed to save annotated frame %d: %s", idx, err)
		}
	}

	return written, nil
}
