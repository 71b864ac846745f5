// Package render implements the per-frame disc rendering stage.
package render

import (
	"context"
	"fmt"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
)

// Stage composites the disc for one frame over a private copy of the background.
type Stage struct{}

// NewStage creates a new render stage.
func NewStage() *Stage {
	return &Stage{}
}

// Radius returns the disc radius for a width x height background.
func Radius(ratio float64, width, height int) int {
	return int(ratio * float64(min(width, height)))
}

// Execute clones the background and draws the disc for input.Index on the clone.
// The background is only read.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.RenderResult{}, err
	}
	if input.Background == nil {
		return pipeline.RenderResult{}, fmt.Errorf("%w: no background", ports.ErrArgument)
	}
	if input.Table.Len() == 0 {
		return pipeline.RenderResult{}, fmt.Errorf("%w: empty motion table", ports.ErrArgument)
	}

	bg := input.Background
	frame := bg.Clone()

	cx, cy := input.Table.Center(bg.Width, bg.Height, input.Index)
	disc := raster.Disc{
		CenterX:  cx,
		CenterY:  cy,
		Radius:   Radius(input.RadiusRatio, bg.Width, bg.Height),
		Gradient: input.Gradient,
	}
	raster.RenderDisc(frame, disc)

	return pipeline.RenderResult{
		Frame:  frame,
		Disc:   disc,
		Offset: input.Table.At(input.Index),
	}, nil
}
