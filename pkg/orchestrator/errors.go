package orchestrator

import "errors"

// ErrFramesFailed is returned when a run kept going past frame failures.
// The run result still lists every frame that was written.
var ErrFramesFailed = errors.New("frames failed")
