// Package motion provides the precomputed bounce path of the disc.
package motion

import (
	"fmt"
	"math"

	"github.com/user/bouncer/pkg/ports"
)

// defaultOffsets is one full bounce: down to 0.6 of the height and back to 0.9.
var defaultOffsets = []float64{
	0.9, 0.85, 0.825, 0.8, 0.75, 0.725, 0.7, 0.65, 0.625, 0.6,
	0.6, 0.625, 0.65, 0.7, 0.725, 0.75, 0.8, 0.825, 0.85, 0.9,
}

// Table is an immutable cyclic sequence of vertical offsets, each a fraction of the image height.
type Table struct {
	offsets []float64
}

// Default returns the standard 20-step bounce.
func Default() Table {
	t, _ := New(defaultOffsets)
	return t
}

// New builds a table from offsets. Every offset must lie in [0, 1].
// The slice is copied, so later changes by the caller have no effect.
func New(offsets []float64) (Table, error) {
	if len(offsets) == 0 {
		return Table{}, fmt.Errorf("%w: motion table is empty", ports.ErrArgument)
	}
	for i, v := range offsets {
		if v < 0 || v > 1 {
			return Table{}, fmt.Errorf("%w: motion offset %d is %v, want 0..1", ports.ErrArgument, i, v)
		}
	}
	own := make([]float64, len(offsets))
	copy(own, offsets)
	return Table{offsets: own}, nil
}

// Len returns the period of the table.
func (t Table) Len() int {
	return len(t.offsets)
}

// At returns the offset for frame i, wrapping around the table.
func (t Table) At(i int) float64 {
	n := len(t.offsets)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return t.offsets[i]
}

// Offsets returns a copy of the table values.
func (t Table) Offsets() []float64 {
	out := make([]float64, len(t.offsets))
	copy(out, t.offsets)
	return out
}

// centerEpsilon absorbs the representation error of decimal offsets such as
// 0.7, so that 90*0.7 floors to 63 and not 62.
const centerEpsilon = 1e-9

// Center returns the disc center for frame i in an image of the given size.
// x is fixed at the horizontal midpoint; y is height*offset truncated toward zero.
func (t Table) Center(width, height, i int) (x, y int) {
	return width / 2, int(math.Floor(float64(height)*t.At(i) + centerEpsilon))
}
