package pixbuf

import "errors"

var (
	// ErrOutOfBounds is returned by reads outside the buffer.
	ErrOutOfBounds = errors.New("pixbuf: coordinate out of bounds")

	// ErrInvalidSize is returned when a buffer is created with unusable dimensions.
	ErrInvalidSize = errors.New("pixbuf: invalid size")
)
