package ports

import (
	"errors"
	"fmt"

	"github.com/user/bouncer/pkg/pixbuf"
)

var (
	// ErrOpen is returned when a container cannot be read or parsed, or holds no visual stream.
	ErrOpen = errors.New("open failed")

	// ErrCodecUnsupported is returned when no decoder is registered for the input format.
	ErrCodecUnsupported = errors.New("codec unsupported")

	// ErrDecode is returned when the stream is recognized but no complete frame can be produced.
	ErrDecode = errors.New("decode failed")

	// ErrEncoderUnavailable is returned when the requested output format has no encoder.
	ErrEncoderUnavailable = errors.New("encoder unavailable")

	// ErrEncode is returned when encoding fails or produces no output.
	ErrEncode = errors.New("encode failed")

	// ErrIO is returned when the destination cannot be opened or written.
	ErrIO = errors.New("i/o failure")

	// ErrOutOfBounds is returned when a pixel coordinate lies outside a buffer.
	ErrOutOfBounds = pixbuf.ErrOutOfBounds

	// ErrArgument is returned for invalid command-line arguments or configuration values.
	ErrArgument = errors.New("invalid argument")
)

// CodecError records a failed codec operation together with the path it touched.
// Kind is one of the sentinel errors above; Err is the underlying cause, if any.
type CodecError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *CodecError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *CodecError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewCodecError builds a CodecError.
func NewCodecError(op, path string, kind, err error) *CodecError {
	return &CodecError{Op: op, Path: path, Kind: kind, Err: err}
}
