package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientResolution is returned when a grid is too small to
	// contour or has no samples at all.
	ErrInsufficientResolution = errors.New("insufficient resolution")

	// ErrInvalidLevelCount is returned when a non-positive number of
	// contour levels is requested.
	ErrInvalidLevelCount = errors.New("invalid level count")
)

// A DecodeError reports a malformed heightmap source.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
