package cure

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when the input point set is empty.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidClusterCount is returned when the target cluster count is not positive.
	ErrInvalidClusterCount = errors.New("number of clusters must be positive")

	// ErrInvalidRepresentPoints is returned when the representative cap is not positive.
	ErrInvalidRepresentPoints = errors.New("number of representative points must be positive")

	// ErrInvalidCompression is returned when the compression factor is outside [0, 1].
	ErrInvalidCompression = errors.New("compression must be in [0, 1]")
)

// ErrInvalidDimension indicates an input point with zero dimensionality.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates an input point whose dimensionality differs
// from the first point's.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Point    int // index of the offending input point
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Point, e.Expected, e.Actual)
}

// InvariantError indicates that the proximity index broke its contract, e.g.
// by returning a cluster that is no longer live. The engine has no local
// recovery for this: every subsequent merge depends on correct neighbor data,
// so the run is aborted immediately.
type InvariantError struct {
	msg   string
	cause error
}

func (e *InvariantError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("internal invariant violated: %s: %v", e.msg, e.cause)
	}
	return fmt.Sprintf("internal invariant violated: %s", e.msg)
}

func (e *InvariantError) Unwrap() error { return e.cause }

func invariantErrorf(cause error, format string, args ...any) *InvariantError {
	return &InvariantError{msg: fmt.Sprintf(format, args...), cause: cause}
}
