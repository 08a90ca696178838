package curego

import (
	"errors"

	"github.com/hupe1980/curego/cure"
)

// ErrSharedIndex is returned by ProcessMany when WithIndex is supplied.
// A proximity index is mutable state owned by exactly one engine; sharing
// one across concurrent runs would race.
var ErrSharedIndex = errors.New("an index cannot be shared across concurrent runs")

// Re-exported engine errors so callers can match without importing the cure
// package directly.
var (
	// ErrEmptyDataset is returned when the input point set is empty.
	ErrEmptyDataset = cure.ErrEmptyDataset

	// ErrInvalidClusterCount is returned when the target cluster count is not positive.
	ErrInvalidClusterCount = cure.ErrInvalidClusterCount

	// ErrInvalidRepresentPoints is returned when the representative cap is not positive.
	ErrInvalidRepresentPoints = cure.ErrInvalidRepresentPoints

	// ErrInvalidCompression is returned when the compression factor is outside [0, 1].
	ErrInvalidCompression = cure.ErrInvalidCompression
)

// ErrDimensionMismatch indicates an input point whose dimensionality differs
// from the first point's.
type ErrDimensionMismatch = cure.ErrDimensionMismatch

// ErrInvalidDimension indicates an input point with zero dimensionality.
type ErrInvalidDimension = cure.ErrInvalidDimension

// InvariantError indicates a broken proximity index contract. It is fatal:
// the run is aborted immediately and no partial result is returned.
type InvariantError = cure.InvariantError
