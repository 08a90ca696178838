// Package distance provides the public API for point distance calculations
// used by the clustering engine.
package distance

import (
	"fmt"

	"github.com/hupe1980/curego/internal/floats"
)

// Dot calculates the dot product of two points.
// Assumes points are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	return floats.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two points.
// Assumes points are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return floats.SquaredL2(a, b)
}

// Euclidean calculates the L2 (Euclidean) distance between two points.
// Assumes points are the same length (caller's responsibility).
func Euclidean(a, b []float32) float32 {
	return floats.Euclidean(a, b)
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricEuclidean
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricEuclidean:
		return "Euclidean"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricEuclidean:
		return Euclidean, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
