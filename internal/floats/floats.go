// Package floats provides float32 vector kernels used by the distance and
// clustering packages. This is an internal package - external users should
// use the distance package.
package floats

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Euclidean calculates the L2 (Euclidean) distance.
func Euclidean(a, b []float32) float32 {
	return float32(math.Sqrt(float64(SquaredL2(a, b))))
}

// Lerp returns a + t*(b-a) as a new vector.
// With t=0 the result equals a, with t=1 it equals b.
func Lerp(a, b []float32, t float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + t*(b[i]-a[i])
	}

	return out
}

// WeightedMean returns the centroid of two points weighted by wa and wb.
// Assumes wa+wb > 0 (caller's responsibility).
func WeightedMean(a, b []float32, wa, wb float32) []float32 {
	inv := 1 / (wa + wb)
	out := make([]float32, len(a))
	for i := range a {
		out[i] = (a[i]*wa + b[i]*wb) * inv
	}

	return out
}
