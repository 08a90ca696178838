package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(42)
	require.Equal(t, int64(42), rng.Seed())

	a := rng.Float32()
	rng.Reset()
	b := rng.Float32()
	assert.Equal(t, a, b)
}

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(1)
	points := rng.UniformPoints(10, 4)
	require.Len(t, points, 10)
	for _, p := range points {
		require.Len(t, p, 4)
		for _, v := range p {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.Less(t, v, float32(1))
		}
	}
}

func TestGaussianBlobs(t *testing.T) {
	rng := NewRNG(7)
	centers := [][]float32{{0, 0}, {100, 100}}
	points := rng.GaussianBlobs(centers, 5, 0.1)
	require.Len(t, points, 10)

	// Points stay near their own center at this spread.
	for i, p := range points {
		center := centers[i/5]
		for j := range p {
			assert.InDelta(t, center[j], p[j], 1.0)
		}
	}
}
