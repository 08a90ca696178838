package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/curego/distance"
	"github.com/hupe1980/curego/index"
)

func bundle(h index.Handle, order uint32, points ...[]float32) index.Bundle {
	return index.Bundle{Handle: h, Representatives: points, Order: order}
}

func TestNearest(t *testing.T) {
	f := New()
	f.Insert(bundle(0, 0, []float32{0, 0}))
	f.Insert(bundle(1, 1, []float32{1, 0}))
	f.Insert(bundle(2, 2, []float32{10, 10}))

	n, err := f.Nearest(0)
	require.NoError(t, err)
	assert.Equal(t, index.Handle(1), n.Handle)
	assert.InDelta(t, float32(1), n.Distance, 1e-6)

	n, err = f.Nearest(2)
	require.NoError(t, err)
	assert.Equal(t, index.Handle(1), n.Handle)
}

func TestNearest_MinPairwise(t *testing.T) {
	// The bundle distance is the minimum over representative pairs, not the
	// distance between any single designated point.
	f := New()
	f.Insert(bundle(0, 0, []float32{0, 0}, []float32{5, 0}))
	f.Insert(bundle(1, 1, []float32{6, 0}, []float32{100, 0}))
	f.Insert(bundle(2, 2, []float32{0, 3}))

	n, err := f.Nearest(0)
	require.NoError(t, err)
	assert.Equal(t, index.Handle(1), n.Handle)
	assert.InDelta(t, float32(1), n.Distance, 1e-6) // (5,0) vs (6,0)
}

func TestNearest_TieBreak(t *testing.T) {
	// Handles 2 and 1 are equidistant from 0; the lower order key wins even
	// though the higher handle was inserted first.
	f := New()
	f.Insert(bundle(0, 0, []float32{0, 0}))
	f.Insert(bundle(2, 5, []float32{0, 2}))
	f.Insert(bundle(1, 7, []float32{2, 0}))

	n, err := f.Nearest(0)
	require.NoError(t, err)
	assert.Equal(t, index.Handle(2), n.Handle)
}

func TestNearest_Errors(t *testing.T) {
	f := New()

	_, err := f.Nearest(0)
	var unknown *index.ErrUnknownHandle
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, index.Handle(0), unknown.Handle)

	f.Insert(bundle(0, 0, []float32{0, 0}))
	_, err = f.Nearest(0)
	assert.ErrorIs(t, err, index.ErrEmptyIndex)
}

func TestRemove(t *testing.T) {
	f := New()
	f.Insert(bundle(0, 0, []float32{0, 0}))
	f.Insert(bundle(1, 1, []float32{1, 0}))
	f.Insert(bundle(2, 2, []float32{10, 10}))
	require.Equal(t, 3, f.Len())

	f.Remove(1)
	assert.Equal(t, 2, f.Len())

	n, err := f.Nearest(0)
	require.NoError(t, err)
	assert.Equal(t, index.Handle(2), n.Handle)

	// Removing an unknown handle is a no-op.
	f.Remove(99)
	assert.Equal(t, 2, f.Len())

	_, err = f.Nearest(1)
	var unknown *index.ErrUnknownHandle
	assert.ErrorAs(t, err, &unknown)
}

func TestInsert_Replace(t *testing.T) {
	f := New()
	f.Insert(bundle(0, 0, []float32{0, 0}))
	f.Insert(bundle(1, 1, []float32{1, 0}))
	f.Insert(bundle(1, 1, []float32{3, 0}))
	require.Equal(t, 2, f.Len())

	n, err := f.Nearest(0)
	require.NoError(t, err)
	assert.InDelta(t, float32(9), n.Distance, 1e-6)
}

func TestEuclideanOption(t *testing.T) {
	f := New(func(o *Options) {
		o.DistanceFunc = distance.Euclidean
	})
	f.Insert(bundle(0, 0, []float32{0, 0}))
	f.Insert(bundle(1, 1, []float32{3, 4}))

	n, err := f.Nearest(0)
	require.NoError(t, err)
	assert.InDelta(t, float32(5), n.Distance, 1e-6)
}
