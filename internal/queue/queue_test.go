package queue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/curego/index"
)

func TestPushPopOrder(t *testing.T) {
	q := New(4)
	q.Push(Item{Handle: 0, Distance: 3, Order: 0})
	q.Push(Item{Handle: 1, Distance: 1, Order: 1})
	q.Push(Item{Handle: 2, Distance: 2, Order: 2})

	item, ok := q.PopMin()
	require.True(t, ok)
	assert.Equal(t, index.Handle(1), item.Handle)

	item, ok = q.PopMin()
	require.True(t, ok)
	assert.Equal(t, index.Handle(2), item.Handle)

	item, ok = q.PopMin()
	require.True(t, ok)
	assert.Equal(t, index.Handle(0), item.Handle)

	_, ok = q.PopMin()
	assert.False(t, ok)
}

func TestTieBreakByOrder(t *testing.T) {
	q := New(4)
	q.Push(Item{Handle: 5, Distance: 1, Order: 9})
	q.Push(Item{Handle: 3, Distance: 1, Order: 2})
	q.Push(Item{Handle: 7, Distance: 1, Order: 4})

	item, _ := q.PopMin()
	assert.Equal(t, index.Handle(3), item.Handle)
	item, _ = q.PopMin()
	assert.Equal(t, index.Handle(7), item.Handle)
	item, _ = q.PopMin()
	assert.Equal(t, index.Handle(5), item.Handle)
}

func TestUpdate(t *testing.T) {
	q := New(4)
	q.Push(Item{Handle: 0, Distance: 1, Order: 0})
	q.Push(Item{Handle: 1, Distance: 2, Order: 1})

	q.Update(Item{Handle: 0, Distance: 5, Order: 0})

	item, _ := q.PopMin()
	assert.Equal(t, index.Handle(1), item.Handle)
	item, _ = q.PopMin()
	assert.Equal(t, index.Handle(0), item.Handle)
	assert.Equal(t, float32(5), item.Distance)
}

func TestRemove(t *testing.T) {
	q := New(4)
	q.Push(Item{Handle: 0, Distance: 1, Order: 0})
	q.Push(Item{Handle: 1, Distance: 2, Order: 1})
	q.Push(Item{Handle: 2, Distance: 3, Order: 2})
	require.True(t, q.Contains(1))

	q.Remove(1)
	assert.False(t, q.Contains(1))
	assert.Equal(t, 2, q.Len())

	q.Remove(99) // no-op

	item, _ := q.PopMin()
	assert.Equal(t, index.Handle(0), item.Handle)
	item, _ = q.PopMin()
	assert.Equal(t, index.Handle(2), item.Handle)
}

func TestHeapProperty_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	q := New(0)
	want := make([]float32, 0, 256)
	for i := 0; i < 256; i++ {
		d := rng.Float32()
		q.Push(Item{Handle: index.Handle(i), Distance: d, Order: uint32(i)})
		want = append(want, d)
	}

	// Mutate a third of the entries through Update.
	for i := 0; i < 256; i += 3 {
		d := rng.Float32()
		q.Update(Item{Handle: index.Handle(i), Distance: d, Order: uint32(i)})
		want[i] = d
	}

	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := make([]float32, 0, 256)
	for {
		item, ok := q.PopMin()
		if !ok {
			break
		}
		got = append(got, item.Distance)
	}

	require.Len(t, got, 256)
	assert.Equal(t, want, got)
}
