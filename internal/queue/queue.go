// Package queue implements the merge queue: a min-heap of live clusters
// keyed by their cached closest-neighbor distance.
package queue

import "github.com/hupe1980/curego/index"

// Item represents a live cluster in the merge queue.
// Value-based storage for cache locality and zero allocations on the merge path.
type Item struct {
	Handle   index.Handle // Owning cluster.
	Distance float32      // Cached distance to the cluster's closest neighbor.
	Order    uint32       // Lowest original member index, breaks distance ties.
}

// MergeQueue is an indexed binary min-heap over Items. Unlike a plain heap it
// supports Update and Remove by handle, which the merge engine needs after a
// merge invalidates cached neighbor distances.
type MergeQueue struct {
	items []Item
	pos   map[index.Handle]int // handle -> index into items
}

// New initializes a merge queue with the given capacity hint.
func New(capacity int) *MergeQueue {
	return &MergeQueue{
		items: make([]Item, 0, capacity),
		pos:   make(map[index.Handle]int, capacity),
	}
}

// Len returns the number of items in the queue.
func (q *MergeQueue) Len() int { return len(q.items) }

// Contains reports whether the handle is currently queued.
func (q *MergeQueue) Contains(h index.Handle) bool {
	_, ok := q.pos[h]
	return ok
}

// Push inserts an item. Pushing a handle that is already queued updates it
// in place instead.
func (q *MergeQueue) Push(item Item) {
	if i, ok := q.pos[item.Handle]; ok {
		q.items[i] = item
		if !q.siftUp(i) {
			q.siftDown(i)
		}
		return
	}

	q.items = append(q.items, item)
	q.pos[item.Handle] = len(q.items) - 1
	q.siftUp(len(q.items) - 1)
}

// PopMin removes and returns the item with the smallest distance.
func (q *MergeQueue) PopMin() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return Item{}, false
	}

	root := q.items[0]
	delete(q.pos, root.Handle)

	last := q.items[n-1]
	q.items[n-1] = Item{} // Zero out for GC
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.pos[last.Handle] = 0
		q.siftDown(0)
	}

	return root, true
}

// Update re-sorts the item for the given handle after its distance changed.
// Unknown handles are inserted.
func (q *MergeQueue) Update(item Item) {
	q.Push(item)
}

// Remove deletes the item for the given handle. Removing an unknown handle
// is a no-op.
func (q *MergeQueue) Remove(h index.Handle) {
	i, ok := q.pos[h]
	if !ok {
		return
	}
	delete(q.pos, h)

	n := len(q.items)
	last := q.items[n-1]
	q.items[n-1] = Item{}
	q.items = q.items[:n-1]
	if i < n-1 {
		q.items[i] = last
		q.pos[last.Handle] = i
		if !q.siftUp(i) {
			q.siftDown(i)
		}
	}
}

func (q *MergeQueue) less(i, j int) bool {
	if q.items[i].Distance != q.items[j].Distance {
		return q.items[i].Distance < q.items[j].Distance
	}
	return q.items[i].Order < q.items[j].Order
}

func (q *MergeQueue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i].Handle] = i
	q.pos[q.items[j].Handle] = j
}

func (q *MergeQueue) siftUp(i int) bool {
	moved := false
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return moved
		}
		q.swap(i, p)
		i = p
		moved = true
	}
	return moved
}

func (q *MergeQueue) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.swap(i, best)
		i = best
	}
}
