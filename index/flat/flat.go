// Package flat provides an exact brute-force implementation of the proximity
// index contract.
package flat

import (
	"math"

	"github.com/hupe1980/curego/distance"
	"github.com/hupe1980/curego/index"
)

// Compile-time check to ensure Flat satisfies the index contract.
var _ index.NeighborIndex = (*Flat)(nil)

// Options contains configuration options for the flat index.
type Options struct {
	// DistanceFunc is the pairwise point distance. Defaults to squared L2,
	// which preserves Euclidean ordering.
	DistanceFunc distance.Func
}

// DefaultOptions contains the default configuration options for the flat index.
var DefaultOptions = Options{
	DistanceFunc: distance.SquaredL2,
}

// Flat is an exact nearest-bundle index. Every query scans all live bundles,
// so Nearest is O(live bundles * representative pairs). For the cluster
// counts the merge engine works with this is the simplest structure that
// meets the correctness contract; tree-based indexes can be substituted
// through the NeighborIndex interface without touching the engine.
type Flat struct {
	bundles  []*index.Bundle // dense by handle, nil entries are not live
	live     int
	distFunc distance.Func
}

// New creates a new flat index.
func New(optFns ...func(o *Options)) *Flat {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Flat{
		distFunc: opts.DistanceFunc,
	}
}

// Insert adds a bundle, replacing any previous bundle with the same handle.
func (f *Flat) Insert(b index.Bundle) {
	for int(b.Handle) >= len(f.bundles) {
		f.bundles = append(f.bundles, nil)
	}
	if f.bundles[b.Handle] == nil {
		f.live++
	}
	f.bundles[b.Handle] = &b
}

// Remove deletes the bundle for the given handle.
func (f *Flat) Remove(h index.Handle) {
	if int(h) >= len(f.bundles) || f.bundles[h] == nil {
		return
	}
	f.bundles[h] = nil
	f.live--
}

// Nearest returns the closest other live bundle, scanning handles in
// ascending order. On equal distances the bundle with the lower order key
// wins.
func (f *Flat) Nearest(h index.Handle) (index.Neighbor, error) {
	if int(h) >= len(f.bundles) || f.bundles[h] == nil {
		return index.Neighbor{}, &index.ErrUnknownHandle{Handle: h}
	}
	if f.live < 2 {
		return index.Neighbor{}, index.ErrEmptyIndex
	}

	query := f.bundles[h]

	var (
		best      index.Neighbor
		bestOrder uint32
		found     bool
	)
	best.Distance = float32(math.MaxFloat32)

	for i, b := range f.bundles {
		if b == nil || index.Handle(i) == h {
			continue
		}

		d := f.setDistance(query.Representatives, b.Representatives)
		if d < best.Distance || (d == best.Distance && found && b.Order < bestOrder) {
			best = index.Neighbor{Handle: b.Handle, Distance: d}
			bestOrder = b.Order
			found = true
		}
	}

	return best, nil
}

// Len returns the number of live bundles.
func (f *Flat) Len() int {
	return f.live
}

// setDistance is the minimum pairwise distance between two representative
// sets.
func (f *Flat) setDistance(a, b [][]float32) float32 {
	minDist := float32(math.MaxFloat32)
	for _, p := range a {
		for _, q := range b {
			if d := f.distFunc(p, q); d < minDist {
				minDist = d
			}
		}
	}

	return minDist
}
