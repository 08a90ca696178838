package cure

import (
	"slices"
	"sort"
)

// Result is the immutable outcome of a clustering run. The three sequences
// are index-aligned: Clusters[i], Representors[i], and Means[i] all describe
// the same final cluster. Clusters are ordered by their lowest original
// member index, and every sequence is an owned copy; mutating a Result never
// touches engine state and vice versa.
type Result struct {
	// Clusters holds the original input-point indices of each final
	// cluster, in ascending order.
	Clusters [][]int

	// Representors holds each final cluster's shrunk representative points.
	Representors [][][]float32

	// Means holds each final cluster's mean point.
	Means [][]float32
}

// NumClusters returns the number of final clusters.
func (r *Result) NumClusters() int { return len(r.Clusters) }

// Sizes returns the member count of each final cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Clusters))
	for i, c := range r.Clusters {
		sizes[i] = len(c)
	}
	return sizes
}

// assemble snapshots the surviving clusters into a Result. Pure read and
// copy; no further computation happens at this point.
func (e *Engine) assemble() *Result {
	survivors := make([]*Cluster, 0, e.live)
	for _, c := range e.clusters {
		if c != nil {
			survivors = append(survivors, c)
		}
	}
	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].first < survivors[j].first
	})

	res := &Result{
		Clusters:     make([][]int, len(survivors)),
		Representors: make([][][]float32, len(survivors)),
		Means:        make([][]float32, len(survivors)),
	}

	for i, c := range survivors {
		memberIdx := c.members.ToArray()
		members := make([]int, len(memberIdx))
		for j, idx := range memberIdx {
			members[j] = int(idx)
		}
		res.Clusters[i] = members

		reps := make([][]float32, len(c.representatives))
		for j, p := range c.representatives {
			reps[j] = slices.Clone(p)
		}
		res.Representors[i] = reps

		res.Means[i] = slices.Clone(c.mean)
	}

	return res
}
