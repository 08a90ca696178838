package cure

import (
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/curego/distance"
	"github.com/hupe1980/curego/index"
	"github.com/hupe1980/curego/internal/floats"
)

// Cluster is the unit the merge engine manipulates: the member point indices,
// the shrunk representative points approximating the cluster's shape, the
// mean, and the cached closest-neighbor relationship.
//
// A cluster is exclusively owned by one engine for the duration of a run.
// The closest/closestDist cache is only meaningful between a recompute and
// the next merge touching either side; the engine revalidates it through the
// proximity index before acting on it.
type Cluster struct {
	handle          index.Handle
	members         *roaring.Bitmap
	representatives [][]float32
	mean            []float32
	closest         index.Handle
	closestDist     float32
	first           uint32 // lowest original member index, the tie-break key
}

// newPointCluster creates the initial singleton cluster for input point i.
// Its single member is its own representative and mean; shrinking toward the
// mean is a no-op at this size.
func newPointCluster(h index.Handle, i uint32, point []float32) *Cluster {
	members := roaring.New()
	members.Add(i)

	return &Cluster{
		handle:          h,
		members:         members,
		representatives: [][]float32{slices.Clone(point)},
		mean:            slices.Clone(point),
		first:           i,
	}
}

// Handle returns the cluster's stable engine handle.
func (c *Cluster) Handle() index.Handle { return c.handle }

// Size returns the number of member points.
func (c *Cluster) Size() int { return int(c.members.GetCardinality()) }

// bundle packages the cluster for the proximity index.
func (c *Cluster) bundle() index.Bundle {
	return index.Bundle{
		Handle:          c.handle,
		Representatives: c.representatives,
		Order:           c.first,
	}
}

// merge absorbs other into c. The mean becomes the centroid of the two prior
// means weighted by member counts, the member sets are unioned, and the
// representatives are recomputed from scratch over the new member set.
// The caller is responsible for removing other from the index and queue.
func (c *Cluster) merge(other *Cluster, points [][]float32, maxReps int, compression float32, distFunc distance.Func) {
	c.mean = floats.WeightedMean(c.mean, other.mean, float32(c.Size()), float32(other.Size()))
	c.members.Or(other.members)
	if other.first < c.first {
		c.first = other.first
	}

	c.recomputeRepresentatives(points, maxReps, compression, distFunc)
}

// recomputeRepresentatives rebuilds the representative set:
// greedy farthest-point sampling over the members (seeded from the point
// farthest from the mean), then each chosen point is moved toward the mean by
// the compression fraction. When the member count does not exceed the cap,
// every member is chosen.
//
// Ties in the farthest-point selection are broken by input-point index order,
// which makes results reproducible for a fixed input order.
func (c *Cluster) recomputeRepresentatives(points [][]float32, maxReps int, compression float32, distFunc distance.Func) {
	memberIdx := c.members.ToArray() // ascending

	var chosen []uint32
	if len(memberIdx) <= maxReps {
		chosen = memberIdx
	} else {
		chosen = farthestPoints(memberIdx, points, c.mean, maxReps, distFunc)
	}

	c.representatives = make([][]float32, len(chosen))
	for i, idx := range chosen {
		c.representatives[i] = floats.Lerp(points[idx], c.mean, compression)
	}
}

// farthestPoints greedily selects n member indices maximizing the minimum
// distance to the already-chosen set. Iteration is in ascending member order
// and selection requires a strict improvement, so equal distances resolve to
// the lowest input index.
func farthestPoints(memberIdx []uint32, points [][]float32, mean []float32, n int, distFunc distance.Func) []uint32 {
	chosen := make([]uint32, 0, n)
	chosenMask := make([]bool, len(memberIdx))

	// minDist[i] is the distance from member i to the chosen set; seeded
	// with the distance to the mean so the first pick is the point farthest
	// from the centroid.
	minDist := make([]float32, len(memberIdx))
	for i, idx := range memberIdx {
		minDist[i] = distFunc(points[idx], mean)
	}

	for len(chosen) < n {
		best := -1
		bestDist := float32(math.Inf(-1))
		for i := range memberIdx {
			if chosenMask[i] {
				continue
			}
			if minDist[i] > bestDist {
				bestDist = minDist[i]
				best = i
			}
		}

		chosen = append(chosen, memberIdx[best])
		chosenMask[best] = true

		for i, idx := range memberIdx {
			if chosenMask[i] {
				continue
			}
			if d := distFunc(points[idx], points[memberIdx[best]]); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return chosen
}
