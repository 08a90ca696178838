package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformPoints generates random points with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	points := make([][]float32, num)

	for i := 0; i < num; i++ {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float32()
		}
		points[i] = p
	}

	return points
}

// GaussianBlobs generates perCenter points around each center, jittered by a
// normal distribution with the given standard deviation. Points are emitted
// center by center, so the ground-truth assignment of point i is
// centers[i/perCenter].
func (r *RNG) GaussianBlobs(centers [][]float32, perCenter int, stddev float32) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float32, 0, len(centers)*perCenter)
	for _, center := range centers {
		for k := 0; k < perCenter; k++ {
			p := make([]float32, len(center))
			for j := range p {
				p[j] = center[j] + float32(r.rand.NormFloat64())*stddev
			}
			points = append(points, p)
		}
	}

	return points
}
