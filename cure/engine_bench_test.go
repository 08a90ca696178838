package cure

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/curego/distance"
	"github.com/hupe1980/curego/index"
	"github.com/hupe1980/curego/testutil"
)

// BenchmarkRun benchmarks a full clustering run at several input sizes.
func BenchmarkRun(b *testing.B) {
	sizes := []int{100, 500, 1000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := testutil.NewRNG(42)
			centers := [][]float32{{0, 0}, {50, 0}, {0, 50}, {50, 50}}
			points := rng.GaussianBlobs(centers, n/len(centers), 2.0)

			ctx := context.Background()
			b.ResetTimer()

			for bi := 0; bi < b.N; bi++ {
				e, err := NewEngine(points, Config{
					NumberClusters:        4,
					NumberRepresentPoints: 5,
					Compression:           0.5,
				})
				if err != nil {
					b.Fatal(err)
				}
				if _, err := e.Run(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkMerge benchmarks a single merge of two mid-sized clusters.
func BenchmarkMerge(b *testing.B) {
	reps := []int{5, 10, 20}

	for _, r := range reps {
		b.Run(fmt.Sprintf("reps=%d", r), func(b *testing.B) {
			rng := testutil.NewRNG(42)
			points := rng.UniformPoints(200, 16)

			b.ResetTimer()

			for bi := 0; bi < b.N; bi++ {
				left := newPointCluster(0, 0, points[0])
				for i := 1; i < 100; i++ {
					other := newPointCluster(index.Handle(i), uint32(i), points[i])
					left.merge(other, points, r, 0.5, distance.SquaredL2)
				}
			}
		})
	}
}
