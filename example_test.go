package curego_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/curego"
)

func Example() {
	points := [][]float32{
		{0, 0}, {1, 0}, {0, 1},
		{10, 10}, {11, 10}, {10, 11},
	}

	c, err := curego.New(points, 2,
		curego.WithNumberRepresentPoints(3),
		curego.WithCompression(0.5),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := c.Process(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for i, members := range res.Clusters {
		fmt.Printf("cluster %d: %v\n", i, members)
	}
	// Output:
	// cluster 0: [0 1 2]
	// cluster 1: [3 4 5]
}

func ExampleProcessMany() {
	datasets := [][][]float32{
		{{0, 0}, {1, 0}, {10, 10}, {11, 10}},
		{{-5, 0}, {-6, 0}, {5, 0}, {6, 0}},
	}

	results, err := curego.ProcessMany(context.Background(), datasets, 2)
	if err != nil {
		log.Fatal(err)
	}

	for i, res := range results {
		fmt.Printf("dataset %d: %d clusters\n", i, res.NumClusters())
	}
	// Output:
	// dataset 0: 2 clusters
	// dataset 1: 2 clusters
}
