// Package curego provides CURE (Clustering Using REpresentatives) clustering
// for Go.
//
// CURE is a hierarchical agglomerative algorithm that represents every
// cluster by a small set of well-scattered points shrunk toward the cluster
// mean. It finds clusters of arbitrary, non-spherical shape and stays robust
// to outliers, at a fraction of the cost of all-pairs hierarchical
// clustering.
//
// # Quick Start
//
//	points := [][]float32{
//	    {0, 0}, {1, 0}, {0, 1},
//	    {10, 10}, {11, 10}, {10, 11},
//	}
//
//	c, err := curego.New(points, 2,
//	    curego.WithNumberRepresentPoints(3),
//	    curego.WithCompression(0.5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := c.Process(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, members := range res.Clusters {
//	    fmt.Println(i, members, res.Means[i])
//	}
//
// The result carries three index-aligned sequences: the member point indices,
// the representative points, and the mean of each final cluster.
//
// # Persistence
//
// Results can be serialized to a compact binary snapshot (see the
// persistence package) and published to local or object storage (see the
// blobstore package).
package curego

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/curego/cure"
)

// Result is the immutable outcome of a clustering run.
type Result = cure.Result

// CURE is a configured, single-use clustering run over one input point set.
type CURE struct {
	points [][]float32
	engine *cure.Engine
	opts   options
}

// New validates the input points and configuration and prepares a run.
// Validation fails fast: no engine state exists when an error is returned.
func New(points [][]float32, numberClusters int, optFns ...Option) (*CURE, error) {
	opts := applyOptions(optFns)

	cfg := cure.Config{
		NumberClusters:        numberClusters,
		NumberRepresentPoints: opts.numberRepresentPoints,
		Compression:           opts.compression,
		Index:                 opts.index,
	}
	if opts.logger != nil {
		cfg.Logger = opts.logger.Logger
	}

	engine, err := cure.NewEngine(points, cfg)
	if err != nil {
		return nil, err
	}

	return &CURE{
		points: points,
		engine: engine,
		opts:   opts,
	}, nil
}

// Process runs the clustering to completion and returns the assembled
// result. Cancelling ctx aborts the run and discards all partial state;
// there is no resumable intermediate state.
func (c *CURE) Process(ctx context.Context) (*Result, error) {
	return c.engine.Run(ctx)
}

// ProcessMany clusters independent datasets concurrently with the same
// configuration. Each dataset is processed by its own single-threaded run;
// results are index-aligned with datasets. The first error cancels the
// remaining runs.
//
// WithIndex is rejected with ErrSharedIndex: one index instance cannot back
// concurrent runs. Every run gets its own default index instead.
func ProcessMany(ctx context.Context, datasets [][][]float32, numberClusters int, optFns ...Option) ([]*Result, error) {
	if opts := applyOptions(optFns); opts.index != nil {
		return nil, ErrSharedIndex
	}

	results := make([]*Result, len(datasets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, points := range datasets {
		i, points := i, points
		g.Go(func() error {
			c, err := New(points, numberClusters, optFns...)
			if err != nil {
				return err
			}

			res, err := c.Process(ctx)
			if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
