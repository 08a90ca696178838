package cure

import (
	"context"
	"io"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/curego/distance"
	"github.com/hupe1980/curego/index"
	"github.com/hupe1980/curego/index/flat"
	"github.com/hupe1980/curego/internal/queue"
)

// State is the engine's lifecycle state.
type State int

const (
	// StateRunning means merge steps remain to be executed.
	StateRunning State = iota
	// StateDone means the target cluster count has been reached.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Config contains configuration options for the merge engine.
type Config struct {
	// NumberClusters is the target cluster count. Must be >= 1. Values
	// larger than the input size degrade gracefully to one cluster per
	// point.
	NumberClusters int

	// NumberRepresentPoints caps the representative points per cluster.
	// Must be >= 1.
	NumberRepresentPoints int

	// Compression is the fraction by which each representative is moved
	// toward the cluster mean, in [0, 1]. 0 keeps the member point itself,
	// 1 collapses all representatives onto the mean.
	Compression float32

	// Index is the proximity index used for nearest-cluster queries.
	// Defaults to the exact flat index.
	Index index.NeighborIndex

	// Logger receives structured engine logs. Defaults to discard.
	Logger *slog.Logger
}

// Validate checks the configuration, points excluded.
func (cfg *Config) Validate() error {
	if cfg.NumberClusters < 1 {
		return ErrInvalidClusterCount
	}
	if cfg.NumberRepresentPoints < 1 {
		return ErrInvalidRepresentPoints
	}
	if cfg.Compression < 0 || cfg.Compression > 1 {
		return ErrInvalidCompression
	}
	return nil
}

// Engine executes the CURE agglomerative merge algorithm: it maintains the
// live cluster set, repeatedly merges the globally closest pair, and keeps
// the proximity index and merge queue consistent, until the target cluster
// count is reached.
//
// An Engine is single-use and single-threaded: one Run per instance, no
// concurrent access, no observable intermediate state.
type Engine struct {
	cfg      Config
	points   [][]float32
	dim      int
	clusters []*Cluster // arena addressed by handle, nil entries are dead
	live     int
	idx      index.NeighborIndex
	queue    *queue.MergeQueue
	distFunc distance.Func
	logger   *slog.Logger
	progress rate.Sometimes
	state    State
	merges   int
}

// NewEngine validates the input and configuration. It fails fast: no engine
// state is constructed on a validation error.
func NewEngine(points [][]float32, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}

	dim := len(points[0])
	if dim == 0 {
		return nil, &ErrInvalidDimension{Dimension: 0}
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(p), Point: i}
		}
	}

	if cfg.Index == nil {
		cfg.Index = flat.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		cfg:      cfg,
		points:   points,
		dim:      dim,
		idx:      cfg.Index,
		queue:    queue.New(len(points)),
		distFunc: distance.SquaredL2,
		logger:   cfg.Logger,
		progress: rate.Sometimes{Interval: time.Second},
		state:    StateRunning,
	}, nil
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State { return e.state }

// Run executes merge steps until the target cluster count is reached and
// assembles the result. Cancelling ctx aborts the run; all partial state is
// discarded.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if err := e.initialize(ctx); err != nil {
		return nil, err
	}

	for e.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.step(); err != nil {
			return nil, err
		}
	}

	e.logger.Info("clustering completed",
		"points", len(e.points),
		"clusters", e.live,
		"merges", e.merges,
	)

	return e.assemble(), nil
}

// initialize creates one cluster per input point, loads the index, and
// computes every cluster's initial closest neighbor. If no merges are needed
// the engine transitions to DONE immediately.
func (e *Engine) initialize(ctx context.Context) error {
	n := len(e.points)

	e.logger.Info("clustering started",
		"points", n,
		"dimension", e.dim,
		"number_clusters", e.cfg.NumberClusters,
		"represent_points", e.cfg.NumberRepresentPoints,
		"compression", e.cfg.Compression,
	)

	e.clusters = make([]*Cluster, n)
	for i := range e.points {
		c := newPointCluster(index.Handle(i), uint32(i), e.points[i])
		e.clusters[i] = c
		e.idx.Insert(c.bundle())
	}
	e.live = n

	if e.cfg.NumberClusters >= n || n < 2 {
		e.state = StateDone
		return nil
	}

	for _, c := range e.clusters {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.refreshClosest(c); err != nil {
			return err
		}
	}

	return nil
}

// step executes one merge: pop the globally closest cluster, revalidate its
// cached neighbor against the index, and either refresh a stale entry or
// merge the pair and repair the affected neighbor caches.
func (e *Engine) step() error {
	item, ok := e.queue.PopMin()
	if !ok {
		return invariantErrorf(nil, "merge queue empty with %d live clusters", e.live)
	}

	u := e.clusters[item.Handle]
	if u == nil {
		return invariantErrorf(nil, "merge queue returned dead cluster %d", item.Handle)
	}

	// The popped distance may be stale if a neighbor changed since the last
	// update. Recompute through the index; merging on stale data could pick
	// a pair that is not the global minimum.
	nearest, err := e.nearestLive(u)
	if err != nil {
		return err
	}
	if nearest.Handle != u.closest || nearest.Distance != item.Distance {
		u.closest = nearest.Handle
		u.closestDist = nearest.Distance
		e.queue.Push(queue.Item{Handle: u.handle, Distance: u.closestDist, Order: u.first})
		return nil
	}

	v := e.clusters[u.closest]
	if v == nil {
		return invariantErrorf(nil, "closest cluster %d of %d is dead", u.closest, u.handle)
	}

	e.idx.Remove(u.handle)
	e.idx.Remove(v.handle)
	e.queue.Remove(v.handle)

	u.merge(v, e.points, e.cfg.NumberRepresentPoints, e.cfg.Compression, e.distFunc)
	e.clusters[v.handle] = nil
	e.live--
	e.merges++

	e.idx.Insert(u.bundle())

	// Termination is decided before any cache repair: once the target count
	// is reached (or a single cluster remains) there is no next merge, and
	// with one live bundle the index has no neighbor to answer with.
	if e.live <= e.cfg.NumberClusters || e.live < 2 {
		e.state = StateDone
		return nil
	}

	if err := e.refreshClosest(u); err != nil {
		return err
	}

	// Affected-set repair. Clusters whose cached nearest neighbor pointed at
	// either side of the merge hold an invalid cache and are recomputed
	// through the index. For everyone else the old cache is still a correct
	// distance to a live cluster, but the merged cluster may now be closer:
	// compare directly and adopt it if so. Together this keeps every queue
	// entry the true closest distance, so each pop is the global minimum.
	for _, x := range e.clusters {
		if x == nil || x == u {
			continue
		}
		if x.closest == u.handle || x.closest == v.handle {
			if err := e.refreshClosest(x); err != nil {
				return err
			}
			continue
		}
		d := setDistance(x.representatives, u.representatives, e.distFunc)
		if d < x.closestDist || (d == x.closestDist && u.first < e.clusters[x.closest].first) {
			x.closest = u.handle
			x.closestDist = d
			e.queue.Update(queue.Item{Handle: x.handle, Distance: x.closestDist, Order: x.first})
		}
	}

	e.progress.Do(func() {
		e.logger.Debug("merge progress",
			"merges", e.merges,
			"live", e.live,
			"distance", item.Distance,
		)
	})

	return nil
}

// refreshClosest recomputes a cluster's closest neighbor through the index
// and re-sorts its queue position.
func (e *Engine) refreshClosest(c *Cluster) error {
	nearest, err := e.nearestLive(c)
	if err != nil {
		return err
	}

	c.closest = nearest.Handle
	c.closestDist = nearest.Distance
	e.queue.Update(queue.Item{Handle: c.handle, Distance: c.closestDist, Order: c.first})

	return nil
}

// nearestLive queries the index and enforces its correctness contract: the
// returned neighbor must be a live cluster.
func (e *Engine) nearestLive(c *Cluster) (index.Neighbor, error) {
	nearest, err := e.idx.Nearest(c.handle)
	if err != nil {
		return index.Neighbor{}, invariantErrorf(err, "nearest query for cluster %d failed", c.handle)
	}
	if int(nearest.Handle) >= len(e.clusters) || e.clusters[nearest.Handle] == nil {
		return index.Neighbor{}, invariantErrorf(nil, "nearest query for cluster %d returned dead cluster %d", c.handle, nearest.Handle)
	}

	return nearest, nil
}

// setDistance is the minimum pairwise distance between two representative
// sets.
func setDistance(a, b [][]float32, distFunc distance.Func) float32 {
	minDist := float32(math.MaxFloat32)
	for _, p := range a {
		for _, q := range b {
			if d := distFunc(p, q); d < minDist {
				minDist = d
			}
		}
	}

	return minDist
}
