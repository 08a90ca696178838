package curego

import (
	"log/slog"

	"github.com/hupe1980/curego/index"
)

// DefaultNumberRepresentPoints is the default representative cap per cluster.
const DefaultNumberRepresentPoints = 5

// DefaultCompression is the default shrink fraction toward the cluster mean.
const DefaultCompression = 0.5

type options struct {
	numberRepresentPoints int
	compression           float32
	index                 index.NeighborIndex
	logger                *Logger
}

// Option configures a clustering run.
type Option func(*options)

// WithNumberRepresentPoints sets the maximum number of representative points
// per cluster. Small values (3-10) are typical; a cluster with fewer members
// than the cap uses every member as a representative.
func WithNumberRepresentPoints(n int) Option {
	return func(o *options) {
		o.numberRepresentPoints = n
	}
}

// WithCompression sets the fraction by which representatives are moved
// toward the cluster mean, in [0, 1]. 0 behaves closest to single-link
// chaining, 1 collapses representatives onto the mean and behaves closest
// to centroid-based clustering.
func WithCompression(compression float32) Option {
	return func(o *options) {
		o.compression = compression
	}
}

// WithIndex substitutes the proximity index used for nearest-cluster
// queries. Any implementation of the index contract can be used; the
// default is the exact flat index. The index is owned exclusively by the
// run it configures and must not be reused, so ProcessMany rejects this
// option.
func WithIndex(idx index.NeighborIndex) Option {
	return func(o *options) {
		o.index = idx
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		numberRepresentPoints: DefaultNumberRepresentPoints,
		compression:           DefaultCompression,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
