package fedskew

import "github.com/hupe1980/fedskew/distance"

const (
	// DefaultMaxK is the upper bound of the candidate range used when no
	// cluster count is pinned with WithK.
	DefaultMaxK = 10

	// DefaultSeed seeds the clustering RNG. Identical inputs with the same
	// seed always produce identical splits.
	DefaultSeed int64 = 42

	// DefaultMaxIterations bounds a single Lloyd's run.
	DefaultMaxIterations = 100
)

type options struct {
	k             int // 0 means resolve via FindOptimalK
	maxK          int
	seed          int64
	maxIterations int
	metric        distance.Metric
	logger        *Logger
}

// Option configures FindOptimalK and Distribute behavior.
type Option func(*options)

// WithK pins the cluster count, skipping the optimal-k search.
// Must be >= 2. Ignored by FindOptimalK.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithMaxK sets the inclusive upper bound of the candidate range for the
// optimal-k search. Default: DefaultMaxK.
func WithMaxK(maxK int) Option {
	return func(o *options) {
		o.maxK = maxK
	}
}

// WithSeed sets the clustering seed. The seed is scoped to the call; there
// is no process-global RNG state. Default: DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMaxIterations bounds each Lloyd's run. Default: DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithMetric sets the distance metric used for clustering and scoring.
// Default: distance.MetricL2.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := fedskew.NewJSONLogger(slog.LevelDebug)
//	p, _ := fedskew.Distribute(ctx, ds, features, 4, fedskew.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxK:          DefaultMaxK,
		seed:          DefaultSeed,
		maxIterations: DefaultMaxIterations,
		metric:        distance.MetricL2,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
