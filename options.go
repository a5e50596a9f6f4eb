package lloyd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// EmptyClusterPolicy decides what an update does with a cluster that has
// no points assigned.
type EmptyClusterPolicy int

const (
	// EmptyClusterKeep leaves the stale centroid where it was (default).
	EmptyClusterKeep EmptyClusterPolicy = iota
	// EmptyClusterReseed moves the centroid onto a random input point.
	EmptyClusterReseed
	// EmptyClusterFail aborts the run with ErrEmptyCluster.
	EmptyClusterFail
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterKeep:
		return "keep"
	case EmptyClusterReseed:
		return "reseed"
	case EmptyClusterFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseEmptyClusterPolicy is the inverse of EmptyClusterPolicy.String.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch strings.ToLower(s) {
	case "", "keep":
		return EmptyClusterKeep, nil
	case "reseed":
		return EmptyClusterReseed, nil
	case "fail":
		return EmptyClusterFail, nil
	default:
		return 0, fmt.Errorf("unknown empty cluster policy %q", s)
	}
}

type options struct {
	rng              *rand.Rand
	emptyPolicy      EmptyClusterPolicy
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a clustering run.
type Option func(*options)

// WithRand sets the random source used to sample the initial centroids
// (and to reseed empty clusters under EmptyClusterReseed).
//
// If nil is passed, a randomly seeded source is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed makes the run reproducible by seeding a PCG source.
// Convenience wrapper for WithRand(rand.New(rand.NewPCG(seed, seed))).
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithEmptyClusterPolicy configures how clusters that lose all of their
// points are handled.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithMetricsCollector configures a metrics collector for clustering runs.
// Pass nil to disable metrics collection.
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	res, _ := lloyd.KMeans(points, labels, 4, 10, lloyd.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
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
		emptyPolicy:      EmptyClusterKeep,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
