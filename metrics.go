package lloyd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called once per KMeans call, including rejected ones.
	// points is the input size, iterations the refinement passes performed.
	RecordRun(points, k, iterations int, duration time.Duration, err error)

	// RecordIteration is called after every update/assign pass with the
	// number of points whose label changed.
	RecordIteration(changed int)

	// RecordEmptyCluster is called whenever an update finds a cluster
	// without points.
	RecordEmptyCluster()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int)                           {}
func (NoopMetricsCollector) RecordEmptyCluster()                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use by independent runs.
type BasicMetricsCollector struct {
	RunCount      atomic.Int64
	RunErrors     atomic.Int64
	RunTotalNanos atomic.Int64
	PointsTotal   atomic.Int64
	Iterations    atomic.Int64
	LabelChanges  atomic.Int64
	EmptyClusters atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, k, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.PointsTotal.Add(int64(points))
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(changed int) {
	b.Iterations.Add(1)
	b.LabelChanges.Add(int64(changed))
}

// RecordEmptyCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmptyCluster() {
	b.EmptyClusters.Add(1)
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   b.getAvgRunNanos(),
		PointsTotal:   b.PointsTotal.Load(),
		Iterations:    b.Iterations.Load(),
		LabelChanges:  b.LabelChanges.Load(),
		EmptyClusters: b.EmptyClusters.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
	PointsTotal   int64
	Iterations    int64
	LabelChanges  int64
	EmptyClusters int64
}
