package lloyd

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/lloyd/internal/conv"
	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/point"
)

// KMeans partitions integral points into k clusters with Lloyd's algorithm.
//
// The centroids are seeded by sampling k distinct input points, every point
// is labeled with its nearest centroid, and then exactly n refinement passes
// (mean update followed by relabeling) are run. There is no convergence
// check; n may be 0.
//
// labels receives the 1-based cluster identifier of every point and must
// have the same length as points. The returned Result references both
// slices.
//
// Because the mean of integers is generally not an integer, the centroids
// have float64 coordinates.
//
// On invalid arguments KMeans returns a nil Result and an error wrapping
// ErrInvalidArgument; labels is not written.
func KMeans[T point.Integer](points []point.Point[T], labels []uint32, k, n int, opts ...Option) (*Result[T, float64], error) {
	return run[T, float64](points, labels, k, n, opts)
}

// KMeansFloat is KMeans for floating-point points. The centroids keep the
// element type of the points.
func KMeansFloat[T point.Float](points []point.Point[T], labels []uint32, k, n int, opts ...Option) (*Result[T, T], error) {
	return run[T, T](points, labels, k, n, opts)
}

func run[T point.Number, C point.Float](points []point.Point[T], labels []uint32, k, n int, opts []Option) (*Result[T, C], error) {
	o := applyOptions(opts)
	ctx := context.Background()
	start := time.Now()
	log := o.logger.WithK(k).WithCount(len(points))

	dim, err := validate(points, labels, k, n)
	if err != nil {
		log.LogRun(ctx, 0, time.Since(start), err)
		o.metricsCollector.RecordRun(len(points), k, 0, time.Since(start), err)
		return nil, err
	}
	log = log.WithDimension(dim)

	centroids := kmeans.InitCentroids[C](points, k, o.rng)
	kmeans.Assign(labels, points, centroids)

	onEmpty := emptyHandler(ctx, points, centroids, o, log)

	prev := make([]uint32, len(labels))
	for iter := range n {
		if err := kmeans.Update(points, labels, centroids, onEmpty); err != nil {
			log.LogRun(ctx, iter, time.Since(start), err)
			o.metricsCollector.RecordRun(len(points), k, iter, time.Since(start), err)
			return nil, err
		}

		copy(prev, labels)
		kmeans.Assign(labels, points, centroids)

		changed := countChanged(prev, labels)
		o.metricsCollector.RecordIteration(changed)
		log.LogIteration(ctx, iter+1, changed)
	}

	res := &Result[T, C]{
		centroids: kmeans.Points(centroids),
		sizes:     kmeans.Histogram(labels, k),
		points:    points,
		labels:    labels,
	}

	log.LogRun(ctx, n, time.Since(start), nil)
	o.metricsCollector.RecordRun(len(points), k, n, time.Since(start), nil)

	return res, nil
}

// emptyHandler applies the configured EmptyClusterPolicy to centroids[i]
// when its cluster has no points.
func emptyHandler[T point.Number, C point.Float](ctx context.Context, points []point.Point[T], centroids []kmeans.Centroid[C], o options, log *Logger) kmeans.EmptyFunc {
	return func(i int) error {
		id := centroids[i].ID
		o.metricsCollector.RecordEmptyCluster()
		log.LogEmptyCluster(ctx, id, o.emptyPolicy)

		switch o.emptyPolicy {
		case EmptyClusterReseed:
			centroids[i].Point = point.Convert[C](points[o.rng.IntN(len(points))])
		case EmptyClusterFail:
			return fmt.Errorf("%w: cluster %d", ErrEmptyCluster, id)
		}
		return nil
	}
}

// validate checks the run arguments in a fixed order and returns the
// common point dimension.
func validate[T point.Number](points []point.Point[T], labels []uint32, k, n int) (int, error) {
	if k < 2 {
		return 0, invalid(fmt.Errorf("%w: got %d", ErrInvalidK, k))
	}
	if len(points) < k {
		return 0, invalid(fmt.Errorf("%w: %d points, k=%d", ErrTooFewPoints, len(points), k))
	}
	if len(labels) != len(points) {
		return 0, invalid(fmt.Errorf("%w: %d labels, %d points", ErrLengthMismatch, len(labels), len(points)))
	}
	if _, err := conv.IntToUint32(len(points)); err != nil {
		return 0, invalid(fmt.Errorf("%w: %w", ErrCountOverflow, err))
	}
	if n < 0 {
		return 0, invalid(fmt.Errorf("%w: got %d", ErrInvalidIterations, n))
	}

	dim := points[0].Dim()
	if dim == 0 {
		return 0, &ErrInvalidDimension{Dimension: dim}
	}
	for i, p := range points {
		if p.Dim() != dim {
			return 0, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: p.Dim()}
		}
	}

	return dim, nil
}

func countChanged(prev, cur []uint32) int {
	changed := 0
	for i := range cur {
		if prev[i] != cur[i] {
			changed++
		}
	}
	return changed
}
