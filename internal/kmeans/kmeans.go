package kmeans

import (
	"math/rand/v2"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/point"
	"gonum.org/v1/gonum/floats"
)

// Centroid is a cluster center tagged with its 1-based identifier.
type Centroid[C point.Float] struct {
	ID    uint32
	Point point.Point[C]
}

// Points returns the centroid positions in identifier order.
func Points[C point.Float](centroids []Centroid[C]) []point.Point[C] {
	out := make([]point.Point[C], len(centroids))
	for i, c := range centroids {
		out[i] = c.Point
	}
	return out
}

// InitCentroids samples k distinct points uniformly at random and returns
// them as centroids with identifiers 1..k in sampling order.
// The caller guarantees 0 < k <= len(points).
func InitCentroids[C point.Float, T point.Number](points []point.Point[T], k int, rng *rand.Rand) []Centroid[C] {
	perm := rng.Perm(len(points))

	centroids := make([]Centroid[C], k)
	for i := range k {
		centroids[i] = Centroid[C]{
			ID:    uint32(i + 1),
			Point: point.Convert[C](points[perm[i]]),
		}
	}

	return centroids
}

// Assign writes, for every point, the identifier of its nearest centroid
// into out. Ties go to the centroid that comes first in centroids.
// len(out) must equal len(points).
func Assign[T point.Number, C point.Float](out []uint32, points []point.Point[T], centroids []Centroid[C]) {
	candidates := Points(centroids)
	for i, p := range points {
		out[i] = centroids[distance.Nearest(p, candidates)].ID
	}
}

// EmptyFunc is called by Update for every centroid that has no assigned
// points. i is the centroid's position in the slice. A non-nil error aborts
// the update.
type EmptyFunc func(i int) error

// KeepEmpty leaves the stale centroid in place.
func KeepEmpty(int) error { return nil }

// Update replaces every centroid by the mean of the points currently
// labeled with its identifier. Centroid identifiers must be 1..k in slice
// order, as produced by InitCentroids.
func Update[T point.Number, C point.Float](points []point.Point[T], labels []uint32, centroids []Centroid[C], onEmpty EmptyFunc) error {
	k := len(centroids)
	if k == 0 {
		return nil
	}
	dim := centroids[0].Point.Dim()

	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, dim)
	}
	counts := make([]int, k)

	scratch := make([]float64, 0, dim)
	for i, p := range points {
		j := int(labels[i]) - 1
		scratch = p.AppendFloat64(scratch[:0])
		floats.Add(sums[j], scratch)
		counts[j]++
	}

	for j := range centroids {
		if counts[j] == 0 {
			if err := onEmpty(j); err != nil {
				return err
			}
			continue
		}
		n := float64(counts[j])
		for d := range sums[j] {
			sums[j][d] /= n
		}
		centroids[j].Point = point.FromFloat64[C](sums[j])
	}

	return nil
}

// Histogram counts how many labels refer to each identifier 1..k.
// Index i of the result holds the size of cluster i+1.
func Histogram(labels []uint32, k int) []int {
	sizes := make([]int, k)
	for _, id := range labels {
		sizes[id-1]++
	}
	return sizes
}

// Inertia returns the sum of squared distances from every point to the
// centroid it is labeled with.
func Inertia[T point.Number, C point.Float](points []point.Point[T], labels []uint32, centroids []point.Point[C]) float64 {
	var sum float64
	for i, p := range points {
		sum += distance.SquaredL2(p, centroids[labels[i]-1])
	}
	return sum
}
