package lloyd

import (
	"iter"
	"slices"

	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/internal/membership"
	"github.com/hupe1980/lloyd/point"
)

// Result is the outcome of a clustering run.
//
// It keeps references to the caller's points and labels; cluster
// membership is derived from them on demand rather than stored.
type Result[T point.Number, C point.Float] struct {
	centroids []point.Point[C]
	sizes     []int
	points    []point.Point[T]
	labels    []uint32
}

// Cluster is one cluster of a Result.
type Cluster[T point.Number, C point.Float] struct {
	// ID is the 1-based cluster identifier used in the labels.
	ID       uint32
	Centroid point.Point[C]
	// Size is the number of satellites at the end of the run.
	Size int
	// Satellites lazily yields the points labeled ID. Each traversal
	// re-scans all labels.
	Satellites iter.Seq[point.Point[T]]
}

// K returns the number of clusters.
func (r *Result[T, C]) K() int {
	return len(r.centroids)
}

// Centroids returns the final centroids ordered by identifier.
func (r *Result[T, C]) Centroids() []point.Point[C] {
	return slices.Clone(r.centroids)
}

// ClusterSizes returns the number of points in each cluster; index i
// holds the size of the cluster with identifier i+1.
func (r *Result[T, C]) ClusterSizes() []int {
	return slices.Clone(r.sizes)
}

// Points returns the input points the run was called with.
func (r *Result[T, C]) Points() []point.Point[T] {
	return r.points
}

// Labels returns the caller's label slice (the output indices).
func (r *Result[T, C]) Labels() []uint32 {
	return r.labels
}

// Satellites lazily yields the points assigned to cluster index i
// (identifier i+1), in input order.
func (r *Result[T, C]) Satellites(i int) iter.Seq[point.Point[T]] {
	id := uint32(i + 1)
	return func(yield func(point.Point[T]) bool) {
		for pos, label := range r.labels {
			if label != id {
				continue
			}
			if !yield(r.points[pos]) {
				return
			}
		}
	}
}

// Cluster returns cluster index i. It panics if i is not in [0, K()).
func (r *Result[T, C]) Cluster(i int) Cluster[T, C] {
	return Cluster[T, C]{
		ID:         uint32(i + 1),
		Centroid:   r.centroids[i],
		Size:       r.sizes[i],
		Satellites: r.Satellites(i),
	}
}

// Clusters yields, for every cluster index in order, the centroid and a
// lazy view of its satellites.
//
//	for centroid, satellites := range res.Clusters() {
//	    fmt.Println(centroid, slices.Collect(satellites))
//	}
func (r *Result[T, C]) Clusters() iter.Seq2[point.Point[C], iter.Seq[point.Point[T]]] {
	return func(yield func(point.Point[C], iter.Seq[point.Point[T]]) bool) {
		for i, c := range r.centroids {
			if !yield(c, r.Satellites(i)) {
				return
			}
		}
	}
}

// Inertia returns the within-cluster sum of squared distances.
func (r *Result[T, C]) Inertia() float64 {
	return kmeans.Inertia(r.points, r.labels, r.centroids)
}

// Index materializes the current membership of every cluster.
//
// Building the index scans the labels once; afterwards iterating a cluster
// costs O(size) instead of the O(len(points)) re-scan of Satellites. The
// index is a snapshot and does not follow later changes to the labels.
func (r *Result[T, C]) Index() *Index {
	return &Index{m: membership.Build(r.labels, len(r.centroids))}
}

// Index is an eagerly built cluster membership index over point positions.
type Index struct {
	m *membership.Index
}

func (x *Index) valid(i int) bool {
	return i >= 0 && i < x.m.Len()
}

// Members yields the positions (indices into Points) of cluster index i in
// ascending order. It yields nothing if i is not in [0, K()).
func (x *Index) Members(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !x.valid(i) {
			return
		}
		for pos := range x.m.Cluster(i).All() {
			if !yield(int(pos)) {
				return
			}
		}
	}
}

// Size returns the number of members of cluster index i, or 0 if i is not
// in [0, K()).
func (x *Index) Size(i int) int {
	if !x.valid(i) {
		return 0
	}
	return int(x.m.Cluster(i).Cardinality())
}

// Contains reports whether the point at pos belongs to cluster index i. It
// returns false if i is not in [0, K()).
func (x *Index) Contains(i, pos int) bool {
	if pos < 0 || !x.valid(i) {
		return false
	}
	return x.m.Cluster(i).Contains(uint32(pos))
}

// ClusterOf returns the cluster index of the point at pos, or -1.
func (x *Index) ClusterOf(pos int) int {
	if pos < 0 {
		return -1
	}
	return x.m.Lookup(uint32(pos))
}

// SizeInBytes returns the memory footprint of the underlying bitmaps.
func (x *Index) SizeInBytes() uint64 {
	return x.m.SizeInBytes()
}
