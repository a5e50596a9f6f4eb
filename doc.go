// Package lloyd partitions fixed-dimension numeric points into k clusters
// with Lloyd's algorithm (k-means).
//
// A run seeds k centroids by sampling distinct input points, labels every
// point with its nearest centroid (squared Euclidean distance, ties to the
// lower identifier), and then performs exactly n refinement passes, each a
// mean update followed by relabeling. There is no convergence detection:
// the caller decides the iteration budget up front.
//
// # Quick Start
//
//	points := []point.Point[int]{point.New(1, 2, 3), point.New(4, 5, 6), ...}
//	labels := make([]uint32, len(points))
//
//	res, err := lloyd.KMeans(points, labels, 4, 10, lloyd.WithSeed(42))
//	if err != nil {
//	    // invalid arguments: res is nil
//	}
//
//	for centroid, satellites := range res.Clusters() {
//	    fmt.Println(centroid, slices.Collect(satellites))
//	}
//
// # Centroid Element Types
//
// KMeans accepts integral points and produces float64 centroids. KMeansFloat
// accepts float32 or float64 points and keeps their element type. The split
// is enforced by the type system.
//
// # Labels
//
// labels[i] receives the 1-based identifier of the cluster point i belongs
// to. The Result keeps a reference to it; Satellites and Clusters re-scan it
// on every traversal. Result.Index builds an eager roaring-bitmap index
// instead when a cluster is visited many times.
//
// # Empty Clusters
//
// A cluster can lose all of its points between passes. By default its
// centroid stays where it was; see WithEmptyClusterPolicy.
package lloyd
