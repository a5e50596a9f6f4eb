// Package distance provides the squared Euclidean distance used by lloyd
// and the nearest-centroid search built on top of it.
//
// # Usage
//
//	d := distance.SquaredL2(p, c)            // float64, any element types
//	less := distance.From[int, float64](p)   // comparator: closer to p?
//	i := distance.Nearest(p, centroids)      // first minimum wins ties
package distance
