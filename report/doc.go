// Package report renders clustering results as plain text.
//
// The layout is a sequence of titled blocks: the input points, the label of
// every point, the centroids, the cluster sizes and then, per cluster, its
// centroid followed by its satellites.
package report
