// Package membership materializes cluster membership as one roaring bitmap
// of point positions per cluster.
package membership
