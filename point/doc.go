// Package point provides the immutable fixed-dimension vector type that
// lloyd clusters.
//
// A Point is created once from its coordinates and never changes afterwards.
// Copying a Point is cheap: it shares its (read-only) backing array.
//
//	p := point.New(1, 2, 3)       // Point[int], dimension 3
//	q := point.New(1.5, 2.5, 3.5) // Point[float64]
//	c := point.Convert[float64](p)
//
// # Element Types
//
// Integer and Float split the numeric kinds the way centroids need them:
// the mean of integral coordinates is generally non-integral, so clustering
// integer points yields float64 centroids, while float points keep their
// own element type.
package point
