// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating point clouds with known structure.
//
// # Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 3)                 // uniform [0, 1)
//	pts, truth := rng.Blobs(centers, 50, 0.1)        // gaussian blobs
//	ints := testutil.Sequence(8, 3)                  // (1,2,3),(4,5,6),...
package testutil
