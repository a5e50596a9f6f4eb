// Package kmeans implements the individual steps of Lloyd's algorithm:
// seeding, assignment, mean update and the final histogram.
//
// The steps are pure with respect to their arguments (aside from the
// output slices they are given) so the engine in the root package can
// sequence them for a fixed number of iterations.
package kmeans
