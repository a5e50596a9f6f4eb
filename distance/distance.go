package distance

import (
	"github.com/hupe1980/lloyd/point"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two points.
// Assumes points have the same dimension (caller's responsibility).
// The sum is accumulated in float64 so that integral and floating points
// can be compared with each other without overflow.
func SquaredL2[A, B point.Number](a point.Point[A], b point.Point[B]) float64 {
	var sum float64
	for i, av := range a.All() {
		d := float64(av) - float64(b.At(i))
		sum += d * d
	}
	return sum
}

// From returns a comparator that reports whether x is strictly closer to
// ref than y. Equal distances compare false, so a linear scan for the
// minimum keeps the earliest candidate.
func From[R, C point.Number](ref point.Point[R]) func(x, y point.Point[C]) bool {
	return func(x, y point.Point[C]) bool {
		return SquaredL2(x, ref) < SquaredL2(y, ref)
	}
}

// Nearest returns the index of the candidate closest to ref, or -1 if
// candidates is empty. Ties resolve to the lowest index.
func Nearest[R, C point.Number](ref point.Point[R], candidates []point.Point[C]) int {
	if len(candidates) == 0 {
		return -1
	}

	less := From[R, C](ref)

	best := 0
	for j := 1; j < len(candidates); j++ {
		if less(candidates[j], candidates[best]) {
			best = j
		}
	}

	return best
}
