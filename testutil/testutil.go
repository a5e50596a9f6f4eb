package testutil

import (
	"math/rand/v2"
	"sync"

	"github.com/hupe1980/lloyd/point"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// UniformPoints generates random points with coordinates in range [0, 1).
func (r *RNG) UniformPoints(num, dim int) []point.Point[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]point.Point[float64], num)
	for i := range pts {
		coords := make([]float64, dim)
		for j := range coords {
			coords[j] = r.rand.Float64()
		}
		pts[i] = point.FromSlice(coords)
	}
	return pts
}

// Blobs generates perCluster points around each center with Gaussian noise
// of standard deviation spread. Points are interleaved (center 0, 1, ...,
// 0, 1, ...). truth[i] is the index of the center point i was drawn from.
func (r *RNG) Blobs(centers [][]float64, perCluster int, spread float64) (pts []point.Point[float64], truth []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := perCluster * len(centers)
	pts = make([]point.Point[float64], 0, num)
	truth = make([]int, 0, num)

	for range perCluster {
		for c, center := range centers {
			coords := make([]float64, len(center))
			for j := range coords {
				coords[j] = center[j] + r.rand.NormFloat64()*spread
			}
			pts = append(pts, point.FromSlice(coords))
			truth = append(truth, c)
		}
	}

	return pts, truth
}

// IntBlobs is Blobs for integer coordinates: every coordinate is the
// center's coordinate plus a uniform offset in [-spread, spread].
func (r *RNG) IntBlobs(centers [][]int, perCluster, spread int) (pts []point.Point[int], truth []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := perCluster * len(centers)
	pts = make([]point.Point[int], 0, num)
	truth = make([]int, 0, num)

	for range perCluster {
		for c, center := range centers {
			coords := make([]int, len(center))
			for j := range coords {
				coords[j] = center[j] + r.rand.IntN(2*spread+1) - spread
			}
			pts = append(pts, point.FromSlice(coords))
			truth = append(truth, c)
		}
	}

	return pts, truth
}

// Sequence returns num points of dimension dim whose coordinates count up
// from 1: (1, 2, 3), (4, 5, 6), ... for dim 3.
func Sequence(num, dim int) []point.Point[int] {
	pts := make([]point.Point[int], num)
	next := 1
	for i := range pts {
		coords := make([]int, dim)
		for j := range coords {
			coords[j] = next
			next++
		}
		pts[i] = point.FromSlice(coords)
	}
	return pts
}

// SamePartition reports whether two labelings group positions identically,
// regardless of which identifier each group received.
func SamePartition[A, B comparable](a []A, b []B) bool {
	if len(a) != len(b) {
		return false
	}
	fwd := make(map[A]B)
	back := make(map[B]A)
	for i := range a {
		if v, ok := fwd[a[i]]; ok && v != b[i] {
			return false
		}
		if v, ok := back[b[i]]; ok && v != a[i] {
			return false
		}
		fwd[a[i]] = b[i]
		back[b[i]] = a[i]
	}
	return true
}
