package lloyd

import (
	"slices"
	"testing"

	"github.com/hupe1980/lloyd/point"
	"github.com/hupe1980/lloyd/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Accessors(t *testing.T) {
	pts := testutil.Sequence(8, 3)
	labels := make([]uint32, len(pts))

	res, err := KMeans(pts, labels, 4, 2, WithSeed(3))
	require.NoError(t, err)

	assert.Same(t, &pts[0], &res.Points()[0])
	assert.Same(t, &labels[0], &res.Labels()[0])

	// Centroids and sizes are copies.
	c := res.Centroids()
	c[0] = point.New(-1.0, -1, -1)
	assert.NotEqual(t, c[0], res.Centroids()[0])

	sizes := res.ClusterSizes()
	sizes[0] = 1000
	assert.NotEqual(t, 1000, res.ClusterSizes()[0])
}

func TestResult_EveryPointInExactlyOneCluster(t *testing.T) {
	pts := testutil.Sequence(8, 3)
	labels := make([]uint32, len(pts))

	res, err := KMeans(pts, labels, 4, 3, WithSeed(11))
	require.NoError(t, err)

	var all []point.Point[int]
	clusters := 0
	for centroid, satellites := range res.Clusters() {
		assert.Equal(t, 3, centroid.Dim())
		all = append(all, slices.Collect(satellites)...)
		clusters++
	}
	assert.Equal(t, 4, clusters)

	slices.SortFunc(all, point.Compare[int])
	assert.Equal(t, pts, all)
}

func TestResult_SatellitesMatchLabels(t *testing.T) {
	rng := testutil.NewRNG(21)

	for seed := range uint64(10) {
		pts := rng.UniformPoints(40, 2)
		labels := make([]uint32, len(pts))

		res, err := KMeansFloat(pts, labels, 5, int(seed%4), WithSeed(seed))
		require.NoError(t, err)

		for i := range res.K() {
			var want []point.Point[float64]
			for pos, id := range labels {
				if id == uint32(i+1) {
					want = append(want, pts[pos])
				}
			}

			got := slices.Collect(res.Satellites(i))
			assert.ElementsMatch(t, want, got)
			assert.Len(t, got, res.ClusterSizes()[i])
		}
	}
}

func TestResult_Cluster(t *testing.T) {
	pts := testutil.Sequence(6, 2)
	res, err := KMeans(pts, make([]uint32, 6), 3, 2, WithSeed(5))
	require.NoError(t, err)

	for i := range res.K() {
		c := res.Cluster(i)
		assert.Equal(t, uint32(i+1), c.ID)
		assert.Equal(t, res.Centroids()[i], c.Centroid)
		assert.Equal(t, res.ClusterSizes()[i], c.Size)
		assert.Len(t, slices.Collect(c.Satellites), c.Size)
	}
}

func TestResult_ViewIsRecomputedOnTraversal(t *testing.T) {
	pts := []point.Point[int]{point.New(0), point.New(1), point.New(10), point.New(11)}
	labels := make([]uint32, len(pts))

	res, err := KMeans(pts, labels, 2, 3, WithSeed(1))
	require.NoError(t, err)

	view := res.Satellites(0)
	before := len(slices.Collect(view))

	// Move every point into cluster 1; the same view must see it.
	for i := range labels {
		labels[i] = 1
	}
	assert.Len(t, slices.Collect(view), 4)
	assert.NotEqual(t, before, 4)
}

func TestResult_ClustersStopsEarly(t *testing.T) {
	res, err := KMeans(testutil.Sequence(8, 3), make([]uint32, 8), 4, 1, WithSeed(2))
	require.NoError(t, err)

	visited := 0
	for range res.Clusters() {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)

	taken := 0
	for range res.Satellites(0) {
		taken++
		break
	}
	assert.LessOrEqual(t, taken, 1)
}

func TestResult_Index(t *testing.T) {
	pts := testutil.NewRNG(4).UniformPoints(100, 3)
	labels := make([]uint32, len(pts))

	res, err := KMeansFloat(pts, labels, 4, 3, WithSeed(4))
	require.NoError(t, err)

	idx := res.Index()
	for i := range res.K() {
		assert.Equal(t, res.ClusterSizes()[i], idx.Size(i))

		var want []point.Point[float64]
		for p := range res.Satellites(i) {
			want = append(want, p)
		}
		var got []point.Point[float64]
		for pos := range idx.Members(i) {
			got = append(got, pts[pos])
			assert.True(t, idx.Contains(i, pos))
		}
		assert.Equal(t, want, got)
	}

	for pos, id := range labels {
		assert.Equal(t, int(id)-1, idx.ClusterOf(pos))
	}
	assert.Equal(t, -1, idx.ClusterOf(-1))
	assert.Equal(t, -1, idx.ClusterOf(len(pts)))
	assert.False(t, idx.Contains(0, -3))

	for _, i := range []int{-1, res.K()} {
		assert.Zero(t, idx.Size(i))
		assert.False(t, idx.Contains(i, 0))
		assert.Empty(t, slices.Collect(idx.Members(i)))
	}
	assert.Positive(t, idx.SizeInBytes())
}

func TestResult_Inertia(t *testing.T) {
	pts := []point.Point[int]{point.New(0), point.New(2), point.New(10), point.New(12)}
	res, err := KMeans(pts, make([]uint32, 4), 2, 5, WithSeed(6))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, res.Inertia(), 1e-9)
}
