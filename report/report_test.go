package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *lloyd.Result[int, float64] {
	t.Helper()

	points := []point.Point[int]{
		point.New(1), point.New(101), point.New(2),
		point.New(102), point.New(3), point.New(103),
	}
	res, err := lloyd.KMeans(points, make([]uint32, len(points)), 2, 5, lloyd.WithSeed(1))
	require.NoError(t, err)
	return res
}

func TestCenter(t *testing.T) {
	tests := []struct {
		title string
		width int
		want  string
	}{
		{" ab ", 8, "-- ab --"},
		{" ab ", 9, "-- ab ---"},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Center(tt.title, '-', tt.width))
	}

	assert.Len(t, Center(" Centroids ", '-', Width), Width)
}

func TestWrite(t *testing.T) {
	res := sample(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res))
	out := buf.String()

	assert.Contains(t, out, Center(" Input data points ", '-', Width)+"\n\n[(1), (101), (2), (102), (3), (103)]\n\n")
	assert.Contains(t, out, Center(" Cluster Sizes ", '-', Width)+"\n\n[3, 3]\n\n")
	assert.Contains(t, out, Center(" CLUSTERS ", '*', Width))
	assert.Contains(t, out, " Centroid 1: ")
	assert.Contains(t, out, " Centroid 2: ")
	assert.Contains(t, out, "[(1), (2), (3)]")
	assert.Contains(t, out, "[(101), (102), (103)]")

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "***") {
			assert.Len(t, line, Width, line)
		}
	}
}

func TestSummary(t *testing.T) {
	s := Summary(sample(t))
	assert.True(t, strings.HasPrefix(s, "6 points, 2 clusters, inertia 4, index "), s)
}
