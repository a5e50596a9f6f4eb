package membership

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap(t *testing.T) {
	b := NewBitmap()
	assert.Zero(t, b.Cardinality())

	b.Add(7)
	b.Add(3)
	b.Add(7)

	assert.Equal(t, uint64(2), b.Cardinality())
	assert.True(t, b.Contains(3))
	assert.False(t, b.Contains(4))
	assert.Equal(t, []uint32{3, 7}, slices.Collect(b.All()))
}

func TestBitmap_AllStopsEarly(t *testing.T) {
	b := NewBitmap()
	for i := range uint32(10) {
		b.Add(i)
	}

	var seen []uint32
	for pos := range b.All() {
		seen = append(seen, pos)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []uint32{0, 1, 2}, seen)
}

func TestBuild(t *testing.T) {
	labels := []uint32{1, 2, 1, 3, 3, 3, 0, 9}
	idx := Build(labels, 3)

	require.Equal(t, 3, idx.Len())
	assert.Equal(t, []uint32{0, 2}, slices.Collect(idx.Cluster(0).All()))
	assert.Equal(t, []uint32{1}, slices.Collect(idx.Cluster(1).All()))
	assert.Equal(t, []uint32{3, 4, 5}, slices.Collect(idx.Cluster(2).All()))

	assert.Equal(t, 0, idx.Lookup(2))
	assert.Equal(t, 2, idx.Lookup(5))
	assert.Equal(t, -1, idx.Lookup(6), "out-of-range labels are ignored")
	assert.Positive(t, idx.SizeInBytes())
}
