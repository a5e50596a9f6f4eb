package membership

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of point positions backed by a 32-bit roaring bitmap.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Add adds a position.
func (b *Bitmap) Add(pos uint32) {
	b.rb.Add(pos)
}

// Contains reports whether pos is in the set.
func (b *Bitmap) Contains(pos uint32) bool {
	return b.rb.Contains(pos)
}

// Cardinality returns the number of positions in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// All iterates over the positions in ascending order.
func (b *Bitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Index holds one bitmap per cluster, indexed by identifier-1.
type Index struct {
	clusters []*Bitmap
}

// Build groups positions by label. labels[i] is the 1-based identifier of
// the cluster that position i belongs to; labels outside [1, k] are ignored.
func Build(labels []uint32, k int) *Index {
	idx := &Index{clusters: make([]*Bitmap, k)}
	for i := range idx.clusters {
		idx.clusters[i] = NewBitmap()
	}

	for pos, id := range labels {
		if id == 0 || int(id) > k {
			continue
		}
		idx.clusters[id-1].Add(uint32(pos))
	}

	// Runs are common when input is already sorted by region.
	for _, b := range idx.clusters {
		b.rb.RunOptimize()
	}

	return idx
}

// Len returns the number of clusters.
func (x *Index) Len() int {
	return len(x.clusters)
}

// Cluster returns the bitmap of cluster i (0-based).
func (x *Index) Cluster(i int) *Bitmap {
	return x.clusters[i]
}

// Lookup returns the 0-based cluster index holding pos, or -1.
func (x *Index) Lookup(pos uint32) int {
	for i, b := range x.clusters {
		if b.Contains(pos) {
			return i
		}
	}
	return -1
}

// SizeInBytes returns the serialized size of all bitmaps.
func (x *Index) SizeInBytes() uint64 {
	var n uint64
	for _, b := range x.clusters {
		n += b.rb.GetSizeInBytes()
	}
	return n
}
