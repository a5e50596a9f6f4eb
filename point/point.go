package point

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Integer is the set of integral coordinate types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point coordinate types.
type Float interface {
	~float32 | ~float64
}

// Number is any coordinate type a Point can hold.
type Number interface {
	Integer | Float
}

// Point is an immutable vector of Dim() coordinates.
//
// The zero value is a point of dimension 0.
type Point[T Number] struct {
	coords []T
}

// New returns a point holding a copy of coords.
func New[T Number](coords ...T) Point[T] {
	return Point[T]{coords: slices.Clone(coords)}
}

// FromSlice is like New but takes ownership of coords. The caller must not
// modify coords afterwards.
func FromSlice[T Number](coords []T) Point[T] {
	return Point[T]{coords: coords}
}

// Dim returns the number of coordinates.
func (p Point[T]) Dim() int {
	return len(p.coords)
}

// At returns the i-th coordinate. It panics if i is out of range.
func (p Point[T]) At(i int) T {
	return p.coords[i]
}

// All iterates over (index, coordinate) pairs.
func (p Point[T]) All() iter.Seq2[int, T] {
	return slices.All(p.coords)
}

// Coords returns a copy of the coordinates.
func (p Point[T]) Coords() []T {
	return slices.Clone(p.coords)
}

// AppendFloat64 appends the coordinates, converted to float64, to dst.
func (p Point[T]) AppendFloat64(dst []float64) []float64 {
	for _, v := range p.coords {
		dst = append(dst, float64(v))
	}
	return dst
}

// String renders the point as "(c0, c1, ...)".
func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Compare orders points lexicographically by coordinate. A shorter point
// that is a prefix of a longer one orders first.
func Compare[T Number](a, b Point[T]) int {
	return slices.Compare(a.coords, b.coords)
}

// Equal reports whether a and b have the same coordinates.
func Equal[T Number](a, b Point[T]) bool {
	return slices.Equal(a.coords, b.coords)
}

// Convert casts every coordinate of p to C.
func Convert[C, T Number](p Point[T]) Point[C] {
	out := make([]C, len(p.coords))
	for i, v := range p.coords {
		out[i] = C(v)
	}
	return Point[C]{coords: out}
}

// FromFloat64 builds a point of element type C from float64 coordinates.
func FromFloat64[C Float](coords []float64) Point[C] {
	out := make([]C, len(coords))
	for i, v := range coords {
		out[i] = C(v)
	}
	return Point[C]{coords: out}
}
