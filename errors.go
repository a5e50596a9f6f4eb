package lloyd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every validation failure. A run that
	// fails validation returns a nil Result and leaves the labels untouched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidK is returned when fewer than two clusters are requested.
	ErrInvalidK = errors.New("k must be at least 2")

	// ErrTooFewPoints is returned when there are fewer points than clusters.
	ErrTooFewPoints = errors.New("fewer points than clusters")

	// ErrLengthMismatch is returned when the label slice and the point slice
	// differ in length.
	ErrLengthMismatch = errors.New("labels length does not match points length")

	// ErrCountOverflow is returned when the point count does not fit the
	// 32-bit label domain.
	ErrCountOverflow = errors.New("point count overflows label type")

	// ErrInvalidIterations is returned when the iteration count is negative.
	ErrInvalidIterations = errors.New("iterations must not be negative")

	// ErrEmptyCluster is returned under EmptyClusterFail when a cluster
	// loses all of its points during an update.
	ErrEmptyCluster = errors.New("cluster has no points")
)

// ErrDimensionMismatch indicates that a point's dimension differs from the
// dimension of the first point.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidDimension indicates points without coordinates.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return ErrInvalidArgument }

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
