package geom

import "errors"

var (
	// ErrInvalidCount is returned when a random point set of size < 1 is requested.
	ErrInvalidCount = errors.New("geom: point count must be >= 1")

	// ErrEmptyPoints is returned when an operation needs at least one point.
	ErrEmptyPoints = errors.New("geom: empty point set")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geom: coordinate is NaN or Inf")
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Points is an ordered, immutable set of 2D points.
// The zero value is an empty set.
type Points struct {
	pts []Point
}
