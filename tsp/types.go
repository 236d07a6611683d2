package tsp

import "errors"

var (
	// ErrTooFewPoints is returned when a tour is requested over fewer than two points.
	ErrTooFewPoints = errors.New("tsp: at least two points are required")

	// ErrStartOutOfRange is returned when the start index is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNilOracle is returned when a nil Oracle is passed.
	ErrNilOracle = errors.New("tsp: nil distance oracle")

	// ErrInvalidTour is returned when a tour is not a permutation of {0..n-1}.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation")

	// ErrBadMatrix is returned by NewMatrixOracle when the distance table
	// is not square, finite, non-negative, zero-diagonal and symmetric.
	// The underlying matrix sentinel is joined to it.
	ErrBadMatrix = errors.New("tsp: invalid distance matrix")
)

// Oracle answers pairwise distance queries over indices 0..Len()-1.
//
// Contract:
//   - Distance(i,i) == 0 and Distance(i,j) == Distance(j,i) ≥ 0.
//   - Indices outside [0..Len()-1] are a caller bug; implementations may panic.
type Oracle interface {
	Len() int
	Distance(i, j int) float64
}

// Options configures Solve.
type Options struct {
	// Start is the index the tour begins at (0 by convention).
	Start int
}

// DefaultOptions returns the conventional configuration: start at index 0.
func DefaultOptions() Options {
	return Options{Start: 0}
}

// Result holds the outcome of Solve.
type Result struct {
	// Tour is a permutation of {0..n-1}; Tour[0] is the start.
	// The edge Tour[n-1]→Tour[0] is implied.
	Tour []int `json:"tour"`

	// Length is the total closed-cycle length, rounded to 1e-9.
	Length float64 `json:"length"`
}

// Closed returns a copy of the tour with the start appended, i.e. the
// n+1 vertex sequence a plotting consumer draws edge by edge.
func (r Result) Closed() []int {
	if len(r.Tour) == 0 {
		return nil
	}
	out := make([]int, len(r.Tour)+1)
	copy(out, r.Tour)
	out[len(r.Tour)] = r.Tour[0]

	return out
}
