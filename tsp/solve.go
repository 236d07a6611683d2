package tsp

// Solve builds the nearest-neighbour tour from opts.Start and measures it.
//
// Errors: those of NearestNeighbor (ErrNilOracle, ErrTooFewPoints,
// ErrStartOutOfRange).
//
// Complexity: O(n²).
func Solve(d Oracle, opts Options) (Result, error) {
	tour, err := NearestNeighbor(d, opts.Start)
	if err != nil {
		return Result{}, err
	}
	length, err := TourLength(d, tour)
	if err != nil {
		// NearestNeighbor always yields a permutation.
		return Result{}, err
	}

	return Result{Tour: tour, Length: length}, nil
}
