package geom

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
// Callers wanting a fresh layout per run pass a time-derived seed themselves.
//
// math/rand.Rand is not goroutine-safe; do not share the result across goroutines.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomPoints draws n points uniformly from the unit square [0,1)×[0,1).
// For each point X is drawn before Y, so a given seed always reproduces the
// same layout. rng==nil ⇒ NewRand(0).
//
// Errors: ErrInvalidCount if n < 1.
// Complexity: O(n).
func RandomPoints(n int, rng *rand.Rand) (*Points, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}
	if rng == nil {
		rng = NewRand(0)
	}

	pts := make([]Point, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i].X = rng.Float64()
		pts[i].Y = rng.Float64()
	}

	return &Points{pts: pts}, nil
}
