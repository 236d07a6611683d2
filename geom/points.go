package geom

import (
	"math"

	"github.com/katalvlaran/nntour/matrix"
)

// NewPoints copies pts into a new immutable point set.
// Returns ErrNonFinite if any coordinate is NaN or ±Inf.
//
// Complexity: O(n).
func NewPoints(pts []Point) (*Points, error) {
	var i int
	for i = range pts {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, ErrNonFinite
		}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return &Points{pts: cp}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Len returns the number of points. A nil set has none.
func (p *Points) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pts)
}

// At returns the i-th point. Panics if i is out of range.
func (p *Points) At(i int) Point { return p.pts[i] }

// Slice returns a copy of the points in index order.
func (p *Points) Slice() []Point {
	out := make([]Point, len(p.pts))
	copy(out, p.pts)

	return out
}

// Distance returns the Euclidean distance between points i and j.
// Indices must lie in [0, Len()); anything else is a caller bug and panics.
//
// Complexity: O(1).
func (p *Points) Distance(i, j int) float64 {
	a, b := p.pts[i], p.pts[j]

	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistanceMatrix materialises the n×n pairwise distance table.
// Only the strict upper triangle is evaluated; the lower triangle is a mirror,
// so the result is exactly symmetric with a zero diagonal.
//
// Errors: ErrEmptyPoints when the set is empty or nil.
// Complexity: O(n²) time and memory.
func (p *Points) DistanceMatrix() (*matrix.Dense, error) {
	n := p.Len()
	if n == 0 {
		return nil, ErrEmptyPoints
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = p.Distance(i, j)
			// In range by construction; Set cannot fail.
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}
