package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/tsp"
)

// Build materialises the distance table for pts, solves over it from
// opts.Start and summarises the result.
//
// The table is computed once and the tour is built over a MatrixOracle
// snapshot of it, so the displayed table and the tour always agree.
//
// Errors: geom.ErrEmptyPoints, tsp.ErrTooFewPoints, tsp.ErrStartOutOfRange,
// wrapped with the failing stage.
func Build(pts *geom.Points, opts tsp.Options) (*Report, error) {
	if pts == nil {
		return nil, fmt.Errorf("report: %w", geom.ErrEmptyPoints)
	}
	table, err := pts.DistanceMatrix()
	if err != nil {
		return nil, fmt.Errorf("report: distance matrix: %w", err)
	}
	oracle, err := tsp.NewMatrixOracle(table)
	if err != nil {
		return nil, fmt.Errorf("report: distance matrix: %w", err)
	}
	res, err := tsp.Solve(oracle, opts)
	if err != nil {
		return nil, fmt.Errorf("report: solve: %w", err)
	}
	edges, err := tsp.EdgeLengths(oracle, res.Tour)
	if err != nil {
		return nil, fmt.Errorf("report: edges: %w", err)
	}

	rows := table.ToRows()
	pairwise, err := summarize(upperTriangle(rows))
	if err != nil {
		return nil, fmt.Errorf("report: pairwise stats: %w", err)
	}
	edgeStats, err := summarize(edges)
	if err != nil {
		return nil, fmt.Errorf("report: edge stats: %w", err)
	}

	return &Report{
		Points: pts.Slice(),
		Matrix: rows,
		Start:  opts.Start,
		Tour:   res.Tour,
		Closed: res.Closed(),
		Length: res.Length,
		Edges:  edges,
		Stats:  Stats{Pairwise: pairwise, Edges: edgeStats},
	}, nil
}

// upperTriangle flattens the strict upper triangle of a square table.
func upperTriangle(rows [][]float64) []float64 {
	n := len(rows)
	out := make([]float64, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, rows[i][j])
		}
	}

	return out
}

// summarize computes min/max/mean/median of a non-empty sample.
func summarize(data []float64) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}

	return s, nil
}
