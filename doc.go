// Package nntour scatters cities in the unit square, computes their
// pairwise distance matrix and tours them with the greedy
// nearest-neighbour heuristic.
//
// Everything is organized under small top-level packages:
//
//	geom/    immutable point sets, Euclidean distance, seeded generation
//	matrix/  dense row-major matrix + shape/symmetry validators
//	tsp/     nearest-neighbour tour builder, tour length, matrix oracle
//	report/  distance table, tour, length and statistics for display
//	cmd/     the nntour CLI (solve, serve, version)
//
// Quick ASCII example (unit square, start at 0):
//
//	3───2
//	│   │
//	0───1    tour [0 1 2 3], length 4
//
//	go install github.com/katalvlaran/nntour/cmd/nntour@latest
package nntour
