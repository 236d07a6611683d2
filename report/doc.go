// Package report assembles everything a display layer needs from one run:
// the point set, the pairwise distance table, the nearest-neighbour tour,
// its length, per-edge lengths and summary statistics.
//
// Renderers write plain text, JSON or markdown. Plotting is left to the
// consumer; Report.Points with Report.Closed is enough to draw the cycle.
package report
