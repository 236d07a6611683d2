package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/nntour/matrix"
)

// LengthLabel prefixes the total tour length in text output.
const LengthLabel = "Total path length (nearest neighbour heuristic)"

// rounded returns the distance table rounded for display.
func (r *Report) rounded(places int) ([][]float64, error) {
	m, err := matrix.NewDenseFromRows(r.Matrix)
	if err != nil {
		return nil, err
	}
	m, err = matrix.Round(m, places)
	if err != nil {
		return nil, err
	}

	return m.ToRows(), nil
}

func formatFloat(v float64, places int) string {
	if places < 0 {
		places = 0
	}
	if places > MaxPlaces {
		places = MaxPlaces
	}

	return strconv.FormatFloat(v, 'f', places, 64)
}

// formatTour renders a closed tour as "0 -> 3 -> 1 -> 0".
func formatTour(closed []int) string {
	parts := make([]string, len(closed))
	for i, v := range closed {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// WriteText writes an aligned plain-text rendering: the distance table,
// the closed tour and the total length line.
func (r *Report) WriteText(w io.Writer, opts RenderOptions) error {
	if !opts.HideMatrix {
		rows, err := r.rounded(opts.Places)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if _, err = fmt.Fprintln(w, "Distance matrix"); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		var i, j int
		for j = range rows {
			fmt.Fprintf(tw, "\t%d", j)
		}
		fmt.Fprintln(tw, "\t")
		for i = range rows {
			fmt.Fprintf(tw, "%d", i)
			for j = range rows[i] {
				fmt.Fprintf(tw, "\t%s", formatFloat(rows[i][j], opts.Places))
			}
			fmt.Fprintln(tw, "\t")
		}
		if err = tw.Flush(); err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Tour: %s\n%s: %s\n",
		formatTour(r.Closed), LengthLabel, formatFloat(r.Length, opts.Places))

	return err
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// Markdown renders the report as a markdown document suitable for a
// terminal markdown renderer or any markdown viewer.
func (r *Report) Markdown(opts RenderOptions) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Travelling Salesman Problem (TSP)\n\n")
	fmt.Fprintf(&sb, "%d cities, starting at city %d.\n\n", len(r.Points), r.Start)

	if !opts.HideMatrix {
		rows, err := r.rounded(opts.Places)
		if err != nil {
			return "", fmt.Errorf("report: %w", err)
		}
		sb.WriteString("## Distance matrix\n\n|   |")
		var i, j int
		for j = range rows {
			fmt.Fprintf(&sb, " %d |", j)
		}
		sb.WriteString("\n|---|")
		for j = range rows {
			sb.WriteString("---:|")
		}
		sb.WriteByte('\n')
		for i = range rows {
			fmt.Fprintf(&sb, "| **%d** |", i)
			for j = range rows[i] {
				fmt.Fprintf(&sb, " %s |", formatFloat(rows[i][j], opts.Places))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("## Tour\n\n")
	fmt.Fprintf(&sb, "`%s`\n\n", formatTour(r.Closed))
	fmt.Fprintf(&sb, "**%s:** %s\n\n", LengthLabel, formatFloat(r.Length, opts.Places))

	sb.WriteString("## Statistics\n\n| | min | max | mean | median |\n|---|---:|---:|---:|---:|\n")
	for _, row := range []struct {
		name string
		s    Summary
	}{
		{"pairwise", r.Stats.Pairwise},
		{"tour edges", r.Stats.Edges},
	} {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", row.name,
			formatFloat(row.s.Min, opts.Places),
			formatFloat(row.s.Max, opts.Places),
			formatFloat(row.s.Mean, opts.Places),
			formatFloat(row.s.Median, opts.Places))
	}

	return sb.String(), nil
}
