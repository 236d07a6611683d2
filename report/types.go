package report

import "github.com/katalvlaran/nntour/geom"

// DefaultPlaces is the number of decimals used when displaying distances.
const DefaultPlaces = 3

// MaxPlaces caps display precision at what a float64 can represent.
const MaxPlaces = 15

// Summary holds descriptive statistics over a sample of distances.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Stats groups the pairwise (upper-triangle) and tour-edge summaries.
type Stats struct {
	Pairwise Summary `json:"pairwise"`
	Edges    Summary `json:"edges"`
}

// Report is the full output of one run.
type Report struct {
	Points []geom.Point `json:"points"`
	Matrix [][]float64  `json:"matrix"`
	Start  int          `json:"start"`
	Tour   []int        `json:"tour"`
	Closed []int        `json:"closed_tour"`
	Length float64      `json:"length"`
	Edges  []float64    `json:"edges"`
	Stats  Stats        `json:"stats"`
}

// RenderOptions tunes the text and markdown renderers.
type RenderOptions struct {
	// Places is the number of decimals for distances (negative ⇒ 0).
	Places int
	// HideMatrix omits the distance table, which grows as n².
	HideMatrix bool
}

// DefaultRenderOptions shows the matrix with DefaultPlaces decimals.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Places: DefaultPlaces}
}
