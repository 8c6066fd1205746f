// Package summary computes the per-group headline metrics shown on the
// report's opening pages.
package summary

// Outcome distinguishes a fully computed summary from the degraded forms.
type Outcome int

const (
	// OutcomeComplete means every metric was computed.
	OutcomeComplete Outcome = iota
	// OutcomeNoData means the group had no rows to pivot; peak, throughput
	// and top-cell metrics hold their sentinel defaults.
	OutcomeNoData
	// OutcomeDegraded means the computation failed partway; the result
	// carries whatever was computed before the failure plus a note.
	OutcomeDegraded
)

// NoPeakHour is the sentinel label used when no peak could be detected.
const NoPeakHour = "N/A"

// CellUsers is one entry of the top-cells ranking.
type CellUsers struct {
	Cell  string
	Users int
}

// CellAcc is one entry of the worst-cells-by-accessibility ranking.
type CellAcc struct {
	Cell string
	Acc  float64
}

// Metrics holds the per-group summary. Computed fresh per group per run,
// read-only once built, consumed by page composition and discarded.
type Metrics struct {
	Vol4G       float64
	Vol5G       float64
	TotalVolume float64
	// Offload is the 5G share of total volume in [0,1]; zero when the
	// total is zero.
	Offload float64

	PeakHour  string
	Peak4G    int
	Peak5G    int
	PeakTotal int

	// TputAtPeak maps "4G DL", "4G UL", "5G DL", "5G UL" to the mean
	// throughput (Mbps) over the rows at the peak timestamp. Empty when no
	// peak was found.
	TputAtPeak map[string]float64

	// TopCells ranks up to 5 cells at the peak timestamp by summed users,
	// descending.
	TopCells []CellUsers
}

// Result pairs the metrics with a typed outcome so callers can tell "no
// data" apart from "computation error" without either aborting the report.
type Result struct {
	Metrics Metrics
	Outcome Outcome
	Note    string
}
