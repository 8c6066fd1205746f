// Package report composes the multi-page PDF report out of normalized KPI
// rows: text summary pages, chart pages and per-cell facet grids.
package report

// RGB is a plain 8-bit color triple for fpdf calls.
type RGB [3]int

// Style is the renderer configuration, passed explicitly at construction so
// no styling lives in package-level mutable state.
type Style struct {
	FontFamily string

	Header    RGB
	Subheader RGB
	Value     RGB
	Highlight RGB
	Footer    RGB

	// Chart raster sizes in pixels.
	ChartWidth   int
	ChartHeight  int
	MiniWidth    int
	MiniHeight   int
	GridCellW    int
	GridCellH    int
}

// DefaultStyle mirrors the report's established look: sans-serif text,
// blue headers, red highlights.
func DefaultStyle() Style {
	return Style{
		FontFamily: "Helvetica",
		Header:     RGB{46, 116, 181},
		Subheader:  RGB{64, 64, 64},
		Value:      RGB{64, 64, 64},
		Highlight:  RGB{192, 0, 0},
		Footer:     RGB{127, 140, 141},

		ChartWidth:  900,
		ChartHeight: 450,
		MiniWidth:   320,
		MiniHeight:  84,
		GridCellW:   620,
		GridCellH:   420,
	}
}
