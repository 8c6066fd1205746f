package report

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tblacerda/dayafter/internal/kpi"
)

// renderBoxplots draws one box per cell for the given metric, cells ordered
// ascending by their own maximum of that metric. Returns a nil image when no
// cell has data.
func renderBoxplots(title, metric string, cells []string, rows []kpi.Record) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Cell"
	p.Y.Label.Text = metric

	byCell := make(map[string][]float64, len(cells))
	for _, r := range rows {
		byCell[r.Cell] = append(byCell[r.Cell], kpi.MetricValue(r, metric))
	}

	var labels []string
	loc := 0.0
	for _, cell := range cells {
		vals := byCell[cell]
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(8), loc, plotter.Values(vals))
		if err != nil {
			continue
		}
		p.Add(box)
		labels = append(labels, truncateLabel(cell, labelMaxLen))
		loc++
	}
	if len(labels) == 0 {
		return nil, nil
	}

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(6)

	wt, err := p.WriterTo(14*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("render boxplot %s: %w", metric, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode boxplot %s: %w", metric, err)
	}
	return buf.Bytes(), nil
}
