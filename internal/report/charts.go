package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tblacerda/dayafter/internal/kpi"
)

var (
	color4G = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	color5G = drawing.Color{R: 214, G: 39, B: 40, A: 255}
)

const timeAxisFormat = "01-02 15h"

// renderDualAxis draws one metric with the 4G series on the primary Y axis
// and the 5G series on a secondary axis, each with its own scale. A series
// with fewer than two points is left out; with no drawable series the chart
// is skipped entirely (nil image).
func renderDualAxis(metric string, s4, s5 []kpi.TimePoint, width, height int) ([]byte, error) {
	var series []chart.Series
	if len(s4) >= 2 {
		x, y := splitSeries(s4)
		series = append(series, chart.TimeSeries{
			Name:    "4G",
			XValues: x,
			YValues: y,
			Style:   chart.Style{StrokeColor: color4G, StrokeWidth: 1.5},
		})
	}
	if len(s5) >= 2 {
		x, y := splitSeries(s5)
		series = append(series, chart.TimeSeries{
			Name:    "5G",
			XValues: x,
			YValues: y,
			YAxis:   chart.YAxisSecondary,
			Style:   chart.Style{StrokeColor: color5G, StrokeWidth: 1.5},
		})
	}
	if len(series) == 0 {
		return nil, nil
	}

	graph := chart.Chart{
		Title:  metric,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(timeAxisFormat),
		},
		YAxis:          chart.YAxis{Name: "4G " + metric},
		YAxisSecondary: chart.YAxis{Name: "5G " + metric},
		Series:         series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", metric, err)
	}
	return buf.Bytes(), nil
}

// renderSiteLines draws one metric aggregated by date and site, one line per
// site, with a legend.
func renderSiteLines(title, metric string, sites []string, bySite map[string][]kpi.TimePoint, width, height int) ([]byte, error) {
	var series []chart.Series
	for i, site := range sites {
		points := bySite[site]
		if len(points) < 2 {
			continue
		}
		x, y := splitSeries(points)
		series = append(series, chart.TimeSeries{
			Name:    site,
			XValues: x,
			YValues: y,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1.5,
				DotColor:    chart.GetDefaultColor(i),
				DotWidth:    2,
			},
		})
	}
	if len(series) == 0 {
		return nil, nil
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 10, Right: 130, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(timeAxisFormat),
		},
		YAxis:  chart.YAxis{Name: metric},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render site chart %s: %w", metric, err)
	}
	return buf.Bytes(), nil
}

// renderMini draws the tiny users-over-time chart used inside facet grids.
// Axes are hidden; the surrounding grid cell carries the label.
func renderMini(points []kpi.TimePoint, width, height int) ([]byte, error) {
	if len(points) < 2 {
		return nil, nil
	}
	x, y := splitSeries(points)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 2, Left: 2, Right: 2, Bottom: 2},
		},
		XAxis: chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{Style: chart.Hidden()},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: x,
				YValues: y,
				Style: chart.Style{
					StrokeColor: color4G,
					StrokeWidth: 1,
					DotColor:    color4G,
					DotWidth:    1,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render facet chart: %w", err)
	}
	return buf.Bytes(), nil
}

func splitSeries(points []kpi.TimePoint) ([]time.Time, []float64) {
	x := make([]time.Time, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.Date
		y[i] = p.Value
	}
	return x, y
}
