package report

import (
	"fmt"
	"log/slog"

	"github.com/tblacerda/dayafter/internal/kpi"
	"github.com/tblacerda/dayafter/internal/summary"
)

// Facet grid capacity: 24 rows by 3 columns of per-cell mini charts per
// page; cells beyond capacity spill to additional pages.
const (
	facetRows    = 24
	facetCols    = 3
	facetPerPage = facetRows * facetCols
)

// boxplotMetrics is the subset of tracked metrics that get boxplot pages.
var boxplotMetrics = []string{"TputDLMB", "TputULMB", "Users"}

// Composer walks the merged dataset group by group and drives the document
// renderer through the fixed page sequence.
type Composer struct {
	style  Style
	calc   *summary.Calculator
	logger *slog.Logger
}

// NewComposer creates a report composer with an explicit style.
func NewComposer(style Style, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		style:  style,
		calc:   summary.NewCalculator(logger),
		logger: logger,
	}
}

// Generate renders the full report for the given groups into one PDF at
// outPath. An empty groups list means every distinct group in the dataset.
func (c *Composer) Generate(rows []kpi.Record, groups []string, outPath, runID string) (int, error) {
	if len(groups) == 0 {
		groups = kpi.Groups(rows)
	}

	doc := NewDocument(c.style, runID)

	for _, group := range groups {
		groupRows := kpi.FilterGroup(rows, group)
		c.logger.Info("composing group", "group", group, "rows", len(groupRows))

		res := c.calc.Compute(group, groupRows)
		c.writeSummaryPage(doc, group, res)
		c.writeWorstCellsPage(doc, group, summary.WorstCellsByAcc(groupRows, summary.TopCellCount))

		if err := c.writeMetricGridPage(doc, group, groupRows); err != nil {
			return 0, err
		}

		for _, tech := range []string{kpi.Tech4G, kpi.Tech5G} {
			techRows := kpi.FilterTech(groupRows, tech)
			if err := c.writeBoxplotPages(doc, group, tech, techRows); err != nil {
				return 0, err
			}
			if err := c.writeSitePages(doc, group, tech, techRows); err != nil {
				return 0, err
			}
			if err := c.writeFacetPages(doc, group, tech, techRows); err != nil {
				return 0, err
			}
		}
	}

	pages := doc.PageCount()
	if err := doc.Save(outPath); err != nil {
		return 0, err
	}
	return pages, nil
}

// writeMetricGridPage emits the 2x3 grid of dual-axis time-series charts,
// one chart per tracked metric, 4G and 5G on separate y scales.
func (c *Composer) writeMetricGridPage(doc *Document, group string, rows []kpi.Record) error {
	doc.AddLandscapePage()
	doc.Text(12, fmt.Sprintf("Metrics for Grupo %s", group), 13, true, c.style.Header)

	rows4G := kpi.FilterTech(rows, kpi.Tech4G)
	rows5G := kpi.FilterTech(rows, kpi.Tech5G)

	const (
		left   = 10.0
		top    = 24.0
		cellW  = 92.0
		cellH  = 88.0
		gapX   = 1.0
		gapY   = 2.0
	)

	for i, metric := range kpi.Metrics {
		png, err := renderDualAxis(metric,
			kpi.AggregateByDate(rows4G, metric),
			kpi.AggregateByDate(rows5G, metric),
			c.style.GridCellW, c.style.GridCellH)
		if err != nil {
			return err
		}
		if png == nil {
			continue
		}
		col := i % 3
		row := i / 3
		x := left + float64(col)*(cellW+gapX)
		y := top + float64(row)*(cellH+gapY)
		if err := doc.PlaceImage(png, x, y, cellW, cellH); err != nil {
			return err
		}
	}
	return nil
}

// writeBoxplotPages emits one boxplot page per boxplot metric for the
// technology, one box per cell ordered ascending by the cell's own maximum.
func (c *Composer) writeBoxplotPages(doc *Document, group, tech string, techRows []kpi.Record) error {
	if len(techRows) == 0 {
		return nil
	}
	order := kpi.MaxMetricByCell(techRows)
	for _, metric := range boxplotMetrics {
		png, err := renderBoxplots(
			fmt.Sprintf("Boxplot for %s - %s - %s", metric, tech, group),
			metric, order(metric), techRows)
		if err != nil {
			return err
		}
		if png == nil {
			continue
		}
		if err := doc.AddImagePage(png, true, ""); err != nil {
			return err
		}
	}
	return nil
}

// writeSitePages emits one per-site multi-line time-series page per tracked
// metric, aggregated by date and site.
func (c *Composer) writeSitePages(doc *Document, group, tech string, techRows []kpi.Record) error {
	if len(techRows) == 0 {
		return nil
	}
	sites := kpi.Sites(techRows)
	for _, metric := range kpi.Metrics {
		bySite := kpi.AggregateByDateAnd(techRows, metric, func(r kpi.Record) string { return r.Site })
		png, err := renderSiteLines(
			fmt.Sprintf("%s for Grupo %s - %s", metric, group, tech),
			metric, sites, bySite,
			c.style.ChartWidth, c.style.ChartHeight)
		if err != nil {
			return err
		}
		if png == nil {
			continue
		}
		if err := doc.AddImagePage(png, true, ""); err != nil {
			return err
		}
	}
	return nil
}

// writeFacetPages emits paginated grids of per-cell users-over-time mini
// charts. Unused grid positions on the last page are simply left blank.
func (c *Composer) writeFacetPages(doc *Document, group, tech string, techRows []kpi.Record) error {
	cells := kpi.Cells(techRows)
	if len(cells) == 0 {
		return nil
	}

	for page := 0; page*facetPerPage < len(cells); page++ {
		chunk := cells[page*facetPerPage : min(len(cells), (page+1)*facetPerPage)]

		doc.AddPage()
		doc.Text(10, fmt.Sprintf("Users per Cell - %s - %s (Página %d)", group, tech, page+1),
			11, true, c.style.Header)

		const (
			left  = 12.0
			top   = 20.0
			tileW = 62.0
			tileH = 11.2
		)

		for i, cell := range chunk {
			col := i % facetCols
			row := i / facetCols
			x := left + float64(col)*tileW
			y := top + float64(row)*tileH

			cellRows := make([]kpi.Record, 0)
			for _, r := range techRows {
				if r.Cell == cell {
					cellRows = append(cellRows, r)
				}
			}
			points := kpi.AggregateByDate(cellRows, "Users")

			doc.SmallText(x, y, truncateLabel(cell, labelMaxLen))
			png, err := renderMini(points, c.style.MiniWidth, c.style.MiniHeight)
			if err != nil {
				return err
			}
			if png == nil {
				continue
			}
			if err := doc.PlaceImage(png, x, y+2.6, tileW-4, tileH-3.4); err != nil {
				return err
			}
		}
	}
	return nil
}
