package report

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/tblacerda/dayafter/internal/summary"
)

// labelMaxLen is the display threshold for cell/site identifiers. Longer ids
// are truncated with an ellipsis.
const labelMaxLen = 15

func truncateLabel(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// worstCellLabel truncates ids on the worst-cells page. Inherited quirk: it
// checks the 15-char threshold but keeps only the first 5 characters, unlike
// every other page. Kept as-is pending product clarification.
func worstCellLabel(s string) string {
	if len(s) > labelMaxLen {
		return s[:5] + "..."
	}
	return s
}

type lineKind int

const (
	lineHeader lineKind = iota
	lineSubheader
	lineValue
	lineHighlight
	lineSpacer
)

type styledLine struct {
	kind lineKind
	text string
}

const (
	textTop        = 30.0
	textLineHeight = 8.0
	textBottom     = 270.0
)

func (c *Composer) writeLines(doc *Document, lines []styledLine) {
	y := textTop
	for _, line := range lines {
		if y > textBottom {
			break
		}
		switch line.kind {
		case lineSpacer:
		case lineHeader:
			doc.Text(y, line.text, 14, true, c.style.Header)
		case lineSubheader:
			doc.Text(y, line.text, 11, true, c.style.Subheader)
		case lineHighlight:
			doc.Text(y, line.text, 11, true, c.style.Highlight)
		default:
			doc.Text(y, line.text, 11, false, c.style.Value)
		}
		y += textLineHeight
	}
}

// writeSummaryPage renders the group's key-metrics text page.
func (c *Composer) writeSummaryPage(doc *Document, group string, res summary.Result) {
	m := res.Metrics
	lines := []styledLine{
		{lineHeader, fmt.Sprintf("Relatório: %s", group)},
		{lineSpacer, ""},
		{lineSubheader, "Volume de Dados (GB):"},
		{lineValue, fmt.Sprintf("4G: %.2f | 5G: %.2f", m.Vol4G, m.Vol5G)},
		{lineHighlight, fmt.Sprintf("Total: %.2f", m.TotalVolume)},
		{lineSpacer, ""},
		{lineSubheader, "Offload 5G:"},
		{lineHighlight, fmt.Sprintf("%.2f%%", m.Offload*100)},
		{lineSpacer, ""},
		{lineSubheader, fmt.Sprintf("Pico de Usuários @ %s", m.PeakHour)},
		{lineValue, fmt.Sprintf("4G: %s | 5G: %s", humanize.Comma(int64(m.Peak4G)), humanize.Comma(int64(m.Peak5G)))},
		{lineHighlight, fmt.Sprintf("Total: %s", humanize.Comma(int64(m.PeakTotal)))},
	}

	if len(m.TputAtPeak) > 0 {
		lines = append(lines,
			styledLine{lineSpacer, ""},
			styledLine{lineSubheader, "Throughput Médio (Mbps):"},
			styledLine{lineValue, fmt.Sprintf("4G DL: %.1f UL: %.1f", m.TputAtPeak["4G DL"], m.TputAtPeak["4G UL"])},
			styledLine{lineValue, fmt.Sprintf("5G DL: %.1f UL: %.1f", m.TputAtPeak["5G DL"], m.TputAtPeak["5G UL"])},
		)
	}

	if len(m.TopCells) > 0 {
		lines = append(lines,
			styledLine{lineSpacer, ""},
			styledLine{lineSubheader, "Top Células (usuários):"},
		)
		for _, tc := range m.TopCells {
			lines = append(lines, styledLine{lineValue,
				fmt.Sprintf("%s: %s", truncateLabel(tc.Cell, labelMaxLen), humanize.Comma(int64(tc.Users)))})
		}
	}

	if res.Outcome == summary.OutcomeDegraded {
		lines = append(lines,
			styledLine{lineSpacer, ""},
			styledLine{lineValue, fmt.Sprintf("(dados parciais: %s)", res.Note)},
		)
	}

	doc.AddPage()
	c.writeLines(doc, lines)
}

// writeWorstCellsPage renders the 5-worst-cells-by-accessibility text page.
func (c *Composer) writeWorstCellsPage(doc *Document, group string, worst []summary.CellAcc) {
	lines := []styledLine{
		{lineHeader, fmt.Sprintf("5 Piores Células por Acessibilidade (%s)", group)},
		{lineSpacer, ""},
	}

	if len(worst) > 0 {
		lines = append(lines,
			styledLine{lineSubheader, "Célula          Acessibilidade (%)"},
			styledLine{lineSpacer, ""},
		)
		for _, w := range worst {
			lines = append(lines, styledLine{lineValue, fmt.Sprintf("%s: %.2f", worstCellLabel(w.Cell), w.Acc)})
		}
	} else {
		lines = append(lines, styledLine{lineValue, "Dados de acessibilidade não disponíveis."})
	}

	doc.AddPage()
	c.writeLines(doc, lines)
}
