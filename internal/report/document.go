package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Document is a thin stateful wrapper over one continuous multi-page PDF.
// Pages are appended in the exact order the composer emits them.
type Document struct {
	pdf    *fpdf.Fpdf
	style  Style
	tr     func(string) string
	images int
}

// NewDocument opens a new A4 document with a footer carrying the page number
// and the run id.
func NewDocument(style Style, runID string) *Document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 12)
	pdf.AliasNbPages("")

	// Core fonts are cp1252; accented labels need the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont(style.FontFamily, "", 7)
		pdf.SetTextColor(style.Footer[0], style.Footer[1], style.Footer[2])
		pdf.CellFormat(0, 6,
			tr(fmt.Sprintf("Página %d/{nb} · execução %s", pdf.PageNo(), runID)),
			"", 0, "C", false, 0, "")
	})

	return &Document{pdf: pdf, style: style, tr: tr}
}

// AddPage appends a blank portrait page.
func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// AddLandscapePage appends a blank landscape page.
func (d *Document) AddLandscapePage() {
	d.pdf.AddPageFormat("L", fpdf.SizeType{Wd: 210, Ht: 297})
}

// PlaceImage draws a PNG at the given position, in page millimeters.
func (d *Document) PlaceImage(png []byte, x, y, w, h float64) error {
	if len(png) == 0 {
		return nil
	}
	d.images++
	name := fmt.Sprintf("chart-%04d", d.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("place image: %w", err)
	}
	return nil
}

// AddImagePage appends one page filled by a single chart image.
func (d *Document) AddImagePage(png []byte, landscape bool, title string) error {
	if landscape {
		d.AddLandscapePage()
	} else {
		d.AddPage()
	}
	pw, ph := d.pdf.GetPageSize()
	if title != "" {
		d.pdf.SetY(10)
		d.pdf.SetFont(d.style.FontFamily, "B", 12)
		d.pdf.SetTextColor(d.style.Header[0], d.style.Header[1], d.style.Header[2])
		d.pdf.CellFormat(0, 8, d.tr(title), "", 1, "C", false, 0, "")
	}
	return d.PlaceImage(png, 12, 22, pw-24, ph-38)
}

// Text draws one centered line at the given vertical position.
func (d *Document) Text(y float64, text string, size float64, bold bool, color RGB) {
	weight := ""
	if bold {
		weight = "B"
	}
	d.pdf.SetY(y)
	d.pdf.SetFont(d.style.FontFamily, weight, size)
	d.pdf.SetTextColor(color[0], color[1], color[2])
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "C", false, 0, "")
}

// SmallText draws a left-aligned label at an absolute position, used for the
// facet-grid cell titles.
func (d *Document) SmallText(x, y float64, text string) {
	d.pdf.SetXY(x, y)
	d.pdf.SetFont(d.style.FontFamily, "", 5.5)
	d.pdf.SetTextColor(d.style.Subheader[0], d.style.Subheader[1], d.style.Subheader[2])
	d.pdf.CellFormat(60, 2.4, d.tr(text), "", 0, "L", false, 0, "")
}

// PageCount returns the number of pages emitted so far.
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Save writes the document to path and closes it.
func (d *Document) Save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write PDF %s: %w", path, err)
	}
	return nil
}
