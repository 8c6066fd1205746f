package kpi

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tblacerda/dayafter/internal/config"
	"github.com/tblacerda/dayafter/internal/files"
)

// Unit divisors applied during normalization. The vendor exports carry volume
// in KB and throughput in kbps; the unified schema holds GB and Mbps.
const (
	volumeDivisor = 1e6
	tputDivisor   = 1e3
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01-02-06 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// LoadTechData loads every workbook in dir and normalizes the rows per spec:
// rename columns, drop the declared ones, tag the technology, uppercase the
// group id, parse the date and scale volume/throughput units. A missing
// folder or a folder without workbooks aborts the run.
func LoadTechData(dir string, spec config.TechSpec, logger *slog.Logger) ([]Record, error) {
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := files.FindExcelFiles(dir)
	if err != nil {
		return nil, err
	}

	var rows []Record
	for _, path := range paths {
		fileRows, err := parseWorkbook(path, spec, logger)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		rows = append(rows, fileRows...)
	}

	logger.Info("loaded technology data",
		"tech", spec.Tech,
		"dir", dir,
		"files", len(paths),
		"rows", len(rows),
	)
	return rows, nil
}

func parseWorkbook(path string, spec config.TechSpec, logger *slog.Logger) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(raw) < 2 {
		logger.Warn("workbook has no data rows", "path", path, "sheet", sheet)
		return nil, nil
	}

	cols := mapColumns(raw[0], spec)
	if _, ok := cols["Date"]; !ok {
		return nil, fmt.Errorf("no Date column in sheet %s", sheet)
	}
	if _, ok := cols["Grupo"]; !ok {
		return nil, fmt.Errorf("no Grupo column in sheet %s", sheet)
	}

	var rows []Record
	skipped := 0
	for _, cells := range raw[1:] {
		rec, ok := parseRow(cells, cols)
		if !ok {
			skipped++
			continue
		}
		rec.Tech = spec.Tech
		rows = append(rows, rec)
	}

	if skipped > 0 {
		logger.Debug("skipped unparseable rows", "path", path, "skipped", skipped)
	}
	return rows, nil
}

// mapColumns applies the spec's rename mapping to the header row and returns
// canonical column name -> index, leaving dropped columns unmapped.
func mapColumns(header []string, spec config.TechSpec) map[string]int {
	dropped := make(map[string]bool, len(spec.Drop))
	for _, name := range spec.Drop {
		dropped[name] = true
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" || dropped[name] {
			continue
		}
		if canonical, ok := spec.Rename[name]; ok {
			name = canonical
		}
		cols[name] = i
	}
	return cols
}

func parseRow(cells []string, cols map[string]int) (Record, bool) {
	get := func(name string) (string, bool) {
		idx, ok := cols[name]
		if !ok || idx >= len(cells) {
			return "", false
		}
		v := strings.TrimSpace(cells[idx])
		return v, v != ""
	}

	dateStr, ok := get("Date")
	if !ok {
		return Record{}, false
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return Record{}, false
	}

	grupo, _ := get("Grupo")
	site, _ := get("Site")
	cell, _ := get("Cell")

	rec := Record{
		Date:     date,
		Grupo:    strings.ToUpper(grupo),
		Site:     site,
		Cell:     cell,
		Complete: true,
	}

	parse := func(name string) (float64, bool) {
		s, ok := get(name)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	// Unit conversions apply only when the source column is present.
	if v, ok := parse("VolumeGB"); ok {
		rec.VolumeGB = v / volumeDivisor
	}
	if v, ok := parse("acc"); ok {
		rec.Acc = v
		rec.HasAcc = true
	}
	if v, ok := parse("PRB_DL"); ok {
		rec.PRBDL = v
	}

	for _, required := range []struct {
		name    string
		divisor float64
		dst     *float64
	}{
		{"TputDLMB", tputDivisor, &rec.TputDLMB},
		{"TputULMB", tputDivisor, &rec.TputULMB},
		{"Disp", 1, &rec.Disp},
		{"Users", 1, &rec.Users},
	} {
		v, ok := parse(required.name)
		if !ok {
			rec.Complete = false
			continue
		}
		*required.dst = v / required.divisor
	}

	return rec, true
}

// parseDate accepts the timestamp formats seen in the vendor exports, plus
// the Excel serial-number representation excelize surfaces for date cells.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		// Days since the Excel epoch (1899-12-30), fraction is time of day.
		epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		days := int(serial)
		frac := serial - float64(days)
		return epoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour))), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}
