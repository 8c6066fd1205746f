// Package kpi loads per-cell radio KPI spreadsheets and normalizes them into
// the unified schema the report pipeline works on.
package kpi

import (
	"time"

	"github.com/samber/lo"
)

// Technology tags carried on every normalized row.
const (
	Tech4G = "4G"
	Tech5G = "5G"
)

// Record is one normalized measurement row: one cell, one time bucket.
// Volume is in GB and throughput in Mbps after normalization.
type Record struct {
	Date     time.Time
	Grupo    string
	Site     string
	Cell     string
	Tech     string
	VolumeGB float64
	TputDLMB float64
	TputULMB float64
	Disp     float64
	Users    float64
	Acc      float64
	// PRBDL is the mean downlink PRB utilization (%), present in the 4G
	// export only. It is carried through dedup and the intermediate workbook
	// but not charted.
	PRBDL float64

	// HasAcc is false when the accessibility cell was empty or unparseable.
	// Acc is optional, so such rows stay in the working set but are excluded
	// from accessibility rankings and means instead of counting as 0%.
	HasAcc bool

	// Complete is false when any of Users, Disp, TputDLMB or TputULMB was
	// absent in the source row. Incomplete rows are dropped before any
	// processing, without per-row reporting.
	Complete bool
}

// Metrics lists the tracked metric columns in display order.
var Metrics = []string{"VolumeGB", "TputDLMB", "TputULMB", "Users", "Disp", "acc"}

// SumsMetric reports whether a metric aggregates by sum when grouped by date
// (and optionally site/cell); every other tracked metric aggregates by mean.
// This choice is applied consistently across all report pages.
func SumsMetric(metric string) bool {
	return metric == "VolumeGB" || metric == "Users"
}

// MetricValue extracts the named tracked metric from a record.
func MetricValue(r Record, metric string) float64 {
	switch metric {
	case "VolumeGB":
		return r.VolumeGB
	case "TputDLMB":
		return r.TputDLMB
	case "TputULMB":
		return r.TputULMB
	case "Users":
		return r.Users
	case "Disp":
		return r.Disp
	case "acc":
		return r.Acc
	}
	return 0
}

// HasMetric reports whether the record actually carries the named metric.
// Only accessibility is optional; missing values must not enter means or
// rankings as zeros.
func HasMetric(r Record, metric string) bool {
	if metric == "acc" {
		return r.HasAcc
	}
	return true
}

// DropIncomplete removes rows missing any of the required quality fields.
func DropIncomplete(rows []Record) []Record {
	return lo.Filter(rows, func(r Record, _ int) bool { return r.Complete })
}

// FilterGroup returns the rows belonging to one group.
func FilterGroup(rows []Record, group string) []Record {
	return lo.Filter(rows, func(r Record, _ int) bool { return r.Grupo == group })
}

// FilterTech returns the rows belonging to one technology.
func FilterTech(rows []Record, tech string) []Record {
	return lo.Filter(rows, func(r Record, _ int) bool { return r.Tech == tech })
}

// Groups returns the distinct non-empty group ids in order of first appearance.
func Groups(rows []Record) []string {
	all := lo.Map(rows, func(r Record, _ int) string { return r.Grupo })
	return lo.Filter(lo.Uniq(all), func(g string, _ int) bool { return g != "" })
}

// Sites returns the distinct site ids in order of first appearance.
func Sites(rows []Record) []string {
	all := lo.Map(rows, func(r Record, _ int) string { return r.Site })
	return lo.Filter(lo.Uniq(all), func(s string, _ int) bool { return s != "" })
}

// Cells returns the distinct cell ids in order of first appearance.
func Cells(rows []Record) []string {
	all := lo.Map(rows, func(r Record, _ int) string { return r.Cell })
	return lo.Filter(lo.Uniq(all), func(c string, _ int) bool { return c != "" })
}
