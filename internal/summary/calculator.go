package summary

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/tblacerda/dayafter/internal/kpi"
)

// TopCellCount is how many cells the peak-usage ranking keeps.
const TopCellCount = 5

// Calculator derives per-group summary metrics from normalized KPI rows.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a summary calculator.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

// Compute builds the summary for one group's rows. Volume and offload are
// always computed; peak, throughput and top-cell metrics fall back to
// sentinel defaults when the group has no rows, and a failure partway
// degrades the result instead of propagating.
func (c *Calculator) Compute(group string, rows []kpi.Record) (res Result) {
	m := Metrics{
		PeakHour:   NoPeakHour,
		TputAtPeak: map[string]float64{},
	}

	for _, r := range rows {
		switch r.Tech {
		case kpi.Tech4G:
			m.Vol4G += r.VolumeGB
		case kpi.Tech5G:
			m.Vol5G += r.VolumeGB
		}
	}
	m.TotalVolume = m.Vol4G + m.Vol5G
	if m.TotalVolume > 0 {
		m.Offload = m.Vol5G / m.TotalVolume
	}

	res = Result{Metrics: m, Outcome: OutcomeComplete}

	// Anything that goes wrong past this point degrades the group's summary
	// rather than aborting the whole report.
	defer func() {
		if r := recover(); r != nil {
			res.Outcome = OutcomeDegraded
			res.Note = fmt.Sprintf("summary computation failed: %v", r)
			c.logger.Warn("summary computation degraded", "group", group, "error", r)
		}
	}()

	peak, users, ok := c.detectPeak(rows)
	if !ok {
		res.Outcome = OutcomeNoData
		res.Note = "no rows to pivot"
		return res
	}

	res.Metrics.PeakHour = fmt.Sprintf("%02dh", peak.Hour())
	res.Metrics.Peak4G = int(users[kpi.Tech4G])
	res.Metrics.Peak5G = int(users[kpi.Tech5G])
	res.Metrics.PeakTotal = int(users[kpi.Tech4G] + users[kpi.Tech5G])

	var atPeak []kpi.Record
	for _, r := range rows {
		if r.Date.Equal(peak) {
			atPeak = append(atPeak, r)
		}
	}

	res.Metrics.TputAtPeak = map[string]float64{
		"4G DL": meanMetric(kpi.FilterTech(atPeak, kpi.Tech4G), "TputDLMB"),
		"4G UL": meanMetric(kpi.FilterTech(atPeak, kpi.Tech4G), "TputULMB"),
		"5G DL": meanMetric(kpi.FilterTech(atPeak, kpi.Tech5G), "TputDLMB"),
		"5G UL": meanMetric(kpi.FilterTech(atPeak, kpi.Tech5G), "TputULMB"),
	}
	res.Metrics.TopCells = topCells(atPeak, TopCellCount)

	c.logger.Debug("summary computed",
		"group", group,
		"peak_hour", res.Metrics.PeakHour,
		"peak_total", res.Metrics.PeakTotal,
		"total_volume_gb", res.Metrics.TotalVolume,
	)
	return res
}

// detectPeak pivots users by timestamp and technology (missing combinations
// count as zero) and returns the timestamp with the highest combined total.
// Ties resolve to the earliest timestamp.
func (c *Calculator) detectPeak(rows []kpi.Record) (time.Time, map[string]float64, bool) {
	type bucket struct{ u4, u5 float64 }
	pivot := make(map[time.Time]*bucket)
	for _, r := range rows {
		b := pivot[r.Date]
		if b == nil {
			b = &bucket{}
			pivot[r.Date] = b
		}
		switch r.Tech {
		case kpi.Tech4G:
			b.u4 += r.Users
		case kpi.Tech5G:
			b.u5 += r.Users
		}
	}
	if len(pivot) == 0 {
		return time.Time{}, nil, false
	}

	stamps := make([]time.Time, 0, len(pivot))
	for t := range pivot {
		stamps = append(stamps, t)
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	peak := stamps[0]
	best := pivot[peak].u4 + pivot[peak].u5
	for _, t := range stamps[1:] {
		if total := pivot[t].u4 + pivot[t].u5; total > best {
			best = total
			peak = t
		}
	}

	return peak, map[string]float64{
		kpi.Tech4G: pivot[peak].u4,
		kpi.Tech5G: pivot[peak].u5,
	}, true
}

// topCells ranks cells in the peak selection by summed users, descending,
// keeping at most n. Ties order by cell id for determinism.
func topCells(atPeak []kpi.Record, n int) []CellUsers {
	sums := make(map[string]float64)
	for _, r := range atPeak {
		if r.Cell == "" {
			continue
		}
		sums[r.Cell] += r.Users
	}

	ranked := make([]CellUsers, 0, len(sums))
	for cell, users := range sums {
		ranked = append(ranked, CellUsers{Cell: cell, Users: int(users)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Users != ranked[j].Users {
			return ranked[i].Users > ranked[j].Users
		}
		return ranked[i].Cell < ranked[j].Cell
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// meanMetric averages one metric over rows; NaN-free because it returns 0
// for an empty selection, which the summary page prints as 0.0.
func meanMetric(rows []kpi.Record, metric string) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rows {
		sum += kpi.MetricValue(r, metric)
	}
	return sum / float64(len(rows))
}

// WorstCellsByAcc returns the n rows with the smallest accessibility across
// the whole group, regardless of peak time. Row-level, not per-cell: a cell
// can appear more than once, matching the summary page's source data. Rows
// without an accessibility value do not rank; a missing measurement is not a
// 0% cell.
func WorstCellsByAcc(rows []kpi.Record, n int) []CellAcc {
	sorted := make([]kpi.Record, 0, len(rows))
	for _, r := range rows {
		if r.HasAcc {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Acc < sorted[j].Acc })

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]CellAcc, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, CellAcc{Cell: r.Cell, Acc: r.Acc})
	}
	return out
}
