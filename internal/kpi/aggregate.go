package kpi

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// TimePoint is one aggregated value in a date-indexed series.
type TimePoint struct {
	Date  time.Time
	Value float64
}

// AggregateByDate buckets rows by timestamp and reduces the metric with its
// fixed aggregation (sum for VolumeGB/Users, mean otherwise). Rows that do
// not carry the metric stay out of both the sum and the count. The series is
// returned in ascending date order.
func AggregateByDate(rows []Record, metric string) []TimePoint {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, r := range rows {
		if !HasMetric(r, metric) {
			continue
		}
		sums[r.Date] += MetricValue(r, metric)
		counts[r.Date]++
	}

	points := make([]TimePoint, 0, len(sums))
	for date, sum := range sums {
		v := sum
		if !SumsMetric(metric) {
			v = sum / float64(counts[date])
		}
		points = append(points, TimePoint{Date: date, Value: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// AggregateByDateAnd buckets rows by (timestamp, key) and reduces the metric
// per key into a date-ordered series. Callers choose the key iteration order
// themselves, typically Sites or Cells.
func AggregateByDateAnd(rows []Record, metric string, key func(Record) string) map[string][]TimePoint {
	keys := lo.Filter(lo.Uniq(lo.Map(rows, func(r Record, _ int) string { return key(r) })),
		func(k string, _ int) bool { return k != "" })

	series := make(map[string][]TimePoint, len(keys))
	for _, k := range keys {
		subset := lo.Filter(rows, func(r Record, _ int) bool { return key(r) == k })
		series[k] = AggregateByDate(subset, metric)
	}
	return series
}

// MaxMetricByCell returns each cell's maximum of the metric. Used to order
// boxplot columns ascending by the cell's own peak.
func MaxMetricByCell(rows []Record) func(metric string) []string {
	return func(metric string) []string {
		maxes := make(map[string]float64)
		for _, r := range rows {
			if r.Cell == "" || !HasMetric(r, metric) {
				continue
			}
			v := MetricValue(r, metric)
			if cur, ok := maxes[r.Cell]; !ok || v > cur {
				maxes[r.Cell] = v
			}
		}
		cells := lo.Keys(maxes)
		sort.Slice(cells, func(i, j int) bool {
			if maxes[cells[i]] != maxes[cells[j]] {
				return maxes[cells[i]] < maxes[cells[j]]
			}
			return cells[i] < cells[j]
		})
		return cells
	}
}
