package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkRecord(date time.Time, grupo, site, cell, tech string, users float64) Record {
	return Record{
		Date: date, Grupo: grupo, Site: site, Cell: cell, Tech: tech,
		Users: users, Complete: true,
	}
}

func TestMergeDeduplicates(t *testing.T) {
	d := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	dup := mkRecord(d, "G1", "S1", "C1", Tech4G, 10)

	merged := Merge(
		[]Record{dup, mkRecord(d, "G1", "S1", "C2", Tech4G, 5)},
		[]Record{dup, mkRecord(d, "G1", "S2", "C3", Tech5G, 7)},
	)

	require.Len(t, merged, 3, "full-row duplicate counted once")
	assert.Equal(t, dup, merged[0], "first occurrence kept in order")
}

func TestMergeKeepsNearDuplicates(t *testing.T) {
	d := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	a := mkRecord(d, "G1", "S1", "C1", Tech4G, 10)
	b := a
	b.Users = 11

	merged := Merge([]Record{a}, []Record{b})
	assert.Len(t, merged, 2, "rows differing in any column both survive")

	c := a
	c.PRBDL = 42.5
	merged = Merge([]Record{a}, []Record{c})
	assert.Len(t, merged, 2, "PRB utilization participates in row identity")
}

func TestAggregateByDate(t *testing.T) {
	d1 := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 22, 13, 0, 0, 0, time.UTC)
	rows := []Record{
		{Date: d2, Cell: "C1", Users: 5, TputDLMB: 10},
		{Date: d1, Cell: "C1", Users: 3, TputDLMB: 20},
		{Date: d1, Cell: "C2", Users: 4, TputDLMB: 40},
	}

	t.Run("sum metric", func(t *testing.T) {
		points := AggregateByDate(rows, "Users")
		require.Len(t, points, 2)
		assert.Equal(t, d1, points[0].Date, "ascending date order")
		assert.InDelta(t, 7, points[0].Value, 1e-9)
		assert.InDelta(t, 5, points[1].Value, 1e-9)
	})

	t.Run("mean metric", func(t *testing.T) {
		points := AggregateByDate(rows, "TputDLMB")
		require.Len(t, points, 2)
		assert.InDelta(t, 30, points[0].Value, 1e-9)
		assert.InDelta(t, 10, points[1].Value, 1e-9)
	})
}

func TestAggregateByDateExcludesMissingAcc(t *testing.T) {
	d1 := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 22, 13, 0, 0, 0, time.UTC)
	rows := []Record{
		{Date: d1, Cell: "C1", Acc: 90, HasAcc: true},
		{Date: d1, Cell: "C2"}, // no acc measurement
		{Date: d2, Cell: "C1"},
	}

	points := AggregateByDate(rows, "acc")
	require.Len(t, points, 1, "a date with only missing acc yields no point")
	assert.Equal(t, d1, points[0].Date)
	assert.InDelta(t, 90, points[0].Value, 1e-9, "missing acc stays out of the mean")
}

func TestAggregateByDateAnd(t *testing.T) {
	d1 := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 22, 13, 0, 0, 0, time.UTC)
	rows := []Record{
		{Date: d1, Site: "S1", VolumeGB: 1},
		{Date: d1, Site: "S2", VolumeGB: 2},
		{Date: d2, Site: "S1", VolumeGB: 3},
	}

	bySite := AggregateByDateAnd(rows, "VolumeGB", func(r Record) string { return r.Site })
	assert.Equal(t, []string{"S1", "S2"}, Sites(rows), "first-appearance order")
	require.Len(t, bySite["S1"], 2)
	assert.InDelta(t, 1, bySite["S1"][0].Value, 1e-9)
	assert.InDelta(t, 3, bySite["S1"][1].Value, 1e-9)
	require.Len(t, bySite["S2"], 1)
}

func TestMaxMetricByCellOrdering(t *testing.T) {
	d := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	rows := []Record{
		{Date: d, Cell: "HIGH", Users: 1},
		{Date: d.Add(time.Hour), Cell: "HIGH", Users: 90},
		{Date: d, Cell: "LOW", Users: 5},
		{Date: d, Cell: "MID", Users: 40},
	}

	cells := MaxMetricByCell(rows)("Users")
	assert.Equal(t, []string{"LOW", "MID", "HIGH"}, cells, "ascending by each cell's own max")
}

func TestGroupsSitesCells(t *testing.T) {
	d := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	rows := []Record{
		mkRecord(d, "G2", "S1", "C1", Tech4G, 1),
		mkRecord(d, "G1", "S2", "C2", Tech5G, 1),
		mkRecord(d, "G2", "S1", "C1", Tech5G, 1),
		mkRecord(d, "", "", "", Tech4G, 1),
	}

	assert.Equal(t, []string{"G2", "G1"}, Groups(rows))
	assert.Equal(t, []string{"S1", "S2"}, Sites(rows))
	assert.Equal(t, []string{"C1", "C2"}, Cells(rows))
}
