package kpi

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbookRoundtrip(t *testing.T) {
	d := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	rows := []Record{
		{Date: d, Grupo: "G1", Site: "S1", Cell: "C1", Tech: Tech4G,
			VolumeGB: 2.5, TputDLMB: 12, TputULMB: 3, Disp: 99.5, PRBDL: 55.5,
			Users: 150, Acc: 98.7, HasAcc: true, Complete: true},
		{Date: d, Grupo: "G1", Site: "S1", Cell: "C2", Tech: Tech4G,
			VolumeGB: 1.0, TputDLMB: 10, TputULMB: 2, Disp: 99.0,
			Users: 80, Complete: true},
	}
	path := filepath.Join(t.TempDir(), "normalized.xlsx")

	require.NoError(t, WriteWorkbook(rows, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, exportHeader, got[0])
	assert.Equal(t, "2025-03-22 12:00:00", got[1][0])
	assert.Equal(t, "G1", got[1][1])
	assert.Equal(t, "4G", got[1][4])
	assert.Equal(t, "55.5", got[1][9])
	assert.Equal(t, "98.7", got[1][11])

	missing, err := f.GetCellValue(sheet, "L3")
	require.NoError(t, err)
	assert.Empty(t, missing, "unmeasured accessibility exports as a blank cell")
}
