package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestActivityReport(t *testing.T) {
	rows := []ActivityRow{
		{
			Date:             "2025-03-14 10:00:00",
			Action:           "Product restocked",
			Product:          "Cotton Fabric",
			Store:            "Store A - NMB Branch",
			PreviousQuantity: "100",
			NewQuantity:      "150",
			QuantityChange:   "50",
			Details:          "Cotton Fabric (Blue)",
		},
		{
			Date:             "2025-03-14 11:00:00",
			Action:           "Product removed",
			Product:          "Silk Fabric",
			Store:            "Store B - Msimbazi",
			PreviousQuantity: "N/A",
			NewQuantity:      "N/A",
			QuantityChange:   "N/A",
			Details:          "N/A",
		},
	}

	data, fileName, err := ActivityReport(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	expected := fmt.Sprintf("activity-report-%s.xlsx", time.Now().Format("2006-01-02"))
	assert.Equal(t, expected, fileName)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Activity Report")
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, []string{
		"Date", "Action", "Product", "Store",
		"Previous Quantity", "New Quantity", "Quantity Change", "Details",
	}, cells[0])
	assert.Equal(t, "Cotton Fabric", cells[1][2])
	assert.Equal(t, "50", cells[1][6])
	assert.Equal(t, "N/A", cells[2][4])
}

func TestActivityReportEmpty(t *testing.T) {
	data, _, err := ActivityReport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Activity Report")
	require.NoError(t, err)
	require.Len(t, cells, 1) // header only
}
