package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ActivityRow is one flattened ledger entry ready for export. Absent
// values are already rendered as "N/A" by the caller.
type ActivityRow struct {
	Date             string
	Action           string
	Product          string
	Store            string
	PreviousQuantity string
	NewQuantity      string
	QuantityChange   string
	Details          string
}

const sheetName = "Activity Report"

var headers = []string{
	"Date", "Action", "Product", "Store",
	"Previous Quantity", "New Quantity", "Quantity Change", "Details",
}

// ActivityReport renders the rows into an xlsx workbook and returns the
// file bytes plus the dated download name.
func ActivityReport(rows []ActivityRow) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, "", err
		}
	}

	for i, row := range rows {
		values := []string{
			row.Date, row.Action, row.Product, row.Store,
			row.PreviousQuantity, row.NewQuantity, row.QuantityChange, row.Details,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("activity-report-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), fileName, nil
}
