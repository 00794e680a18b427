package reportquery

import (
	"github.com/xuri/excelize/v2"
)

// RenderXLSX writes the row set into a single-sheet workbook with the same
// column order the CSV export uses.
func RenderXLSX(columns []string, rows []map[string]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for r, row := range rows {
		cells := make([]interface{}, len(columns))
		for i, col := range columns {
			cells[i] = FormatValue(row[col])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
