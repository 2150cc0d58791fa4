package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the worksheet holding the inventory
	SheetName = "Inventory"
	// SpreadsheetFileName is the download name of the workbook
	SpreadsheetFileName = "home-inventory.xlsx"
	// SpreadsheetContentType is the MIME type of the workbook
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteSpreadsheet writes the rows as an xlsx workbook with a header row
func WriteSpreadsheet(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.Name, row.FoodType, row.Brand, row.Quantity,
			row.Unit, row.Location, row.Expiration, row.DateAdded,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ReadSpreadsheet parses a workbook produced by WriteSpreadsheet
func ReadSpreadsheet(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(sheetRows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", SheetName)
	}

	rows := make([]Row, 0, len(sheetRows)-1)
	for i, cells := range sheetRows[1:] {
		// GetRows drops trailing empty cells
		for len(cells) < len(Headers) {
			cells = append(cells, "")
		}
		quantity, err := strconv.Atoi(cells[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q", i+2, cells[3])
		}
		rows = append(rows, Row{
			Name:       cells[0],
			FoodType:   cells[1],
			Brand:      cells[2],
			Quantity:   quantity,
			Unit:       cells[4],
			Location:   cells[5],
			Expiration: cells[6],
			DateAdded:  cells[7],
		})
	}
	return rows, nil
}
