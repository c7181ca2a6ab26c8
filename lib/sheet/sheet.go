// Package sheet writes tabular reports as single-sheet XLSX workbooks.
package sheet

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"io"
)

// defaultSheet is the sheet every new workbook starts with
const defaultSheet = "Sheet1"

// Write renders headers and rows into a workbook with one sheet called name
// and writes the XLSX bytes to w. Columns are limited to A-Z.
func Write(w io.Writer, name string, headers []string, rows [][]interface{}) error {
	if len(headers) > 26 {
		return fmt.Errorf("too many columns: %d", len(headers))
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
	}

	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			if err := f.SetCellValue(name, cell, value); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Read returns all rows of the first sheet of the workbook in r, header included
func Read(r io.Reader) (string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return sheets[0], rows, nil
}
