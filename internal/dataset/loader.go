// Package dataset loads long-format price observations from CSV and XLSX
// files into the tabular form the index formulas consume.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"priceindex/pkg/bilateral"
)

// Load reads the dataset at path, dispatching on the file extension.
// The sheet argument only applies to workbooks and may be empty there too,
// in which case the first sheet is used.
func Load(path, sheet string) (*bilateral.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported dataset extension %q in %s", ext, path)
	}
}

// LoadCSV reads a CSV file whose first record is the column header.
func LoadCSV(path string) (*bilateral.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV records from %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file: %s", path)
	}

	tbl, err := bilateral.NewTable(records[0], records[1:])
	if err != nil {
		return nil, fmt.Errorf("build table from %s: %w", path, err)
	}

	slog.Debug("loaded CSV dataset",
		"path", path,
		"columns", len(tbl.Columns()),
		"rows", tbl.Len(),
	)
	return tbl, nil
}

// LoadXLSX reads one sheet of a workbook whose first row is the column
// header. An empty sheet name selects the workbook's first sheet.
func LoadXLSX(path, sheet string) (*bilateral.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q from %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", sheet, path)
	}

	// GetRows trims trailing empty cells per row, so pad back to header
	// width before handing over.
	header := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		for len(row) < len(header) {
			row = append(row, "")
		}
		body = append(body, row)
	}

	tbl, err := bilateral.NewTable(header, body)
	if err != nil {
		return nil, fmt.Errorf("build table from %s sheet %q: %w", path, sheet, err)
	}

	slog.Debug("loaded XLSX dataset",
		"path", path,
		"sheet", sheet,
		"columns", len(tbl.Columns()),
		"rows", tbl.Len(),
	)
	return tbl, nil
}
