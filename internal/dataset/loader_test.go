package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"priceindex/pkg/bilateral"
)

const goldenCSV = `product_id,time_period,price,quantity
a,2024-01,100,10
b,2024-01,200,20
c,2024-01,300,30
a,2024-02,110,15
b,2024-02,190,25
c,2024-02,310,35
`

func writeGoldenCSV(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(goldenCSV), 0644))
	return path
}

func writeGoldenXLSX(t *testing.T, sheet string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}

	rows := [][]any{
		{"product_id", "time_period", "price", "quantity"},
		{"a", "2024-01", 100, 10},
		{"b", "2024-01", 200, 20},
		{"c", "2024-01", 300, 30},
		{"a", "2024-02", 110, 15},
		{"b", "2024-02", 190, 25},
		{"c", "2024-02", 310, 35},
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("golden file", func(t *testing.T) {
		tbl, err := LoadCSV(writeGoldenCSV(t))
		require.NoError(t, err)

		assert.Equal(t, []string{"product_id", "time_period", "price", "quantity"}, tbl.Columns())
		assert.Equal(t, 6, tbl.Len())

		got, err := bilateral.JevonsFromTable(tbl, "2024-01", "2024-02",
			bilateral.DefaultSchema(), bilateral.DefaultNormalization)
		require.NoError(t, err)
		assert.InDelta(t, 102.5932788256, got, 1e-6)
	})

	t.Run("header only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "header.csv")
		require.NoError(t, os.WriteFile(path, []byte("product_id,time_period,price\n"), 0644))

		tbl, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := LoadCSV(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty CSV file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open CSV file")
	})

	t.Run("ragged record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ragged.csv")
		content := "product_id,time_period,price\na,0,100\nb,0\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadCSV(path)
		assert.Error(t, err)
	})
}

func TestLoadXLSX(t *testing.T) {
	t.Run("named sheet", func(t *testing.T) {
		tbl, err := LoadXLSX(writeGoldenXLSX(t, "prices"), "prices")
		require.NoError(t, err)

		assert.Equal(t, []string{"product_id", "time_period", "price", "quantity"}, tbl.Columns())
		assert.Equal(t, 6, tbl.Len())
	})

	t.Run("empty sheet name picks the first sheet", func(t *testing.T) {
		tbl, err := LoadXLSX(writeGoldenXLSX(t, "prices"), "")
		require.NoError(t, err)
		assert.Equal(t, 6, tbl.Len())
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := LoadXLSX(writeGoldenXLSX(t, "prices"), "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open workbook")
	})

	t.Run("trailing empty cells are padded", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()

		rows := [][]any{
			{"product_id", "time_period", "price", "quantity"},
			{"a", "0", 100, 10},
			{"a", "1", 110}, // quantity cell left unset
		}
		for r, row := range rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue("Sheet1", cell, value))
			}
		}

		path := filepath.Join(t.TempDir(), "ragged.xlsx")
		require.NoError(t, f.SaveAs(path))

		tbl, err := LoadXLSX(path, "")
		require.NoError(t, err)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, []string{"a", "1", "110", ""}, tbl.Rows()[1])

		// The padded blank only matters to formulas that price that basket.
		_, err = bilateral.JevonsFromTable(tbl, "0", "1",
			bilateral.DefaultSchema(), bilateral.DefaultNormalization)
		assert.NoError(t, err)

		_, err = bilateral.PaascheFromTable(tbl, "0", "1",
			bilateral.DefaultSchema(), bilateral.DefaultNormalization)
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("csv dispatch", func(t *testing.T) {
		tbl, err := Load(writeGoldenCSV(t), "")
		require.NoError(t, err)
		assert.Equal(t, 6, tbl.Len())
	})

	t.Run("xlsx dispatch", func(t *testing.T) {
		tbl, err := Load(writeGoldenXLSX(t, "prices"), "prices")
		require.NoError(t, err)
		assert.Equal(t, 6, tbl.Len())
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("prices.parquet", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".parquet")
	})
}

// TestLoadersAgree verifies the CSV and XLSX paths produce identical
// tables, and therefore identical indices, for the same observations.
func TestLoadersAgree(t *testing.T) {
	fromCSV, err := LoadCSV(writeGoldenCSV(t))
	require.NoError(t, err)

	fromXLSX, err := LoadXLSX(writeGoldenXLSX(t, "prices"), "prices")
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Columns(), fromXLSX.Columns())
	assert.Equal(t, fromCSV.Rows(), fromXLSX.Rows())

	for _, method := range bilateral.Methods() {
		csvValue, err := bilateral.ComputeFromTable(method, fromCSV, "2024-01", "2024-02",
			bilateral.DefaultSchema(), bilateral.DefaultNormalization)
		require.NoError(t, err, "method %s", method)

		xlsxValue, err := bilateral.ComputeFromTable(method, fromXLSX, "2024-01", "2024-02",
			bilateral.DefaultSchema(), bilateral.DefaultNormalization)
		require.NoError(t, err, "method %s", method)

		assert.Equal(t, csvValue, xlsxValue, "method %s", method)
	}
}
