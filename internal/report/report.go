// Package report renders computed index results to CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Result is one computed index value.
type Result struct {
	Method string
	Value  float64
}

// Run carries the metadata shared by every result of one invocation.
type Run struct {
	ID             string
	Dataset        string
	BasePeriod     string
	ComparedPeriod string
	Normalization  float64
	ComputedAt     time.Time
}

// Header is the column order of the report file.
var Header = []string{
	"method",
	"index_value",
	"base_period",
	"compared_period",
	"normalization",
	"run_id",
	"computed_at",
}

// WriteCSV writes one row per result under the shared run metadata,
// creating the parent directory if needed. An existing file is replaced.
func WriteCSV(path string, run Run, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	computedAt := run.ComputedAt.UTC().Format(time.RFC3339)
	normalization := strconv.FormatFloat(run.Normalization, 'f', -1, 64)

	for _, result := range results {
		record := []string{
			result.Method,
			strconv.FormatFloat(result.Value, 'f', 6, 64),
			run.BasePeriod,
			run.ComparedPeriod,
			normalization,
			run.ID,
			computedAt,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", result.Method, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report to %s: %w", path, err)
	}

	slog.Debug("wrote index report",
		"path", path,
		"results", len(results),
		"run_id", run.ID,
	)
	return nil
}
