package bilateral

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an immutable header-plus-rows view of flat observation data, the
// shape CSV readers and spreadsheet libraries produce. Cells hold strings;
// numeric parsing happens when an adapter extracts a series, so a table can
// carry columns the current computation does not touch.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a Table from a header and data rows. Column names must be
// unique and every row must have exactly one cell per column. Both inputs
// are copied.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table needs at least one column")
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), len(columns))
		}
		copied[i] = append([]string(nil), row...)
	}

	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    copied,
	}, nil
}

// Columns returns a copy of the column names in table order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// requireColumns verifies the named columns exist, reporting every missing
// name in one error.
func (t *Table) requireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// series reindexes one column by product id over the rows whose time period
// cell equals period. Duplicate product ids within a period keep the last
// occurrence. Row numbers in parse errors are 1-based data rows.
func (t *Table) series(period string, schema Schema, valueColumn string) (map[string]float64, error) {
	idCol := t.index[schema.ProductIDColumn]
	periodCol := t.index[schema.TimePeriodColumn]
	valueCol := t.index[valueColumn]

	out := make(map[string]float64)
	for i, row := range t.rows {
		if row[periodCol] != period {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse %s: %w", i+1, valueColumn, err)
		}
		out[row[idCol]] = value
	}
	return out, nil
}

// extractUnweighted pulls the base and compared price series for the
// price-only formulas.
func (t *Table) extractUnweighted(basePeriod, comparedPeriod string, schema Schema) (prices0, pricesT map[string]float64, err error) {
	s := schema.withDefaults()
	if err := t.requireColumns(s.ProductIDColumn, s.TimePeriodColumn, s.PriceColumn); err != nil {
		return nil, nil, err
	}

	if prices0, err = t.series(basePeriod, s, s.PriceColumn); err != nil {
		return nil, nil, err
	}
	if pricesT, err = t.series(comparedPeriod, s, s.PriceColumn); err != nil {
		return nil, nil, err
	}
	return prices0, pricesT, nil
}

// extractWeighted pulls both price series plus the quantity series of the
// requested periods. needQ0 and needQT mirror which basket the formula
// prices; quantity cells of a period nobody requested are never parsed.
func (t *Table) extractWeighted(basePeriod, comparedPeriod string, schema Schema, needQ0, needQT bool) (prices0, pricesT, quantities0, quantitiesT map[string]float64, err error) {
	s := schema.withDefaults()
	if err := t.requireColumns(s.ProductIDColumn, s.TimePeriodColumn, s.PriceColumn, s.QuantityColumn); err != nil {
		return nil, nil, nil, nil, err
	}

	if prices0, err = t.series(basePeriod, s, s.PriceColumn); err != nil {
		return nil, nil, nil, nil, err
	}
	if pricesT, err = t.series(comparedPeriod, s, s.PriceColumn); err != nil {
		return nil, nil, nil, nil, err
	}
	if needQ0 {
		if quantities0, err = t.series(basePeriod, s, s.QuantityColumn); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	if needQT {
		if quantitiesT, err = t.series(comparedPeriod, s, s.QuantityColumn); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	return prices0, pricesT, quantities0, quantitiesT, nil
}

// JevonsFromTable computes the Jevons index from tabular observations,
// filtering rows by equality on the schema's time period column.
func JevonsFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, err := tbl.extractUnweighted(basePeriod, comparedPeriod, schema)
	if err != nil {
		return 0, fmt.Errorf("jevons: %w", err)
	}
	return Jevons(prices0, pricesT, normalization)
}

// DutotFromTable computes the Dutot index from tabular observations.
func DutotFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, err := tbl.extractUnweighted(basePeriod, comparedPeriod, schema)
	if err != nil {
		return 0, fmt.Errorf("dutot: %w", err)
	}
	return Dutot(prices0, pricesT, normalization)
}

// CarliFromTable computes the Carli index from tabular observations.
func CarliFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, err := tbl.extractUnweighted(basePeriod, comparedPeriod, schema)
	if err != nil {
		return 0, fmt.Errorf("carli: %w", err)
	}
	return Carli(prices0, pricesT, normalization)
}

// BMWFromTable computes the Balk-Mehrhoff-Walsh index from tabular
// observations.
func BMWFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, err := tbl.extractUnweighted(basePeriod, comparedPeriod, schema)
	if err != nil {
		return 0, fmt.Errorf("bmw: %w", err)
	}
	return BMW(prices0, pricesT, normalization)
}

// LaspeyresFromTable computes the Laspeyres index from tabular observations.
// The quantity column is read from base-period rows only.
func LaspeyresFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, quantities0, _, err := tbl.extractWeighted(basePeriod, comparedPeriod, schema, true, false)
	if err != nil {
		return 0, fmt.Errorf("laspeyres: %w", err)
	}
	return Laspeyres(prices0, pricesT, quantities0, normalization)
}

// PaascheFromTable computes the Paasche index from tabular observations.
// The quantity column is read from compared-period rows only.
func PaascheFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, _, quantitiesT, err := tbl.extractWeighted(basePeriod, comparedPeriod, schema, false, true)
	if err != nil {
		return 0, fmt.Errorf("paasche: %w", err)
	}
	return Paasche(prices0, pricesT, quantitiesT, normalization)
}

// FisherFromTable computes the Fisher index from tabular observations.
func FisherFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, quantities0, quantitiesT, err := tbl.extractWeighted(basePeriod, comparedPeriod, schema, true, true)
	if err != nil {
		return 0, fmt.Errorf("fisher: %w", err)
	}
	return Fisher(prices0, pricesT, quantities0, quantitiesT, normalization)
}

// TornqvistFromTable computes the Törnqvist index from tabular observations.
func TornqvistFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, quantities0, quantitiesT, err := tbl.extractWeighted(basePeriod, comparedPeriod, schema, true, true)
	if err != nil {
		return 0, fmt.Errorf("tornqvist: %w", err)
	}
	return Tornqvist(prices0, pricesT, quantities0, quantitiesT, normalization)
}

// WalshFromTable computes the Walsh index from tabular observations.
func WalshFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, quantities0, quantitiesT, err := tbl.extractWeighted(basePeriod, comparedPeriod, schema, true, true)
	if err != nil {
		return 0, fmt.Errorf("walsh: %w", err)
	}
	return Walsh(prices0, pricesT, quantities0, quantitiesT, normalization)
}

// SatoVartiaFromTable computes the Sato-Vartia index from tabular
// observations.
func SatoVartiaFromTable(tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	prices0, pricesT, quantities0, quantitiesT, err := tbl.extractWeighted(basePeriod, comparedPeriod, schema, true, true)
	if err != nil {
		return 0, fmt.Errorf("sato-vartia: %w", err)
	}
	return SatoVartia(prices0, pricesT, quantities0, quantitiesT, normalization)
}
