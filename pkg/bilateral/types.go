package bilateral

// Default column names and normalization for tabular data
const (
	// DefaultNormalization is the value a no-change basket maps to.
	DefaultNormalization = 100.0

	// DefaultProductIDColumn is the default product identifier column name.
	DefaultProductIDColumn = "product_id"
	// DefaultTimePeriodColumn is the default time period column name.
	DefaultTimePeriodColumn = "time_period"
	// DefaultPriceColumn is the default price column name.
	DefaultPriceColumn = "price"
	// DefaultQuantityColumn is the default quantity column name.
	DefaultQuantityColumn = "quantity"
)

// Schema names the table columns the FromTable adapters read. A zero-value
// field falls back to the corresponding package default, so Schema{} behaves
// like DefaultSchema().
type Schema struct {
	ProductIDColumn  string `json:"product_id_column"`
	TimePeriodColumn string `json:"time_period_column"`
	PriceColumn      string `json:"price_column"`
	QuantityColumn   string `json:"quantity_column"`
}

// DefaultSchema returns the schema with all default column names.
func DefaultSchema() Schema {
	return Schema{
		ProductIDColumn:  DefaultProductIDColumn,
		TimePeriodColumn: DefaultTimePeriodColumn,
		PriceColumn:      DefaultPriceColumn,
		QuantityColumn:   DefaultQuantityColumn,
	}
}

// withDefaults fills empty fields with the package default column names.
func (s Schema) withDefaults() Schema {
	if s.ProductIDColumn == "" {
		s.ProductIDColumn = DefaultProductIDColumn
	}
	if s.TimePeriodColumn == "" {
		s.TimePeriodColumn = DefaultTimePeriodColumn
	}
	if s.PriceColumn == "" {
		s.PriceColumn = DefaultPriceColumn
	}
	if s.QuantityColumn == "" {
		s.QuantityColumn = DefaultQuantityColumn
	}
	return s
}
