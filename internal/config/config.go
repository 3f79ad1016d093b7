// Package config resolves the run configuration from compiled defaults,
// an optional YAML file, and PRICEINDEX_* environment variables, in that
// order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"priceindex/pkg/bilateral"
)

// EnvPrefix is the prefix shared by all configuration environment
// variables, e.g. PRICEINDEX_INDEX_NORMALIZATION.
const EnvPrefix = "PRICEINDEX"

// Config is the full configuration tree for an index run.
//
// A leaf envconfig tag doubles as an unprefixed fallback key, so leaves
// carry one only where the field name alone would not derive the
// documented PRICEINDEX_* key. A "PATH" tag would let the ambient $PATH
// variable fill the field whenever PRICEINDEX_DATASET_PATH is unset.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Index   IndexConfig   `yaml:"index" envconfig:"INDEX"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DatasetConfig locates the observations to load. Path stays optional
// here so the command line can supply it.
type DatasetConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"`
}

// IndexConfig selects the comparison and the formulas to run.
type IndexConfig struct {
	BasePeriod     string        `yaml:"base_period" envconfig:"BASE_PERIOD"`
	ComparedPeriod string        `yaml:"compared_period" envconfig:"COMPARED_PERIOD"`
	Normalization  float64       `yaml:"normalization" validate:"gt=0"`
	Methods        []string      `yaml:"methods" validate:"min=1,dive,indexmethod"`
	Columns        ColumnsConfig `yaml:"columns" envconfig:"COLUMNS"`
}

// ColumnsConfig names the dataset columns holding each field.
type ColumnsConfig struct {
	ProductID  string `yaml:"product_id" envconfig:"PRODUCT_ID" validate:"required"`
	TimePeriod string `yaml:"time_period" envconfig:"TIME_PERIOD" validate:"required"`
	Price      string `yaml:"price" validate:"required"`
	Quantity   string `yaml:"quantity" validate:"required"`
}

// OutputConfig locates the report file.
type OutputConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
	File   string `yaml:"file"`
}

// Default returns the compiled defaults: every method, normalization 100,
// the standard column names, and JSON logging at info level.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			Normalization: bilateral.DefaultNormalization,
			Methods:       []string{"all"},
			Columns: ColumnsConfig{
				ProductID:  bilateral.DefaultProductIDColumn,
				TimePeriod: bilateral.DefaultTimePeriodColumn,
				Price:      bilateral.DefaultPriceColumn,
				Quantity:   bilateral.DefaultQuantityColumn,
			},
		},
		Output: OutputConfig{
			Path: "index_report.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. An empty path skips the file layer; a
// named file must exist. Environment variables win over the file, the
// file wins over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tag names.
	_ = v.RegisterValidation("indexmethod", isIndexMethod)
	return v
}

func isIndexMethod(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if strings.EqualFold(name, "all") {
		return true
	}
	_, err := bilateral.ParseMethod(name)
	return err == nil
}

// Validate checks the structural constraints. Callers that override
// fields after Load should run it again.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// SelectedMethods resolves the configured method names into formulas,
// expanding the "all" keyword and dropping duplicates while preserving
// order.
func (c IndexConfig) SelectedMethods() ([]bilateral.Method, error) {
	var methods []bilateral.Method
	seen := make(map[bilateral.Method]bool)

	add := func(m bilateral.Method) {
		if !seen[m] {
			seen[m] = true
			methods = append(methods, m)
		}
	}

	for _, name := range c.Methods {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, m := range bilateral.Methods() {
				add(m)
			}
			continue
		}
		m, err := bilateral.ParseMethod(name)
		if err != nil {
			return nil, fmt.Errorf("resolve method selection: %w", err)
		}
		add(m)
	}

	if len(methods) == 0 {
		return nil, fmt.Errorf("no methods selected")
	}
	return methods, nil
}

// Schema maps the configured column names onto the table schema.
func (c ColumnsConfig) Schema() bilateral.Schema {
	return bilateral.Schema{
		ProductIDColumn:  c.ProductID,
		TimePeriodColumn: c.TimePeriod,
		PriceColumn:      c.Price,
		QuantityColumn:   c.Quantity,
	}
}
