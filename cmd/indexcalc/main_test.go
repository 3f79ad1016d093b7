package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceindex/pkg/bilateral"
)

func TestSplitMethods(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single", "jevons", []string{"jevons"}},
		{"comma list", "jevons,fisher", []string{"jevons", "fisher"}},
		{"whitespace trimmed", " jevons , fisher ", []string{"jevons", "fisher"}},
		{"all keyword", "all", []string{"all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitMethods(tt.value))
		})
	}
}

func TestCheckQuantityColumn(t *testing.T) {
	withQuantity, err := bilateral.NewTable(
		[]string{"product_id", "time_period", "price", "quantity"}, nil)
	require.NoError(t, err)

	priceOnly, err := bilateral.NewTable(
		[]string{"product_id", "time_period", "price"}, nil)
	require.NoError(t, err)

	schema := bilateral.DefaultSchema()

	t.Run("weighted methods with quantity column", func(t *testing.T) {
		err := checkQuantityColumn(withQuantity, schema,
			[]bilateral.Method{bilateral.MethodFisher, bilateral.MethodWalsh})
		assert.NoError(t, err)
	})

	t.Run("unweighted methods never need it", func(t *testing.T) {
		err := checkQuantityColumn(priceOnly, schema,
			[]bilateral.Method{bilateral.MethodJevons, bilateral.MethodDutot})
		assert.NoError(t, err)
	})

	t.Run("weighted methods without quantity column", func(t *testing.T) {
		err := checkQuantityColumn(priceOnly, schema,
			[]bilateral.Method{bilateral.MethodJevons, bilateral.MethodFisher})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "fisher")
		assert.NotContains(t, err.Error(), "jevons")
	})

	t.Run("custom quantity column name", func(t *testing.T) {
		custom := bilateral.Schema{
			ProductIDColumn:  "product_id",
			TimePeriodColumn: "time_period",
			PriceColumn:      "price",
			QuantityColumn:   "qty",
		}

		err := checkQuantityColumn(withQuantity, custom,
			[]bilateral.Method{bilateral.MethodPaasche})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "qty")
	})
}
