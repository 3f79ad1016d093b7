package bilateral_test

import (
	"fmt"

	"priceindex/pkg/bilateral"
)

// ExampleJevons computes an unweighted index from two price maps.
func ExampleJevons() {
	prices0 := map[string]float64{"apples": 100, "bread": 100}
	pricesT := map[string]float64{"apples": 110, "bread": 90}

	index, err := bilateral.Jevons(prices0, pricesT, bilateral.DefaultNormalization)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.4f\n", index)
	// Output:
	// 99.4987
}

// ExampleLaspeyres weights price changes by base-period quantities.
func ExampleLaspeyres() {
	prices0 := map[string]float64{"apples": 100, "bread": 200}
	pricesT := map[string]float64{"apples": 110, "bread": 190}
	quantities0 := map[string]float64{"apples": 10, "bread": 20}

	index, err := bilateral.Laspeyres(prices0, pricesT, quantities0, bilateral.DefaultNormalization)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.4f\n", index)
	// Output:
	// 98.0000
}

// ExampleFisher takes the geometric mean of the Laspeyres and Paasche
// indices over the same basket.
func ExampleFisher() {
	prices0 := map[string]float64{"a": 100, "b": 200, "c": 300}
	pricesT := map[string]float64{"a": 110, "b": 190, "c": 310}
	quantities0 := map[string]float64{"a": 10, "b": 20, "c": 30}
	quantitiesT := map[string]float64{"a": 15, "b": 25, "c": 35}

	index, err := bilateral.Fisher(prices0, pricesT, quantities0, quantitiesT, bilateral.DefaultNormalization)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.4f\n", index)
	// Output:
	// 101.4496
}

// ExampleJevonsFromTable reads both periods out of a long-format table.
func ExampleJevonsFromTable() {
	tbl, err := bilateral.NewTable(
		[]string{"product_id", "time_period", "price"},
		[][]string{
			{"a", "2024-01", "100"},
			{"b", "2024-01", "200"},
			{"c", "2024-01", "300"},
			{"a", "2024-02", "110"},
			{"b", "2024-02", "190"},
			{"c", "2024-02", "310"},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	index, err := bilateral.JevonsFromTable(tbl, "2024-01", "2024-02",
		bilateral.DefaultSchema(), bilateral.DefaultNormalization)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.4f\n", index)
	// Output:
	// 102.5933
}

// ExampleParseMethod resolves a formula by name.
func ExampleParseMethod() {
	method, err := bilateral.ParseMethod("Sato_Vartia")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(method, method.RequiresQuantities())
	// Output:
	// sato-vartia true
}
