// Package bilateral implements bilateral price index formulas for comparing
// aggregate price change between two time periods.
//
// A bilateral index condenses the price movement of a basket of products
// between a base period (period 0) and a comparison period (period t) into a
// single scalar, scaled so that "no change" maps to a normalization value
// (conventionally 100). The package covers the standard unweighted and
// weighted formulas used by statistical agencies:
//
//	Unweighted (prices only): Jevons, Dutot, Carli, Balk-Mehrhoff-Walsh
//	Weighted (prices and quantities): Laspeyres, Paasche, Fisher,
//	Törnqvist, Walsh, Sato-Vartia
//
// # Matched Products
//
// Every formula operates on the matched product set: the intersection of the
// product identifiers present in all series the formula requires. Products
// observed in only one period are silently dropped. An empty intersection
// fails with ErrNoMatchedProducts. Within the matched set, prices and
// quantities must be strictly positive; a zero, negative or non-finite value
// fails with ErrNonPositiveValue rather than letting NaN leak into results.
//
// # Architecture
//
//   - align.go: matched-set intersection, validation, deterministic ordering
//   - unweighted.go: price-only formulas
//   - weighted.go: price-and-quantity formulas
//   - table.go: Table type and the FromTable adapter variants
//   - method.go: Method enumeration and dispatch helpers
//
// All formulas reduce to a single aligned pass over the matched set, so the
// map-based entry points and the FromTable adapters share the identical
// arithmetic.
//
// # Usage Example
//
//	prices0 := map[string]float64{"apple": 1.50, "bread": 2.10}
//	pricesT := map[string]float64{"apple": 1.65, "bread": 2.05}
//
//	idx, err := bilateral.Jevons(prices0, pricesT, bilateral.DefaultNormalization)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Jevons: %.4f\n", idx)
//
// The same computation from tabular data:
//
//	tbl, err := bilateral.NewTable(
//	    []string{"product_id", "time_period", "price"},
//	    [][]string{
//	        {"apple", "2024-01", "1.50"},
//	        {"bread", "2024-01", "2.10"},
//	        {"apple", "2024-02", "1.65"},
//	        {"bread", "2024-02", "2.05"},
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx, err = bilateral.JevonsFromTable(tbl, "2024-01", "2024-02",
//	    bilateral.DefaultSchema(), bilateral.DefaultNormalization)
//
// # Concurrency
//
// Every function is pure: no retained state, no caches, no I/O. Concurrent
// callers need no coordination.
//
// # Mathematical Notes
//
// Fisher is the geometric mean of the normalized Laspeyres and Paasche
// sub-results, sqrt(L·P). With the default normalization this is exact
// (sqrt(100·100) = 100); the composition is preserved as-is for any other
// normalization rather than re-derived from raw ratios.
//
// Sato-Vartia weights each product by the logarithmic mean of its two
// expenditure shares, (st−s0)/(log st − log s0). That mean is undefined when
// the shares coincide, so equal shares fail with ErrDegenerateWeights; the
// analogous zero-weight-sum guard applies to Balk-Mehrhoff-Walsh.
//
// # References
//
//   - ILO et al. (2004). Consumer Price Index Manual: Theory and Practice
//   - Diewert, W.E. (1976). Exact and superlative index numbers
//   - Balk, B.M. (2008). Price and Quantity Index Numbers
package bilateral
