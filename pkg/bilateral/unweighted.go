package bilateral

import (
	"fmt"
	"math"
)

// Jevons computes the Jevons price index: the geometric mean of the price
// ratios across the matched products, scaled by normalization.
func Jevons(prices0, pricesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("jevons: %w", err)
	}

	logSum := 0.0
	for _, o := range obs {
		logSum += math.Log(o.priceT / o.price0)
	}

	return math.Exp(logSum/float64(len(obs))) * normalization, nil
}

// Dutot computes the Dutot price index: the ratio of the summed compared
// prices to the summed base prices. Products with higher price levels carry
// implicitly more weight.
func Dutot(prices0, pricesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("dutot: %w", err)
	}

	sum0 := 0.0
	sumT := 0.0
	for _, o := range obs {
		sum0 += o.price0
		sumT += o.priceT
	}

	return sumT / sum0 * normalization, nil
}

// Carli computes the Carli price index: the arithmetic mean of the price
// ratios across the matched products.
func Carli(prices0, pricesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("carli: %w", err)
	}

	ratioSum := 0.0
	for _, o := range obs {
		ratioSum += o.priceT / o.price0
	}

	return ratioSum / float64(len(obs)) * normalization, nil
}

// BMW computes the Balk-Mehrhoff-Walsh price index: a weighted mean of the
// price ratios with per-product weight sqrt(p0/pt), which damps the upward
// drift of the plain arithmetic mean.
func BMW(prices0, pricesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("bmw: %w", err)
	}

	numerator := 0.0
	denominator := 0.0
	for _, o := range obs {
		weight := math.Sqrt(o.price0 / o.priceT)
		numerator += o.priceT / o.price0 * weight
		denominator += weight
	}

	// Unreachable with positive prices, but the weight sum is the divisor.
	if denominator == 0 {
		return 0, fmt.Errorf("bmw: zero weight sum: %w", ErrDegenerateWeights)
	}

	return numerator / denominator * normalization, nil
}
