package bilateral

import (
	"fmt"
	"math"
)

// Laspeyres computes the Laspeyres price index: the cost of the base-period
// basket at compared prices relative to its cost at base prices,
// Σ(q0·pt) / Σ(q0·p0).
func Laspeyres(prices0, pricesT, quantities0 map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, quantities0, nil)
	if err != nil {
		return 0, fmt.Errorf("laspeyres: %w", err)
	}

	numerator := 0.0
	denominator := 0.0
	for _, o := range obs {
		numerator += o.qty0 * o.priceT
		denominator += o.qty0 * o.price0
	}

	return numerator / denominator * normalization, nil
}

// Paasche computes the Paasche price index: the cost of the compared-period
// basket at compared prices relative to its cost at base prices,
// Σ(qt·pt) / Σ(qt·p0).
func Paasche(prices0, pricesT, quantitiesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, nil, quantitiesT)
	if err != nil {
		return 0, fmt.Errorf("paasche: %w", err)
	}

	numerator := 0.0
	denominator := 0.0
	for _, o := range obs {
		numerator += o.qtyT * o.priceT
		denominator += o.qtyT * o.price0
	}

	return numerator / denominator * normalization, nil
}

// Fisher computes the Fisher price index: the geometric mean of the
// normalized Laspeyres and Paasche indices. Each sub-index aligns its own
// matched set and applies normalization before the two are combined, so the
// result equals sqrt(Laspeyres × Paasche) exactly.
func Fisher(prices0, pricesT, quantities0, quantitiesT map[string]float64, normalization float64) (float64, error) {
	laspeyres, err := Laspeyres(prices0, pricesT, quantities0, normalization)
	if err != nil {
		return 0, fmt.Errorf("fisher: %w", err)
	}

	paasche, err := Paasche(prices0, pricesT, quantitiesT, normalization)
	if err != nil {
		return 0, fmt.Errorf("fisher: %w", err)
	}

	return math.Sqrt(laspeyres * paasche), nil
}

// Tornqvist computes the Törnqvist price index: a log-change index weighting
// each product by the average of its base and compared expenditure shares,
// exp(Σ wᵢ·log(ptᵢ/p0ᵢ)) with wᵢ = (s0ᵢ + stᵢ)/2.
func Tornqvist(prices0, pricesT, quantities0, quantitiesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, quantities0, quantitiesT)
	if err != nil {
		return 0, fmt.Errorf("tornqvist: %w", err)
	}

	total0 := 0.0
	totalT := 0.0
	for _, o := range obs {
		total0 += o.price0 * o.qty0
		totalT += o.priceT * o.qtyT
	}

	logIndex := 0.0
	for _, o := range obs {
		share0 := o.price0 * o.qty0 / total0
		shareT := o.priceT * o.qtyT / totalT
		logIndex += (share0 + shareT) / 2 * math.Log(o.priceT/o.price0)
	}

	return math.Exp(logIndex) * normalization, nil
}

// Walsh computes the Walsh price index: a basket index weighting each
// product by the geometric mean of its base and compared quantities,
// Σ(sqrt(q0·qt)·pt) / Σ(sqrt(q0·qt)·p0).
func Walsh(prices0, pricesT, quantities0, quantitiesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, quantities0, quantitiesT)
	if err != nil {
		return 0, fmt.Errorf("walsh: %w", err)
	}

	numerator := 0.0
	denominator := 0.0
	for _, o := range obs {
		weight := math.Sqrt(o.qty0 * o.qtyT)
		numerator += weight * o.priceT
		denominator += weight * o.price0
	}

	return numerator / denominator * normalization, nil
}

// SatoVartia computes the Sato-Vartia price index: a log-change index
// weighting each product by the logarithmic mean of its base and compared
// expenditure shares, normalized so the weights sum to one. The logarithmic
// mean (stᵢ − s0ᵢ)/(log stᵢ − log s0ᵢ) is undefined when a product's two
// shares coincide; that case fails with ErrDegenerateWeights.
func SatoVartia(prices0, pricesT, quantities0, quantitiesT map[string]float64, normalization float64) (float64, error) {
	obs, err := align(prices0, pricesT, quantities0, quantitiesT)
	if err != nil {
		return 0, fmt.Errorf("sato-vartia: %w", err)
	}

	total0 := 0.0
	totalT := 0.0
	for _, o := range obs {
		total0 += o.price0 * o.qty0
		totalT += o.priceT * o.qtyT
	}

	weights := make([]float64, len(obs))
	weightSum := 0.0
	for i, o := range obs {
		share0 := o.price0 * o.qty0 / total0
		shareT := o.priceT * o.qtyT / totalT

		spread := math.Log(shareT) - math.Log(share0)
		if spread == 0 {
			return 0, fmt.Errorf("sato-vartia: product %q: equal expenditure shares: %w", o.id, ErrDegenerateWeights)
		}

		weights[i] = (shareT - share0) / spread
		weightSum += weights[i]
	}

	logIndex := 0.0
	for i, o := range obs {
		logIndex += weights[i] / weightSum * math.Log(o.priceT/o.price0)
	}

	return math.Exp(logIndex) * normalization, nil
}
