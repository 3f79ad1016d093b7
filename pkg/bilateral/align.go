package bilateral

import (
	"fmt"
	"math"
	"sort"
)

// observation holds one matched product's values across both periods.
// Quantity fields are zero when the calling formula did not request them.
type observation struct {
	id     string
	price0 float64
	priceT float64
	qty0   float64
	qtyT   float64
}

// align intersects the product identifier sets of the supplied series and
// returns one observation per matched product, sorted by identifier so that
// accumulation order is deterministic. A nil quantity map marks a series the
// formula does not use; a non-nil map takes part in the intersection.
//
// Returns ErrNoMatchedProducts when the intersection is empty, and
// ErrNonPositiveValue when any matched value is zero, negative, NaN or
// infinite. Values of unmatched products are never inspected.
func align(prices0, pricesT, quantities0, quantitiesT map[string]float64) ([]observation, error) {
	ids := make([]string, 0, len(prices0))
	for id := range prices0 {
		if _, ok := pricesT[id]; !ok {
			continue
		}
		if quantities0 != nil {
			if _, ok := quantities0[id]; !ok {
				continue
			}
		}
		if quantitiesT != nil {
			if _, ok := quantitiesT[id]; !ok {
				continue
			}
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, ErrNoMatchedProducts
	}
	sort.Strings(ids)

	obs := make([]observation, 0, len(ids))
	for _, id := range ids {
		o := observation{id: id, price0: prices0[id], priceT: pricesT[id]}

		if err := checkPositive(id, "base price", o.price0); err != nil {
			return nil, err
		}
		if err := checkPositive(id, "compared price", o.priceT); err != nil {
			return nil, err
		}
		if quantities0 != nil {
			o.qty0 = quantities0[id]
			if err := checkPositive(id, "base quantity", o.qty0); err != nil {
				return nil, err
			}
		}
		if quantitiesT != nil {
			o.qtyT = quantitiesT[id]
			if err := checkPositive(id, "compared quantity", o.qtyT); err != nil {
				return nil, err
			}
		}

		obs = append(obs, o)
	}

	return obs, nil
}

// checkPositive rejects values the formulas cannot divide by or take
// logarithms of.
func checkPositive(id, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("product %q: %s %g: %w", id, field, v, ErrNonPositiveValue)
	}
	return nil
}
