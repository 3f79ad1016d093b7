package bilateral

import (
	"fmt"
	"strings"
)

// Method identifies one of the bilateral index formulas.
type Method int

const (
	// MethodJevons is the geometric mean of price ratios.
	MethodJevons Method = iota
	// MethodDutot is the ratio of summed prices.
	MethodDutot
	// MethodCarli is the arithmetic mean of price ratios.
	MethodCarli
	// MethodBMW is the Balk-Mehrhoff-Walsh self-weighted ratio mean.
	MethodBMW
	// MethodLaspeyres prices the base-period basket.
	MethodLaspeyres
	// MethodPaasche prices the compared-period basket.
	MethodPaasche
	// MethodFisher is the geometric mean of Laspeyres and Paasche.
	MethodFisher
	// MethodTornqvist weights log changes by average expenditure shares.
	MethodTornqvist
	// MethodWalsh weights prices by geometric-mean quantities.
	MethodWalsh
	// MethodSatoVartia weights log changes by logarithmic-mean shares.
	MethodSatoVartia
)

// Methods returns all index methods in declaration order.
func Methods() []Method {
	return []Method{
		MethodJevons,
		MethodDutot,
		MethodCarli,
		MethodBMW,
		MethodLaspeyres,
		MethodPaasche,
		MethodFisher,
		MethodTornqvist,
		MethodWalsh,
		MethodSatoVartia,
	}
}

// String returns the canonical lowercase name of the method.
func (m Method) String() string {
	switch m {
	case MethodJevons:
		return "jevons"
	case MethodDutot:
		return "dutot"
	case MethodCarli:
		return "carli"
	case MethodBMW:
		return "bmw"
	case MethodLaspeyres:
		return "laspeyres"
	case MethodPaasche:
		return "paasche"
	case MethodFisher:
		return "fisher"
	case MethodTornqvist:
		return "tornqvist"
	case MethodWalsh:
		return "walsh"
	case MethodSatoVartia:
		return "sato-vartia"
	default:
		return "unknown"
	}
}

// RequiresQuantities reports whether the method needs quantity data in
// addition to prices.
func (m Method) RequiresQuantities() bool {
	switch m {
	case MethodLaspeyres, MethodPaasche, MethodFisher, MethodTornqvist, MethodWalsh, MethodSatoVartia:
		return true
	default:
		return false
	}
}

// ParseMethod maps a method name to its Method. Matching is
// case-insensitive and tolerates the underscore spelling of sato-vartia
// and the spelled-out BMW name.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jevons":
		return MethodJevons, nil
	case "dutot":
		return MethodDutot, nil
	case "carli":
		return MethodCarli, nil
	case "bmw", "balk-mehrhoff-walsh":
		return MethodBMW, nil
	case "laspeyres":
		return MethodLaspeyres, nil
	case "paasche":
		return MethodPaasche, nil
	case "fisher":
		return MethodFisher, nil
	case "tornqvist", "törnqvist":
		return MethodTornqvist, nil
	case "walsh":
		return MethodWalsh, nil
	case "sato-vartia", "sato_vartia", "satovartia":
		return MethodSatoVartia, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Compute evaluates the method on map inputs. Unweighted methods ignore the
// quantity maps, which may be nil; Laspeyres and Paasche use only the
// quantity series of the basket they price.
func Compute(m Method, prices0, pricesT, quantities0, quantitiesT map[string]float64, normalization float64) (float64, error) {
	switch m {
	case MethodJevons:
		return Jevons(prices0, pricesT, normalization)
	case MethodDutot:
		return Dutot(prices0, pricesT, normalization)
	case MethodCarli:
		return Carli(prices0, pricesT, normalization)
	case MethodBMW:
		return BMW(prices0, pricesT, normalization)
	case MethodLaspeyres:
		return Laspeyres(prices0, pricesT, quantities0, normalization)
	case MethodPaasche:
		return Paasche(prices0, pricesT, quantitiesT, normalization)
	case MethodFisher:
		return Fisher(prices0, pricesT, quantities0, quantitiesT, normalization)
	case MethodTornqvist:
		return Tornqvist(prices0, pricesT, quantities0, quantitiesT, normalization)
	case MethodWalsh:
		return Walsh(prices0, pricesT, quantities0, quantitiesT, normalization)
	case MethodSatoVartia:
		return SatoVartia(prices0, pricesT, quantities0, quantitiesT, normalization)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// ComputeFromTable evaluates the method on tabular inputs through the
// FromTable adapters.
func ComputeFromTable(m Method, tbl *Table, basePeriod, comparedPeriod string, schema Schema, normalization float64) (float64, error) {
	switch m {
	case MethodJevons:
		return JevonsFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodDutot:
		return DutotFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodCarli:
		return CarliFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodBMW:
		return BMWFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodLaspeyres:
		return LaspeyresFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodPaasche:
		return PaascheFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodFisher:
		return FisherFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodTornqvist:
		return TornqvistFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodWalsh:
		return WalshFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	case MethodSatoVartia:
		return SatoVartiaFromTable(tbl, basePeriod, comparedPeriod, schema, normalization)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
